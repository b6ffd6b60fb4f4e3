package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/qtictactoe-backend/internal/apperror"
	"github.com/rocketscienceinc/qtictactoe-backend/internal/entity"
)

// ApplyMove dispatches a move to the matching move operation.
func ApplyMove(game *entity.Game, move entity.Move) error {
	switch move.Type {
	case entity.MoveClassical:
		return ApplyClassicalMove(game, move.Cell)
	case entity.MoveSuperposition:
		return ApplySuperpositionMove(game, move.Cell)
	case entity.MoveEntangle:
		return ApplyEntangleMove(game, move.Cell, move.Target)
	default:
		return fmt.Errorf("%w: unknown move type %q", apperror.ErrIllegalMove, move.Type)
	}
}

// ApplyClassicalMove writes the current player's mark into an empty cell.
func ApplyClassicalMove(game *entity.Game, cell int) error {
	if err := validateMove(game, cell); err != nil {
		return err
	}

	game.State.Board[cell] = entity.ClassicalCell(game.State.Turn)
	commitMove(game)

	return nil
}

// ApplySuperpositionMove puts an empty cell into superposition with H(cell).
func ApplySuperpositionMove(game *entity.Game, cell int) error {
	if err := validateMove(game, cell); err != nil {
		return err
	}

	if err := game.Circuit.AddHadamard(cell); err != nil {
		return fmt.Errorf("%w: %w", apperror.ErrIllegalMove, err)
	}

	game.State.Board[cell] = entity.SuperposedCell()
	commitMove(game)

	return nil
}

// ApplyEntangleMove entangles two empty cells as one move.
// cellA is the control qubit and cellB the target.
func ApplyEntangleMove(game *entity.Game, cellA, cellB int) error {
	if err := validateMove(game, cellA); err != nil {
		return err
	}

	if err := validateMove(game, cellB); err != nil {
		return err
	}

	if cellA == cellB {
		return fmt.Errorf("%w: %w: cell %d", apperror.ErrIllegalMove, apperror.ErrSameQubit, cellA)
	}

	if err := game.Circuit.AddEntanglement(cellA, cellB); err != nil {
		return fmt.Errorf("%w: %w", apperror.ErrIllegalMove, err)
	}

	game.State.Board[cellA] = entity.EntangledCell()
	game.State.Board[cellB] = entity.EntangledCell()
	commitMove(game)

	return nil
}

// validateMove - checks that the game is running and the cell is free.
func validateMove(game *entity.Game, cell int) error {
	if game.IsOver() {
		return apperror.ErrGameAlreadyOver
	}

	if cell < 0 || cell >= entity.BoardSize {
		return fmt.Errorf("%w: %w: cell %d", apperror.ErrIllegalMove, apperror.ErrInvalidCell, cell)
	}

	if !game.State.Board[cell].IsEmpty() {
		return fmt.Errorf("%w: cell %d is %s", apperror.ErrIllegalMove, cell, game.State.Board[cell].Kind())
	}

	return nil
}

func commitMove(game *entity.Game) {
	game.State.MoveCount++
	game.State.Turn = game.State.Turn.Opponent()
}
