package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/qtictactoe-backend/internal/apperror"
	"github.com/rocketscienceinc/qtictactoe-backend/internal/entity"
	"github.com/rocketscienceinc/qtictactoe-backend/internal/quantum"
)

// Measure runs the circuit once on sim and collapses every superposed or
// entangled cell: bit 0 becomes X, bit 1 becomes O. Empty and classical cells
// are left alone. On any error the game is not modified.
func Measure(game *entity.Game, sim quantum.Simulator) error {
	if game.IsOver() {
		return apperror.ErrGameAlreadyOver
	}

	outcome, err := sim.Simulate(game.Circuit.Operations())
	if err != nil {
		return fmt.Errorf("%w: %w", apperror.ErrSimulationFailure, err)
	}

	bits, err := quantum.ToQubitOrder(outcome)
	if err != nil {
		return err
	}

	board := game.State.Board
	for i, cell := range board {
		if !cell.IsUndetermined() {
			continue
		}

		if bits[i] == '0' {
			board[i] = entity.ClassicalCell(entity.MarkX)
		} else {
			board[i] = entity.ClassicalCell(entity.MarkO)
		}
	}

	game.State.Board = board
	game.State.Measurement = string(bits)
	game.State.GameOver = true

	return nil
}
