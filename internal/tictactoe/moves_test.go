package tictactoe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/qtictactoe-backend/internal/apperror"
	"github.com/rocketscienceinc/qtictactoe-backend/internal/entity"
	"github.com/rocketscienceinc/qtictactoe-backend/internal/quantum"
)

// snapshot captures everything a rejected move must leave untouched.
type snapshot struct {
	state entity.GameState
	ops   []quantum.Operation
}

func takeSnapshot(game *entity.Game) snapshot {
	return snapshot{state: game.State, ops: game.Circuit.Operations()}
}

func TestApplyClassicalMove(t *testing.T) {
	t.Run("Places the current mark and flips the turn", func(t *testing.T) {
		// Given: a new game
		game := entity.NewGame("123")

		// When: X plays cell 0
		err := ApplyClassicalMove(game, 0)

		// Then: the cell holds X, O is to move and the circuit is untouched
		require.NoError(t, err)
		assert.Equal(t, entity.ClassicalCell(entity.MarkX), game.State.Board[0])
		assert.Equal(t, entity.MarkO, game.State.Turn)
		assert.Equal(t, 1, game.State.MoveCount)
		assert.Empty(t, game.Circuit.Operations())
	})

	t.Run("Error on cell already occupied", func(t *testing.T) {
		// Given: cell 0 is occupied
		game := entity.NewGame("123")
		require.NoError(t, ApplyClassicalMove(game, 0))
		before := takeSnapshot(game)

		// When: O plays the same cell
		err := ApplyClassicalMove(game, 0)

		// Then: ErrIllegalMove and the game is unchanged
		require.ErrorIs(t, err, apperror.ErrIllegalMove)
		assert.Equal(t, before, takeSnapshot(game))
	})

	t.Run("Error on occupied quantum cell", func(t *testing.T) {
		// Given: cell 4 is superposed
		game := entity.NewGame("123")
		require.NoError(t, ApplySuperpositionMove(game, 4))
		before := takeSnapshot(game)

		// When: a classical move targets it
		err := ApplyClassicalMove(game, 4)

		// Then: ErrIllegalMove and the game is unchanged
		require.ErrorIs(t, err, apperror.ErrIllegalMove)
		assert.Equal(t, before, takeSnapshot(game))
	})

	t.Run("Invalid cell", func(t *testing.T) {
		for _, cell := range []int{-1, 9, 20} {
			// Given: a new game
			game := entity.NewGame("123")

			// When: an out of range cell is played
			err := ApplyClassicalMove(game, cell)

			// Then: ErrIllegalMove is returned
			require.ErrorIs(t, err, apperror.ErrIllegalMove)
			assert.ErrorIs(t, err, apperror.ErrInvalidCell)
			assert.Equal(t, 0, game.State.MoveCount)
		}
	})
}

func TestApplySuperpositionMove(t *testing.T) {
	t.Run("Appends exactly one Hadamard", func(t *testing.T) {
		// Given: a new game
		game := entity.NewGame("123")

		// When: a superposition move on cell 4
		err := ApplySuperpositionMove(game, 4)

		// Then: the circuit is [H(4)] and the cell is superposed
		require.NoError(t, err)
		assert.Equal(t, []quantum.Operation{quantum.Hadamard(4)}, game.Circuit.Operations())
		assert.Equal(t, entity.SuperposedCell(), game.State.Board[4])
		assert.Equal(t, entity.MarkO, game.State.Turn)
		assert.Equal(t, 1, game.State.MoveCount)
	})

	t.Run("Error on occupied cell", func(t *testing.T) {
		// Given: cell 1 holds X
		game := entity.NewGame("123")
		require.NoError(t, ApplyClassicalMove(game, 1))
		before := takeSnapshot(game)

		// When: a superposition move targets it
		err := ApplySuperpositionMove(game, 1)

		// Then: ErrIllegalMove and nothing changes
		require.ErrorIs(t, err, apperror.ErrIllegalMove)
		assert.Equal(t, before, takeSnapshot(game))
	})
}

func TestApplyEntangleMove(t *testing.T) {
	t.Run("Entangles two cells as one move", func(t *testing.T) {
		// Given: a new game
		game := entity.NewGame("123")

		// When: cells 2 and 7 are entangled
		err := ApplyEntangleMove(game, 2, 7)

		// Then: the circuit is [H(2), CX(2,7)], both cells are entangled and the turn flipped once
		require.NoError(t, err)
		assert.Equal(t, []quantum.Operation{quantum.Hadamard(2), quantum.ControlledNot(2, 7)}, game.Circuit.Operations())
		assert.Equal(t, entity.EntangledCell(), game.State.Board[2])
		assert.Equal(t, entity.EntangledCell(), game.State.Board[7])
		assert.Equal(t, entity.MarkO, game.State.Turn)
		assert.Equal(t, 1, game.State.MoveCount)
	})

	t.Run("Same cell is rejected for every index", func(t *testing.T) {
		for cell := range entity.BoardSize {
			// Given: a new game
			game := entity.NewGame("123")
			before := takeSnapshot(game)

			// When: a cell is entangled with itself
			err := ApplyEntangleMove(game, cell, cell)

			// Then: both kinds match and the circuit is unchanged
			require.ErrorIs(t, err, apperror.ErrIllegalMove)
			require.ErrorIs(t, err, apperror.ErrSameQubit)
			assert.Equal(t, before, takeSnapshot(game))
		}
	})

	t.Run("Error when either cell is occupied", func(t *testing.T) {
		// Given: cell 5 holds X
		game := entity.NewGame("123")
		require.NoError(t, ApplyClassicalMove(game, 5))
		before := takeSnapshot(game)

		// When: entangling with 5 on either side
		errA := ApplyEntangleMove(game, 5, 0)
		errB := ApplyEntangleMove(game, 0, 5)

		// Then: both fail and nothing changes
		require.ErrorIs(t, errA, apperror.ErrIllegalMove)
		require.ErrorIs(t, errB, apperror.ErrIllegalMove)
		assert.Equal(t, before, takeSnapshot(game))
	})

	t.Run("Error when the target is out of range", func(t *testing.T) {
		// Given: a new game
		game := entity.NewGame("123")

		// When: the target is off the board
		err := ApplyEntangleMove(game, 0, 9)

		// Then: the move is illegal and no gate was appended
		require.ErrorIs(t, err, apperror.ErrIllegalMove)
		assert.Equal(t, 0, game.Circuit.Len())
		assert.True(t, game.State.Board[0].IsEmpty())
	})
}

func TestApplyMove(t *testing.T) {
	t.Run("Turn alternates across move types", func(t *testing.T) {
		// Given: a mixed sequence of legal moves
		game := entity.NewGame("123")
		moves := []entity.Move{
			{Type: entity.MoveClassical, Cell: 0},
			{Type: entity.MoveSuperposition, Cell: 4},
			{Type: entity.MoveEntangle, Cell: 1, Target: 8},
			{Type: entity.MoveClassical, Cell: 3},
			{Type: entity.MoveSuperposition, Cell: 6},
		}

		for i, move := range moves {
			// When: each move is applied
			require.NoError(t, ApplyMove(game, move), move.String())

			// Then: move count and turn track the number of successful moves
			assert.Equal(t, i+1, game.State.MoveCount)
			if game.State.MoveCount%2 == 0 {
				assert.Equal(t, entity.MarkX, game.State.Turn)
			} else {
				assert.Equal(t, entity.MarkO, game.State.Turn)
			}
		}

		assert.Equal(t, entity.ClassicalCell(entity.MarkO), game.State.Board[3])
	})

	t.Run("Failed moves are not counted", func(t *testing.T) {
		// Given: a game with one move played
		game := entity.NewGame("123")
		require.NoError(t, ApplyMove(game, entity.Move{Type: entity.MoveClassical, Cell: 0}))

		// When: a mix of illegal moves is attempted
		require.Error(t, ApplyMove(game, entity.Move{Type: entity.MoveClassical, Cell: 0}))
		require.Error(t, ApplyMove(game, entity.Move{Type: entity.MoveEntangle, Cell: 2, Target: 2}))
		require.Error(t, ApplyMove(game, entity.Move{Type: "teleport", Cell: 2}))

		// Then: the count and turn reflect only the legal move
		assert.Equal(t, 1, game.State.MoveCount)
		assert.Equal(t, entity.MarkO, game.State.Turn)
	})

	t.Run("Unknown move type", func(t *testing.T) {
		game := entity.NewGame("123")

		err := ApplyMove(game, entity.Move{Type: "teleport", Cell: 1})

		require.ErrorIs(t, err, apperror.ErrIllegalMove)
	})
}

func TestMovesAfterGameOver(t *testing.T) {
	// Given: a measured game
	game := entity.NewGame("123")
	require.NoError(t, ApplySuperpositionMove(game, 0))
	require.NoError(t, Measure(game, stubSimulator("000000000")))
	before := takeSnapshot(game)

	// When: any move is attempted
	errs := []error{
		ApplyClassicalMove(game, 1),
		ApplySuperpositionMove(game, 2),
		ApplyEntangleMove(game, 3, 4),
	}

	// Then: each fails with ErrGameAlreadyOver and nothing changes
	for _, err := range errs {
		require.ErrorIs(t, err, apperror.ErrGameAlreadyOver)
	}
	assert.Equal(t, before, takeSnapshot(game))
}
