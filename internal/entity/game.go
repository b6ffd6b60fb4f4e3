package entity

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/rocketscienceinc/qtictactoe-backend/internal/quantum"
)

// BoardSize is the number of cells; cell i is measured through qubit i.
const BoardSize = quantum.NumQubits

type Board [BoardSize]Cell

var ErrInvalidGameState = errors.New("invalid game state")

// GameState is the board together with turn bookkeeping.
type GameState struct {
	Board     Board `json:"board"`
	Turn      Mark  `json:"turn"`
	MoveCount int   `json:"move_count"`
	GameOver  bool  `json:"game_over"`
	// Measurement is the collapsed outcome in qubit order, set once the game is over.
	Measurement string `json:"measurement,omitempty"`
}

func NewGameState() GameState {
	return GameState{Turn: MarkX}
}

// UnmarshalJSON rejects stored states with a short board, an unknown turn or a negative move count.
func (that *GameState) UnmarshalJSON(data []byte) error {
	var raw struct {
		Board       []Cell `json:"board"`
		Turn        Mark   `json:"turn"`
		MoveCount   int    `json:"move_count"`
		GameOver    bool   `json:"game_over"`
		Measurement string `json:"measurement"`
	}

	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	if len(raw.Board) != BoardSize {
		return fmt.Errorf("%w: board has %d cells", ErrInvalidGameState, len(raw.Board))
	}

	if !raw.Turn.IsValid() {
		return fmt.Errorf("%w: turn %q", ErrInvalidGameState, raw.Turn)
	}

	if raw.MoveCount < 0 {
		return fmt.Errorf("%w: move count %d", ErrInvalidGameState, raw.MoveCount)
	}

	state := GameState{
		Turn:        raw.Turn,
		MoveCount:   raw.MoveCount,
		GameOver:    raw.GameOver,
		Measurement: raw.Measurement,
	}
	copy(state.Board[:], raw.Board)

	*that = state

	return nil
}

// Game owns the state and the circuit of a single match.
type Game struct {
	ID      string           `json:"id"`
	State   GameState        `json:"state"`
	Circuit *quantum.Circuit `json:"circuit"`
}

func NewGame(id string) *Game {
	return &Game{
		ID:      id,
		State:   NewGameState(),
		Circuit: quantum.NewCircuit(),
	}
}

// IsOver reports whether the game has been measured.
func (that *Game) IsOver() bool {
	return that.State.GameOver
}
