package entity

import "fmt"

type MoveType string

const (
	MoveClassical     MoveType = "classical"
	MoveSuperposition MoveType = "superposition"
	MoveEntangle      MoveType = "entangle"
)

// Move is a request to play. Target is only read for entangle moves.
type Move struct {
	Type   MoveType `json:"type"`
	Cell   int      `json:"cell"`
	Target int      `json:"target,omitempty"`
}

func (that Move) String() string {
	if that.Type == MoveEntangle {
		return fmt.Sprintf("%s(%d,%d)", that.Type, that.Cell, that.Target)
	}
	return fmt.Sprintf("%s(%d)", that.Type, that.Cell)
}
