package entity

import (
	"errors"
	"fmt"
)

// Mark is a classical symbol, also used to name the player whose turn it is.
type Mark string

const (
	MarkX Mark = "X"
	MarkO Mark = "O"
)

func (that Mark) IsValid() bool {
	return that == MarkX || that == MarkO
}

func (that Mark) Opponent() Mark {
	if that == MarkX {
		return MarkO
	}
	return MarkX
}

type CellKind uint8

const (
	CellEmpty CellKind = iota
	CellClassical
	CellSuperposed
	CellEntangled
)

func (that CellKind) String() string {
	switch that {
	case CellEmpty:
		return "empty"
	case CellClassical:
		return "classical"
	case CellSuperposed:
		return "superposed"
	case CellEntangled:
		return "entangled"
	default:
		return fmt.Sprintf("CellKind(%d)", uint8(that))
	}
}

var ErrInvalidCellValue = errors.New("invalid cell value")

// Cell is one board square. Only a Classical cell carries a mark.
// The zero value is an empty cell.
type Cell struct {
	kind CellKind
	mark Mark
}

func EmptyCell() Cell      { return Cell{kind: CellEmpty} }
func SuperposedCell() Cell { return Cell{kind: CellSuperposed} }
func EntangledCell() Cell  { return Cell{kind: CellEntangled} }

func ClassicalCell(mark Mark) Cell {
	return Cell{kind: CellClassical, mark: mark}
}

func (that Cell) Kind() CellKind { return that.kind }

// Mark returns the classical symbol, or "" for any other kind.
func (that Cell) Mark() Mark { return that.mark }

func (that Cell) IsEmpty() bool     { return that.kind == CellEmpty }
func (that Cell) IsClassical() bool { return that.kind == CellClassical }

// IsUndetermined reports whether the cell will be resolved by measurement.
func (that Cell) IsUndetermined() bool {
	return that.kind == CellSuperposed || that.kind == CellEntangled
}

// String returns the board symbol: "", "X", "O", "?" or "E".
func (that Cell) String() string {
	switch that.kind {
	case CellClassical:
		return string(that.mark)
	case CellSuperposed:
		return "?"
	case CellEntangled:
		return "E"
	default:
		return ""
	}
}

func (that Cell) MarshalText() ([]byte, error) {
	return []byte(that.String()), nil
}

func (that *Cell) UnmarshalText(text []byte) error {
	switch string(text) {
	case "":
		*that = EmptyCell()
	case string(MarkX):
		*that = ClassicalCell(MarkX)
	case string(MarkO):
		*that = ClassicalCell(MarkO)
	case "?":
		*that = SuperposedCell()
	case "E":
		*that = EntangledCell()
	default:
		return fmt.Errorf("%w: %q", ErrInvalidCellValue, text)
	}

	return nil
}
