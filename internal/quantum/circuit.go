package quantum

import (
	"encoding/json"
	"fmt"
	"slices"
	"strings"

	"github.com/rocketscienceinc/qtictactoe-backend/internal/apperror"
)

// Circuit accumulates the gate operations produced by quantum moves.
// It only grows: there is no way to remove an operation.
type Circuit struct {
	ops []Operation
}

func NewCircuit() *Circuit {
	return &Circuit{ops: []Operation{}}
}

// AddHadamard appends H(qubit).
func (that *Circuit) AddHadamard(qubit int) error {
	if err := checkQubit(qubit); err != nil {
		return err
	}

	that.ops = append(that.ops, Hadamard(qubit))

	return nil
}

// AddEntanglement appends H(control) followed by CX(control, target).
// Nothing is appended when either index is rejected.
func (that *Circuit) AddEntanglement(control, target int) error {
	if err := checkQubit(control); err != nil {
		return err
	}

	if err := checkQubit(target); err != nil {
		return err
	}

	if control == target {
		return fmt.Errorf("%w: %d", apperror.ErrSameQubit, control)
	}

	that.ops = append(that.ops, Hadamard(control), ControlledNot(control, target))

	return nil
}

// Operations returns a copy of the accumulated operations in insertion order.
func (that *Circuit) Operations() []Operation {
	return slices.Clone(that.ops)
}

func (that *Circuit) Len() int {
	return len(that.ops)
}

// ToQASM renders the circuit as OPENQASM 2.0 with a final full-register measurement.
func (that *Circuit) ToQASM() string {
	var sb strings.Builder
	sb.WriteString("OPENQASM 2.0;\n")
	sb.WriteString("include \"qelib1.inc\";\n\n")
	fmt.Fprintf(&sb, "qreg q[%d];\n", NumQubits)
	fmt.Fprintf(&sb, "creg c[%d];\n\n", NumQubits)

	for _, op := range that.ops {
		sb.WriteString(op.String())
		sb.WriteByte('\n')
	}

	sb.WriteString("measure q -> c;\n")

	return sb.String()
}

func (that *Circuit) MarshalJSON() ([]byte, error) {
	return json.Marshal(that.ops)
}

func (that *Circuit) UnmarshalJSON(data []byte) error {
	var ops []Operation
	if err := json.Unmarshal(data, &ops); err != nil {
		return fmt.Errorf("failed to unmarshal circuit: %w", err)
	}

	if ops == nil {
		ops = []Operation{}
	}

	that.ops = ops

	return nil
}
