package quantum

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/rocketscienceinc/qtictactoe-backend/internal/apperror"
)

// NumQubits is the register size: one qubit per board cell.
const NumQubits = 9

type Gate string

const (
	GateHadamard      Gate = "h"
	GateControlledNot Gate = "cx"
)

var ErrUnknownGate = errors.New("unknown gate")

// Operation is a single gate application. Control is -1 for single-qubit gates.
type Operation struct {
	Gate    Gate
	Control int
	Target  int
}

func Hadamard(qubit int) Operation {
	return Operation{Gate: GateHadamard, Control: -1, Target: qubit}
}

func ControlledNot(control, target int) Operation {
	return Operation{Gate: GateControlledNot, Control: control, Target: target}
}

// String renders the operation as a QASM statement.
func (that Operation) String() string {
	if that.Gate == GateControlledNot {
		return fmt.Sprintf("cx q[%d], q[%d];", that.Control, that.Target)
	}

	return fmt.Sprintf("%s q[%d];", that.Gate, that.Target)
}

func (that Operation) Validate() error {
	switch that.Gate {
	case GateHadamard:
		return checkQubit(that.Target)
	case GateControlledNot:
		if err := checkQubit(that.Control); err != nil {
			return err
		}
		if err := checkQubit(that.Target); err != nil {
			return err
		}
		if that.Control == that.Target {
			return fmt.Errorf("%w: %d", apperror.ErrSameQubit, that.Target)
		}
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownGate, that.Gate)
	}
}

type jsonOperation struct {
	Gate    Gate `json:"gate"`
	Control *int `json:"control,omitempty"`
	Target  int  `json:"target"`
}

func (that Operation) MarshalJSON() ([]byte, error) {
	op := jsonOperation{Gate: that.Gate, Target: that.Target}
	if that.Gate == GateControlledNot {
		control := that.Control
		op.Control = &control
	}

	return json.Marshal(op)
}

func (that *Operation) UnmarshalJSON(data []byte) error {
	var op jsonOperation
	if err := json.Unmarshal(data, &op); err != nil {
		return fmt.Errorf("failed to unmarshal operation: %w", err)
	}

	decoded := Hadamard(op.Target)
	if op.Gate == GateControlledNot {
		if op.Control == nil {
			return fmt.Errorf("%w: cx without control", apperror.ErrInvalidQubit)
		}
		decoded = ControlledNot(*op.Control, op.Target)
	} else {
		decoded.Gate = op.Gate
	}

	if err := decoded.Validate(); err != nil {
		return fmt.Errorf("invalid operation: %w", err)
	}

	*that = decoded

	return nil
}

func checkQubit(qubit int) error {
	if qubit < 0 || qubit >= NumQubits {
		return fmt.Errorf("%w: %d", apperror.ErrInvalidQubit, qubit)
	}

	return nil
}
