package apperror

import "errors"

var (
	ErrInvalidQubit      = errors.New("qubit index out of range")
	ErrSameQubit         = errors.New("control and target qubit are the same")
	ErrInvalidCell       = errors.New("invalid cell index")
	ErrIllegalMove       = errors.New("illegal move")
	ErrGameAlreadyOver   = errors.New("game is already over")
	ErrSimulationFailure = errors.New("simulation failed")
)
