package quantum

import (
	"fmt"
	"math"
	"math/cmplx"
	"math/rand/v2"
	"strconv"
	"sync"

	"github.com/rocketscienceinc/qtictactoe-backend/internal/apperror"
)

// Simulator executes a circuit over NumQubits qubits and returns one sampled
// outcome. The outcome is written most-significant qubit first: the first
// character is qubit NumQubits-1 and the last is qubit 0.
type Simulator interface {
	Simulate(ops []Operation) (string, error)
}

// SimulatorFunc adapts an ordinary function to the Simulator interface.
type SimulatorFunc func(ops []Operation) (string, error)

func (f SimulatorFunc) Simulate(ops []Operation) (string, error) {
	return f(ops)
}

// ToQubitOrder reverses a simulator outcome so that index i holds the bit of qubit i.
func ToQubitOrder(outcome string) ([]byte, error) {
	if len(outcome) != NumQubits {
		return nil, fmt.Errorf("%w: outcome %q has %d bits, want %d",
			apperror.ErrSimulationFailure, outcome, len(outcome), NumQubits)
	}

	bits := make([]byte, NumQubits)
	for i := range NumQubits {
		bit := outcome[NumQubits-1-i]
		if bit != '0' && bit != '1' {
			return nil, fmt.Errorf("%w: outcome %q contains %q", apperror.ErrSimulationFailure, outcome, bit)
		}
		bits[i] = bit
	}

	return bits, nil
}

// StatevectorSimulator samples outcomes from an exact 2^NumQubits amplitude vector.
// It is safe for concurrent use.
type StatevectorSimulator struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewStatevectorSimulator returns a simulator seeded with seed, or from
// entropy when seed is zero.
func NewStatevectorSimulator(seed uint64) *StatevectorSimulator {
	if seed == 0 {
		seed = rand.Uint64()
	}

	return &StatevectorSimulator{
		rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}
}

func (that *StatevectorSimulator) Simulate(ops []Operation) (string, error) {
	state := newStateVector(NumQubits)

	for _, op := range ops {
		if err := op.Validate(); err != nil {
			return "", fmt.Errorf("%w: %w", apperror.ErrSimulationFailure, err)
		}
		state.apply(op)
	}

	that.mu.Lock()
	r := that.rng.Float64()
	that.mu.Unlock()

	basis := state.sample(r)

	return formatOutcome(basis, NumQubits), nil
}

// formatOutcome writes basis as a zero-padded binary string, highest qubit first.
func formatOutcome(basis, numQubits int) string {
	s := strconv.FormatInt(int64(basis), 2)
	for len(s) < numQubits {
		s = "0" + s
	}

	return s
}

// stateVector stores amplitudes indexed by basis state; qubit q is bit q of the index.
type stateVector struct {
	amplitudes []complex128
}

func newStateVector(numQubits int) *stateVector {
	amps := make([]complex128, 1<<numQubits)
	amps[0] = 1

	return &stateVector{amplitudes: amps}
}

func (s *stateVector) apply(op Operation) {
	switch op.Gate {
	case GateHadamard:
		s.applyH(op.Target)
	case GateControlledNot:
		s.applyCX(op.Control, op.Target)
	}
}

func (s *stateVector) applyH(q int) {
	hFactor := complex(1.0/math.Sqrt2, 0)
	bit := 1 << q
	for i := range s.amplitudes {
		if i&bit == 0 {
			j := i | bit
			a, b := s.amplitudes[i], s.amplitudes[j]
			s.amplitudes[i] = hFactor * (a + b)
			s.amplitudes[j] = hFactor * (a - b)
		}
	}
}

func (s *stateVector) applyCX(control, target int) {
	cBit := 1 << control
	tBit := 1 << target
	for i := range s.amplitudes {
		if i&cBit != 0 && i&tBit == 0 {
			j := i | tBit
			s.amplitudes[i], s.amplitudes[j] = s.amplitudes[j], s.amplitudes[i]
		}
	}
}

// sample picks the basis state whose cumulative probability first exceeds r in [0, 1).
func (s *stateVector) sample(r float64) int {
	last := 0
	cumulative := 0.0
	for i, amp := range s.amplitudes {
		prob := real(amp * cmplx.Conj(amp))
		if prob < 1e-12 {
			continue
		}
		last = i
		cumulative += prob
		if r < cumulative {
			return i
		}
	}

	// rounding left r just above the total
	return last
}
