package quantum

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/qtictactoe-backend/internal/apperror"
)

func TestCircuit_AddHadamard(t *testing.T) {
	t.Run("Appends a Hadamard operation", func(t *testing.T) {
		// Given: an empty circuit
		circuit := NewCircuit()

		// When: a Hadamard is added on qubit 4
		err := circuit.AddHadamard(4)

		// Then: the circuit holds exactly that operation
		require.NoError(t, err)
		assert.Equal(t, []Operation{Hadamard(4)}, circuit.Operations())
	})

	t.Run("Rejects out of range qubits", func(t *testing.T) {
		// Given: an empty circuit
		circuit := NewCircuit()

		// When: qubits outside 0..8 are used
		errNeg := circuit.AddHadamard(-1)
		errHigh := circuit.AddHadamard(9)

		// Then: both fail with ErrInvalidQubit and nothing is appended
		require.ErrorIs(t, errNeg, apperror.ErrInvalidQubit)
		require.ErrorIs(t, errHigh, apperror.ErrInvalidQubit)
		assert.Equal(t, 0, circuit.Len())
	})
}

func TestCircuit_AddEntanglement(t *testing.T) {
	t.Run("Appends Hadamard then ControlledNot", func(t *testing.T) {
		// Given: an empty circuit
		circuit := NewCircuit()

		// When: qubits 2 and 7 are entangled
		err := circuit.AddEntanglement(2, 7)

		// Then: H(2) precedes CX(2, 7)
		require.NoError(t, err)
		assert.Equal(t, []Operation{Hadamard(2), ControlledNot(2, 7)}, circuit.Operations())
	})

	t.Run("Rejects the same qubit twice", func(t *testing.T) {
		// Given: an empty circuit
		circuit := NewCircuit()

		// When: a qubit is entangled with itself
		err := circuit.AddEntanglement(3, 3)

		// Then: ErrSameQubit is returned and nothing is appended
		require.ErrorIs(t, err, apperror.ErrSameQubit)
		assert.Equal(t, 0, circuit.Len())
	})

	t.Run("Rejects an out of range target without a partial append", func(t *testing.T) {
		// Given: an empty circuit
		circuit := NewCircuit()

		// When: the target is out of range
		err := circuit.AddEntanglement(0, 12)

		// Then: ErrInvalidQubit is returned and the Hadamard was not appended either
		require.ErrorIs(t, err, apperror.ErrInvalidQubit)
		assert.Equal(t, 0, circuit.Len())
	})
}

func TestCircuit_OperationsIsACopy(t *testing.T) {
	// Given: a circuit with one operation
	circuit := NewCircuit()
	require.NoError(t, circuit.AddHadamard(0))

	// When: the returned slice is modified
	ops := circuit.Operations()
	ops[0] = Hadamard(8)

	// Then: the circuit is unchanged
	assert.Equal(t, []Operation{Hadamard(0)}, circuit.Operations())
}

func TestCircuit_ToQASM(t *testing.T) {
	// Given: a circuit with a superposition and an entanglement
	circuit := NewCircuit()
	require.NoError(t, circuit.AddHadamard(4))
	require.NoError(t, circuit.AddEntanglement(2, 7))

	// When: rendering QASM
	qasm := circuit.ToQASM()

	// Then: gates appear in insertion order after the register declarations
	expected := "OPENQASM 2.0;\n" +
		"include \"qelib1.inc\";\n\n" +
		"qreg q[9];\n" +
		"creg c[9];\n\n" +
		"h q[4];\n" +
		"h q[2];\n" +
		"cx q[2], q[7];\n" +
		"measure q -> c;\n"
	assert.Equal(t, expected, qasm)
}

func TestCircuit_JSON(t *testing.T) {
	t.Run("Decodes what it encodes", func(t *testing.T) {
		// Given: a circuit with both gate kinds
		circuit := NewCircuit()
		require.NoError(t, circuit.AddEntanglement(1, 5))

		// When: encoding and decoding
		data, err := json.Marshal(circuit)
		require.NoError(t, err)

		decoded := NewCircuit()
		err = json.Unmarshal(data, decoded)

		// Then: the operations survive unchanged
		require.NoError(t, err)
		assert.JSONEq(t, `[{"gate":"h","target":1},{"gate":"cx","control":1,"target":5}]`, string(data))
		assert.Equal(t, circuit.Operations(), decoded.Operations())
	})

	t.Run("Rejects invalid stored operations", func(t *testing.T) {
		// Given: stored operations with bad indices or gates
		inputs := []string{
			`[{"gate":"h","target":9}]`,
			`[{"gate":"cx","control":3,"target":3}]`,
			`[{"gate":"cx","target":3}]`,
			`[{"gate":"swap","target":3}]`,
		}

		for _, input := range inputs {
			// When: decoding
			err := json.Unmarshal([]byte(input), NewCircuit())

			// Then: decoding fails
			assert.Error(t, err, input)
		}
	})
}
