package rewrite

import (
	"os"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"github.com/entanglab/remoteops/circuit"
	"github.com/entanglab/remoteops/logger"
	"github.com/entanglab/remoteops/protocol"
)

func TestMain(m *testing.M) {
	logger.Disable()
	os.Exit(m.Run())
}

func newTestCircuit(t *testing.T) (*circuit.Circuit, circuit.QuantumRegister) {
	t.Helper()
	c := circuit.New()
	q := circuit.NewQuantumRegister(2, "q")
	require.NoError(t, c.AddQuantumRegister(q))
	return c, q
}

func TestAddMacro(t *testing.T) {
	c, q := newTestCircuit(t)

	require.NoError(t, AddMacro(c, "RemoteCX", q.Qubit(0), q.Qubit(1), nil, nil, nil))

	qreg, ok := c.QuantumRegister(protocol.DefaultQuantumName)
	require.True(t, ok)
	creg, ok := c.ClassicalRegister(protocol.DefaultClassicalName)
	require.True(t, ok)

	require.Equal(t, []circuit.Instruction{
		circuit.NewMacro(circuit.GenEPR, qreg.Qubits(), nil, nil),
		circuit.NewMacro(circuit.RemoteCX,
			[]circuit.Qubit{q.Qubit(0), q.Qubit(1), qreg.Qubit(0), qreg.Qubit(1)},
			creg.Clbits(), []float64{}),
	}, c.Instructions)
	require.NoError(t, circuit.Validate(c))
}

func TestAddMacroWithParams(t *testing.T) {
	c, q := newTestCircuit(t)

	require.NoError(t, AddMacro(c, "RemoteCRZ", q.Qubit(0), q.Qubit(1), []float64{0.25}, nil, nil))
	require.Len(t, c.Instructions, 2)
	require.Equal(t, circuit.RemoteCRZ, c.Instructions[1].Kind)
	require.Equal(t, []float64{0.25}, c.Instructions[1].Params)
}

func TestAddMacroParamsNotAliased(t *testing.T) {
	c, q := newTestCircuit(t)

	params := []float64{0.25}
	require.NoError(t, AddMacro(c, "RemoteCRZ", q.Qubit(0), q.Qubit(1), params, nil, nil))
	params[0] = 99
	require.Equal(t, []float64{0.25}, c.Instructions[1].Params)
}

func TestAddMacroGenEPR(t *testing.T) {
	c, q := newTestCircuit(t)

	require.NoError(t, AddMacro(c, "GenEPR", q.Qubit(0), q.Qubit(1), nil, nil, nil))
	require.Len(t, c.Instructions, 1)
	require.Equal(t, circuit.GenEPR, c.Instructions[0].Kind)
}

func TestAddMacroExistingRegisters(t *testing.T) {
	c, q := newTestCircuit(t)
	qreg := circuit.NewQuantumRegister(2, "bus_q")
	creg := circuit.NewClassicalRegister(2, "bus_c")
	require.NoError(t, c.AddQuantumRegister(qreg))
	require.NoError(t, c.AddClassicalRegister(creg))

	require.NoError(t, AddMacro(c, "Teleport", q.Qubit(0), q.Qubit(1), nil, creg, qreg))

	// No default registers were provisioned.
	_, ok := c.QuantumRegister(protocol.DefaultQuantumName)
	require.False(t, ok)
	require.Equal(t, []circuit.Qubit{qreg.Qubit(0), qreg.Qubit(1)}, c.Instructions[0].Qubits)
	require.Equal(t,
		[]circuit.Qubit{q.Qubit(0), q.Qubit(1), qreg.Qubit(0), qreg.Qubit(1)},
		c.Instructions[1].Qubits)
	require.Equal(t, creg.Clbits(), c.Instructions[1].Clbits)
}

func TestAddMacroUnknownName(t *testing.T) {
	c, q := newTestCircuit(t)

	err := AddMacro(c, "Bogus", q.Qubit(0), q.Qubit(1), nil, nil, nil)
	require.True(t, errors.Is(err, ErrUnknownInstruction))

	// The instruction sequence is untouched; register provisioning is the
	// only permitted mutation.
	require.Empty(t, c.Instructions)
	_, ok := c.QuantumRegister(protocol.DefaultQuantumName)
	require.True(t, ok)
	_, ok = c.ClassicalRegister(protocol.DefaultClassicalName)
	require.True(t, ok)
}

func TestAddMacroRegisterError(t *testing.T) {
	c, q := newTestCircuit(t)
	require.NoError(t, c.AddClassicalRegister(circuit.NewClassicalRegister(1, protocol.DefaultClassicalName)))

	err := AddMacro(c, "RemoteCX", q.Qubit(0), q.Qubit(1), nil, nil, nil)
	require.True(t, errors.Is(err, protocol.ErrRegisterResolution))
	require.Empty(t, c.Instructions)
}
