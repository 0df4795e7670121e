package remoteops

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/entanglab/remoteops/circuit"
	"github.com/entanglab/remoteops/logger"
	"github.com/entanglab/remoteops/rewrite"
)

func TestMain(m *testing.M) {
	logger.Disable()
	os.Exit(m.Run())
}

func TestCompile(t *testing.T) {
	c := circuit.New()
	a := circuit.NewQuantumRegister(2, "alice")
	b := circuit.NewQuantumRegister(2, "bob")
	require.NoError(t, c.AddQuantumRegister(a))
	require.NoError(t, c.AddQuantumRegister(b))
	c.Append(
		circuit.NewH(a.Qubit(0)),
		circuit.NewCNOT(a.Qubit(0), b.Qubit(0)),
		circuit.NewCNOT(a.Qubit(0), a.Qubit(1)),
	)

	require.NoError(t, Compile(c, a.Qubits(), b.Qubits()))

	for _, in := range c.Instructions {
		require.False(t, in.Kind.IsMacro())
	}
	// The straddling CNOT became 2 pair-preparation and 10 protocol
	// instructions; the rest pass through.
	require.Len(t, c.Instructions, 14)
	require.NoError(t, circuit.Validate(c))
}

func TestCompileWithoutPartitions(t *testing.T) {
	c := circuit.New()
	q := circuit.NewQuantumRegister(2, "q")
	require.NoError(t, c.AddQuantumRegister(q))
	require.NoError(t, rewrite.AddMacro(c, "Teleport", q.Qubit(0), q.Qubit(1), nil, nil, nil))

	require.NoError(t, Compile(c))
	for _, in := range c.Instructions {
		require.False(t, in.Kind.IsMacro())
	}
}

func TestCompileBadPartitionCount(t *testing.T) {
	c := circuit.New()
	q := circuit.NewQuantumRegister(2, "q")
	require.NoError(t, c.AddQuantumRegister(q))

	require.Error(t, Compile(c, q.Qubits()))
}
