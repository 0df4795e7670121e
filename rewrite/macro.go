// Package rewrite implements the instruction-stream rewriting passes:
// macro-operation insertion, expansion of macro operations into their
// protocol sequences, and substitution of partition-straddling two-qubit
// gates with their remote equivalents.
package rewrite

import (
	"github.com/pkg/errors"

	"github.com/entanglab/remoteops/circuit"
	"github.com/entanglab/remoteops/protocol"
)

var (
	// ErrUnknownInstruction is returned when a macro name is outside the
	// fixed macro-kind table.
	ErrUnknownInstruction = errors.New("unknown instruction")
	// ErrUnsupportedSubstitution is returned when a substitution target
	// kind has no remote equivalent.
	ErrUnsupportedSubstitution = errors.New("unsupported substitution")
	// ErrMalformedOperands is returned when a macro instruction does not
	// have the operand or parameter arity its kind requires.
	ErrMalformedOperands = errors.New("malformed operands")
)

// buffer collects one expansion before it is spliced into the output.
type buffer struct {
	ins []circuit.Instruction
}

func (b *buffer) Append(ins ...circuit.Instruction) {
	b.ins = append(b.ins, ins...)
}

// AddMacro appends a macro-operation named name to the circuit, resolving
// (and provisioning if absent) the entanglement registers. A GenEPR
// instruction over the resolved quantum register is appended first,
// modeling a fresh pair for this use; unless the macro is GenEPR itself,
// the macro instruction follows with qubit operands
// [qb1, qb2, qreg[0], qreg[1]] and the whole classical register as
// classical operands.
//
// The name is validated before any instruction is appended: on an unknown
// name the instruction sequence is left unchanged, though registers may
// already have been provisioned.
func AddMacro(circ *circuit.Circuit, name string, qb1, qb2 circuit.Qubit, params []float64, cregRef, qregRef any) error {
	creg, _, err := protocol.EnsureClassicalRegister(circ, cregRef)
	if err != nil {
		return err
	}
	qreg, _, err := protocol.EnsureQuantumRegister(circ, qregRef)
	if err != nil {
		return err
	}
	kind, ok := circuit.MacroKindByName(name)
	if !ok {
		return errors.Wrapf(ErrUnknownInstruction, "%q", name)
	}
	appendMacro(circ, kind, qb1, qb2, params, qreg, creg)
	return nil
}

// appendMacro emits the GenEPR instruction and, for non-GenEPR kinds, the
// macro instruction itself. params is copied so that no caller-owned
// slice is shared between instructions.
func appendMacro(s protocol.Stream, kind circuit.Kind, qb1, qb2 circuit.Qubit, params []float64, qreg circuit.QuantumRegister, creg circuit.ClassicalRegister) {
	s.Append(circuit.NewMacro(circuit.GenEPR, qreg.Qubits(), nil, nil))
	if kind == circuit.GenEPR {
		return
	}
	p := make([]float64, 0, len(params))
	p = append(p, params...)
	qargs := []circuit.Qubit{qb1, qb2, qreg.Qubit(0), qreg.Qubit(1)}
	s.Append(circuit.NewMacro(kind, qargs, creg.Clbits(), p))
}
