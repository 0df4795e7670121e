package rewrite

import (
	"github.com/pkg/errors"

	"github.com/entanglab/remoteops/circuit"
	"github.com/entanglab/remoteops/logger"
	"github.com/entanglab/remoteops/protocol"
)

func kindIn(k circuit.Kind, kinds []circuit.Kind) bool {
	for _, kk := range kinds {
		if k == kk {
			return true
		}
	}
	return false
}

func checkMacroOperands(in circuit.Instruction) error {
	if len(in.Qubits) != in.Kind.QubitArity() {
		return errors.Wrapf(ErrMalformedOperands, "%s: got %d qubit operands, want %d", in.Kind, len(in.Qubits), in.Kind.QubitArity())
	}
	if len(in.Clbits) != in.Kind.ClbitArity() {
		return errors.Wrapf(ErrMalformedOperands, "%s: got %d clbit operands, want %d", in.Kind, len(in.Clbits), in.Kind.ClbitArity())
	}
	if len(in.Params) != in.Kind.ParamArity() {
		return errors.Wrapf(ErrMalformedOperands, "%s: got %d params, want %d", in.Kind, len(in.Params), in.Kind.ParamArity())
	}
	return nil
}

// expand forwards the operands of a macro instruction to the matching
// protocol builder. The switch is exhaustive over the macro kinds.
func expand(s protocol.Stream, in circuit.Instruction) {
	q, c := in.Qubits, in.Clbits
	switch in.Kind {
	case circuit.GenEPR:
		protocol.PreparePair(s, q[0], q[1])
	case circuit.RemoteCX:
		protocol.RemoteCX(s, q[0], q[1], q[2], q[3], c[0], c[1])
	case circuit.RemoteRZZ:
		protocol.RemoteZZ(s, in.Params[0], q[0], q[1], q[2], q[3], c[0], c[1])
	case circuit.RemoteCRZ:
		protocol.RemoteCRZ(s, in.Params[0], q[0], q[1], q[2], q[3], c[0], c[1])
	case circuit.Teleport:
		protocol.Teleport(s, q[0], q[1], q[2], q[3], c[0], c[1])
	}
}

// Decompose replaces every instruction whose kind is in kinds with its
// protocol expansion, in place of the original instruction. With no kinds
// given, all macro kinds are expanded. The pass is a single left-to-right
// sweep; the relative order of all other instructions is preserved
// exactly, and no kind in kinds survives into the output.
//
// On error the circuit is left unmodified.
func Decompose(circ *circuit.Circuit, kinds ...circuit.Kind) error {
	if len(kinds) == 0 {
		kinds = circuit.MacroKinds()
	}
	for _, k := range kinds {
		if !k.IsMacro() {
			return errors.Wrapf(ErrUnknownInstruction, "kind %s is not expandable", k)
		}
	}

	// Take the instruction sequence out of the circuit, build the
	// replacement, and put it back only on success.
	in := circ.Instructions
	out := make([]circuit.Instruction, 0, len(in))
	var scratch buffer
	expanded := 0
	start := 0
	for idx, ins := range in {
		if !kindIn(ins.Kind, kinds) {
			continue
		}
		if err := checkMacroOperands(ins); err != nil {
			return errors.Wrapf(err, "instruction %d", idx)
		}
		out = append(out, in[start:idx]...)
		start = idx + 1
		expand(&scratch, ins)
		out = append(out, scratch.ins...)
		scratch.ins = scratch.ins[:0]
		expanded++
	}
	out = append(out, in[start:]...)
	circ.Instructions = out

	log := logger.Logger()
	log.Debug().Int("expanded", expanded).Int("instructions", len(out)).Msg("decomposed macro operations")
	return nil
}
