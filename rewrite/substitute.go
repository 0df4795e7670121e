package rewrite

import (
	"github.com/pkg/errors"

	"github.com/entanglab/remoteops/circuit"
	"github.com/entanglab/remoteops/logger"
	"github.com/entanglab/remoteops/protocol"
)

// remoteEquivalents maps a primitive two-qubit kind to the macro kind
// that implements it over an entangled pair.
var remoteEquivalents = map[circuit.Kind]circuit.Kind{
	circuit.CNOT: circuit.RemoteCX,
}

type subConfig struct {
	targets []circuit.Kind
	cregRef any
	qregRef any
}

// SubstituteOption configures Autosubstitute.
type SubstituteOption func(*subConfig) error

// WithTargetKinds sets the primitive kinds eligible for substitution.
// The default is CNOT only.
func WithTargetKinds(kinds ...circuit.Kind) SubstituteOption {
	return func(cfg *subConfig) error {
		cfg.targets = kinds
		return nil
	}
}

// WithClassicalRegister supplies a pre-existing entanglement classical
// register, by name or handle.
func WithClassicalRegister(ref any) SubstituteOption {
	return func(cfg *subConfig) error {
		cfg.cregRef = ref
		return nil
	}
}

// WithQuantumRegister supplies a pre-existing entanglement quantum
// register, by name or handle.
func WithQuantumRegister(ref any) SubstituteOption {
	return func(cfg *subConfig) error {
		cfg.qregRef = ref
		return nil
	}
}

func qubitSet(qs []circuit.Qubit) map[circuit.Qubit]bool {
	set := make(map[circuit.Qubit]bool, len(qs))
	for _, q := range qs {
		set[q] = true
	}
	return set
}

// Autosubstitute scans the circuit for two-qubit instructions of a target
// kind whose operands straddle the partitions a and b, and replaces each
// with its remote macro equivalent plus the GenEPR instruction that feeds
// it. Instructions with both operands on the same side, or of a kind not
// targeted, pass through unchanged and in original order.
//
// The entanglement registers are resolved (and provisioned if absent)
// once up front.
func Autosubstitute(circ *circuit.Circuit, a, b []circuit.Qubit, opts ...SubstituteOption) error {
	log := logger.Logger()
	cfg := subConfig{targets: []circuit.Kind{circuit.CNOT}}
	for _, o := range opts {
		if err := o(&cfg); err != nil {
			log.Err(err).Msg("applying substitute option")
			return err
		}
	}
	for _, k := range cfg.targets {
		if _, ok := remoteEquivalents[k]; !ok {
			return errors.Wrapf(ErrUnsupportedSubstitution, "no remote equivalent for kind %s", k)
		}
	}

	creg, _, err := protocol.EnsureClassicalRegister(circ, cfg.cregRef)
	if err != nil {
		return err
	}
	qreg, _, err := protocol.EnsureQuantumRegister(circ, cfg.qregRef)
	if err != nil {
		return err
	}

	inA := qubitSet(a)
	inB := qubitSet(b)

	in := circ.Instructions
	out := make([]circuit.Instruction, 0, len(in))
	var scratch buffer
	substituted := 0
	start := 0
	for idx, ins := range in {
		if len(ins.Qubits) != 2 || !kindIn(ins.Kind, cfg.targets) {
			continue
		}
		q0, q1 := ins.Qubits[0], ins.Qubits[1]
		straddles := (inA[q0] && inB[q1]) || (inA[q1] && inB[q0])
		if !straddles {
			continue
		}
		out = append(out, in[start:idx]...)
		start = idx + 1
		appendMacro(&scratch, remoteEquivalents[ins.Kind], q0, q1, nil, qreg, creg)
		out = append(out, scratch.ins...)
		scratch.ins = scratch.ins[:0]
		substituted++
	}
	out = append(out, in[start:]...)
	circ.Instructions = out

	log.Debug().Int("substituted", substituted).Int("instructions", len(out)).Msg("substituted remote operations")
	return nil
}
