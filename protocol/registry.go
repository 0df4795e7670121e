package protocol

import (
	"github.com/pkg/errors"

	"github.com/entanglab/remoteops/circuit"
)

// Default names and size of the auto-provisioned entanglement registers.
const (
	DefaultQuantumName   = "q_epr"
	DefaultClassicalName = "c_epr"
	PairSize             = 2
)

// ErrRegisterResolution is returned when an entanglement register
// reference does not resolve and cannot be auto-created.
var ErrRegisterResolution = errors.New("register resolution failed")

// EnsureClassicalRegister resolves the classical register used for
// entanglement-mediated operations. ref may be a register name (string),
// a circuit.ClassicalRegister handle, or nil. If ref resolves to a
// register already attached to circ, that register is returned with
// created=false. Otherwise a 2-bit register named c_epr is attached and
// returned with created=true. The only mutation is a register append.
func EnsureClassicalRegister(circ *circuit.Circuit, ref any) (circuit.ClassicalRegister, bool, error) {
	switch r := ref.(type) {
	case nil:
	case string:
		if reg, ok := circ.ClassicalRegister(r); ok {
			if reg.Size != PairSize {
				return circuit.ClassicalRegister{}, false, errors.Wrapf(ErrRegisterResolution,
					"classical register %q has size %d, want %d", reg.Name, reg.Size, PairSize)
			}
			return reg, false, nil
		}
	case circuit.ClassicalRegister:
		if reg, ok := circ.ClassicalRegister(r.Name); ok && reg == r {
			if reg.Size != PairSize {
				return circuit.ClassicalRegister{}, false, errors.Wrapf(ErrRegisterResolution,
					"classical register %q has size %d, want %d", reg.Name, reg.Size, PairSize)
			}
			return reg, false, nil
		}
	default:
		return circuit.ClassicalRegister{}, false, errors.Wrapf(ErrRegisterResolution,
			"unsupported classical register reference %T", ref)
	}

	if reg, ok := circ.ClassicalRegister(DefaultClassicalName); ok {
		if reg.Size != PairSize {
			return circuit.ClassicalRegister{}, false, errors.Wrapf(ErrRegisterResolution,
				"classical register %q has size %d, want %d", reg.Name, reg.Size, PairSize)
		}
		return reg, false, nil
	}
	reg := circuit.NewClassicalRegister(PairSize, DefaultClassicalName)
	if err := circ.AddClassicalRegister(reg); err != nil {
		return circuit.ClassicalRegister{}, false, errors.Wrap(ErrRegisterResolution, err.Error())
	}
	return reg, true, nil
}

// EnsureQuantumRegister is the quantum counterpart of
// EnsureClassicalRegister, with default name q_epr.
func EnsureQuantumRegister(circ *circuit.Circuit, ref any) (circuit.QuantumRegister, bool, error) {
	switch r := ref.(type) {
	case nil:
	case string:
		if reg, ok := circ.QuantumRegister(r); ok {
			if reg.Size != PairSize {
				return circuit.QuantumRegister{}, false, errors.Wrapf(ErrRegisterResolution,
					"quantum register %q has size %d, want %d", reg.Name, reg.Size, PairSize)
			}
			return reg, false, nil
		}
	case circuit.QuantumRegister:
		if reg, ok := circ.QuantumRegister(r.Name); ok && reg == r {
			if reg.Size != PairSize {
				return circuit.QuantumRegister{}, false, errors.Wrapf(ErrRegisterResolution,
					"quantum register %q has size %d, want %d", reg.Name, reg.Size, PairSize)
			}
			return reg, false, nil
		}
	default:
		return circuit.QuantumRegister{}, false, errors.Wrapf(ErrRegisterResolution,
			"unsupported quantum register reference %T", ref)
	}

	if reg, ok := circ.QuantumRegister(DefaultQuantumName); ok {
		if reg.Size != PairSize {
			return circuit.QuantumRegister{}, false, errors.Wrapf(ErrRegisterResolution,
				"quantum register %q has size %d, want %d", reg.Name, reg.Size, PairSize)
		}
		return reg, false, nil
	}
	reg := circuit.NewQuantumRegister(PairSize, DefaultQuantumName)
	if err := circ.AddQuantumRegister(reg); err != nil {
		return circuit.QuantumRegister{}, false, errors.Wrap(ErrRegisterResolution, err.Error())
	}
	return reg, true, nil
}
