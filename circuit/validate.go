package circuit

import "github.com/pkg/errors"

func (c *Circuit) checkQubit(q Qubit) error {
	r, ok := c.QuantumRegister(q.Register)
	if !ok {
		return errors.Errorf("quantum register %q is not attached", q.Register)
	}
	if q.Index < 0 || q.Index >= r.Size {
		return errors.Errorf("qubit index %d is out of range for register %q of size %d", q.Index, r.Name, r.Size)
	}
	return nil
}

func (c *Circuit) checkClbit(b Clbit) error {
	r, ok := c.ClassicalRegister(b.Register)
	if !ok {
		return errors.Errorf("classical register %q is not attached", b.Register)
	}
	if b.Index < 0 || b.Index >= r.Size {
		return errors.Errorf("clbit index %d is out of range for register %q of size %d", b.Index, r.Name, r.Size)
	}
	return nil
}

// Validate checks that every instruction has the operand and parameter
// arity its kind requires and that every operand resolves into a register
// attached to the circuit.
func Validate(c *Circuit) error {
	for i, in := range c.Instructions {
		if len(in.Qubits) != in.Kind.QubitArity() {
			return errors.Errorf("instruction %d (%s): got %d qubit operands, want %d", i, in.Kind, len(in.Qubits), in.Kind.QubitArity())
		}
		if len(in.Clbits) != in.Kind.ClbitArity() {
			return errors.Errorf("instruction %d (%s): got %d clbit operands, want %d", i, in.Kind, len(in.Clbits), in.Kind.ClbitArity())
		}
		if len(in.Params) != in.Kind.ParamArity() {
			return errors.Errorf("instruction %d (%s): got %d params, want %d", i, in.Kind, len(in.Params), in.Kind.ParamArity())
		}
		for _, q := range in.Qubits {
			if err := c.checkQubit(q); err != nil {
				return errors.Wrapf(err, "instruction %d (%s)", i, in.Kind)
			}
		}
		for _, b := range in.Clbits {
			if err := c.checkClbit(b); err != nil {
				return errors.Wrapf(err, "instruction %d (%s)", i, in.Kind)
			}
		}
		if in.Cond != nil {
			if err := c.checkClbit(in.Cond.Bit); err != nil {
				return errors.Wrapf(err, "instruction %d (%s) condition", i, in.Kind)
			}
		}
	}
	return nil
}
