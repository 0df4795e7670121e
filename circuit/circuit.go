// Package circuit defines the program representation consumed by the
// rewriting passes: an ordered instruction sequence plus named quantum
// and classical registers.
package circuit

import (
	"fmt"

	"github.com/pkg/errors"
)

// Circuit is an ordered, mutable sequence of instructions together with
// the registers their operands refer to. Register names are unique per
// kind; registers are only ever appended, never removed.
type Circuit struct {
	Instructions []Instruction
	QRegs        []QuantumRegister
	CRegs        []ClassicalRegister
}

func New() *Circuit {
	return &Circuit{}
}

// AddQuantumRegister attaches a quantum register to the circuit.
func (c *Circuit) AddQuantumRegister(r QuantumRegister) error {
	if _, ok := c.QuantumRegister(r.Name); ok {
		return errors.Errorf("quantum register %q is already attached", r.Name)
	}
	c.QRegs = append(c.QRegs, r)
	return nil
}

// AddClassicalRegister attaches a classical register to the circuit.
func (c *Circuit) AddClassicalRegister(r ClassicalRegister) error {
	if _, ok := c.ClassicalRegister(r.Name); ok {
		return errors.Errorf("classical register %q is already attached", r.Name)
	}
	c.CRegs = append(c.CRegs, r)
	return nil
}

// QuantumRegister looks up an attached quantum register by name.
func (c *Circuit) QuantumRegister(name string) (QuantumRegister, bool) {
	for _, r := range c.QRegs {
		if r.Name == name {
			return r, true
		}
	}
	return QuantumRegister{}, false
}

// ClassicalRegister looks up an attached classical register by name.
func (c *Circuit) ClassicalRegister(name string) (ClassicalRegister, bool) {
	for _, r := range c.CRegs {
		if r.Name == name {
			return r, true
		}
	}
	return ClassicalRegister{}, false
}

// Append adds instructions to the end of the circuit.
func (c *Circuit) Append(ins ...Instruction) {
	c.Instructions = append(c.Instructions, ins...)
}

// Print writes a human-readable dump of the circuit to stdout.
func (c *Circuit) Print() {
	for _, r := range c.QRegs {
		fmt.Printf("qreg %s[%d]\n", r.Name, r.Size)
	}
	for _, r := range c.CRegs {
		fmt.Printf("creg %s[%d]\n", r.Name, r.Size)
	}
	for _, in := range c.Instructions {
		fmt.Println(in)
	}
}
