package circuit

import "fmt"

// Qubit is a handle to one quantum unit inside a named register.
type Qubit struct {
	Register string
	Index    int
}

func (q Qubit) String() string {
	return fmt.Sprintf("%s[%d]", q.Register, q.Index)
}

// Clbit is a handle to one classical unit inside a named register.
type Clbit struct {
	Register string
	Index    int
}

func (c Clbit) String() string {
	return fmt.Sprintf("%s[%d]", c.Register, c.Index)
}

// QuantumRegister is a named, fixed-length collection of qubits.
type QuantumRegister struct {
	Name string
	Size int
}

func NewQuantumRegister(size int, name string) QuantumRegister {
	return QuantumRegister{Name: name, Size: size}
}

// Qubit returns the handle of the i-th qubit of the register.
func (r QuantumRegister) Qubit(i int) Qubit {
	if i < 0 || i >= r.Size {
		panic(fmt.Sprintf("qubit index %d out of range for register %s of size %d", i, r.Name, r.Size))
	}
	return Qubit{Register: r.Name, Index: i}
}

// Qubits returns the handles of all qubits of the register, in order.
func (r QuantumRegister) Qubits() []Qubit {
	qs := make([]Qubit, r.Size)
	for i := range qs {
		qs[i] = Qubit{Register: r.Name, Index: i}
	}
	return qs
}

// ClassicalRegister is a named, fixed-length collection of classical bits.
type ClassicalRegister struct {
	Name string
	Size int
}

func NewClassicalRegister(size int, name string) ClassicalRegister {
	return ClassicalRegister{Name: name, Size: size}
}

// Clbit returns the handle of the i-th bit of the register.
func (r ClassicalRegister) Clbit(i int) Clbit {
	if i < 0 || i >= r.Size {
		panic(fmt.Sprintf("clbit index %d out of range for register %s of size %d", i, r.Name, r.Size))
	}
	return Clbit{Register: r.Name, Index: i}
}

// Clbits returns the handles of all bits of the register, in order.
func (r ClassicalRegister) Clbits() []Clbit {
	cs := make([]Clbit, r.Size)
	for i := range cs {
		cs[i] = Clbit{Register: r.Name, Index: i}
	}
	return cs
}
