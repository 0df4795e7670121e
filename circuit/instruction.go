package circuit

import (
	"fmt"
	"strings"
)

// Condition is a classical feed-forward predicate: the instruction it is
// attached to executes only if Bit currently holds Value.
type Condition struct {
	Bit   Clbit
	Value int
}

// Instruction is one step of a circuit. Instructions are treated as
// immutable once appended to a circuit; the rewriting passes always build
// fresh instructions rather than editing existing ones.
type Instruction struct {
	Kind   Kind
	Qubits []Qubit
	Clbits []Clbit
	Params []float64
	Cond   *Condition
}

func NewH(q Qubit) Instruction {
	return Instruction{Kind: Hadamard, Qubits: []Qubit{q}}
}

func NewCNOT(ctrl, targ Qubit) Instruction {
	return Instruction{Kind: CNOT, Qubits: []Qubit{ctrl, targ}}
}

func NewRZ(phi float64, q Qubit) Instruction {
	return Instruction{Kind: RotationZ, Qubits: []Qubit{q}, Params: []float64{phi}}
}

func NewX(q Qubit) Instruction {
	return Instruction{Kind: PauliX, Qubits: []Qubit{q}}
}

func NewZ(q Qubit) Instruction {
	return Instruction{Kind: PauliZ, Qubits: []Qubit{q}}
}

func NewMeasure(q Qubit, c Clbit) Instruction {
	return Instruction{Kind: Measure, Qubits: []Qubit{q}, Clbits: []Clbit{c}}
}

func NewSwap(a, b Qubit) Instruction {
	return Instruction{Kind: Swap, Qubits: []Qubit{a, b}}
}

// NewMacro builds a macro-kind instruction with explicit operand lists.
func NewMacro(k Kind, qubits []Qubit, clbits []Clbit, params []float64) Instruction {
	return Instruction{Kind: k, Qubits: qubits, Clbits: clbits, Params: params}
}

// If returns a copy of the instruction guarded by a classical condition.
func (in Instruction) If(bit Clbit, value int) Instruction {
	in.Cond = &Condition{Bit: bit, Value: value}
	return in
}

func (in Instruction) String() string {
	var sb strings.Builder
	if in.Cond != nil {
		fmt.Fprintf(&sb, "if (%s==%d) ", in.Cond.Bit, in.Cond.Value)
	}
	sb.WriteString(in.Kind.String())
	if len(in.Params) > 0 {
		strs := make([]string, len(in.Params))
		for i, p := range in.Params {
			strs[i] = fmt.Sprintf("%g", p)
		}
		fmt.Fprintf(&sb, "(%s)", strings.Join(strs, ","))
	}
	for i, q := range in.Qubits {
		if i == 0 {
			sb.WriteString(" ")
		} else {
			sb.WriteString(", ")
		}
		sb.WriteString(q.String())
	}
	if in.Kind == Measure {
		fmt.Fprintf(&sb, " -> %s", in.Clbits[0])
		return sb.String()
	}
	for i, c := range in.Clbits {
		if i == 0 {
			sb.WriteString("; ")
		} else {
			sb.WriteString(", ")
		}
		sb.WriteString(c.String())
	}
	return sb.String()
}
