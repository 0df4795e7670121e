package circuit

// Kind enumerates the instruction kinds that can appear in a Circuit.
// The first block are primitive kinds understood by any backend; the
// second block are macro kinds that stand in for multi-step protocols
// and must be expanded before execution.
type Kind int

const (
	_ = 0
	// primitive kinds
	Hadamard Kind = iota
	CNOT
	RotationZ
	PauliX
	PauliZ
	Measure
	Swap
	// macro kinds
	RemoteCX
	RemoteRZZ
	RemoteCRZ
	Teleport
	GenEPR
)

func (k Kind) String() string {
	switch k {
	case Hadamard:
		return "h"
	case CNOT:
		return "cx"
	case RotationZ:
		return "rz"
	case PauliX:
		return "x"
	case PauliZ:
		return "z"
	case Measure:
		return "measure"
	case Swap:
		return "swap"
	case RemoteCX:
		return "RemoteCX"
	case RemoteRZZ:
		return "RemoteRZZ"
	case RemoteCRZ:
		return "RemoteCRZ"
	case Teleport:
		return "Teleport"
	case GenEPR:
		return "GenEPR"
	}
	return "unknown"
}

// IsMacro reports whether the kind is a macro kind.
func (k Kind) IsMacro() bool {
	switch k {
	case RemoteCX, RemoteRZZ, RemoteCRZ, Teleport, GenEPR:
		return true
	}
	return false
}

// QubitArity returns the number of qubit operands the kind requires.
func (k Kind) QubitArity() int {
	switch k {
	case Hadamard, RotationZ, PauliX, PauliZ, Measure:
		return 1
	case CNOT, Swap, GenEPR:
		return 2
	case RemoteCX, RemoteRZZ, RemoteCRZ, Teleport:
		return 4
	}
	return 0
}

// ClbitArity returns the number of classical-bit operands the kind requires.
func (k Kind) ClbitArity() int {
	switch k {
	case Measure:
		return 1
	case RemoteCX, RemoteRZZ, RemoteCRZ, Teleport:
		return 2
	}
	return 0
}

// ParamArity returns the number of numeric parameters the kind requires.
func (k Kind) ParamArity() int {
	switch k {
	case RotationZ, RemoteRZZ, RemoteCRZ:
		return 1
	}
	return 0
}

// MacroKinds returns all macro kinds in a fixed order.
func MacroKinds() []Kind {
	return []Kind{RemoteCX, RemoteRZZ, RemoteCRZ, Teleport, GenEPR}
}

// MacroKindByName resolves a macro kind from its external name.
// This is the only place where kinds are addressed by string; everywhere
// else the closed Kind enum is used directly.
func MacroKindByName(name string) (Kind, bool) {
	for _, k := range MacroKinds() {
		if k.String() == name {
			return k, true
		}
	}
	return 0, false
}
