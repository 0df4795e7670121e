// Package protocol implements the EPR-mediated operation protocols as
// pure builders: each appends a fixed primitive sequence to a target
// stream and reads no circuit state beyond its explicit operands.
//
// Every remote protocol both consumes the Bell pair present on its two
// ancilla operands and clears it inline; callers must supply a freshly
// generated pair at each call site.
package protocol

import "github.com/entanglab/remoteops/circuit"

// Stream is the destination of a protocol expansion. It is satisfied by
// *circuit.Circuit and by the rewriting engine's scratch buffer.
type Stream interface {
	Append(ins ...circuit.Instruction)
}

// PreparePair emits the Bell-pair preparation on the two ancillas.
func PreparePair(s Stream, epr0, epr1 circuit.Qubit) {
	s.Append(
		circuit.NewH(epr0),
		circuit.NewCNOT(epr0, epr1),
	)
}

// RemoteCRZ emits a controlled-Rz(phi) between non-adjacent qubits ctrl
// and targ, mediated by the pair on epr0/epr1.
func RemoteCRZ(s Stream, phi float64, ctrl, targ, epr0, epr1 circuit.Qubit, c0, c1 circuit.Clbit) {
	s.Append(
		circuit.NewRZ(phi/2, ctrl),
		circuit.NewRZ(phi/2, targ),
		circuit.NewCNOT(ctrl, epr0),
		circuit.NewMeasure(epr0, c0),
		circuit.NewX(epr1).If(c0, 1),
		circuit.NewCNOT(targ, epr1),
		circuit.NewRZ(-phi/2, epr1),
		circuit.NewH(epr1),
		circuit.NewMeasure(epr1, c1),
		circuit.NewZ(ctrl).If(c1, 1),
		circuit.NewZ(targ).If(c1, 1),
	)
}

// RemoteZZ emits a ZZ(phi) interaction between non-adjacent qubits qb1
// and qb2, mediated by the pair on epr0/epr1.
func RemoteZZ(s Stream, phi float64, qb1, qb2, epr0, epr1 circuit.Qubit, c0, c1 circuit.Clbit) {
	s.Append(
		circuit.NewCNOT(qb1, epr0),
		circuit.NewCNOT(qb2, epr1),
		circuit.NewMeasure(epr0, c0),
		circuit.NewX(epr1).If(c1, 1),
		circuit.NewRZ(phi, epr1),
		circuit.NewH(epr1),
		circuit.NewMeasure(epr1, c1),
		circuit.NewZ(qb1).If(c1, 1),
		circuit.NewZ(qb2).If(c1, 1),
		circuit.NewX(epr0).If(c0, 1),
		circuit.NewX(epr1).If(c1, 1),
	)
}

// RemoteCX emits a CNOT between non-adjacent qubits ctrl and targ via
// gate teleportation over the pair on epr0/epr1.
func RemoteCX(s Stream, ctrl, targ, epr0, epr1 circuit.Qubit, c0, c1 circuit.Clbit) {
	s.Append(
		circuit.NewCNOT(ctrl, epr0),
		circuit.NewCNOT(epr1, targ),
		circuit.NewMeasure(epr0, c0),
		circuit.NewX(epr1).If(c0, 1),
		circuit.NewX(targ).If(c0, 1),
		circuit.NewH(epr1),
		circuit.NewMeasure(epr1, c1),
		circuit.NewZ(ctrl).If(c1, 1),
		circuit.NewX(epr0).If(c0, 1),
		circuit.NewX(epr1).If(c1, 1),
	)
}

// Teleport emits the sequence that moves the state of source onto targ
// using the pair on epr0/epr1, destroying the state of source.
func Teleport(s Stream, source, targ, epr0, epr1 circuit.Qubit, c0, c1 circuit.Clbit) {
	s.Append(
		circuit.NewCNOT(source, epr0),
		circuit.NewH(source),
		circuit.NewMeasure(source, c0),
		circuit.NewMeasure(epr0, c1),
		circuit.NewX(epr1).If(c1, 1),
		circuit.NewZ(epr1).If(c0, 1),
		circuit.NewX(source).If(c0, 1),
		circuit.NewX(epr0).If(c1, 1),
		circuit.NewSwap(epr1, targ),
	)
}
