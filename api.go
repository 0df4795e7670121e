// Package remoteops expands remote two-qubit macro-operations embedded in
// a circuit into the primitive gate and measurement sequences that
// implement them over a shared entangled pair with classical feed-forward
// corrections.
package remoteops

import (
	"github.com/pkg/errors"

	"github.com/entanglab/remoteops/circuit"
	"github.com/entanglab/remoteops/logger"
	"github.com/entanglab/remoteops/rewrite"
)

// Compile rewrites the circuit into a flat instruction stream containing
// no macro operations, suitable for any backend that understands only
// primitive gates, measurement, and classically conditioned gates. When
// two qubit partitions are given, two-qubit gates straddling them are
// first substituted with their remote equivalents.
func Compile(circ *circuit.Circuit, partitions ...[]circuit.Qubit) error {
	log := logger.Logger()
	log.Info().Int("instructions", len(circ.Instructions)).Msg("compiling remote operations")

	if len(partitions) > 0 {
		if len(partitions) != 2 {
			return errors.Errorf("expected two qubit partitions, got %d", len(partitions))
		}
		if err := rewrite.Autosubstitute(circ, partitions[0], partitions[1]); err != nil {
			return err
		}
	}
	if err := rewrite.Decompose(circ); err != nil {
		return err
	}
	return circuit.Validate(circ)
}
