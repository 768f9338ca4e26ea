package capability

import "errors"

var (
	// ErrInvalidDescriptor is returned when a Descriptor is built from a nil type or factory.
	ErrInvalidDescriptor = errors.New("invalid implementation descriptor")
	// ErrInvariantViolation is returned when a Definition breaks its multiplicity rule.
	ErrInvariantViolation = errors.New("capability definition invariant violated")
)
