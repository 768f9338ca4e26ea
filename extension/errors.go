package extension

import (
	"errors"
	"fmt"

	"github.com/specialistvlad/expandr/capability"
	"github.com/specialistvlad/expandr/container"
)

var (
	// ErrInvalidDescriptor and ErrInvariantViolation are host programming
	// errors raised while building capability definitions.
	ErrInvalidDescriptor  = capability.ErrInvalidDescriptor
	ErrInvariantViolation = capability.ErrInvariantViolation

	// ErrUndefinedCapability is returned by Register for capabilities the host did not expose.
	ErrUndefinedCapability = errors.New("capability is not exposed by the host")
	// ErrCapabilityAlreadySatisfied is returned by Register when a
	// single-implementation capability already has an implementation.
	ErrCapabilityAlreadySatisfied = errors.New("capability does not support multiple implementations")

	// ErrPluginContractViolation is reported when a module's entry point cannot be resolved.
	ErrPluginContractViolation = errors.New("plugin contract violation")
	// ErrPluginSetupFailure is reported when a module's Setup fails.
	ErrPluginSetupFailure = errors.New("plugin setup failed")
)

// RegistrationError is returned by Registrar.Register when the attempt is refused.
type RegistrationError struct {
	Capability container.ID
	Outcome    Outcome
}

func (e *RegistrationError) Error() string {
	switch e.Outcome {
	case Undefined:
		return fmt.Sprintf("the type '%s' is not exposed by the host", e.Capability)
	case AlreadyImplemented:
		return fmt.Sprintf("the type '%s' does not support multiple implementations", e.Capability)
	default:
		return fmt.Sprintf("unexpected outcome (%s) while registering '%s'", e.Outcome, e.Capability)
	}
}

// Unwrap maps the outcome onto its sentinel kind.
func (e *RegistrationError) Unwrap() error {
	switch e.Outcome {
	case Undefined:
		return ErrUndefinedCapability
	case AlreadyImplemented:
		return ErrCapabilityAlreadySatisfied
	default:
		return nil
	}
}
