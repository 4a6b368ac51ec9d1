package adapter

import (
	"errors"
	"fmt"

	"github.com/fireflyframework/firefly-ecm/pkg/ecmcapabilities"
)

// Standard adapter errors
var (
	// ErrAdapterNotFound is returned when no adapter matches a type query.
	// Catalog and selector lookups report absence through ok=false results;
	// this sentinel only appears inside ValidationOutcome.Err.
	ErrAdapterNotFound = errors.New("adapter not found")

	// ErrInvalidDescriptor indicates a descriptor that violates its invariants.
	ErrInvalidDescriptor = errors.New("invalid adapter descriptor")

	// ErrOperationUnavailable is returned when a state-changing method is
	// invoked on a synthesized stand-in.
	ErrOperationUnavailable = errors.New("operation unavailable: no adapter configured for this capability")
)

// UnavailableOperationError is returned when a caller invokes a state-changing
// method on a synthesized stand-in. It is the only caller-visible failure the
// fallback path produces: reads degrade silently, writes must be loud.
type UnavailableOperationError struct {
	Capability ecmcapabilities.Capability
	Interface  string
	Method     string
}

// Error implements the error interface.
func (e *UnavailableOperationError) Error() string {
	return fmt.Sprintf("operation %s.%s unavailable: no adapter configured for capability %q",
		e.Interface, e.Method, e.Capability)
}

// Is checks if the error is ErrOperationUnavailable.
func (e *UnavailableOperationError) Is(target error) bool {
	return errors.Is(target, ErrOperationUnavailable)
}

// NewUnavailableOperationError creates a new UnavailableOperationError.
func NewUnavailableOperationError(c ecmcapabilities.Capability, iface, method string) *UnavailableOperationError {
	return &UnavailableOperationError{
		Capability: c,
		Interface:  iface,
		Method:     method,
	}
}

// IsUnavailable checks if an error indicates a call on a missing capability.
func IsUnavailable(err error) bool {
	return errors.Is(err, ErrOperationUnavailable)
}

// registrationPanic fails fast on registration bugs. An instance registered
// under a capability it does not implement must never be silently substituted
// for a working handle.
func registrationPanic(format string, args ...interface{}) {
	panic("adapter: " + fmt.Sprintf(format, args...))
}
