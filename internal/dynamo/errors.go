package dynamo

import (
	"errors"
	"fmt"
)

// Domain errors for scene construction and stepping.
var (
	// ErrZeroHeight indicates a parabola with zero height (division by zero).
	ErrZeroHeight = errors.New("dynamo: parabola height must be nonzero")

	// ErrParameterBounds indicates a parameter value is outside valid range.
	ErrParameterBounds = errors.New("dynamo: parameter out of valid bounds")

	// ErrInvalidRates indicates render/physics rates that cannot be scheduled.
	ErrInvalidRates = errors.New("dynamo: physics rate must be a positive multiple of render rate")

	// ErrBackendUnavailable indicates the window or physics backend failed to start.
	ErrBackendUnavailable = errors.New("dynamo: backend unavailable")

	// ErrInvalidScript indicates a pointer script with an unknown action or
	// out-of-order frames.
	ErrInvalidScript = errors.New("dynamo: invalid pointer script")

	// ErrInvalidState indicates a body with NaN or Inf position or velocity.
	ErrInvalidState = errors.New("dynamo: invalid body state (NaN or Inf detected)")
)

// SimulationError wraps an error with frame context.
type SimulationError struct {
	Frame   int
	Time    float64
	Wrapped error
}

func (e *SimulationError) Error() string {
	return fmt.Sprintf("frame %d (t=%.4f): %v", e.Frame, e.Time, e.Wrapped)
}

func (e *SimulationError) Unwrap() error {
	return e.Wrapped
}
