package carousel

import (
	"errors"
	"fmt"

	"github.com/BrandonKowalski/carousel/pkg/carousel/transition"
)

// Sentinel errors for common conditions.
var (
	// ErrInvalidScreenIndex is matched by every error caused by switching to
	// a screen index outside the collection.
	ErrInvalidScreenIndex = transition.ErrInvalidScreenIndex

	// ErrNotInitialized is returned by Run when Init has not succeeded.
	ErrNotInitialized = errors.New("carousel: Init must be called before Run")
)

// InfrastructureError represents a failure in the window system rather than
// in the layout or a navigation request (SDL init failed, font missing,
// renderer unavailable, etc.). These errors are typically fatal.
type InfrastructureError struct {
	Op  string // Operation that failed (e.g., "init", "load_font")
	Err error  // Underlying error
}

func (e *InfrastructureError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("carousel: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("carousel: %s", e.Op)
}

func (e *InfrastructureError) Unwrap() error {
	return e.Err
}

// NewInfrastructureError creates a new infrastructure error.
func NewInfrastructureError(op string, err error) *InfrastructureError {
	return &InfrastructureError{Op: op, Err: err}
}

// IsInfrastructureError checks if an error is an infrastructure error.
func IsInfrastructureError(err error) bool {
	var infraErr *InfrastructureError
	return errors.As(err, &infraErr)
}

// IsInvalidScreenIndex checks if an error comes from an out-of-range switch.
func IsInvalidScreenIndex(err error) bool {
	return errors.Is(err, ErrInvalidScreenIndex)
}
