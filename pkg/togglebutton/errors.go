package togglebutton

import (
	"errors"
	"fmt"
)

// Sentinel errors for common conditions.
var (
	// ErrCancelled indicates the user cancelled an operation (pressed back, closed the window).
	// This is a normal flow control error, not an infrastructure failure.
	ErrCancelled = errors.New("operation cancelled by user")

	// ErrInvalidConfiguration indicates a ToggleButton was constructed with
	// options that cannot coexist, such as two options sharing a key.
	ErrInvalidConfiguration = errors.New("invalid toggle button configuration")
)

// InvalidConfigurationError describes which option made a configuration invalid.
// It matches ErrInvalidConfiguration with errors.Is.
type InvalidConfigurationError struct {
	Key    string // Offending option key
	Index  int    // Position of the offending option
	Reason string
}

func (e *InvalidConfigurationError) Error() string {
	return fmt.Sprintf("%v: option %d (%q): %s", ErrInvalidConfiguration, e.Index, e.Key, e.Reason)
}

func (e *InvalidConfigurationError) Unwrap() error {
	return ErrInvalidConfiguration
}

// InfrastructureError represents a toolkit-level error that indicates
// something is wrong with the rendering stack itself (SDL failed, font
// missing, icon undecodable, etc.).
//
// Use this for errors that the consuming application cannot reasonably
// handle or recover from at the domain level.
type InfrastructureError struct {
	Op  string // Operation that failed (e.g., "render", "load_font")
	Err error  // Underlying error
}

func (e *InfrastructureError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("togglebutton: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("togglebutton: %s", e.Op)
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

// IsCancelled checks if an error indicates user cancellation.
func IsCancelled(err error) bool {
	return errors.Is(err, ErrCancelled)
}

// IsInvalidConfiguration checks if an error was caused by an invalid ToggleButton configuration.
func IsInvalidConfiguration(err error) bool {
	return errors.Is(err, ErrInvalidConfiguration)
}
