package apperrors

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// Process exit codes returned by bigcalc.
const (
	ExitSuccess       = 0   // Run completed and all results agree.
	ExitErrorGeneric  = 1   // Unclassified failure.
	ExitErrorTimeout  = 2   // The --timeout deadline was exceeded.
	ExitErrorMismatch = 3   // Strategies or renderers produced different values.
	ExitErrorConfig   = 4   // Invalid flags, environment or config file.
	ExitErrorCanceled = 130 // Interrupted by SIGINT/SIGTERM.
)

// ConfigError reports invalid user configuration. The run cannot start.
type ConfigError struct {
	Message string
}

// Error returns the configuration problem.
func (e ConfigError) Error() string { return e.Message }

// NewConfigError returns a ConfigError with a formatted message.
//
// Parameters:
//   - format: A format string (see fmt.Sprintf).
//   - a: Arguments to be formatted into the string.
//
// Returns:
//   - error: A ConfigError holding the formatted message.
func NewConfigError(format string, a ...any) error {
	return ConfigError{Message: fmt.Sprintf(format, a...)}
}

// CalculationError wraps a failure raised while computing a value, keeping
// the strategy that produced it.
type CalculationError struct {
	// Strategy names the multiplication strategy or job that failed.
	Strategy string
	// Cause is the underlying error.
	Cause error
}

// Error returns the cause message, prefixed with the strategy when known.
func (e CalculationError) Error() string {
	if e.Strategy == "" {
		return e.Cause.Error()
	}
	return fmt.Sprintf("%s: %v", e.Strategy, e.Cause)
}

// Unwrap exposes the cause to errors.Is and errors.As.
func (e CalculationError) Unwrap() error { return e.Cause }

// TimeoutError reports that an operation exceeded its time limit.
type TimeoutError struct {
	Operation string
	Limit     time.Duration
}

// Error returns a formatted message describing the timeout.
func (e TimeoutError) Error() string {
	return fmt.Sprintf("operation %q timed out after %s", e.Operation, e.Limit)
}

// ValidationError reports an invalid input value for a named field.
type ValidationError struct {
	Field   string
	Message string
}

// Error returns a formatted message describing the validation failure.
func (e ValidationError) Error() string {
	return fmt.Sprintf("validation error for %q: %s", e.Field, e.Message)
}

// MismatchError reports that two computations of the same value disagree.
type MismatchError struct {
	// What describes the compared quantity, e.g. "product" or "decimal rendering".
	What string
	// Left and Right name the two disagreeing producers.
	Left, Right string
}

// Error returns a formatted message naming both producers.
func (e MismatchError) Error() string {
	return fmt.Sprintf("%s mismatch between %s and %s", e.What, e.Left, e.Right)
}

// WrapError adds context to err with %w so the chain stays inspectable.
// It returns nil when err is nil.
//
// Parameters:
//   - err: The error to wrap.
//   - format: A format string for the context message.
//   - args: Arguments for the format string.
//
// Returns:
//   - error: The wrapped error, or nil if err is nil.
func WrapError(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}

// IsContextError reports whether err is a context cancellation or deadline.
func IsContextError(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
