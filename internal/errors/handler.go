package apperrors

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/agbru/bigcalc/internal/bigint"
)

// ColorProvider supplies the ANSI sequences used when reporting errors.
// A nil provider prints without color.
type ColorProvider interface {
	Red() string
	Yellow() string
	Reset() string
}

type noColor struct{}

func (noColor) Red() string    { return "" }
func (noColor) Yellow() string { return "" }
func (noColor) Reset() string  { return "" }

// ExitCodeFor classifies err into a process exit code without printing.
func ExitCodeFor(err error) int {
	var cfgErr ConfigError
	var mismatch MismatchError
	switch {
	case err == nil:
		return ExitSuccess
	case errors.As(err, &cfgErr),
		errors.Is(err, bigint.ErrUnknownStrategy),
		errors.Is(err, bigint.ErrUnknownRenderer),
		errors.Is(err, bigint.ErrInvalidCutoff):
		return ExitErrorConfig
	case errors.Is(err, context.DeadlineExceeded):
		return ExitErrorTimeout
	case errors.Is(err, context.Canceled):
		return ExitErrorCanceled
	case errors.As(err, &mismatch):
		return ExitErrorMismatch
	}
	return ExitErrorGeneric
}

// HandleCalculationError prints a user-facing message for err to out and
// returns the matching exit code. A nil err returns ExitSuccess silently.
//
// Parameters:
//   - err: The error raised by the run.
//   - duration: Time spent before the failure.
//   - out: Destination for the message.
//   - colors: ANSI color provider, or nil for plain output.
//
// Returns:
//   - int: The process exit code.
func HandleCalculationError(err error, duration time.Duration, out io.Writer, colors ColorProvider) int {
	if err == nil {
		return ExitSuccess
	}
	if colors == nil {
		colors = noColor{}
	}
	code := ExitCodeFor(err)
	elapsed := ""
	if duration > 0 {
		elapsed = fmt.Sprintf(" after %s", duration)
	}
	switch {
	case code == ExitErrorTimeout:
		fmt.Fprintf(out, "%sCalculation timed out%s.%s\n", colors.Yellow(), elapsed, colors.Reset())
	case code == ExitErrorCanceled:
		fmt.Fprintf(out, "%sCalculation canceled%s.%s\n", colors.Yellow(), elapsed, colors.Reset())
	case errors.Is(err, bigint.ErrNotImplemented):
		fmt.Fprintf(out, "%sNot implemented: %v%s\n", colors.Red(), err, colors.Reset())
	default:
		fmt.Fprintf(out, "%sError%s: %v%s\n", colors.Red(), elapsed, err, colors.Reset())
	}
	return code
}
