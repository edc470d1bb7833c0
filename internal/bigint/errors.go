package bigint

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by the package. Callers should match them with
// errors.Is, since most are wrapped in a typed error carrying context.
var (
	// ErrNotImplemented is returned by operations that are part of the
	// contract but have no implementation (division, Schönhage–Strassen).
	ErrNotImplemented = errors.New("bigint: not implemented")
	// ErrIndexOutOfRange is returned when a byte index falls outside a limb
	// or a BitView.
	ErrIndexOutOfRange = errors.New("bigint: index out of range")
	// ErrUnknownStrategy is returned for an unrecognized multiplication strategy.
	ErrUnknownStrategy = errors.New("bigint: unknown multiplication strategy")
	// ErrUnknownRenderer is returned for an unrecognized decimal renderer.
	ErrUnknownRenderer = errors.New("bigint: unknown decimal renderer")
	// ErrInvalidCutoff is returned when a Karatsuba cutoff is below one limb.
	ErrInvalidCutoff = errors.New("bigint: invalid karatsuba cutoff")
	// ErrInvalidFloat is returned when constructing an Int from NaN or ±Inf.
	ErrInvalidFloat = errors.New("bigint: float is not finite")
)

// UnsupportedError reports an operation that exists in the API but cannot
// produce a result.
type UnsupportedError struct {
	// Op names the operation, e.g. "Quo" or "schonhage-strassen".
	Op string
}

func (e *UnsupportedError) Error() string {
	return fmt.Sprintf("bigint: %s is not implemented", e.Op)
}

// Is reports whether target is ErrNotImplemented.
func (e *UnsupportedError) Is(target error) bool { return target == ErrNotImplemented }

// IndexError reports an out-of-range byte index.
type IndexError struct {
	Index int
	Len   int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("bigint: byte index %d out of range [0, %d)", e.Index, e.Len)
}

// Is reports whether target is ErrIndexOutOfRange.
func (e *IndexError) Is(target error) bool { return target == ErrIndexOutOfRange }
