package bigint

import (
	"fmt"
	"math"
)

// Int is a signed integer of unbounded magnitude.
//
// Int has value semantics: every arithmetic method returns a new Int with its
// own limb storage, and operands are never modified. The zero value is a
// valid zero. Only the *Assign methods and Set mutate, and they replace the
// receiver wholesale.
type Int struct {
	mag nat
	neg bool
}

// newInt builds an Int from a magnitude, normalizing it and forcing zero to
// be non-negative.
func newInt(mag nat, neg bool) Int {
	mag = mag.norm()
	if mag.isZero() {
		neg = false
	}
	return Int{mag: mag, neg: neg}
}

// NewInt returns an Int holding v.
func NewInt(v int64) Int {
	neg := v < 0
	u := uint64(v) //nolint:gosec // G115: two's complement reinterpretation, negated below
	if neg {
		u = -u
	}
	return newInt(nat{uint32(u), uint32(u >> limbBits)}, neg) //nolint:gosec // G115: limb split
}

// NewInt32 returns an Int holding v.
func NewInt32(v int32) Int { return NewInt(int64(v)) }

// NewFloat64 returns an Int holding f truncated toward zero. NaN and
// infinities are rejected with ErrInvalidFloat.
func NewFloat64(f float64) (Int, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Int{}, fmt.Errorf("%w: %v", ErrInvalidFloat, f)
	}
	t := math.Trunc(f)
	neg := t < 0
	t = math.Abs(t)
	if t < 1 {
		return Int{}, nil
	}
	// t = frac * 2^exp with frac in [0.5, 1); frac * 2^53 is an exact integer.
	frac, exp := math.Frexp(t)
	mant := uint64(frac * (1 << 53))
	var mag nat
	if exp <= 53 {
		mant >>= uint(53 - exp)
		mag = nat{uint32(mant), uint32(mant >> limbBits)} //nolint:gosec // G115: limb split
	} else {
		mag = shlBits(nat{uint32(mant), uint32(mant >> limbBits)}, uint(exp-53)) //nolint:gosec // G115: limb split
	}
	return newInt(mag, neg), nil
}

// NewFloat32 returns an Int holding f truncated toward zero.
func NewFloat32(f float32) (Int, error) { return NewFloat64(float64(f)) }

// FromLimbs returns an Int whose magnitude is the given little-endian base
// 2^32 limbs. The slice is copied and normalized.
func FromLimbs(limbs []uint32, negative bool) Int {
	return newInt(nat(limbs).clone(), negative)
}

// abs returns the magnitude, treating the zero value as {0}.
func (x Int) abs() nat {
	if len(x.mag) == 0 {
		return nat{0}
	}
	return x.mag
}

// Clone returns a deep copy of x.
func (x Int) Clone() Int { return Int{mag: x.abs().clone(), neg: x.neg} }

// Set replaces z with a copy of x and returns z.
func (z *Int) Set(x Int) *Int {
	*z = x.Clone()
	return z
}

// Sign returns -1, 0 or +1.
func (x Int) Sign() int {
	switch {
	case x.abs().isZero():
		return 0
	case x.neg:
		return -1
	}
	return 1
}

// IsZero reports whether x == 0.
func (x Int) IsZero() bool { return x.abs().isZero() }

// NumLimbs returns the number of limbs in the normalized magnitude.
func (x Int) NumLimbs() int { return len(x.abs()) }

// BitLen returns the number of significant bits of |x|. BitLen of zero is 0.
func (x Int) BitLen() int { return x.abs().bitLen() }

// Limbs returns a copy of the magnitude, least significant limb first.
func (x Int) Limbs() []uint32 { return x.abs().clone() }

// Neg returns -x. Negating zero yields zero.
func (x Int) Neg() Int { return newInt(x.abs().clone(), !x.neg) }

// Abs returns |x|.
func (x Int) Abs() Int { return Int{mag: x.abs().clone()} }

// Cmp compares x and y and returns -1, 0 or +1.
func (x Int) Cmp(y Int) int {
	xa, ya := x.abs(), y.abs()
	xn := x.neg && !xa.isZero()
	yn := y.neg && !ya.isZero()
	switch {
	case xn && !yn:
		return -1
	case !xn && yn:
		return 1
	}
	c := xa.cmp(ya)
	if xn {
		return -c
	}
	return c
}

// Equal reports whether x == y.
func (x Int) Equal(y Int) bool { return x.Cmp(y) == 0 }

// LessThan reports whether x < y.
func (x Int) LessThan(y Int) bool { return x.Cmp(y) < 0 }

// LessOrEqualTo reports whether x <= y.
func (x Int) LessOrEqualTo(y Int) bool { return x.Cmp(y) <= 0 }

// GreaterThan reports whether x > y.
func (x Int) GreaterThan(y Int) bool { return x.Cmp(y) > 0 }

// GreaterOrEqualTo reports whether x >= y.
func (x Int) GreaterOrEqualTo(y Int) bool { return x.Cmp(y) >= 0 }

// Add returns x + y.
func (x Int) Add(y Int) Int {
	xa, ya := x.abs(), y.abs()
	if x.neg == y.neg {
		return newInt(addLikeSigns(xa, ya), x.neg)
	}
	switch xa.cmp(ya) {
	case 1:
		return newInt(addDiffSigns(xa, ya), x.neg)
	case -1:
		return newInt(addDiffSigns(ya, xa), y.neg)
	}
	return Int{mag: nat{0}}
}

// Sub returns x - y.
func (x Int) Sub(y Int) Int { return x.Add(y.Neg()) }

// Mul returns x * y using Karatsuba multiplication at the default cutoff.
func (x Int) Mul(y Int) Int {
	return newInt(karatsuba(x.abs(), y.abs(), DefaultKaratsubaCutoff), x.neg != y.neg)
}

// Quo would return x / y. Division is not implemented and Quo always fails
// with an error matching ErrNotImplemented.
func (x Int) Quo(_ Int) (Int, error) {
	return Int{}, &UnsupportedError{Op: "Quo"}
}

// AddAssign sets z = z + y.
func (z *Int) AddAssign(y Int) *Int {
	*z = z.Add(y)
	return z
}

// SubAssign sets z = z - y.
func (z *Int) SubAssign(y Int) *Int {
	*z = z.Sub(y)
	return z
}

// MulAssign sets z = z * y.
func (z *Int) MulAssign(y Int) *Int {
	*z = z.Mul(y)
	return z
}

// QuoAssign would set z = z / y. It leaves z untouched and returns an error
// matching ErrNotImplemented.
func (z *Int) QuoAssign(y Int) error {
	q, err := z.Quo(y)
	if err != nil {
		return err
	}
	*z = q
	return nil
}

// Int64 returns x as an int64 and whether the conversion was exact.
func (x Int) Int64() (int64, bool) {
	m := x.abs()
	if len(m) > 2 {
		return 0, false
	}
	var u uint64
	for i := len(m) - 1; i >= 0; i-- {
		u = u<<limbBits | uint64(m[i])
	}
	if x.neg {
		if u > 1<<63 {
			return 0, false
		}
		return -int64(u-1) - 1, true //nolint:gosec // G115: u-1 < 2^63
	}
	if u > math.MaxInt64 {
		return 0, false
	}
	return int64(u), true
}
