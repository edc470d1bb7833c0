package bigint

// nat is an unsigned magnitude in base 2^32, least significant limb first.
// A normalized nat has no high zero limbs; zero is the single limb {0}.
type nat []uint32

const (
	limbBits  = 32
	limbBytes = 4
)

// norm trims high zero limbs, keeping at least one limb.
func (z nat) norm() nat {
	i := len(z)
	for i > 1 && z[i-1] == 0 {
		i--
	}
	if i == 0 {
		return nat{0}
	}
	return z[:i]
}

func (z nat) isZero() bool {
	return len(z) == 0 || (len(z) == 1 && z[0] == 0)
}

func (z nat) clone() nat {
	if len(z) == 0 {
		return nat{0}
	}
	out := make(nat, len(z))
	copy(out, z)
	return out
}

// cmp compares two normalized magnitudes: lengths first, then limbs from
// the most significant down.
func (z nat) cmp(y nat) int {
	switch {
	case len(z) < len(y):
		return -1
	case len(z) > len(y):
		return 1
	}
	for i := len(z) - 1; i >= 0; i-- {
		switch {
		case z[i] < y[i]:
			return -1
		case z[i] > y[i]:
			return 1
		}
	}
	return 0
}

// addLikeSigns returns a+b. The escaping carry, if any, becomes a new
// most-significant limb.
func addLikeSigns(a, b nat) nat {
	if len(a) < len(b) {
		a, b = b, a
	}
	z := make(nat, len(a)+1)
	var carry uint64
	for i := range b {
		s := uint64(a[i]) + uint64(b[i]) + carry
		z[i] = uint32(s) //nolint:gosec // G115: low limb of a 64-bit sum
		carry = s >> limbBits
	}
	for i := len(b); i < len(a); i++ {
		s := uint64(a[i]) + carry
		z[i] = uint32(s) //nolint:gosec // G115: low limb of a 64-bit sum
		carry = s >> limbBits
	}
	z[len(a)] = uint32(carry) //nolint:gosec // G115: carry is 0 or 1
	return z.norm()
}

// addDiffSigns returns big-small. The caller guarantees big >= small.
// The result is copied into a slice of exactly its normalized length.
func addDiffSigns(big, small nat) nat {
	z := make(nat, len(big))
	var borrow uint64
	for i := range small {
		d := uint64(big[i]) - uint64(small[i]) - borrow
		z[i] = uint32(d) //nolint:gosec // G115: wrapped difference, low limb
		borrow = d >> 63
	}
	for i := len(small); i < len(big); i++ {
		d := uint64(big[i]) - borrow
		z[i] = uint32(d) //nolint:gosec // G115: wrapped difference, low limb
		borrow = d >> 63
	}
	trimmed := z.norm()
	out := make(nat, len(trimmed))
	copy(out, trimmed)
	return out
}

// shiftLimbs multiplies x by 2^(32k) by prepending k zero limbs.
// Zero is returned unshifted.
func shiftLimbs(x nat, k int) nat {
	if x.isZero() {
		return nat{0}
	}
	z := make(nat, len(x)+k)
	copy(z[k:], x)
	return z
}

// padTo returns x extended with high zero limbs to length n. The result is
// not normalized and must only be used as an intermediate operand.
func padTo(x nat, n int) nat {
	if len(x) >= n {
		return x
	}
	z := make(nat, n)
	copy(z, x)
	return z
}

// mulLimb returns x*w using a double-width accumulator per limb.
func mulLimb(x nat, w uint32) nat {
	z := make(nat, len(x)+1)
	var carry uint64
	for i, xi := range x {
		p := uint64(xi)*uint64(w) + carry
		z[i] = uint32(p) //nolint:gosec // G115: low limb of a 64-bit product
		carry = p >> limbBits
	}
	z[len(x)] = uint32(carry) //nolint:gosec // G115: high limb fits in 32 bits
	return z.norm()
}

// shlBits returns x shifted left by s bits.
func shlBits(x nat, s uint) nat {
	if x.isZero() {
		return nat{0}
	}
	limbs, bits := int(s/limbBits), s%limbBits
	z := make(nat, len(x)+limbs+1)
	if bits == 0 {
		copy(z[limbs:], x)
		return z.norm()
	}
	var carry uint32
	for i, xi := range x {
		z[limbs+i] = xi<<bits | carry
		carry = xi >> (limbBits - bits)
	}
	z[limbs+len(x)] = carry
	return z.norm()
}

// divLimb returns x/d and x%d. d must be non-zero.
func divLimb(x nat, d uint32) (nat, uint32) {
	q := make(nat, len(x))
	var rem uint64
	for i := len(x) - 1; i >= 0; i-- {
		cur := rem<<limbBits | uint64(x[i])
		q[i] = uint32(cur / uint64(d)) //nolint:gosec // G115: quotient limb < 2^32 since rem < d
		rem = cur % uint64(d)
	}
	return q.norm(), uint32(rem) //nolint:gosec // G115: rem < d
}

// bitLen returns the number of significant bits of a normalized magnitude.
func (z nat) bitLen() int {
	if z.isZero() {
		return 0
	}
	top := z[len(z)-1]
	n := 0
	for top != 0 {
		top >>= 1
		n++
	}
	return (len(z)-1)*limbBits + n
}

// bit returns bit i of z, 0 being the least significant.
func (z nat) bit(i int) uint32 {
	limb := i / limbBits
	if limb >= len(z) {
		return 0
	}
	return (z[limb] >> (uint(i) % limbBits)) & 1
}
