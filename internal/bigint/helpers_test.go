package bigint

import (
	"math/big"
	"math/rand"
)

// toBig converts x to a math/big value for use as a test oracle.
func toBig(x Int) *big.Int {
	limbs := x.Limbs()
	buf := make([]byte, 0, len(limbs)*4)
	for i := len(limbs) - 1; i >= 0; i-- {
		l := limbs[i]
		buf = append(buf, byte(l>>24), byte(l>>16), byte(l>>8), byte(l))
	}
	b := new(big.Int).SetBytes(buf)
	if x.Sign() < 0 {
		b.Neg(b)
	}
	return b
}

// fromBig converts a math/big value into an Int.
func fromBig(b *big.Int) Int {
	raw := new(big.Int).Abs(b).Bytes()
	limbs := make([]uint32, (len(raw)+3)/4+1)
	for i, j := len(raw)-1, 0; i >= 0; i, j = i-1, j+1 {
		limbs[j/4] |= uint32(raw[i]) << (8 * uint(j%4))
	}
	return FromLimbs(limbs, b.Sign() < 0)
}

// randomInt returns a value with exactly n limbs (top limb non-zero).
func randomInt(r *rand.Rand, n int, negative bool) Int {
	limbs := make([]uint32, n)
	for i := range limbs {
		limbs[i] = r.Uint32()
	}
	if limbs[n-1] == 0 {
		limbs[n-1] = 1
	}
	return FromLimbs(limbs, negative)
}

// mustParse builds an Int from a decimal literal through math/big.
func mustParse(s string) Int {
	b, ok := new(big.Int).SetString(s, 10)
	if !ok {
		panic("bad literal " + s)
	}
	return fromBig(b)
}
