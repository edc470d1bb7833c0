//go:build gmp

package bigint

import (
	"math/rand"
	"testing"

	"github.com/ncw/gmp"
)

func toGMP(x Int) *gmp.Int {
	z, ok := new(gmp.Int).SetString(x.String(), 10)
	if !ok {
		panic("gmp rejected " + x.String())
	}
	return z
}

// TestKaratsubaVsGMP cross-checks large products against libgmp.
func TestKaratsubaVsGMP(t *testing.T) {
	t.Parallel()
	r := rand.New(rand.NewSource(99))
	m := NewMultiplier(Karatsuba)
	for _, n := range []int{1, 49, 50, 51, 200, 1000} {
		x := randomInt(r, n, r.Intn(2) == 0)
		y := randomInt(r, n+r.Intn(n), r.Intn(2) == 0)
		got, err := m.Mul(x, y)
		if err != nil {
			t.Fatal(err)
		}
		want := new(gmp.Int).Mul(toGMP(x), toGMP(y))
		if got.DoubleDabbleString() != want.String() {
			t.Errorf("%d limbs: product differs from gmp", n)
		}
	}
}
