package bigint

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"math/big"
	"math/rand"
	"testing"
)

func TestParseStrategy(t *testing.T) {
	t.Parallel()
	tests := []struct {
		in   string
		want Strategy
	}{
		{"schoolbook", Schoolbook},
		{"long", Schoolbook},
		{"Karatsuba", Karatsuba},
		{" schonhage-strassen ", SchonhageStrassen},
		{"ss", SchonhageStrassen},
	}
	for _, tt := range tests {
		got, err := ParseStrategy(tt.in)
		if err != nil || got != tt.want {
			t.Errorf("ParseStrategy(%q) = %v, %v; want %v", tt.in, got, err, tt.want)
		}
	}
	if _, err := ParseStrategy("toom-cook"); !errors.Is(err, ErrUnknownStrategy) {
		t.Errorf("ParseStrategy(toom-cook) error = %v, want ErrUnknownStrategy", err)
	}
	if got := Strategies(); len(got) != 3 || got[0] != "karatsuba" {
		t.Errorf("Strategies() = %v", got)
	}
}

func TestMultiplierErrors(t *testing.T) {
	t.Parallel()
	x, y := NewInt(3), NewInt(4)

	_, err := NewMultiplier(SchonhageStrassen).Mul(x, y)
	if !errors.Is(err, ErrNotImplemented) {
		t.Errorf("schonhage-strassen error = %v, want ErrNotImplemented", err)
	}

	if err := NewMultiplier(SchonhageStrassen).Validate(); err != nil {
		t.Errorf("schonhage-strassen is a valid configuration, Validate = %v", err)
	}
	if err := NewMultiplier(SchonhageStrassen).Supported(); !errors.Is(err, ErrNotImplemented) {
		t.Errorf("Supported() = %v, want ErrNotImplemented", err)
	}
	if err := NewMultiplier(Karatsuba).Supported(); err != nil {
		t.Errorf("karatsuba Supported() = %v", err)
	}

	_, err = NewMultiplier(Strategy(42)).Mul(x, y)
	if !errors.Is(err, ErrUnknownStrategy) {
		t.Errorf("unknown strategy error = %v, want ErrUnknownStrategy", err)
	}

	_, err = NewMultiplier(Karatsuba, WithCutoff(0)).Mul(x, y)
	if !errors.Is(err, ErrInvalidCutoff) {
		t.Errorf("zero cutoff error = %v, want ErrInvalidCutoff", err)
	}
}

func TestMultiplierSigns(t *testing.T) {
	t.Parallel()
	for _, s := range []Strategy{Schoolbook, Karatsuba} {
		m := NewMultiplier(s)
		tests := []struct {
			a, b int64
			want string
		}{
			{0, 0, "0"},
			{-7, 0, "0"},
			{0, -7, "0"},
			{-7, 6, "-42"},
			{7, -6, "-42"},
			{-7, -6, "42"},
			{0xFFFFFFFF, 0xFFFFFFFF, "18446744065119617025"},
		}
		for _, tt := range tests {
			got, err := m.Mul(NewInt(tt.a), NewInt(tt.b))
			if err != nil {
				t.Fatalf("%s: Mul(%d, %d) error: %v", s, tt.a, tt.b, err)
			}
			if got.String() != tt.want {
				t.Errorf("%s: %d * %d = %s, want %s", s, tt.a, tt.b, got, tt.want)
			}
		}
	}
}

// TestKaratsubaMatchesSchoolbookAroundCutoff covers operand sizes below, at
// and above the cutoff, including unbalanced pairs that exercise padding.
func TestKaratsubaMatchesSchoolbookAroundCutoff(t *testing.T) {
	t.Parallel()
	r := rand.New(rand.NewSource(7))
	school := NewMultiplier(Schoolbook)
	sizes := []int{1, 2, 3, 8, DefaultKaratsubaCutoff - 1, DefaultKaratsubaCutoff, DefaultKaratsubaCutoff + 1, 2*DefaultKaratsubaCutoff + 1, 257}

	for _, cutoff := range []int{1, 2, 4, DefaultKaratsubaCutoff} {
		kara := NewMultiplier(Karatsuba, WithCutoff(cutoff))
		for _, n := range sizes {
			for _, m := range sizes {
				x := randomInt(r, n, r.Intn(2) == 0)
				y := randomInt(r, m, r.Intn(2) == 0)
				want, err := school.Mul(x, y)
				if err != nil {
					t.Fatal(err)
				}
				got, err := kara.Mul(x, y)
				if err != nil {
					t.Fatal(err)
				}
				if !got.Equal(want) {
					t.Fatalf("cutoff %d: karatsuba(%d limbs, %d limbs) differs from schoolbook", cutoff, n, m)
				}
				if oracle := new(big.Int).Mul(toBig(x), toBig(y)); toBig(got).Cmp(oracle) != 0 {
					t.Fatalf("cutoff %d: %d x %d limbs disagrees with math/big", cutoff, n, m)
				}
			}
		}
	}
}

func TestKaratsubaCarryHeavyOperands(t *testing.T) {
	t.Parallel()
	for _, n := range []int{DefaultKaratsubaCutoff, 3 * DefaultKaratsubaCutoff} {
		limbs := make([]uint32, n)
		for i := range limbs {
			limbs[i] = 0xFFFFFFFF
		}
		x := FromLimbs(limbs, false)
		got := x.Mul(x)
		want := new(big.Int).Mul(toBig(x), toBig(x))
		if toBig(got).Cmp(want) != 0 {
			t.Errorf("(2^%d-1)^2 mismatch", 32*n)
		}
	}
}

func TestExp(t *testing.T) {
	t.Parallel()
	m := NewMultiplier(Karatsuba)
	tests := []struct {
		base int64
		e    uint64
		want string
	}{
		{0, 0, "1"},
		{5, 0, "1"},
		{0, 5, "0"},
		{2, 100, "1267650600228229401496703205376"},
		{-3, 3, "-27"},
		{-3, 4, "81"},
	}
	for _, tt := range tests {
		got, err := m.Exp(NewInt(tt.base), tt.e)
		if err != nil {
			t.Fatalf("Exp(%d, %d) error: %v", tt.base, tt.e, err)
		}
		if got.String() != tt.want {
			t.Errorf("Exp(%d, %d) = %s, want %s", tt.base, tt.e, got, tt.want)
		}
	}
	if _, err := NewMultiplier(SchonhageStrassen).Exp(NewInt(2), 2); !errors.Is(err, ErrNotImplemented) {
		t.Errorf("Exp with schonhage-strassen error = %v", err)
	}
}

func squareTimes(t *testing.T, m Multiplier, x Int, times int) Int {
	t.Helper()
	for i := 0; i < times; i++ {
		var err error
		if x, err = m.Square(x); err != nil {
			t.Fatalf("%s: square %d: %v", m.Name(), i, err)
		}
	}
	return x
}

func TestRepeatedSquaringNegativeSeed(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping large repeated squaring in short mode")
	}
	t.Parallel()

	const (
		wantDigits = 61569
		wantBits   = 204526
		wantSHA    = "c77235a7a6a9f268b52a015bb736dd7f4fd7c31f2d63aad7b3b682e84c09cf1a"
		wantPrefix = "210441544336788011473555513431"
		wantSuffix = "462147646480581848579898245121"
	)

	kara := squareTimes(t, NewMultiplier(Karatsuba), NewInt(-32784189), 13)
	school := squareTimes(t, NewMultiplier(Schoolbook), NewInt(-32784189), 13)
	if !kara.Equal(school) {
		t.Fatal("karatsuba and schoolbook disagree on (-32784189)^(2^13)")
	}
	if kara.Sign() != 1 {
		t.Errorf("sign = %d, want 1", kara.Sign())
	}
	if kara.BitLen() != wantBits {
		t.Errorf("BitLen = %d, want %d", kara.BitLen(), wantBits)
	}

	dec := kara.ChunkedString()
	if len(dec) != wantDigits || dec[:30] != wantPrefix || dec[len(dec)-30:] != wantSuffix {
		t.Errorf("decimal rendering: %d digits, prefix %s, suffix %s", len(dec), dec[:30], dec[len(dec)-30:])
	}
	sum := sha256.Sum256([]byte(dec))
	if got := hex.EncodeToString(sum[:]); got != wantSHA {
		t.Errorf("sha256(decimal) = %s, want %s", got, wantSHA)
	}
	if dd := kara.DoubleDabbleString(); dd != dec {
		t.Error("double-dabble rendering differs from chunked rendering")
	}
	if bin := kara.BinaryString(); len(bin) != wantBits || bin[0] != '1' {
		t.Errorf("binary rendering has %d bits", len(bin))
	}
}
