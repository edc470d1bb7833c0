package bigint

import (
	"errors"
	"fmt"
	"math/big"
	"math/rand"
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
)

func TestRenderersAgree(t *testing.T) {
	t.Parallel()
	r := rand.New(rand.NewSource(11))
	values := []Int{
		NewInt(0), NewInt(1), NewInt(-1), NewInt(9), NewInt(10), NewInt(-999999999),
		NewInt(1000000000), NewInt(4294967295), NewInt(-4294967296), NewInt(-5),
	}
	for _, n := range []int{1, 2, 3, 17, 64} {
		values = append(values, randomInt(r, n, false), randomInt(r, n, true))
	}
	for _, v := range values {
		want := toBig(v).String()
		if got := v.ChunkedString(); got != want {
			t.Errorf("ChunkedString = %s, want %s", got, want)
		}
		if got := v.DoubleDabbleString(); got != want {
			t.Errorf("DoubleDabbleString = %s, want %s", got, want)
		}
		for _, rend := range Renderers() {
			got, err := v.Text(rend)
			if err != nil || got != want {
				t.Errorf("Text(%s) = %s, %v; want %s", rend, got, err, want)
			}
		}
	}
}

func TestChunkPadding(t *testing.T) {
	t.Parallel()
	tests := []struct {
		in   string
		want string
	}{
		{"1000000000", "1000000000"},
		{"1000000001", "1000000001"},
		{"-1000000000000000000", "-1000000000000000000"},
		{"123000000000000000456", "123000000000000000456"},
	}
	for _, tt := range tests {
		if got := mustParse(tt.in).ChunkedString(); got != tt.want {
			t.Errorf("ChunkedString(%s) = %s", tt.in, got)
		}
	}
}

func TestTextUnknownRenderer(t *testing.T) {
	t.Parallel()
	if _, err := NewInt(1).Text(Renderer(9)); !errors.Is(err, ErrUnknownRenderer) {
		t.Errorf("Text(9) error = %v, want ErrUnknownRenderer", err)
	}
	if _, err := ParseRenderer("roman"); !errors.Is(err, ErrUnknownRenderer) {
		t.Errorf("ParseRenderer(roman) error = %v", err)
	}
	for name, want := range map[string]Renderer{"chunked": Chunked, "BCD": DoubleDabble, "double-dabble": DoubleDabble} {
		if got, err := ParseRenderer(name); err != nil || got != want {
			t.Errorf("ParseRenderer(%q) = %v, %v", name, got, err)
		}
	}
}

func TestBinaryString(t *testing.T) {
	t.Parallel()
	tests := []struct {
		v    int64
		want string
	}{
		{0, "0"},
		{1, "1"},
		{-1, "1"},
		{5, "101"},
		{-6, "110"},
		{1 << 32, "1" + strings.Repeat("0", 32)},
	}
	for _, tt := range tests {
		if got := NewInt(tt.v).BinaryString(); got != tt.want {
			t.Errorf("BinaryString(%d) = %s, want %s", tt.v, got, tt.want)
		}
	}
}

func TestBinaryStringMatchesBitLen(t *testing.T) {
	t.Parallel()
	r := rand.New(rand.NewSource(3))
	for _, n := range []int{1, 2, 5, 40} {
		x := randomInt(r, n, r.Intn(2) == 0)
		s := x.BinaryString()
		if len(s) != x.BitLen() || s[0] != '1' {
			t.Errorf("%d limbs: len(binary) = %d, BitLen = %d", n, len(s), x.BitLen())
		}
		if s != new(big.Int).Abs(toBig(x)).Text(2) {
			t.Errorf("%d limbs: binary mismatch with math/big", n)
		}
	}
}

func TestFormatVerbs(t *testing.T) {
	t.Parallel()
	x := NewInt(-10)
	tests := []struct {
		format string
		want   string
	}{
		{"%d", "-10"},
		{"%v", "-10"},
		{"%s", "-10"},
		{"%b", "-1010"},
		{"%6d", "   -10"},
		{"%-6d|", "-10   |"},
		{"%x", "%!x(bigint.Int=-10)"},
	}
	for _, tt := range tests {
		if got := fmt.Sprintf(tt.format, x); got != tt.want {
			t.Errorf("Sprintf(%q) = %q, want %q", tt.format, got, tt.want)
		}
	}
}

func TestSquare418Golden(t *testing.T) {
	t.Parallel()
	x := NewInt(418)
	for _, m := range []Multiplier{NewMultiplier(Karatsuba), NewMultiplier(Schoolbook), NewMultiplier(Karatsuba, WithCutoff(3))} {
		got := squareTimes(t, m, x, 10)

		g := goldie.New(t,
			goldie.WithFixtureDir("testdata/golden"),
			goldie.WithNameSuffix(".golden"),
		)
		dd, err := got.Text(DoubleDabble)
		if err != nil {
			t.Fatal(err)
		}
		g.Assert(t, "square_418_x10_decimal", []byte(dd))
		g.Assert(t, "square_418_x10_decimal", []byte(got.ChunkedString()))
		g.Assert(t, "square_418_x10_binary", []byte(got.BinaryString()))
	}
}

func TestFibonacci1000Golden(t *testing.T) {
	t.Parallel()
	a, b := NewInt(0), NewInt(1)
	for i := 0; i < 1000; i++ {
		a, b = b, a.Add(b)
	}
	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, "fibonacci_1000_decimal", []byte(a.ChunkedString()))
	g.Assert(t, "fibonacci_1000_decimal", []byte(a.DoubleDabbleString()))
}
