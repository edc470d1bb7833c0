// Command generate-golden regenerates the golden fixtures of the bigint
// package from math/big, which serves as the reference implementation.
//
// Usage:
//
//	go run ./cmd/generate-golden -dir internal/bigint/testdata/golden
package main

import (
	"fmt"
	"math/big"
	"os"
	"path/filepath"

	"github.com/spf13/pflag"
)

// fixture is one golden file: a value and the base it is rendered in.
type fixture struct {
	name  string
	value *big.Int
	base  int
}

func main() {
	dir := pflag.StringP("dir", "d", filepath.Join("internal", "bigint", "testdata", "golden"), "fixture directory")
	pflag.Parse()

	if err := run(*dir); err != nil {
		fmt.Fprintf(os.Stderr, "generate-golden: %v\n", err)
		os.Exit(1)
	}
}

func run(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	sq := squareBig(418, 10)
	for _, f := range []fixture{
		{"square_418_x10_decimal", sq, 10},
		{"square_418_x10_binary", new(big.Int).Abs(sq), 2},
		{"fibonacci_1000_decimal", fibBig(1000), 10},
	} {
		path := filepath.Join(dir, f.name+".golden")
		if err := os.WriteFile(path, []byte(f.value.Text(f.base)), 0o644); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", path)
	}
	return nil
}

// squareBig returns base^(2^times).
func squareBig(base int64, times int) *big.Int {
	x := big.NewInt(base)
	for i := 0; i < times; i++ {
		x.Mul(x, x)
	}
	return x
}

// fibBig returns F(n) by iteration, F(0) = 0.
func fibBig(n uint64) *big.Int {
	a, b := big.NewInt(0), big.NewInt(1)
	for i := uint64(0); i < n; i++ {
		a.Add(a, b)
		a, b = b, a
	}
	return a
}
