package bigint

import (
	"fmt"
	"sort"
	"strings"
)

// DefaultKaratsubaCutoff is the operand size, in limbs, below which
// Karatsuba falls back to schoolbook multiplication.
const DefaultKaratsubaCutoff = 50

// Strategy selects a multiplication algorithm.
type Strategy int

const (
	// Schoolbook is O(n·m) limb-by-limb multiplication.
	Schoolbook Strategy = iota
	// Karatsuba is recursive three-product multiplication with a schoolbook
	// base case.
	Karatsuba
	// SchonhageStrassen is reserved. Multiplying with it fails with
	// ErrNotImplemented.
	SchonhageStrassen
)

var strategyNames = map[Strategy]string{
	Schoolbook:        "schoolbook",
	Karatsuba:         "karatsuba",
	SchonhageStrassen: "schonhage-strassen",
}

var strategyAliases = map[string]Strategy{
	"schoolbook":         Schoolbook,
	"long":               Schoolbook,
	"karatsuba":          Karatsuba,
	"schonhage-strassen": SchonhageStrassen,
	"ss":                 SchonhageStrassen,
}

func (s Strategy) String() string {
	if name, ok := strategyNames[s]; ok {
		return name
	}
	return fmt.Sprintf("Strategy(%d)", int(s))
}

// ParseStrategy maps a strategy name (case-insensitive) to a Strategy.
func ParseStrategy(name string) (Strategy, error) {
	if s, ok := strategyAliases[strings.ToLower(strings.TrimSpace(name))]; ok {
		return s, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
}

// Strategies returns the canonical names of all strategies, sorted.
func Strategies() []string {
	names := make([]string, 0, len(strategyNames))
	for _, n := range strategyNames {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Multiplier is an immutable multiplication configuration. The zero value is
// not usable; build one with NewMultiplier.
type Multiplier struct {
	strategy Strategy
	cutoff   int
}

// MultiplierOption configures a Multiplier.
type MultiplierOption func(*Multiplier)

// WithCutoff sets the Karatsuba cutoff in limbs.
func WithCutoff(limbs int) MultiplierOption {
	return func(m *Multiplier) { m.cutoff = limbs }
}

// NewMultiplier returns a Multiplier for the given strategy. The cutoff
// defaults to DefaultKaratsubaCutoff.
func NewMultiplier(s Strategy, opts ...MultiplierOption) Multiplier {
	m := Multiplier{strategy: s, cutoff: DefaultKaratsubaCutoff}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// Strategy returns the configured strategy.
func (m Multiplier) Strategy() Strategy { return m.strategy }

// Cutoff returns the configured Karatsuba cutoff.
func (m Multiplier) Cutoff() int { return m.cutoff }

// Name returns the strategy name.
func (m Multiplier) Name() string { return m.strategy.String() }

// Validate reports configuration errors without multiplying.
func (m Multiplier) Validate() error {
	if _, ok := strategyNames[m.strategy]; !ok {
		return fmt.Errorf("%w: %d", ErrUnknownStrategy, int(m.strategy))
	}
	if m.cutoff < 1 {
		return fmt.Errorf("%w: %d", ErrInvalidCutoff, m.cutoff)
	}
	return nil
}

// Supported returns the Validate error, or an error matching
// ErrNotImplemented when the strategy has no implementation.
func (m Multiplier) Supported() error {
	if err := m.Validate(); err != nil {
		return err
	}
	if m.strategy == SchonhageStrassen {
		return &UnsupportedError{Op: m.strategy.String()}
	}
	return nil
}

// Mul returns x * y computed with the configured strategy.
func (m Multiplier) Mul(x, y Int) (Int, error) {
	if err := m.Supported(); err != nil {
		return Int{}, err
	}
	var mag nat
	switch m.strategy {
	case Schoolbook:
		mag = schoolbook(x.abs(), y.abs())
	case Karatsuba:
		mag = karatsuba(x.abs(), y.abs(), m.cutoff)
	default:
		return Int{}, &UnsupportedError{Op: m.strategy.String()}
	}
	return newInt(mag, x.neg != y.neg), nil
}

// Square returns x * x.
func (m Multiplier) Square(x Int) (Int, error) { return m.Mul(x, x) }

// Exp returns x**e by square-and-multiply. x**0 is 1, including for x == 0.
func (m Multiplier) Exp(x Int, e uint64) (Int, error) {
	result := NewInt(1)
	base := x.Clone()
	for e > 0 {
		var err error
		if e&1 == 1 {
			if result, err = m.Mul(result, base); err != nil {
				return Int{}, err
			}
		}
		e >>= 1
		if e == 0 {
			break
		}
		if base, err = m.Mul(base, base); err != nil {
			return Int{}, err
		}
	}
	return result, nil
}

// schoolbook multiplies two magnitudes. The longer operand is the outer one;
// each limb of the shorter operand yields one partial product, shifted by
// its limb position and added into the running sum.
func schoolbook(x, y nat) nat {
	outer, inner := x, y
	if len(inner) > len(outer) {
		outer, inner = y, x
	}
	sum := nat{0}
	for i, w := range inner {
		if w == 0 {
			continue
		}
		sum = addLikeSigns(sum, shiftLimbs(mulLimb(outer, w), i))
	}
	return sum
}

// karatsuba multiplies two magnitudes, recursing while both operands have
// at least cutoff limbs.
func karatsuba(x, y nat, cutoff int) nat {
	if len(x) < cutoff || len(y) < cutoff || (len(x) == 1 && len(y) == 1) {
		return schoolbook(x, y)
	}

	n := len(x)
	if len(y) > n {
		n = len(y)
	}
	x, y = padTo(x, n), padTo(y, n)
	m := (n + 1) / 2

	lowX, highX := x[:m].norm(), x[m:].norm()
	lowY, highY := y[:m].norm(), y[m:].norm()

	pHigh := karatsuba(highX, highY, cutoff)
	pLow := karatsuba(lowX, lowY, cutoff)
	pSum := karatsuba(addLikeSigns(highX, lowX), addLikeSigns(highY, lowY), cutoff)
	// (hx+lx)(hy+ly) >= hx·hy + lx·ly, so both subtractions stay non-negative.
	pMid := addDiffSigns(addDiffSigns(pSum, pHigh), pLow)

	result := pLow
	if !pMid.isZero() {
		result = addLikeSigns(result, shiftLimbs(pMid, m))
	}
	if !pHigh.isZero() {
		result = addLikeSigns(result, shiftLimbs(pHigh, 2*m))
	}
	return result
}
