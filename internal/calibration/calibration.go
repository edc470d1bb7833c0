// Package calibration measures the Karatsuba cutoff that multiplies fastest
// on the current machine and caches it in a profile file.
package calibration

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/agbru/bigcalc/internal/bigint"
	apperrors "github.com/agbru/bigcalc/internal/errors"
	"github.com/agbru/bigcalc/internal/format"
	"github.com/agbru/bigcalc/internal/ui"
)

// Rounds is the number of timed multiplications per cutoff. The fastest
// round is kept.
const Rounds = 3

// Result is the measurement for one cutoff.
type Result struct {
	Cutoff   int
	Duration time.Duration
	Err      error
}

// RunCalibration times Karatsuba at every cutoff on two random operands of
// limbs limbs, checks each product against schoolbook, prints a summary
// table to out and returns the fastest cutoff.
func RunCalibration(ctx context.Context, out io.Writer, limbs int, cutoffs []int) (int, []Result, error) {
	if limbs < 1 {
		return 0, nil, fmt.Errorf("operand size must be at least 1 limb, got %d", limbs)
	}
	if len(cutoffs) == 0 {
		cutoffs = GenerateCutoffs(limbs)
	}
	x, y := randomOperand(1, limbs), randomOperand(2, limbs)
	want, err := bigint.NewMultiplier(bigint.Schoolbook).Mul(x, y)
	if err != nil {
		return 0, nil, err
	}

	fmt.Fprintf(out, "Calibrating Karatsuba cutoff on %d-limb operands (%d candidates)...\n", limbs, len(cutoffs))
	results := make([]Result, 0, len(cutoffs))
	best, bestDur := 0, time.Duration(0)
	for _, c := range cutoffs {
		if err := ctx.Err(); err != nil {
			return 0, results, err
		}
		res := measure(ctx, bigint.NewMultiplier(bigint.Karatsuba, bigint.WithCutoff(c)), x, y, want)
		res.Cutoff = c
		results = append(results, res)
		if res.Err == nil && (best == 0 || res.Duration < bestDur) {
			best, bestDur = c, res.Duration
		}
	}
	printCalibrationResults(out, results, best)
	if best == 0 {
		return 0, results, fmt.Errorf("no cutoff completed: %w", results[0].Err)
	}
	return best, results, nil
}

func measure(ctx context.Context, m bigint.Multiplier, x, y, want bigint.Int) Result {
	var fastest time.Duration
	for round := 0; round < Rounds; round++ {
		if err := ctx.Err(); err != nil {
			return Result{Err: err}
		}
		start := time.Now()
		got, err := m.Mul(x, y)
		d := time.Since(start)
		if err != nil {
			return Result{Err: err}
		}
		if !got.Equal(want) {
			return Result{Err: apperrors.MismatchError{What: "product", Left: "schoolbook", Right: fmt.Sprintf("karatsuba/%d", m.Cutoff())}}
		}
		if round == 0 || d < fastest {
			fastest = d
		}
	}
	return Result{Duration: fastest}
}

// randomOperand returns a deterministic operand with exactly limbs limbs.
func randomOperand(seed int64, limbs int) bigint.Int {
	r := rand.New(rand.NewSource(seed)) //nolint:gosec // G404: benchmark data
	l := make([]uint32, limbs)
	for i := range l {
		l[i] = r.Uint32()
	}
	l[limbs-1] |= 1 << 31
	return bigint.FromLimbs(l, false)
}

func printCalibrationResults(out io.Writer, results []Result, best int) {
	fmt.Fprintf(out, "\n--- Calibration Summary ---\n")
	tw := tabwriter.NewWriter(out, 0, 0, 3, ' ', 0)
	fmt.Fprintf(tw, "  %sCutoff%s\t│ %sExecution Time%s\n", ui.ColorUnderline(), ui.ColorReset(), ui.ColorUnderline(), ui.ColorReset())
	fmt.Fprintf(tw, "  %s\t┼%s\n", strings.Repeat("─", 12), strings.Repeat("─", 25))
	for _, res := range results {
		dur := fmt.Sprintf("%sN/A%s", ui.ColorRed(), ui.ColorReset())
		if res.Err == nil {
			dur = format.FormatExecutionDuration(res.Duration)
		}
		highlight := ""
		if res.Cutoff == best && res.Err == nil {
			highlight = fmt.Sprintf(" %s(Optimal)%s", ui.ColorGreen(), ui.ColorReset())
		}
		fmt.Fprintf(tw, "  %s%d limbs%s\t│ %s%s%s%s\n", ui.ColorCyan(), res.Cutoff, ui.ColorReset(), ui.ColorYellow(), dur, ui.ColorReset(), highlight)
	}
	tw.Flush()
}
