package orchestration

import (
	"context"
	"fmt"

	"github.com/agbru/bigcalc/internal/bigint"
	"github.com/agbru/bigcalc/internal/config"
	"github.com/agbru/bigcalc/internal/progress"
	"github.com/agbru/bigcalc/internal/sequence"
)

// Job is one computation scheduled by ExecuteRuns.
type Job interface {
	Name() string
	Run(ctx context.Context, report progress.ProgressCallback) (bigint.Int, error)
}

// SquareJob squares Base Times times with Multiplier.
type SquareJob struct {
	Base       bigint.Int
	Times      int
	Multiplier bigint.Multiplier
}

// Name returns the multiplication strategy name.
func (j SquareJob) Name() string { return j.Multiplier.Name() }

// Run performs the repeated squaring.
func (j SquareJob) Run(ctx context.Context, report progress.ProgressCallback) (bigint.Int, error) {
	return sequence.RepeatedSquare(ctx, j.Base, j.Times, j.Multiplier, report)
}

// FibonacciJob computes F(N) by repeated addition.
type FibonacciJob struct {
	N uint64
}

// Name returns "addition"; Fibonacci uses no multiplication.
func (FibonacciJob) Name() string { return "addition" }

// Run computes F(N).
func (j FibonacciJob) Run(ctx context.Context, report progress.ProgressCallback) (bigint.Int, error) {
	return sequence.Fibonacci(ctx, j.N, report)
}

// GetJobsToRun builds one SquareJob per strategy selected by cfg, in the
// stable order of config.AppConfig.SelectedStrategies.
func GetJobsToRun(cfg config.AppConfig) ([]Job, error) {
	strategies, err := cfg.SelectedStrategies()
	if err != nil {
		return nil, err
	}
	base := bigint.NewInt(cfg.Base)
	jobs := make([]Job, 0, len(strategies))
	for _, s := range strategies {
		m := bigint.NewMultiplier(s, cfg.ToMultiplierOptions()...)
		if err := m.Validate(); err != nil {
			return nil, err
		}
		jobs = append(jobs, SquareJob{Base: base, Times: cfg.Times, Multiplier: m})
	}
	return jobs, nil
}

// SquareLabel describes base^(2^times).
func SquareLabel(base int64, times int) string {
	if base < 0 {
		return fmt.Sprintf("(%d)^(2^%d)", base, times)
	}
	return fmt.Sprintf("%d^(2^%d)", base, times)
}

// FibonacciLabel describes F(n).
func FibonacciLabel(n uint64) string { return fmt.Sprintf("F(%d)", n) }
