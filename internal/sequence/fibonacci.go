package sequence

import (
	"context"

	"github.com/agbru/bigcalc/internal/bigint"
	"github.com/agbru/bigcalc/internal/progress"
)

// cancelCheckInterval is how many additions run between context checks.
const cancelCheckInterval = 1024

// Fibonacci returns F(n), computed by repeated addition from F(0)=0, F(1)=1.
func Fibonacci(ctx context.Context, n uint64, report progress.ProgressCallback) (bigint.Int, error) {
	if report == nil {
		report = func(float64) {}
	}
	a, b := bigint.NewInt(0), bigint.NewInt(1)
	for i := uint64(0); i < n; i++ {
		if i%cancelCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return bigint.Int{}, err
			}
			report(float64(i) / float64(n))
		}
		a, b = b, a.Add(b)
	}
	report(1)
	return a, nil
}

// FibonacciTerms returns F(0) through F(count-1).
func FibonacciTerms(count int) []bigint.Int {
	if count <= 0 {
		return nil
	}
	terms := make([]bigint.Int, count)
	a, b := bigint.NewInt(0), bigint.NewInt(1)
	for i := range terms {
		terms[i] = a
		a, b = b, a.Add(b)
	}
	return terms
}
