package sequence

import (
	"context"
	"fmt"

	"github.com/agbru/bigcalc/internal/bigint"
	"github.com/agbru/bigcalc/internal/progress"
)

// RepeatedSquare squares x times times with m. The squarings dominate the
// cost and each one roughly triples the work of the previous under
// Karatsuba, so progress is weighted by 3^step.
func RepeatedSquare(ctx context.Context, x bigint.Int, times int, m bigint.Multiplier, report progress.ProgressCallback) (bigint.Int, error) {
	if times < 0 {
		return bigint.Int{}, fmt.Errorf("negative squaring count %d", times)
	}
	if err := m.Supported(); err != nil {
		return bigint.Int{}, err
	}
	if report == nil {
		report = func(float64) {}
	}
	total, weight := 0.0, 1.0
	for i := 0; i < times; i++ {
		total += weight
		weight *= 3
	}

	cur := x.Clone()
	done, weight := 0.0, 1.0
	for i := 0; i < times; i++ {
		if err := ctx.Err(); err != nil {
			return bigint.Int{}, err
		}
		next, err := m.Square(cur)
		if err != nil {
			return bigint.Int{}, fmt.Errorf("squaring %d of %d: %w", i+1, times, err)
		}
		cur = next
		done += weight
		weight *= 3
		report(done / total)
	}
	report(1)
	return cur, nil
}
