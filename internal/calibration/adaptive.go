package calibration

import (
	"slices"

	"github.com/agbru/bigcalc/internal/bigint"
)

// DefaultOperandLimbs is the operand size used when none is given. It sits
// a few recursion levels above the default cutoff.
const DefaultOperandLimbs = 1024

// GenerateCutoffs returns the candidate Karatsuba cutoffs worth timing for
// operands of the given size: powers of two and their midpoints up to
// limbs, plus the built-in default. The list is sorted and free of
// duplicates.
func GenerateCutoffs(limbs int) []int {
	cutoffs := []int{bigint.DefaultKaratsubaCutoff}
	for c := 4; c <= limbs && c <= 512; c *= 2 {
		cutoffs = append(cutoffs, c)
		if mid := c + c/2; mid <= limbs && mid <= 512 {
			cutoffs = append(cutoffs, mid)
		}
	}
	slices.Sort(cutoffs)
	return slices.Compact(cutoffs)
}

// GenerateQuickCutoffs returns a short candidate list for a fast check.
func GenerateQuickCutoffs() []int {
	return []int{16, 32, bigint.DefaultKaratsubaCutoff, 64, 96}
}
