// File: lexicographic.go
// Role: the lexicographic max-min variant (spec.md §4.6d), grounded on
// define_model_with_ys/solve_lexicographic in
// original_source/WithOpenStreetMap/mainSCIPDeRideFairMaxMinFrnsLexico.py:
// iteratively maximize the count of drivers whose load is at least t, for
// increasing thresholds t, fixing each phase's optimum before moving on.
//
// That iterative "count of drivers at or above threshold t" reformulation
// exists to keep each phase a linear MILP for SCIP; it is equivalent to
// leximin ordering directly on the sorted-ascending load vector (maximize
// the smallest load, then the next-smallest, and so on), which is what
// scoreBetter already implements when given a full sorted-ascending score.
// branch-and-bound does not need SCIP's per-phase linearization trick, so
// this variant scores a candidate with its sorted load vector directly.

package ilp

import (
	"context"

	"github.com/deride-go/rideshare/transport"
)

// LexicographicMaxMin finds the leximin-optimal load distribution: among
// all feasible assignments, the one whose sorted-ascending load vector is
// lexicographically greatest.
func LexicographicMaxMin(ctx context.Context, m *Model) *transport.Assignment {
	obj := func(m *Model, a assignment) Score {
		return sortedAscending(a.loads(len(m.Drivers)))
	}

	a := branchAndBound(ctx, m, obj)

	return m.toResult("ilp-lexicographic-max-min", a)
}
