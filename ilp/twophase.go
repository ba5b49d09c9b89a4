// File: twophase.go
// Role: the classical two-phase max-min variant (spec.md §4.6c), grounded
// on define_model_maxmin_fairness/solve_two_phase_maxmin in
// original_source/WithOpenStreetMap/mainSCIPDeRideFairMaxMinFrns2phase.py:
// phase 1 maximizes the minimum driver load z; phase 2 fixes z at its
// phase-1 optimum and maximizes total riders served as a tie-breaker.
//
// Both phases collapse into one branch-and-bound pass here: scoring a
// candidate assignment by (minLoad, served) lexicographically is exactly
// "maximize minLoad, then break ties by served" — the two-phase procedure
// restated as a single objective, since this engine does not re-solve from
// scratch the way SCIP's two model.optimize() calls do.

package ilp

import (
	"context"

	"github.com/deride-go/rideshare/transport"
)

// ClassicalTwoPhaseMaxMin maximizes the minimum driver load, then the total
// number of riders served among assignments tied on minimum load.
func ClassicalTwoPhaseMaxMin(ctx context.Context, m *Model) *transport.Assignment {
	obj := func(m *Model, a assignment) Score {
		loads := a.loads(len(m.Drivers))

		return Score{float64(minLoad(loads)), float64(a.served())}
	}

	a := branchAndBound(ctx, m, obj)

	return m.toResult("ilp-two-phase-max-min", a)
}
