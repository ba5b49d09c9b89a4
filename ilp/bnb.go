// File: bnb.go
// Role: the shared branch-and-bound search backing every fairness variant
// (spec.md §4.6 min-max scalarization, classical two-phase max-min,
// lexicographic max-min). MaxRiders does not use this engine — it is
// solved exactly by maxflow.go instead (see doc.go).
//
// No MILP library exists anywhere in the retrieved example pack (confirmed
// across every example repo's go.mod and source), so this replaces
// pyscipopt.Model.optimize with an exhaustive branch-and-bound over the
// same 0/1 assignment decisions, bounded by a context deadline rather than
// a node or gap limit: once the deadline passes, the search returns its
// best incumbent instead of a certified optimum, mirroring how a real MILP
// solver behaves under solver_time_limit_s.

package ilp

import "context"

// Score ranks a complete assignment for one objective. Scores are compared
// lexicographically: the first index at which two scores differ decides,
// earlier indices dominate later ones. A single-element Score is an
// ordinary scalar maximization.
type Score []float64

func scoreBetter(a, b Score) bool {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] != b[i] {
			return a[i] > b[i]
		}
	}

	return len(a) > len(b)
}

// objective scores a complete assignment (every rider decided, assigned or
// left unserved).
type objective func(m *Model, a assignment) Score

// branchAndBound enumerates every rider in turn, trying each seat-available
// eligible driver plus "leave unassigned", and keeps the best-scoring
// complete assignment found before ctx's deadline elapses.
func branchAndBound(ctx context.Context, m *Model, obj objective) assignment {
	n := len(m.Riders)
	seatsLeft := append([]int{}, m.Seats...)
	cur := make(assignment, n)
	for i := range cur {
		cur[i] = -1
	}

	var best assignment
	var bestScore Score
	found := false

	var rec func(r int)
	rec = func(r int) {
		if ctx.Err() != nil {
			return
		}
		if r == n {
			s := obj(m, cur)
			if !found || scoreBetter(s, bestScore) {
				bestScore = s
				best = append(assignment{}, cur...)
				found = true
			}

			return
		}

		cur[r] = -1
		rec(r + 1)

		for d := range m.Drivers {
			if ctx.Err() != nil {
				return
			}
			if !m.ER[d][r] || seatsLeft[d] == 0 {
				continue
			}
			cur[r] = d
			seatsLeft[d]--
			rec(r + 1)
			seatsLeft[d]++
		}
		cur[r] = -1
	}
	rec(0)

	if !found {
		best = cur
	}

	return best
}
