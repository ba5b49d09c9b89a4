// File: minmax.go
// Role: the min-max scalarization variant (spec.md §4.6b), grounded on
// estimate_objective_bounds/define_model_maxmin_scalarization in
// original_source/WithOpenStreetMap/mainSCIPDeRideFairMaxMinSclrzd.py:
// normalize total-served (f1) and load variance (f2) into [0,1] utilities
// U1, U2 against analytically estimated bounds, then maximize t = min(U1,
// U2).

package ilp

import (
	"context"

	"github.com/deride-go/rideshare/transport"
)

// MinMaxScalarization maximizes t = min(U1, U2), where U1 normalizes total
// riders served against [0, min(riders, totalSeats)] and U2 normalizes load
// variance (inverted, so lower variance scores higher) against [0,
// worst-case variance of dumping every rider on one driver].
func MinMaxScalarization(ctx context.Context, m *Model) *transport.Assignment {
	numRiders := len(m.Riders)
	totalSeats := 0
	for _, s := range m.Seats {
		totalSeats += s
	}
	f1Max := numRiders
	if totalSeats < f1Max {
		f1Max = totalSeats
	}

	f2Max := worstCaseVariance(numRiders, len(m.Drivers))

	obj := func(m *Model, a assignment) Score {
		loads := a.loads(len(m.Drivers))
		f1 := float64(a.served())
		f2 := variance(loads)

		u1 := 1.0
		if f1Max > 0 {
			u1 = f1 / float64(f1Max)
		}
		u2 := 1.0
		if f2Max > 0 {
			u2 = 1 - f2/f2Max
		}

		t := u1
		if u2 < t {
			t = u2
		}

		return Score{t}
	}

	a := branchAndBound(ctx, m, obj)

	return m.toResult("ilp-min-max-scalarization", a)
}

// worstCaseVariance mirrors estimate_objective_bounds's f2_max: the
// population variance of piling every rider onto a single driver.
func worstCaseVariance(numRiders, numDrivers int) float64 {
	if numDrivers == 0 {
		return 1
	}
	loads := make([]int, numDrivers)
	loads[numDrivers-1] = numRiders

	return variance(loads)
}
