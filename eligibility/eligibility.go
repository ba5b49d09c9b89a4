// File: eligibility.go
// Role: the standard eligibility rule (spec.md §4.3) — DP(d,r) <= MP_d —
// shared by package deridefair and all four package ilp variants.
//
// Grounded on EligibilityRiderMatrix.calculate in
// original_source/WithOpenStreetMap/mainDeRideFair.py: it computes, for
// every (driver, rider) pair, sp_length = shortest_path_length(driver.src,
// driver.dst), mp = sp_length * (1 + t/100), and dp = spd(d.src,r.src) +
// spd(r.src,r.dst) + spd(r.dst,d.dst), setting ER[d][r] = dp <= mp.

package eligibility

import (
	"math"

	"github.com/deride-go/rideshare/graph"
	"github.com/deride-go/rideshare/pathoracle"
	"github.com/deride-go/rideshare/transport"
)

// toFloat converts a graph distance, including the graph.Unreachable
// sentinel, to a float64 suitable for the DP<=MP comparison without risking
// int64 overflow when summing several Unreachable segments.
func toFloat(d int64) float64 {
	if d == graph.Unreachable {
		return math.Inf(1)
	}

	return float64(d)
}

// MP returns driver d's maximum permissible path length, given its own
// shortest-path length sp = spd(d.Source, d.Destination).
func MP(d transport.Driver, sp int64) float64 {
	spf := toFloat(sp)
	if math.IsInf(spf, 1) {
		return spf
	}

	return spf * (1 + float64(d.ThresholdPct)/100)
}

// DP returns the deviated path length for driver d carrying rider r:
// spd(d.Source, r.Source) + spd(r.Source, r.Destination) + spd(r.Destination,
// d.Destination). Any unreachable segment makes the whole sum +Inf.
func DP(oracle *pathoracle.Oracle, d transport.Driver, r transport.Rider) (float64, error) {
	legs := [][2]string{
		{d.Source, r.Source},
		{r.Source, r.Destination},
		{r.Destination, d.Destination},
	}

	total := 0.0
	for _, leg := range legs {
		dist, err := oracle.Spd(leg[0], leg[1])
		if err != nil {
			return 0, err
		}
		total += toFloat(dist)
	}

	return total, nil
}

// Build constructs the Eligibility Engine's ER matrix and offers vector for
// the given drivers and riders, applying the standard DP<=MP rule to every
// pair regardless of threshold. This is the rule DeRideFair and every ILP
// variant use (see doc.go): at threshold 0, MP_d collapses to SP_d, giving
// "no deviation allowed" for free without a separate branch. Offers is
// populated via RecomputeOffers before return.
//
// DeRide does not use Build — it uses BuildDeRide, whose threshold=0
// drivers get the corridor rule instead (see doc.go and BuildDeRide).
func Build(oracle *pathoracle.Oracle, drivers []transport.Driver, riders []transport.Rider) (*transport.EligibilityMatrix, error) {
	m := transport.NewEligibilityMatrix(drivers, riders)

	sp := make([]int64, len(drivers))
	for i, d := range drivers {
		dist, err := oracle.Spd(d.Source, d.Destination)
		if err != nil {
			return nil, err
		}
		sp[i] = dist
	}

	for i, d := range drivers {
		mp := MP(d, sp[i])
		for j, r := range riders {
			dp, err := DP(oracle, d, r)
			if err != nil {
				return nil, err
			}
			m.ER[i][j] = dp <= mp
		}
	}

	m.RecomputeOffers()

	return m, nil
}

// DefaultCorridorRadius matches find_nodes_within_threshold's hardcoded
// radius in mainDeRide.py; deride.Assign defaults to the same constant for
// its Phase-2 corridor recomputation.
const DefaultCorridorRadius int64 = 200

// BuildDeRide constructs the Eligibility Engine's ER matrix and offers
// vector the way mainDeRide.py's EligibilityRiderMatrix.calculate does it:
// threshold=0 drivers are seeded from the corridor rule (every rider whose
// endpoints resolve to anchors on the driver's own shortest path, in path
// order — see BuildCorridor/Corridor.OnRoute), while every other driver
// still uses the standard DP<=MP rule. This is the Phase-1 counterpart to
// the Phase-2 corridor re-tightening deride.Assign performs once a
// threshold!=0 driver commits a deviated path; for threshold=0 drivers the
// committed path is always the plain shortest path, so Phase 1's corridor
// here is already final and Assign never needs to reopen it.
func BuildDeRide(oracle *pathoracle.Oracle, g *graph.Graph, drivers []transport.Driver, riders []transport.Rider, corridorRadius int64) (*transport.EligibilityMatrix, error) {
	m := transport.NewEligibilityMatrix(drivers, riders)

	for i, d := range drivers {
		if d.ThresholdPct == 0 {
			path, err := oracle.Spp(d.Source, d.Destination)
			if err != nil {
				return nil, err
			}
			corridor, err := BuildCorridor(g, path, corridorRadius)
			if err != nil {
				return nil, err
			}
			for j, r := range riders {
				m.ER[i][j] = corridor.OnRoute(r.Source, r.Destination)
			}

			continue
		}

		sp, err := oracle.Spd(d.Source, d.Destination)
		if err != nil {
			return nil, err
		}
		mp := MP(d, sp)
		for j, r := range riders {
			dp, err := DP(oracle, d, r)
			if err != nil {
				return nil, err
			}
			m.ER[i][j] = dp <= mp
		}
	}

	m.RecomputeOffers()

	return m, nil
}
