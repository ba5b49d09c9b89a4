// File: assign.go
// Role: the Greedy Assigner — Efficiency loop itself (spec.md §4.4).
//
// Grounded on assign_riders_to_drivers/select_driver/
// calculate_deviated_path_for_assignment/update_eligibility in
// original_source/WithOpenStreetMap/mainDeRide.py, translated step for
// step: pick the rider(s) with the smallest nonzero offer count, break
// ties with the tie-break source, assign to the eligible driver with the
// most remaining seats (again tie-broken), commit that driver's path on
// its first acceptance, and re-score its remaining eligible riders via the
// corridor rule before continuing.
//
// Assign expects matrix to have come from eligibility.BuildDeRide, not
// eligibility.Build: the Phase-2 reopen guard below only widens ER for
// threshold!=0 drivers because BuildDeRide's Phase-1 already seeded
// threshold=0 drivers' rows from their own shortest-path corridor (see
// eligibility/doc.go) — there is nothing left to reopen for them, since
// their committed path never differs from that shortest path.

package deride

import (
	"github.com/deride-go/rideshare/eligibility"
	"github.com/deride-go/rideshare/graph"
	"github.com/deride-go/rideshare/pathoracle"
	"github.com/deride-go/rideshare/tiebreak"
	"github.com/deride-go/rideshare/transport"
)

// defaultCorridorRadius matches find_nodes_within_threshold's hardcoded
// radius in mainDeRide.py — the same constant eligibility.BuildDeRide
// defaults to for Phase-1 corridor seeding.
const defaultCorridorRadius = eligibility.DefaultCorridorRadius

// Option configures an Assign run.
type Option func(*config)

type config struct {
	radius int64
	tie    *tiebreak.Source
}

// WithCorridorRadius overrides the corridor search radius (default 200,
// matching the original implementation).
func WithCorridorRadius(radius int64) Option {
	return func(c *config) { c.radius = radius }
}

// WithTieBreak supplies the tiebreak.Source used to resolve ties among
// equally-eligible riders and drivers with equal remaining seats. Defaults to a
// deterministic source (always picks the first candidate) when omitted.
func WithTieBreak(s *tiebreak.Source) Option {
	return func(c *config) { c.tie = s }
}

// Assign runs the Greedy Assigner — Efficiency variant to completion,
// mutating matrix in place (per its documented ownership contract) and
// returning the resulting Assignment. g is used only for corridor
// recomputation once a driver's path is committed; oracle serves every
// shortest-path query.
func Assign(oracle *pathoracle.Oracle, g *graph.Graph, matrix *transport.EligibilityMatrix, opts ...Option) (*transport.Assignment, error) {
	cfg := &config{radius: defaultCorridorRadius, tie: tiebreak.New()}
	for _, opt := range opts {
		opt(cfg)
	}

	drivers := matrix.Drivers
	riders := matrix.Riders

	out := &transport.Assignment{Variant: "deride"}
	das := make([]transport.DriverAssignment, len(drivers))
	for i, d := range drivers {
		das[i] = transport.DriverAssignment{Driver: d, RemainingSeats: d.InitialSeats}
	}
	corridors := make([]*eligibility.Corridor, len(drivers))
	served := make([]bool, len(riders))

	for sum(matrix.Offers) > 0 {
		r := pickRider(matrix.Offers, cfg.tie)

		eligibleDrivers := eligibleFor(matrix.ER, r)
		if len(eligibleDrivers) == 0 {
			break
		}
		d := pickDriver(eligibleDrivers, das, cfg.tie)

		if das[d].RemainingSeats == 0 {
			matrix.ER[d][r] = false
			matrix.RecomputeOffers()
			continue
		}

		if len(das[d].Path) == 0 {
			path, err := commitPath(oracle, drivers[d], riders[r])
			if err != nil {
				return nil, err
			}
			das[d].Path = path

			corridor, err := eligibility.BuildCorridor(g, path, cfg.radius)
			if err != nil {
				return nil, err
			}
			corridors[d] = corridor

			// Reopen ER for threshold!=0 drivers only: their committed path
			// here may deviate from the shortest path used at Phase-1 build
			// time, so their corridor can admit riders BuildDeRide didn't
			// yet know about. Threshold=0 drivers never deviate (commitPath
			// returns their plain shortest path), so BuildDeRide's Phase-1
			// corridor is already final. Riders already served by another
			// driver stay closed.
			if drivers[d].ThresholdPct != 0 && cfg.radius != 0 {
				for j, rider := range riders {
					if !served[j] && corridor.OnRoute(rider.Source, rider.Destination) {
						matrix.ER[d][j] = true
					}
				}
			}
		}

		das[d].Accept(riders[r].ID)
		served[r] = true
		updateEligibility(matrix, corridors[d], d, r, das)
	}

	out.Drivers = das

	return out, nil
}

// pickRider returns the index of a rider with the smallest nonzero offer
// count, breaking ties via tie.
func pickRider(offers []int, tie *tiebreak.Source) int {
	min := -1
	var candidates []int
	for j, o := range offers {
		if o <= 0 {
			continue
		}
		switch {
		case min == -1 || o < min:
			min = o
			candidates = []int{j}
		case o == min:
			candidates = append(candidates, j)
		}
	}

	return candidates[tie.Pick(len(candidates))]
}

// eligibleFor returns the indices of every driver currently eligible for
// rider r.
func eligibleFor(er [][]bool, r int) []int {
	var out []int
	for d := range er {
		if er[d][r] {
			out = append(out, d)
		}
	}

	return out
}

// pickDriver selects, among eligible, the driver with the most remaining
// seats, breaking ties via tie.
func pickDriver(eligible []int, das []transport.DriverAssignment, tie *tiebreak.Source) int {
	if len(eligible) == 1 {
		return eligible[0]
	}

	max := -1
	var candidates []int
	for _, d := range eligible {
		switch {
		case das[d].RemainingSeats > max:
			max = das[d].RemainingSeats
			candidates = []int{d}
		case das[d].RemainingSeats == max:
			candidates = append(candidates, d)
		}
	}

	return candidates[tie.Pick(len(candidates))]
}

// commitPath computes the path a driver commits to on its first accepted
// rider: the plain shortest path when the driver allows no deviation
// (threshold 0, the corridor-rule branch), otherwise the concatenation
// driver.Source -> rider.Source -> rider.Destination -> driver.Destination.
func commitPath(oracle *pathoracle.Oracle, d transport.Driver, r transport.Rider) ([]string, error) {
	if d.ThresholdPct == 0 {
		return oracle.Spp(d.Source, d.Destination)
	}

	toSource, err := oracle.Spp(d.Source, r.Source)
	if err != nil {
		return nil, err
	}
	riderLeg, err := oracle.Spp(r.Source, r.Destination)
	if err != nil {
		return nil, err
	}
	fromDestination, err := oracle.Spp(r.Destination, d.Destination)
	if err != nil {
		return nil, err
	}

	full := append([]string{}, toSource...)
	if len(riderLeg) > 1 {
		full = append(full, riderLeg[1:]...)
	}
	if len(fromDestination) > 1 {
		full = append(full, fromDestination[1:]...)
	}

	return full, nil
}

// updateEligibility applies update_eligibility's post-assignment pass:
// drop every rider no longer on d's corridor, close rider r to every other
// driver (it is served), and zero out d's whole row once Accept has left it
// out of seats. Seat accounting itself lives in DriverAssignment.Accept,
// called by Assign just before this.
func updateEligibility(matrix *transport.EligibilityMatrix, corridor *eligibility.Corridor, d, r int, das []transport.DriverAssignment) {
	for j, rider := range matrix.Riders {
		if matrix.ER[d][j] && !corridor.OnRoute(rider.Source, rider.Destination) {
			matrix.ER[d][j] = false
		}
	}
	for i := range matrix.ER {
		matrix.ER[i][r] = false
	}

	if das[d].RemainingSeats == 0 {
		for j := range matrix.ER[d] {
			matrix.ER[d][j] = false
		}
	}

	matrix.RecomputeOffers()
}

func sum(xs []int) int {
	total := 0
	for _, x := range xs {
		total += x
	}

	return total
}
