// File: assign.go
// Role: the Greedy Assigner — Fairness loop (spec.md §4.5), translated from
// assign_riders_to_drivers/select_driver_algorithm2/
// calculate_updated_route_length in
// original_source/WithOpenStreetMap/mainDeRideFair.py.

package deridefair

import (
	"math"

	"github.com/deride-go/rideshare/eligibility"
	"github.com/deride-go/rideshare/graph"
	"github.com/deride-go/rideshare/pathoracle"
	"github.com/deride-go/rideshare/tiebreak"
	"github.com/deride-go/rideshare/transport"
)

// Option configures an Assign run.
type Option func(*config)

type config struct {
	tie *tiebreak.Source
}

// WithTieBreak supplies the tiebreak.Source used to resolve ties among
// equally-eligible riders and equally-loaded driver groups. Defaults to a
// deterministic source when omitted.
func WithTieBreak(s *tiebreak.Source) Option {
	return func(c *config) { c.tie = s }
}

// Assign runs the Greedy Assigner — Fairness variant to completion,
// mutating matrix in place and returning the resulting Assignment.
func Assign(oracle *pathoracle.Oracle, matrix *transport.EligibilityMatrix, opts ...Option) (*transport.Assignment, error) {
	cfg := &config{tie: tiebreak.New()}
	for _, opt := range opts {
		opt(cfg)
	}

	drivers := matrix.Drivers
	riders := matrix.Riders

	das := make([]transport.DriverAssignment, len(drivers))
	accepted := make([][]transport.Rider, len(drivers))
	for i, d := range drivers {
		das[i] = transport.DriverAssignment{Driver: d, RemainingSeats: d.InitialSeats}
	}

	for sum(matrix.Offers) > 0 {
		r := pickRider(matrix.Offers, cfg.tie)

		eligibleDrivers := eligibleFor(matrix.ER, r)
		if len(eligibleDrivers) == 0 {
			closeColumn(matrix, r)
			continue
		}

		d, err := selectDriver(oracle, eligibleDrivers, drivers, accepted, riders[r], cfg.tie)
		if err != nil {
			return nil, err
		}
		if d == -1 {
			closeColumn(matrix, r)
			continue
		}

		if das[d].RemainingSeats == 0 {
			matrix.ER[d][r] = false
			matrix.RecomputeOffers()
			continue
		}

		das[d].Accept(riders[r].ID)
		accepted[d] = append(accepted[d], riders[r])
		closeColumn(matrix, r)
		if das[d].RemainingSeats == 0 {
			for j := range matrix.ER[d] {
				matrix.ER[d][j] = false
			}
		}
		matrix.RecomputeOffers()
	}

	return &transport.Assignment{Variant: "deridefair", Drivers: das}, nil
}

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

func eligibleFor(er [][]bool, r int) []int {
	var out []int
	for d := range er {
		if er[d][r] {
			out = append(out, d)
		}
	}

	return out
}

func closeColumn(matrix *transport.EligibilityMatrix, r int) {
	for i := range matrix.ER {
		matrix.ER[i][r] = false
	}
	matrix.RecomputeOffers()
}

// selectDriver implements select_driver_algorithm2: a single eligible
// driver is checked directly against the route constraint; several are
// grouped by ascending current load, and within each group drivers are
// tried (randomly among ties) until one satisfies the constraint or the
// group is exhausted. Returns -1 if no eligible driver satisfies the route
// constraint.
func selectDriver(oracle *pathoracle.Oracle, eligible []int, drivers []transport.Driver, accepted [][]transport.Rider, rider transport.Rider, tie *tiebreak.Source) (int, error) {
	if len(eligible) == 1 {
		d := eligible[0]
		ok, err := satisfiesRouteConstraint(oracle, drivers[d], accepted[d], rider)
		if err != nil {
			return -1, err
		}
		if !ok {
			return -1, nil
		}

		return d, nil
	}

	groups := groupByLoad(eligible, accepted)
	for _, group := range groups {
		remaining := append([]int{}, group...)
		for len(remaining) > 0 {
			idx := tie.Pick(len(remaining))
			d := remaining[idx]

			ok, err := satisfiesRouteConstraint(oracle, drivers[d], accepted[d], rider)
			if err != nil {
				return -1, err
			}
			if ok {
				return d, nil
			}

			remaining = append(remaining[:idx], remaining[idx+1:]...)
		}
	}

	return -1, nil
}

// groupByLoad partitions eligible driver indices into ascending-load
// groups, each internally unordered (ties within a group are broken by the
// caller's tie-break source at selection time, not by this ordering).
func groupByLoad(eligible []int, accepted [][]transport.Rider) [][]int {
	byLoad := make(map[int][]int)
	var loads []int
	for _, d := range eligible {
		load := len(accepted[d])
		if _, ok := byLoad[load]; !ok {
			loads = append(loads, load)
		}
		byLoad[load] = append(byLoad[load], d)
	}

	for i := 1; i < len(loads); i++ {
		for j := i; j > 0 && loads[j-1] > loads[j]; j-- {
			loads[j-1], loads[j] = loads[j], loads[j-1]
		}
	}

	out := make([][]int, len(loads))
	for i, l := range loads {
		out[i] = byLoad[l]
	}

	return out
}

// satisfiesRouteConstraint recomputes the driver's full route length with
// accepted plus candidate appended, per calculate_updated_route_length,
// and checks it against MP_d.
func satisfiesRouteConstraint(oracle *pathoracle.Oracle, driver transport.Driver, accepted []transport.Rider, candidate transport.Rider) (bool, error) {
	sp, err := oracle.Spd(driver.Source, driver.Destination)
	if err != nil {
		return false, err
	}
	mp := eligibility.MP(driver, sp)

	length, err := updatedRouteLength(oracle, driver, accepted, candidate)
	if err != nil {
		return false, err
	}

	return length <= mp, nil
}

// updatedRouteLength computes the route length for driver carrying accepted
// plus candidate. With no prior riders it is exactly DP(driver, candidate)
// (or SP when the driver allows no deviation); otherwise it walks the fixed
// waypoint order driver.Source -> every rider source in order -> every
// rider destination in order -> driver.Destination.
func updatedRouteLength(oracle *pathoracle.Oracle, driver transport.Driver, accepted []transport.Rider, candidate transport.Rider) (float64, error) {
	if len(accepted) == 0 {
		if driver.ThresholdPct == 0 {
			sp, err := oracle.Spd(driver.Source, driver.Destination)
			if err != nil {
				return 0, err
			}

			return toFloat(sp), nil
		}

		return eligibility.DP(oracle, driver, candidate)
	}

	all := append(append([]transport.Rider{}, accepted...), candidate)

	waypoints := []string{driver.Source}
	for _, r := range all {
		waypoints = append(waypoints, r.Source)
	}
	for _, r := range all {
		waypoints = append(waypoints, r.Destination)
	}
	waypoints = append(waypoints, driver.Destination)

	total := 0.0
	for i := 0; i < len(waypoints)-1; i++ {
		d, err := oracle.Spd(waypoints[i], waypoints[i+1])
		if err != nil {
			return 0, err
		}
		total += toFloat(d)
	}

	return total, nil
}

func toFloat(d int64) float64 {
	if d == graph.Unreachable {
		return math.Inf(1)
	}

	return float64(d)
}

func sum(xs []int) int {
	total := 0
	for _, x := range xs {
		total += x
	}

	return total
}
