// File: report.go
// Role: Build computes transport.Metrics from a transport.Assignment, per
// spec.md §4.7 and its edge cases (zero riders or zero drivers yield
// well-defined metrics: variance 0, Gini 0).

package report

import (
	"math"
	"sort"

	"github.com/deride-go/rideshare/transport"
)

// Build computes the full Metrics for assignment against totalRiders (the
// rider count the assigner was run against, which may exceed the number
// served).
func Build(assignment *transport.Assignment, totalRiders int) transport.Metrics {
	loads := make([]int, len(assignment.Drivers))
	totalSeats := 0
	for i, d := range assignment.Drivers {
		loads[i] = d.Load()
		totalSeats += d.Driver.InitialSeats
	}

	totalServed := assignment.TotalServed()
	mean := meanOf(loads)
	varc := varianceOf(loads, mean)

	m := transport.Metrics{
		RunID:       assignment.RunID,
		Variant:     assignment.Variant,
		TotalRiders: totalRiders,
		TotalServed: totalServed,
		Loads:       loads,
		Mean:        mean,
		Variance:    varc,
		StdDev:      math.Sqrt(varc),
		Gini:        giniOf(loads),
	}

	if totalSeats > 0 {
		m.SeatUtilization = float64(totalServed) / float64(totalSeats)
	}

	zero := 0
	minLoad, maxLoad := 0, 0
	for i, l := range loads {
		if l == 0 {
			zero++
		}
		if i == 0 || l < minLoad {
			minLoad = l
		}
		if i == 0 || l > maxLoad {
			maxLoad = l
		}
	}
	m.ZeroLoadDrivers = zero
	m.Spread = maxLoad - minLoad

	if maxLoad > 0 {
		m.FairnessRatio = float64(minLoad) / float64(maxLoad)
	} else {
		m.FairnessRatio = 1
	}

	return m
}

func meanOf(loads []int) float64 {
	if len(loads) == 0 {
		return 0
	}
	total := 0
	for _, l := range loads {
		total += l
	}

	return float64(total) / float64(len(loads))
}

func varianceOf(loads []int, mean float64) float64 {
	if len(loads) == 0 {
		return 0
	}
	sum := 0.0
	for _, l := range loads {
		d := float64(l) - mean
		sum += d * d
	}

	return sum / float64(len(loads))
}

// giniOf computes G = (2 * sum_i i*sorted_load_i) / (n * sum(load)) -
// (n+1)/n, with 1-indexed i per spec.md §4.7. Returns 0 when total load is 0.
func giniOf(loads []int) float64 {
	n := len(loads)
	if n == 0 {
		return 0
	}

	sorted := append([]int{}, loads...)
	sort.Ints(sorted)

	total := 0
	weighted := 0
	for i, l := range sorted {
		total += l
		weighted += (i + 1) * l
	}
	if total == 0 {
		return 0
	}

	return (2*float64(weighted))/(float64(n)*float64(total)) - float64(n+1)/float64(n)
}
