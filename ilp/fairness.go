package ilp

import "sort"

// meanLoad returns the arithmetic mean of loads.
func meanLoad(loads []int) float64 {
	if len(loads) == 0 {
		return 0
	}
	total := 0
	for _, l := range loads {
		total += l
	}

	return float64(total) / float64(len(loads))
}

// variance returns the population variance of loads (divided by n, matching
// f2 in mainSCIPDeRideFairMaxMinSclrzd.py's define_model_maxmin_scalarization).
func variance(loads []int) float64 {
	if len(loads) == 0 {
		return 0
	}
	mean := meanLoad(loads)
	sum := 0.0
	for _, l := range loads {
		d := float64(l) - mean
		sum += d * d
	}

	return sum / float64(len(loads))
}

// minLoad returns the smallest entry in loads, or 0 for an empty fleet.
func minLoad(loads []int) int {
	if len(loads) == 0 {
		return 0
	}
	m := loads[0]
	for _, l := range loads[1:] {
		if l < m {
			m = l
		}
	}

	return m
}

// sortedAscending returns loads converted to float64 and sorted ascending,
// the representation leximin comparison needs (see bnb.go's scoreBetter:
// comparing sorted-ascending vectors lexicographically, preferring the
// larger value at the first difference, is exactly leximin).
func sortedAscending(loads []int) []float64 {
	out := make([]float64, len(loads))
	for i, l := range loads {
		out[i] = float64(l)
	}
	sort.Float64s(out)

	return out
}
