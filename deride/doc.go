// Package deride implements the Greedy Assigner — Efficiency variant
// (spec.md §4.4, "DeRide"): rarity-first rider selection, max-remaining-
// seats driver tie-break, and a per-driver committed path that is computed
// once (on that driver's first accepted rider) and then used to re-score
// the driver's remaining eligible riders via the corridor rule.
//
// Grounded on EligibilityRiderMatrix.assign_riders_to_drivers,
// select_driver, calculate_deviated_path_for_assignment and
// update_eligibility in
// original_source/WithOpenStreetMap/mainDeRide.py.
package deride
