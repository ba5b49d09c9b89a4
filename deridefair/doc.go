// Package deridefair implements the Greedy Assigner — Fairness variant
// (spec.md §4.5, "DeRideFair"): rarity-first rider selection as in package
// deride, but driver selection groups eligible drivers by current load
// (fewest riders first) and re-validates the whole route — recomputed
// fresh from scratch as driver.Source -> every accepted+candidate rider
// source in order -> every accepted+candidate rider destination in order
// -> driver.Destination — against MP_d before committing.
//
// Grounded on assign_riders_to_drivers, select_driver_algorithm2 and
// calculate_updated_route_length in
// original_source/WithOpenStreetMap/mainDeRideFair.py. Unlike package
// deride, this variant never reopens eligibility once a path is committed —
// a rider is either accepted (closing its column for every driver) or
// eligibility exhausts to zero with no seat assigned.
package deridefair
