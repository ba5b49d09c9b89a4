// Package eligibility implements the Eligibility Engine: it builds the
// driver x rider binary eligibility matrix ER and the column-sum vector
// offers (spec.md §4.3).
//
// There are two Phase-1 constructors because DeRide and DeRideFair disagree
// about threshold=0 drivers (spec.md §8's boundary-behavior table) —
//
//	"Threshold=0: DeRide uses corridor rule; DeRideFair uses MP_d = SP_d
//	(no deviation allowed); both respected."
//
// Build applies the standard rule — ER[d][r] = 1 iff the deviated path
// length DP(d,r) does not exceed the driver's maximum permissible path MP_d
// — uniformly, regardless of threshold. This is what DeRideFair and every
// ILP variant use: EligibilityRiderMatrix.calculate in
// original_source/WithOpenStreetMap/mainDeRideFair.py applies the standard
// DP<=MP rule with no threshold==0 special case at all (MP_d collapses to
// SP_d exactly when t=0, so "no deviation allowed" falls out of the formula
// for free).
//
// BuildDeRide is what package deride uses instead: its
// EligibilityRiderMatrix.calculate in
// original_source/WithOpenStreetMap/mainDeRide.py branches on t==0 — a
// threshold=0 driver's row is seeded from the corridor rule (BuildCorridor
// over the driver's own shortest path), not the standard rule, since a
// threshold of 0 does not mean "no deviation" to DeRide the way it does to
// DeRideFair; it means "only this driver's exact route, corridor-widened".
// Threshold!=0 drivers still get the standard rule in BuildDeRide. This
// Phase-1 corridor seeding is the precondition that makes deride.Assign's
// own Phase-2 guard (`if drivers[d].ThresholdPct != 0 ...`, which only
// reopens ER for threshold!=0 drivers) correct: a threshold=0 driver's
// committed path is always its own shortest path, so Phase 1's corridor
// here is already final and never needs reopening.
package eligibility
