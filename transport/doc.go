// Package transport defines the shared data model every other package in
// this module operates on: Driver, Rider, EligibilityMatrix, Assignment and
// Metrics, per spec.md §3.
//
// Lifecycle: Driver and Rider values are constructed once from ingest and
// never mutated (RemainingSeats lives on Assignment, not Driver, so the
// input fleet stays immutable across repeated assigner runs against it).
// EligibilityMatrix is built once by the eligibility package and then
// mutated in place by exactly one assigner for the duration of its run.
package transport
