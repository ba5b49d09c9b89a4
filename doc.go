// Package rideshare is a ridesharing assignment engine: given drivers
// (source, destination, seats, detour tolerance) and riders (source,
// destination) on a weighted directed road network, it computes
// rider-to-driver assignments under seat capacity and per-driver detour
// budgets.
//
// What is rideshare?
//
//	A small, dependency-light assignment engine that brings together:
//
//	  - Graph Store: an immutable directed weighted graph with Dijkstra
//	    shortest paths and radius-bounded single-source queries.
//	  - Eligibility Engine: a driver x rider feasibility matrix derived from
//	    detour-budget comparisons, plus a corridor-based variant for
//	    zero-tolerance drivers.
//	  - Two greedy assigners (DeRide, DeRideFair) and four ILP objectives
//	    (max-riders, min-max scalarization, classical two-phase max-min,
//	    lexicographic max-min) sharing one eligibility model.
//	  - A Report Builder computing load statistics and the Gini coefficient
//	    of the resulting per-driver load distribution.
//
// Why these trade-offs?
//
//   - Reproducible   — every source of randomness is an injectable seeded
//     tie-break source, never an ambient global.
//   - Composable      — both greedy assigners take a *pathoracle.Oracle and
//     a *transport.EligibilityMatrix, and the ILP variants take an
//     *ilp.Model snapshot of that same matrix, so adding another variant
//     means adding code beside the existing six, not changing them.
//   - Bounded          — greedy assigners loop until no eligibility is left,
//     with no separate iteration cap; ILP variants are capped by a solver
//     time limit via context deadlines when one is configured.
//
// Under the hood, everything is organized by concern:
//
//	graph/        — the Graph Store: vertices, edges, Dijkstra
//	pathoracle/   — memoized shortest-path distance/path queries
//	transport/    — the shared data model: Driver, Rider, Assignment, Metrics
//	eligibility/  — the Eligibility Engine (standard rule + corridor rule)
//	deride/       — Greedy Assigner, efficiency variant
//	deridefair/   — Greedy Assigner, fairness variant
//	ilp/          — the ILP Assigner's four objectives
//	report/       — the Report Builder
//	ingest/       — CSV loading for graph/drivers/riders
//	reportio/     — CSV/summary output
//	genfleet/     — random driver/rider fleet generation for benchmarking
//	rideconfig/   — configuration resolution (env/file/defaults)
//	tiebreak/     — the seeded tie-break source used by the greedy assigners
//	cmd/rideshare — the CLI host wiring all of the above together
//
//	go get github.com/deride-go/rideshare
package rideshare
