// Package graph implements the Graph Store: an immutable, directed, weighted
// road network loaded once from an edge list and never mutated afterward.
//
// It owns vertices, edges, and adjacency exclusively; every other package in
// this module holds only a read-only *Graph reference. Shortest-path queries
// run Dijkstra's algorithm with a lazy-decrease-key min-heap and break ties
// deterministically by lowest successor vertex ID, so repeated runs against
// the same graph always return the same distances and the same paths.
//
// Complexity:
//
//   - Build:                       O(E log E) (per-source edge sort).
//   - ShortestPathDistance/Path:   O((V + E) log V) per call, uncached.
//   - SingleSourceWithin(cutoff):  O((V + E) log V), bounded by cutoff.
//
// Concurrency: a *Graph is safe for concurrent read-only use by multiple
// goroutines once Build has returned (e.g. several assigner variants
// benchmarked in parallel, each holding its own pathoracle.Oracle).
package graph
