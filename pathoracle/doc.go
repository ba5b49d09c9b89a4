// Package pathoracle implements the Path Oracle: a thin, memoizing facade
// over graph.Graph providing spd(u,v) (shortest-path distance) and spp(u,v)
// (shortest-path node sequence), keyed by (u,v).
//
// An Oracle is idempotent and safe for concurrent reads once populated, but
// population itself follows a single-writer discipline (one goroutine at a
// time calls into an uncached pair) — per spec.md §5, concurrent assigner
// runs must each hold their own Oracle rather than share one, so there is
// never contention to design around here.
package pathoracle
