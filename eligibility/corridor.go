// File: corridor.go
// Role: the corridor eligibility rule package deride alone uses for
// threshold=0 drivers (spec.md §4.3, §8 boundary behavior). BuildCorridor is
// reusable over any driver path, not just a committed one: BuildDeRide calls
// it at Phase-1 build time over a threshold=0 driver's own shortest path,
// and deride.Assign calls it again at Phase-2 assignment time over a
// threshold!=0 driver's first committed (deviated) path.
//
// Grounded on find_nodes_within_threshold and is_on_deviated_route in
// original_source/WithOpenStreetMap/mainDeRide.py: for every node on the
// driver's path, walk outward up to a fixed radius and record the nearest
// path node (anchor) reachable within that radius; a rider is on route iff
// both its source and destination resolve to an anchor, and the source's
// anchor comes strictly earlier on the path than the destination's.

package eligibility

import (
	"github.com/deride-go/rideshare/graph"
)

// Corridor is the set of nodes reachable within radius of some node on a
// committed driver path, each mapped to its nearest path anchor.
type Corridor struct {
	path   []string
	index  map[string]int // path node -> position in path
	anchor map[string]string
}

// BuildCorridor walks every node on path and records, for each node within
// radius of some path node, the nearest such path node (the anchor). Ties
// are broken in favor of the first path node reached at the smaller
// distance; path is walked in order so earlier path nodes win exact ties,
// matching find_nodes_within_threshold's left-to-right scan.
func BuildCorridor(g *graph.Graph, path []string, radius int64) (*Corridor, error) {
	c := &Corridor{
		path:   path,
		index:  make(map[string]int, len(path)),
		anchor: make(map[string]string),
	}
	dist := make(map[string]int64)

	for i, p := range path {
		c.index[p] = i
	}

	for _, p := range path {
		within, err := g.SingleSourceWithin(p, radius)
		if err != nil {
			return nil, err
		}
		for node, d := range within {
			if best, ok := dist[node]; !ok || d < best {
				dist[node] = d
				c.anchor[node] = p
			}
		}
	}

	return c, nil
}

// OnRoute reports whether a rider with the given source and destination
// lies on the corridor: both endpoints must resolve to an anchor, and the
// source's anchor must strictly precede the destination's anchor along
// path order (is_on_deviated_route uses a strict index comparison — a
// rider whose source and destination share an anchor is not on route).
func (c *Corridor) OnRoute(source, destination string) bool {
	srcAnchor, ok := c.anchor[source]
	if !ok {
		return false
	}
	dstAnchor, ok := c.anchor[destination]
	if !ok {
		return false
	}

	return c.index[srcAnchor] < c.index[dstAnchor]
}
