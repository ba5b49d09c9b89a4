// File: dijkstra.go
// Role: Dijkstra's algorithm over *Graph, exposing the three Graph Store
// operations spec.md §4.1 names: ShortestPathDistance, ShortestPath and
// SingleSourceWithin.
//
// Grounded on katalvlaran-lvlath/dijkstra/dijkstra.go: a lazy-decrease-key
// min-heap (stale heap entries are skipped via a "visited" set rather than
// repaired in place), plus an upfront stop condition once the frontier's
// minimum distance exceeds a cutoff. Adapted here to: (a) always return a
// path (predecessors are always tracked, since every Graph Store caller
// needs both distance and path), and (b) break ties deterministically by
// lowest successor vertex id, per spec.md §4.1 — the teacher's version
// only orders by distance and leaves successor order to map iteration.

package graph

import (
	"container/heap"
	"math"
)

// Unreachable is the sentinel distance returned for node pairs with no path.
const Unreachable = math.MaxInt64

// ShortestPathDistance returns the minimum edge-weight sum from u to v, or
// Unreachable if v is not reachable from u. Returns ErrNodeNotFound if
// either endpoint is absent from the graph.
//
// Complexity: O((V + E) log V).
func (g *Graph) ShortestPathDistance(u, v string) (int64, error) {
	dist, _, err := g.dijkstra(u, math.MaxInt64)
	if err != nil {
		return 0, err
	}
	if !g.HasNode(v) {
		return 0, ErrNodeNotFound
	}

	return dist[v], nil
}

// ShortestPath returns the sequence of node IDs from u to v inclusive, or an
// empty slice if v is unreachable from u. Ties among equal-length paths are
// broken deterministically: equal-distance vertices are settled in
// ascending ID order, successors are relaxed in ascending ID order, and the
// first relaxation to reach a distance keeps its predecessor, so the same
// graph always yields the same path. That path is not necessarily the
// lexicographically smallest among shortest paths.
//
// Complexity: O((V + E) log V).
func (g *Graph) ShortestPath(u, v string) ([]string, error) {
	dist, prev, err := g.dijkstra(u, math.MaxInt64)
	if err != nil {
		return nil, err
	}
	if !g.HasNode(v) {
		return nil, ErrNodeNotFound
	}
	if dist[v] == Unreachable {
		return nil, nil
	}

	var path []string
	for cur := v; ; {
		path = append(path, cur)
		if cur == u {
			break
		}
		cur = prev[cur]
	}
	// path was built backwards (v -> ... -> u); reverse in place.
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}

// SingleSourceWithin returns every node n reachable from u with
// distance(u,n) <= cutoff, mapped to that distance. u itself is included
// with distance 0. Used by the Eligibility Engine to build a driver's
// corridor (spec.md §4.3).
//
// Complexity: O((V + E) log V), bounded in practice by cutoff.
func (g *Graph) SingleSourceWithin(u string, cutoff int64) (map[string]int64, error) {
	dist, _, err := g.dijkstra(u, cutoff)
	if err != nil {
		return nil, err
	}

	out := make(map[string]int64, len(dist))
	for n, d := range dist {
		if d <= cutoff {
			out[n] = d
		}
	}

	return out, nil
}

// dijkstra runs single-source Dijkstra from u, exploring only vertices
// whose distance does not exceed maxDistance. It always records
// predecessors, since every caller in this package needs them.
func (g *Graph) dijkstra(u string, maxDistance int64) (dist map[string]int64, prev map[string]string, err error) {
	if u == "" {
		return nil, nil, ErrEmptyNodeID
	}
	if !g.HasNode(u) {
		return nil, nil, ErrNodeNotFound
	}

	g.muAdj.RLock()
	defer g.muAdj.RUnlock()

	nodes := g.Nodes()
	dist = make(map[string]int64, len(nodes))
	prev = make(map[string]string, len(nodes))
	visited := make(map[string]bool, len(nodes))
	for _, n := range nodes {
		dist[n] = Unreachable
	}
	dist[u] = 0

	pq := make(nodePQ, 0, len(nodes))
	heap.Init(&pq)
	heap.Push(&pq, &nodeItem{id: u, dist: 0})

	for pq.Len() > 0 {
		item := heap.Pop(&pq).(*nodeItem)
		cur, d := item.id, item.dist
		if visited[cur] {
			continue
		}
		if d > maxDistance {
			break
		}
		visited[cur] = true

		// successors() is already sorted by destination id ascending, so
		// equal-distance relaxations are considered in deterministic order.
		for _, e := range g.successors(cur) {
			newDist := d + e.Weight
			if newDist > maxDistance {
				continue
			}
			if newDist >= dist[e.To] {
				continue
			}
			dist[e.To] = newDist
			prev[e.To] = cur
			heap.Push(&pq, &nodeItem{id: e.To, dist: newDist})
		}
	}

	return dist, prev, nil
}

// nodeItem is one (vertex, tentative distance) entry in the priority queue.
type nodeItem struct {
	id   string
	dist int64
}

// nodePQ is a min-heap of *nodeItem ordered by dist ascending, then by id
// ascending so that equal-distance pops happen in deterministic order.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int { return len(pq) }
func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}
	return pq[i].id < pq[j].id
}
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }
func (pq *nodePQ) Push(x any)   { *pq = append(*pq, x.(*nodeItem)) }
func (pq *nodePQ) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
