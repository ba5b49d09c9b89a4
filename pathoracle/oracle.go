package pathoracle

import (
	"sync"

	"github.com/deride-go/rideshare/graph"
)

// pairKey identifies a memoized (source, destination) shortest-path query.
type pairKey struct {
	u, v string
}

// entry caches both the distance and the path for a pair, computed together
// on first access (one graph query for each) and stored as one value.
type entry struct {
	dist int64
	path []string
}

// Oracle memoizes shortest-path distance and node-sequence queries against a
// single underlying *graph.Graph. Construct one Oracle per independent
// assignment run (spec.md §5) — never share an Oracle across concurrently
// running variants.
type Oracle struct {
	g *graph.Graph

	mu    sync.RWMutex
	cache map[pairKey]entry
}

// New returns an Oracle backed by g. g is never mutated.
func New(g *graph.Graph) *Oracle {
	return &Oracle{g: g, cache: make(map[pairKey]entry)}
}

// Spd returns the shortest-path distance from u to v, or graph.Unreachable
// if v is not reachable from u.
func (o *Oracle) Spd(u, v string) (int64, error) {
	e, err := o.resolve(u, v)
	if err != nil {
		return 0, err
	}

	return e.dist, nil
}

// Spp returns the shortest-path node sequence from u to v, or an empty
// slice if v is not reachable from u.
func (o *Oracle) Spp(u, v string) ([]string, error) {
	e, err := o.resolve(u, v)
	if err != nil {
		return nil, err
	}

	return e.path, nil
}

func (o *Oracle) resolve(u, v string) (entry, error) {
	key := pairKey{u, v}

	o.mu.RLock()
	e, ok := o.cache[key]
	o.mu.RUnlock()
	if ok {
		return e, nil
	}

	dist, err := o.g.ShortestPathDistance(u, v)
	if err != nil {
		return entry{}, err
	}
	path, err := o.g.ShortestPath(u, v)
	if err != nil {
		return entry{}, err
	}
	e = entry{dist: dist, path: path}

	o.mu.Lock()
	o.cache[key] = e
	o.mu.Unlock()

	return e, nil
}
