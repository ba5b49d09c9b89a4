package ilp

import "github.com/deride-go/rideshare/transport"

// MaxRiders solves the max-riders ILP variant exactly via bipartite maximum
// flow (spec.md §4.6a): maximize the number of served riders subject to
// seat capacity and eligibility, with no fairness term.
func MaxRiders(m *Model) *transport.Assignment {
	fn := newFlowNetwork(m)
	fn.maxFlow()
	a := fn.matching(m)

	return m.toResult("ilp-max-riders", a)
}
