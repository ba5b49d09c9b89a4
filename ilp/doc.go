// Package ilp implements the ILP Assigner's four objective variants
// (spec.md §4.6): max-riders, min-max scalarization, classical two-phase
// max-min, and lexicographic max-min.
//
// No MILP solver library appears anywhere in the retrieved example pack, so
// two engines are used instead, each grounded on a different part of it:
//
//   - MaxRiders is solved exactly via bipartite maximum flow — the
//     assignment polytope's LP relaxation is already integral, so flow is
//     an exact substitute for the ILP, not an approximation. The flow
//     engine itself is Dinic's algorithm adapted from flow/dinic.go in the
//     teacher repository, generalized from float64 edge capacities over a
//     *core.Graph to the int64 driver-seat/rider-slot capacities this
//     package's bipartite network needs.
//   - The three fairness variants (min-max scalarization, two-phase max-min,
//     lexicographic max-min) are not flow problems — they optimize a
//     nonlinear function of the per-driver load vector — so they are solved
//     by a branch-and-bound search over the same 0/1 assignment variables
//     pyscipopt's Model would hold (see mainSCIP.py /
//     mainSCIPDeRideFairMaxMinFrns2phase.py /
//     mainSCIPDeRideFairMaxMinFrnsLexico.py /
//     mainSCIPDeRideFairMaxMinSclrzd.py for the constraint shapes this
//     mirrors), bounded by a context deadline rather than a node limit.
package ilp
