// Package network implements spec.md's capacitated flow network: a
// directed graph fixed to string vertex names (because transformations
// synthesize reserved names a', z', a'', z'', and X' for restricted
// vertices), carrying per-arc capacity/restriction/flow/cost and
// per-network flow/cost aggregates.
//
// It hosts the transformation pair that reduces a multi-source/multi-sink,
// vertex-bounded problem to a canonical single-source/single-sink network
// with only arc capacities (makeTransformations/revertTransformations),
// Ford–Fulkerson with initial-feasible-flow construction, and two
// minimum-cost-flow algorithms (cycle cancellation and successive shortest
// paths), the latter two delegating shortest-path work to the digraph
// package's generalized Dijkstra over a marginal (residual) network.
//
// Like ungraph and digraph, every algorithm here copies its input before
// mutating and returns a disjoint result.
package network
