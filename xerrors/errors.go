// Package xerrors declares the three failure kinds shared by ungraph,
// digraph, and network: a caller-visible precondition violation, an
// infeasible flow problem, and a negative cycle where one isn't tolerated.
//
// Every package-level sentinel error elsewhere in this module wraps one of
// these with fmt.Errorf("%w: ...", ...), so a caller (in particular the
// cmd/ front ends) can classify any failure with errors.Is(err, xerrors.ErrX)
// without knowing which package raised it.
package xerrors

import "errors"

// ErrInvariant marks a caller-visible precondition violation: a missing
// vertex or arc, an empty graph where one is required, an odd-degree
// vertex for Fleury, a loop or parallel arc in a Network, a negative
// capacity/restriction/flow, flow exceeding capacity, or a missing
// source/sink for a flow computation.
var ErrInvariant = errors.New("invariant violated")

// ErrInfeasible marks a flow problem that has no solution after reduction
// to a canonical single-source/single-sink network.
var ErrInfeasible = errors.New("infeasible")

// ErrNegativeCycle marks a negative cycle found where the algorithm
// requires acyclic negativity (Floyd–Warshall). Dijkstra's negative-cycle
// case is not an error: it is a normal result carried via a CycleFound
// flag (see digraph.DijkstraResult).
var ErrNegativeCycle = errors.New("negative cycle detected")
