package network

import (
	"fmt"

	"github.com/google/uuid"
)

// transformState is makeTransformations' bookkeeping handed back to
// revertTransformations: the actual dummy vertex name used for each
// ranged vertex. Synthesizing it from dummyNameFor rather than assuming
// name+DummySuffix everywhere means a user vertex that happens to be
// named "X'" never collides with the dummy minted for X.
type transformState struct {
	dummyOf map[string]string // original vertex name -> dummy vertex name
}

// dummyNameFor returns a dummy vertex name for name that does not already
// exist in out. The common case is name+DummySuffix; on the rare
// collision (a loaded vertex literally named "X'") a uuid-tagged name is
// minted instead, keeping repeated transform/revert cycles within one
// process collision-free without the caller needing to track a counter.
func dummyNameFor(out *Network, name string) string {
	candidate := name + DummySuffix
	if !out.HasVertex(candidate) {
		return candidate
	}

	return name + "-" + uuid.NewString()
}

// makeTransformations reduces a multi-source/multi-sink, vertex-bounded
// network to a canonical single-source/single-sink network with only arc
// capacities, per spec.md §4.4:
//
//  1. add super-source a' and super-sink z';
//  2. for every declared source s, add a' -> s with infinite capacity,
//     zero restriction, initial flow = s's current total outflow;
//     symmetrically t -> z' for every declared sink;
//  3. for every vertex X with a declared range [lo, hi], add a dummy X',
//     move every outgoing arc of X so its source becomes X' (bounds and
//     flow preserved), and add X -> X' with capacity hi, restriction lo,
//     initial flow equal to the moved arcs' summed flow.
//
// The returned network is a clone; net is never mutated. ranges is keyed
// by vertex name and may be empty. The returned transformState must be
// passed back to revertTransformations.
func makeTransformations(net *Network, sources, sinks []string, ranges map[string]VertexRange) (*Network, *transformState, error) {
	out := net.Clone()
	out.addReservedVertex(SuperSource)
	out.addReservedVertex(SuperSink)

	for _, s := range sources {
		sv, ok := out.Vertex(s)
		if !ok {
			return nil, nil, fmt.Errorf("%w: declared source %v", ErrVertexNotFound, s)
		}
		var outflow int64
		for _, a := range sv.OutArcs {
			outflow += a.Flow
		}
		if _, err := out.addArcUnchecked(SuperSource, s, Infinity, 0, outflow, 0); err != nil {
			return nil, nil, err
		}
	}

	for _, t := range sinks {
		tv, ok := out.Vertex(t)
		if !ok {
			return nil, nil, fmt.Errorf("%w: declared sink %v", ErrVertexNotFound, t)
		}
		var inflow int64
		for _, a := range tv.InArcs {
			inflow += a.Flow
		}
		if _, err := out.addArcUnchecked(t, SuperSink, Infinity, 0, inflow, 0); err != nil {
			return nil, nil, err
		}
	}

	state := &transformState{dummyOf: make(map[string]string, len(ranges))}
	for name, rng := range ranges {
		v, ok := out.Vertex(name)
		if !ok {
			return nil, nil, fmt.Errorf("%w: ranged vertex %v", ErrVertexNotFound, name)
		}
		dummy := dummyNameFor(out, name)
		state.dummyOf[name] = dummy
		out.addReservedVertex(dummy)

		moved := snapshotOutArcs(v)
		var movedFlow int64
		for _, a := range moved {
			movedFlow += a.Flow
			out.RemoveArc(name, a.Terminus)
			if _, err := out.addArcUnchecked(dummy, a.Terminus, a.Capacity, a.Restriction, a.Flow, a.Cost); err != nil {
				return nil, nil, err
			}
		}
		if _, err := out.addArcUnchecked(name, dummy, rng.Max, rng.Min, movedFlow, 0); err != nil {
			return nil, nil, err
		}
	}

	return out, state, nil
}

// revertTransformations undoes makeTransformations: removes a' and z',
// and for each ranged vertex moves its dummy's outgoing arcs back onto
// the original vertex before discarding the dummy. net is cloned, never
// mutated. state must be the value makeTransformations returned for this
// same transformation.
func revertTransformations(net *Network, state *transformState) (*Network, error) {
	out := net.Clone()

	for name, dummy := range state.dummyOf {
		dv, ok := out.Vertex(dummy)
		if !ok {
			continue
		}
		for _, a := range snapshotOutArcs(dv) {
			if _, err := out.addArcUnchecked(name, a.Terminus, a.Capacity, a.Restriction, a.Flow, a.Cost); err != nil {
				return nil, err
			}
		}
		out.RemoveVertex(dummy)
	}
	out.RemoveVertex(SuperSource)
	out.RemoveVertex(SuperSink)

	return out, nil
}

// snapshotOutArcs copies v's OutArcs into a stable slice so callers can
// mutate the network (which rewrites the underlying map) while iterating.
func snapshotOutArcs(v *Vertex) []*Arc {
	out := make([]*Arc, 0, len(v.OutArcs))
	for _, a := range v.OutArcs {
		out = append(out, a)
	}

	return out
}
