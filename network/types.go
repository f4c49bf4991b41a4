package network

import (
	"fmt"

	"github.com/arbolito/nagui/xerrors"
)

// ErrDuplicateVertex indicates AddVertex was called with a name already
// present in the network, or with one of the reserved transformation
// names (see IsReservedName).
var ErrDuplicateVertex = fmt.Errorf("network: %w: duplicate or reserved vertex name", xerrors.ErrInvariant)

// ErrVertexNotFound indicates an operation referenced a vertex absent
// from the network.
var ErrVertexNotFound = fmt.Errorf("network: %w: vertex not found", xerrors.ErrInvariant)

// ErrParallelArc indicates AddArc was asked to connect an ordered pair
// that already has an arc; a Network permits at most one arc per ordered
// pair (spec.md §3).
var ErrParallelArc = fmt.Errorf("network: %w: parallel arc", xerrors.ErrInvariant)

// ErrLoop indicates AddArc was asked to connect a vertex to itself, which
// a Network never permits (unlike Graph's loops).
var ErrLoop = fmt.Errorf("network: %w: loop arc not permitted", xerrors.ErrInvariant)

// ErrInvalidBounds indicates a capacity/restriction/flow triple violated
// restriction ≤ flow ≤ capacity, restriction ≥ 0, or capacity ≥ 0.
var ErrInvalidBounds = fmt.Errorf("network: %w: invalid capacity/restriction/flow bounds", xerrors.ErrInvariant)

// Reserved vertex names synthesized during transformations (spec.md
// §4.4, §9 "Reserved names"). A dummy vertex for an arbitrary restricted
// vertex X is named X + DummySuffix, unless a vertex of that name already
// exists (see dummyNameFor).
const (
	SuperSource      = "a'"
	SuperSink        = "z'"
	SuperSuperSource = "a''"
	SuperSuperSink   = "z''"
	DummySuffix      = "'"
)

// IsReservedName reports whether name collides with a name the
// transformation machinery synthesizes. The loader and AddVertex both
// reject these from user input.
func IsReservedName(name string) bool {
	switch name {
	case SuperSource, SuperSink, SuperSuperSource, SuperSuperSink:
		return true
	default:
		return false
	}
}

// Infinity stands in for an unbounded capacity, mirroring
// digraph.Infinity's headroom so arithmetic against it never overflows.
const Infinity int64 = 1<<62 - 1

// VertexRange is a vertex's declared inclusive throughput bound, loaded
// from the JSON document's min_flow/max_flow fields (spec.md §6). It is
// one of the side structures spec.md §3 keeps external to Network.
type VertexRange struct {
	Min int64
	Max int64
}

// Arc is a directed, capacitated connection from Source to Terminus.
// Invariant: Restriction ≤ Flow ≤ Capacity, Restriction ≥ 0, Capacity ≥ 0.
// Cost may be negative only in a marginal (residual) network, which is
// represented as a digraph.Digraph rather than a network.Arc.
type Arc struct {
	Capacity    int64
	Restriction int64
	Flow        int64
	Cost        int64
	Source      string
	Terminus    string
	Opposite    string
}

// Vertex is a node of a Network. InArcs/OutArcs are keyed by the opposite
// endpoint's name, which is what forbids parallel arcs (spec.md §3).
type Vertex struct {
	Name                string
	InDegree, OutDegree int
	InArcs              map[string]*Arc
	OutArcs             map[string]*Arc
}

// Network is spec.md's directed, capacitated flow network. CurrentFlow
// and CurrentCost are aggregates maintained by the flow algorithms; a
// freshly constructed or loaded Network has both at zero.
//
// The side structures spec.md §3 describes — declared sources, declared
// sinks, per-vertex [min,max] throughput ranges, per-vertex
// production/demand — are deliberately not network fields: spec.md says
// they "remain external", so algorithms that need them (Ford–Fulkerson,
// both min-cost-flow variants) take them as explicit parameters.
type Network struct {
	vertices    map[string]*Vertex
	order       []string
	CurrentFlow int64
	CurrentCost int64
}

// NewNetwork returns an empty Network.
func NewNetwork() *Network {
	return &Network{vertices: make(map[string]*Vertex)}
}

// AddVertex inserts a new vertex named name. Returns ErrDuplicateVertex if
// name is already present or is a reserved transformation name.
func (n *Network) AddVertex(name string) error {
	if IsReservedName(name) {
		return fmt.Errorf("%w: %v", ErrDuplicateVertex, name)
	}
	if _, ok := n.vertices[name]; ok {
		return fmt.Errorf("%w: %v", ErrDuplicateVertex, name)
	}
	n.vertices[name] = &Vertex{Name: name, InArcs: map[string]*Arc{}, OutArcs: map[string]*Arc{}}
	n.order = append(n.order, name)

	return nil
}

// addReservedVertex is addVertex without the reserved-name check, used
// internally by the transformation machinery to create a', z', a'', z'',
// and dummy X' vertices.
func (n *Network) addReservedVertex(name string) {
	if _, ok := n.vertices[name]; ok {
		return
	}
	n.vertices[name] = &Vertex{Name: name, InArcs: map[string]*Arc{}, OutArcs: map[string]*Arc{}}
	n.order = append(n.order, name)
}

// HasVertex reports whether name is present.
func (n *Network) HasVertex(name string) bool {
	_, ok := n.vertices[name]

	return ok
}

// Vertex returns the vertex named name, or nil, false if absent.
func (n *Network) Vertex(name string) (*Vertex, bool) {
	v, ok := n.vertices[name]

	return v, ok
}

// Vertices returns every vertex name in insertion order.
func (n *Network) Vertices() []string {
	out := make([]string, len(n.order))
	copy(out, n.order)

	return out
}

// VertexCount returns the number of vertices.
func (n *Network) VertexCount() int { return len(n.vertices) }

// RemoveVertex deletes name and every arc touching it. Used internally by
// revertTransformations to discard dummy and super vertices.
func (n *Network) RemoveVertex(name string) {
	v, ok := n.vertices[name]
	if !ok {
		return
	}
	for opp := range v.OutArcs {
		n.RemoveArc(name, opp)
	}
	for opp := range v.InArcs {
		n.RemoveArc(opp, name)
	}
	delete(n.vertices, name)
	for i, nm := range n.order {
		if nm == name {
			n.order = append(n.order[:i], n.order[i+1:]...)

			break
		}
	}
}

func validateBounds(capacity, restriction, flow int64) error {
	if capacity < 0 || restriction < 0 {
		return fmt.Errorf("%w: negative capacity or restriction", ErrInvalidBounds)
	}
	if restriction > flow || flow > capacity {
		return fmt.Errorf("%w: want restriction(%d) <= flow(%d) <= capacity(%d)", ErrInvalidBounds, restriction, flow, capacity)
	}

	return nil
}

// AddArc inserts an arc from source to terminus. Returns ErrVertexNotFound
// if either endpoint is absent, ErrLoop if source == terminus,
// ErrParallelArc if an arc already connects this ordered pair, or
// ErrInvalidBounds if restriction ≤ flow ≤ capacity (with both ≥ 0) does
// not hold.
func (n *Network) AddArc(source, terminus string, capacity, restriction, flow, cost int64) (*Arc, error) {
	if source == terminus {
		return nil, fmt.Errorf("%w: %v", ErrLoop, source)
	}
	sv, ok := n.vertices[source]
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrVertexNotFound, source)
	}
	tv, ok := n.vertices[terminus]
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrVertexNotFound, terminus)
	}
	if _, ok := sv.OutArcs[terminus]; ok {
		return nil, fmt.Errorf("%w: %v -> %v", ErrParallelArc, source, terminus)
	}
	if err := validateBounds(capacity, restriction, flow); err != nil {
		return nil, err
	}

	a := &Arc{Capacity: capacity, Restriction: restriction, Flow: flow, Cost: cost, Source: source, Terminus: terminus, Opposite: terminus}
	sv.OutArcs[terminus] = a
	sv.OutDegree++
	in := &Arc{Capacity: capacity, Restriction: restriction, Flow: flow, Cost: cost, Source: source, Terminus: terminus, Opposite: source}
	tv.InArcs[source] = in
	tv.InDegree++

	return a, nil
}

// RemoveArc deletes the arc from source to terminus, if any.
func (n *Network) RemoveArc(source, terminus string) {
	if sv, ok := n.vertices[source]; ok {
		if _, ok := sv.OutArcs[terminus]; ok {
			delete(sv.OutArcs, terminus)
			sv.OutDegree--
		}
	}
	if tv, ok := n.vertices[terminus]; ok {
		if _, ok := tv.InArcs[source]; ok {
			delete(tv.InArcs, source)
			tv.InDegree--
		}
	}
}

// Arc returns the arc from source to terminus, or nil, false if absent.
func (n *Network) Arc(source, terminus string) (*Arc, bool) {
	sv, ok := n.vertices[source]
	if !ok {
		return nil, false
	}
	a, ok := sv.OutArcs[terminus]

	return a, ok
}

// SetArcFlow updates the Flow field on both of an arc's stored copies
// (the source's OutArcs entry and the terminus's InArcs entry), keeping
// them in sync. Used by the flow algorithms, which mutate flow in place
// rather than replacing arcs.
func (n *Network) SetArcFlow(source, terminus string, flow int64) {
	if sv, ok := n.vertices[source]; ok {
		if a, ok := sv.OutArcs[terminus]; ok {
			a.Flow = flow
		}
	}
	if tv, ok := n.vertices[terminus]; ok {
		if a, ok := tv.InArcs[source]; ok {
			a.Flow = flow
		}
	}
}

// SetArcBounds updates Capacity and Restriction on both of an arc's
// stored copies. Used by the transformation machinery, which rewrites
// bounds on arcs it moves or shrinks.
func (n *Network) SetArcBounds(source, terminus string, capacity, restriction int64) {
	if sv, ok := n.vertices[source]; ok {
		if a, ok := sv.OutArcs[terminus]; ok {
			a.Capacity, a.Restriction = capacity, restriction
		}
	}
	if tv, ok := n.vertices[terminus]; ok {
		if a, ok := tv.InArcs[source]; ok {
			a.Capacity, a.Restriction = capacity, restriction
		}
	}
}

// Clone returns a deep, disjoint copy of n, including CurrentFlow and
// CurrentCost. Every flow algorithm clones its input before mutating.
func (n *Network) Clone() *Network {
	out := NewNetwork()
	for _, name := range n.order {
		out.addReservedVertex(name)
	}
	for _, name := range n.order {
		v := n.vertices[name]
		for terminus, a := range v.OutArcs {
			_, _ = out.addArcUnchecked(name, terminus, a.Capacity, a.Restriction, a.Flow, a.Cost)
		}
	}
	out.CurrentFlow = n.CurrentFlow
	out.CurrentCost = n.CurrentCost

	return out
}

// addArcUnchecked bypasses AddArc's validation, used by Clone (which
// trusts its source) and the transformation machinery (which computes
// bounds it knows to be consistent).
func (n *Network) addArcUnchecked(source, terminus string, capacity, restriction, flow, cost int64) (*Arc, error) {
	sv, ok := n.vertices[source]
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrVertexNotFound, source)
	}
	tv, ok := n.vertices[terminus]
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrVertexNotFound, terminus)
	}

	a := &Arc{Capacity: capacity, Restriction: restriction, Flow: flow, Cost: cost, Source: source, Terminus: terminus, Opposite: terminus}
	sv.OutArcs[terminus] = a
	sv.OutDegree++
	in := &Arc{Capacity: capacity, Restriction: restriction, Flow: flow, Cost: cost, Source: source, Terminus: terminus, Opposite: source}
	tv.InArcs[source] = in
	tv.InDegree++

	return a, nil
}
