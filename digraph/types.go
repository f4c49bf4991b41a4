package digraph

import (
	"fmt"

	"github.com/arbolito/nagui/xerrors"
)

// ErrDuplicateVertex indicates AddVertex was called with a name already
// present in the digraph.
var ErrDuplicateVertex = fmt.Errorf("digraph: %w: duplicate vertex", xerrors.ErrInvariant)

// ErrVertexNotFound indicates an operation referenced a vertex absent
// from the digraph.
var ErrVertexNotFound = fmt.Errorf("digraph: %w: vertex not found", xerrors.ErrInvariant)

// Infinity stands in for an unreachable distance. Halved from
// math.MaxInt64 so that adding one finite weight to it can never
// overflow, following dijkstra/dijkstra.go's use of math.MaxInt64 as the
// unreachable sentinel, adapted to leave arithmetic headroom. FloydWarshall
// uses it as the initial distance of every pair without a direct arc;
// Dijkstra does not use it (an unreachable vertex has no ShortestPaths
// entry).
const Infinity int64 = 1<<62 - 1

// Arc is a directed connection from Source to Terminus carrying Weight.
// Opposite is the endpoint not equal to the vertex owning the list the
// Arc sits in: Terminus in an OutArcs list, Source in an InArcs list.
type Arc[V comparable] struct {
	Weight   int64
	Source   V
	Terminus V
	Opposite V
}

// Vertex is a node of a Digraph.
type Vertex[V comparable] struct {
	Name                V
	InDegree, OutDegree int
	InArcs, OutArcs     []*Arc[V]
}

// Digraph is spec.md's directed weighted graph.
type Digraph[V comparable] struct {
	vertices map[V]*Vertex[V]
	order    []V // insertion order, used for deterministic root selection
}

// NewDigraph returns an empty Digraph.
func NewDigraph[V comparable]() *Digraph[V] {
	return &Digraph[V]{vertices: make(map[V]*Vertex[V])}
}

// AddVertex inserts a new vertex named name.
func (d *Digraph[V]) AddVertex(name V) error {
	if _, ok := d.vertices[name]; ok {
		return fmt.Errorf("%w: %v", ErrDuplicateVertex, name)
	}
	d.vertices[name] = &Vertex[V]{Name: name}
	d.order = append(d.order, name)

	return nil
}

// HasVertex reports whether name is present.
func (d *Digraph[V]) HasVertex(name V) bool {
	_, ok := d.vertices[name]

	return ok
}

// Vertex returns the vertex named name, or nil, false if absent.
func (d *Digraph[V]) Vertex(name V) (*Vertex[V], bool) {
	v, ok := d.vertices[name]

	return v, ok
}

// Vertices returns every vertex name in insertion order.
func (d *Digraph[V]) Vertices() []V {
	out := make([]V, len(d.order))
	copy(out, d.order)

	return out
}

// VertexCount returns the number of vertices.
func (d *Digraph[V]) VertexCount() int { return len(d.vertices) }

// AddArc inserts an arc from source to terminus with the given weight.
// A separate Arc value is appended to source's OutArcs and to terminus's
// InArcs, each with Opposite set to the endpoint the owning vertex is
// not — matching spec.md §3's "arc appears once in source.outArcs and
// once in terminus.inArcs with identical weight" invariant. Parallel arcs
// are allowed.
func (d *Digraph[V]) AddArc(source, terminus V, weight int64) (*Arc[V], error) {
	sv, ok := d.vertices[source]
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrVertexNotFound, source)
	}
	tv, ok := d.vertices[terminus]
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrVertexNotFound, terminus)
	}

	out := &Arc[V]{Weight: weight, Source: source, Terminus: terminus, Opposite: terminus}
	in := &Arc[V]{Weight: weight, Source: source, Terminus: terminus, Opposite: source}
	sv.OutArcs = append(sv.OutArcs, out)
	sv.OutDegree++
	tv.InArcs = append(tv.InArcs, in)
	tv.InDegree++

	return out, nil
}

// Clone returns a deep, disjoint copy of d.
func (d *Digraph[V]) Clone() *Digraph[V] {
	out := NewDigraph[V]()
	for _, name := range d.order {
		_ = out.AddVertex(name)
	}
	for _, name := range d.order {
		v := d.vertices[name]
		for _, a := range v.OutArcs {
			_, _ = out.AddArc(a.Source, a.Terminus, a.Weight)
		}
	}

	return out
}
