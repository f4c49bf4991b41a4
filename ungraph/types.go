package ungraph

import (
	"fmt"

	"github.com/arbolito/nagui/xerrors"
)

// ErrDuplicateVertex indicates AddVertex was called with a name already
// present in the graph.
var ErrDuplicateVertex = fmt.Errorf("ungraph: %w: duplicate vertex", xerrors.ErrInvariant)

// ErrVertexNotFound indicates an operation referenced a vertex absent
// from the graph.
var ErrVertexNotFound = fmt.Errorf("ungraph: %w: vertex not found", xerrors.ErrInvariant)

// ErrNotRunnable indicates Fleury was asked to run on an empty graph or a
// graph with an odd-degree vertex (no Euler circuit exists).
var ErrNotRunnable = fmt.Errorf("ungraph: %w: no Euler circuit exists", xerrors.ErrInvariant)

// Edge is an undirected connection between Source and Terminus carrying
// Weight. A non-loop Edge is referenced from both endpoints' Vertex.Edges
// (the same pointer, appended twice); a loop (Source == Terminus) is
// referenced once and its owning vertex's Degree is incremented by 2.
type Edge[V comparable] struct {
	Weight   int64
	Source   V
	Terminus V
}

// Vertex is a node of an undirected Graph.
type Vertex[V comparable] struct {
	Name   V
	Degree int
	Level  int // valid only inside a tree produced by BFS/DFS
	Edges  []*Edge[V]
}

// Graph is spec.md's undirected weighted Graph: vertices keyed by V, each
// holding its own adjacency (Vertex.Edges). Algorithms are free functions
// taking *Graph[V] rather than methods, matching digraph and network.
type Graph[V comparable] struct {
	vertices  map[V]*Vertex[V]
	order     []V // insertion order, used for deterministic root selection
	edgeCount int // non-loop edges
	loopCount int
}

// NewGraph returns an empty Graph.
func NewGraph[V comparable]() *Graph[V] {
	return &Graph[V]{vertices: make(map[V]*Vertex[V])}
}

// AddVertex inserts a new vertex named name. Returns ErrDuplicateVertex if
// name is already present.
func (g *Graph[V]) AddVertex(name V) error {
	if _, ok := g.vertices[name]; ok {
		return fmt.Errorf("%w: %v", ErrDuplicateVertex, name)
	}
	g.vertices[name] = &Vertex[V]{Name: name}
	g.order = append(g.order, name)

	return nil
}

// HasVertex reports whether name is present.
func (g *Graph[V]) HasVertex(name V) bool {
	_, ok := g.vertices[name]

	return ok
}

// Vertex returns the vertex named name, or nil, false if absent.
func (g *Graph[V]) Vertex(name V) (*Vertex[V], bool) {
	v, ok := g.vertices[name]

	return v, ok
}

// Vertices returns every vertex name in insertion order.
func (g *Graph[V]) Vertices() []V {
	out := make([]V, len(g.order))
	copy(out, g.order)

	return out
}

// VertexCount returns the number of vertices.
func (g *Graph[V]) VertexCount() int { return len(g.vertices) }

// EdgeCount returns the number of non-loop edges.
func (g *Graph[V]) EdgeCount() int { return g.edgeCount }

// LoopCount returns the number of self-loops.
func (g *Graph[V]) LoopCount() int { return g.loopCount }

// AddEdge inserts an edge between source and terminus with the given
// weight. If source == terminus, a single Edge is stored and the vertex's
// Degree is incremented by 2. Otherwise the same *Edge is appended to
// both endpoints' Edges and each Degree is incremented by 1.
// Returns ErrVertexNotFound if either endpoint is absent.
func (g *Graph[V]) AddEdge(source, terminus V, weight int64) (*Edge[V], error) {
	sv, ok := g.vertices[source]
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrVertexNotFound, source)
	}
	tv, ok := g.vertices[terminus]
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrVertexNotFound, terminus)
	}

	e := &Edge[V]{Weight: weight, Source: source, Terminus: terminus}
	if source == terminus {
		sv.Edges = append(sv.Edges, e)
		sv.Degree += 2
		g.loopCount++

		return e, nil
	}

	sv.Edges = append(sv.Edges, e)
	tv.Edges = append(tv.Edges, e)
	sv.Degree++
	tv.Degree++
	g.edgeCount++

	return e, nil
}

// RemoveEdge removes e from both endpoints' adjacency (or the single
// owning list, for a loop) and adjusts degree/edge-count bookkeeping.
// Used internally by Fleury, which works on a scratch copy.
func (g *Graph[V]) RemoveEdge(e *Edge[V]) {
	if e.Source == e.Terminus {
		if v, ok := g.vertices[e.Source]; ok {
			v.Edges = removeEdgePtr(v.Edges, e)
			v.Degree -= 2
		}
		g.loopCount--

		return
	}
	if v, ok := g.vertices[e.Source]; ok {
		v.Edges = removeEdgePtr(v.Edges, e)
		v.Degree--
	}
	if v, ok := g.vertices[e.Terminus]; ok {
		v.Edges = removeEdgePtr(v.Edges, e)
		v.Degree--
	}
	g.edgeCount--
}

func removeEdgePtr[V comparable](edges []*Edge[V], target *Edge[V]) []*Edge[V] {
	for i, e := range edges {
		if e == target {
			return append(edges[:i], edges[i+1:]...)
		}
	}

	return edges
}

// Opposite returns the endpoint of e that is not owner.
func (e *Edge[V]) Opposite(owner V) V {
	if e.Source == owner {
		return e.Terminus
	}

	return e.Source
}

// Clone returns a deep, disjoint copy of g: new Vertex and Edge values,
// same names/weights/topology. Algorithms call Clone before mutating a
// working copy, so the caller's input graph is never touched.
func (g *Graph[V]) Clone() *Graph[V] {
	out := NewGraph[V]()
	for _, name := range g.order {
		_ = out.AddVertex(name)
	}
	seen := make(map[*Edge[V]]bool, g.edgeCount+g.loopCount)
	for _, name := range g.order {
		v := g.vertices[name]
		for _, e := range v.Edges {
			if seen[e] {
				continue
			}
			seen[e] = true
			_, _ = out.AddEdge(e.Source, e.Terminus, e.Weight)
		}
	}

	return out
}
