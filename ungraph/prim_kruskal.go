package ungraph

import "github.com/arbolito/nagui/minheap"

// SpanningTreeResult is the output of Kruskal and Prim: the tree built so
// far, its total weight, and whether it spans every vertex of the input.
type SpanningTreeResult[V comparable] struct {
	Tree    *Graph[V]
	Weight  int64
	HasTree bool
}

// Kruskal computes a minimum spanning tree (or forest fragment, if the
// graph is disconnected) using a minheap keyed by edge weight and a
// union-find over subtree labels, per spec.md §4.2.
//
// Every extracted minimum edge falls into one of four cases: both
// endpoints unassigned (start a new label), exactly one unassigned
// (attach, inherit label), both assigned with different labels (merge),
// or same label (discard — would form a cycle). Terminates when the tree
// has |vertices|-1 edges; if the heap empties first, HasTree is false and
// the partial tree is still returned.
//
// Grounded on prim_kruskal/kruskal.go's union-find shape, adapted from
// sort.SliceStable to the minheap package spec.md §4.1 calls for.
func Kruskal[V comparable](g *Graph[V]) (*SpanningTreeResult[V], error) {
	tree := NewGraph[V]()
	for _, name := range g.Vertices() {
		_ = tree.AddVertex(name)
	}

	h := minheap.New[*Edge[V], int64]()
	seen := make(map[*Edge[V]]bool)
	for _, name := range g.Vertices() {
		v := g.vertices[name]
		for _, e := range v.Edges {
			if e.Source == e.Terminus || seen[e] {
				continue // skip self-loops and the edge's duplicate listing
			}
			seen[e] = true
			h.Insert(e, e.Weight)
		}
	}

	label := make(map[V]int, g.VertexCount())
	nextLabel := 1
	numVerts := g.VertexCount()
	var totalWeight int64

	for !h.IsEmpty() {
		if tree.EdgeCount() == numVerts-1 {
			break
		}
		e, _, err := h.DeleteTop()
		if err != nil {
			return nil, err
		}

		lu, hasU := label[e.Source]
		lv, hasV := label[e.Terminus]
		switch {
		case !hasU && !hasV:
			label[e.Source] = nextLabel
			label[e.Terminus] = nextLabel
			nextLabel++
		case hasU && !hasV:
			label[e.Terminus] = lu
		case !hasU && hasV:
			label[e.Source] = lv
		case lu == lv:
			continue // same subtree: would close a cycle
		default:
			// merge: rewrite every vertex labeled lv to lu
			for name, l := range label {
				if l == lv {
					label[name] = lu
				}
			}
		}

		if _, err := tree.AddEdge(e.Source, e.Terminus, e.Weight); err != nil {
			return nil, err
		}
		totalWeight += e.Weight
	}

	return &SpanningTreeResult[V]{
		Tree:    tree,
		Weight:  totalWeight,
		HasTree: tree.EdgeCount() == numVerts-1,
	}, nil
}

// Prim grows a minimum spanning tree from the first vertex in g's
// insertion order, at each step adding the least-weight edge crossing the
// tree boundary. Terminates with HasTree=true once every vertex is in the
// tree, or HasTree=false if no crossing edge exists while vertices remain
// outside.
//
// Grounded on prim_kruskal/prim.go's crossing-edge heap shape.
func Prim[V comparable](g *Graph[V]) (*SpanningTreeResult[V], error) {
	names := g.Vertices()
	if len(names) == 0 {
		return &SpanningTreeResult[V]{Tree: NewGraph[V](), HasTree: true}, nil
	}

	return PrimFrom(g, names[0])
}

// PrimFrom runs Prim starting from an explicit root vertex.
func PrimFrom[V comparable](g *Graph[V], root V) (*SpanningTreeResult[V], error) {
	if !g.HasVertex(root) {
		return nil, ErrVertexNotFound
	}

	tree := NewGraph[V]()
	_ = tree.AddVertex(root)
	inTree := map[V]bool{root: true}

	h := minheap.New[*Edge[V], int64]()
	pushCrossing := func(name V) {
		v := g.vertices[name]
		for _, e := range v.Edges {
			if e.Source == e.Terminus {
				continue
			}
			if !inTree[e.Opposite(name)] {
				h.Insert(e, e.Weight)
			}
		}
	}
	pushCrossing(root)

	var totalWeight int64
	for !h.IsEmpty() && tree.VertexCount() < g.VertexCount() {
		e, _, err := h.DeleteTop()
		if err != nil {
			return nil, err
		}
		var next V
		switch {
		case inTree[e.Source] && !inTree[e.Terminus]:
			next = e.Terminus
		case inTree[e.Terminus] && !inTree[e.Source]:
			next = e.Source
		default:
			continue // both endpoints already in tree: stale heap entry
		}

		_ = tree.AddVertex(next)
		inTree[next] = true
		if _, err := tree.AddEdge(e.Opposite(next), next, e.Weight); err != nil {
			return nil, err
		}
		totalWeight += e.Weight
		pushCrossing(next)
	}

	return &SpanningTreeResult[V]{
		Tree:    tree,
		Weight:  totalWeight,
		HasTree: tree.VertexCount() == g.VertexCount(),
	}, nil
}
