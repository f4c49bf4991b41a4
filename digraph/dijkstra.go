package digraph

import "github.com/arbolito/nagui/minheap"

// DijkstraResult is the outcome of Dijkstra. When CycleFound is false,
// ShortestPaths and Previous describe the shortest-path tree rooted at
// Start and Tree is that tree as a Digraph. When CycleFound is true, a
// negative cycle was detected during negative-arc relaxation and Cycle
// holds exactly its vertices and arcs (spec.md §4.3); ShortestPaths,
// Previous, and Tree are left as their zero values.
type DijkstraResult[V comparable] struct {
	ShortestPaths map[V]int64
	Previous      map[V]V
	Tree          *Digraph[V]
	CycleFound    bool
	Cycle         *Digraph[V]
}

// Dijkstra computes shortest paths from start, tolerating negative arcs,
// per spec.md §4.3's two-phase algorithm:
//
//   - Phase 1 is classical Dijkstra: a min-heap keyed by tentative
//     distance, vertices finalized (definitive) the first time they're
//     popped while still temporary.
//   - Phase 2 relaxes every arc whose source ended up in the tree but
//     which wasn't itself selected into the tree, in ascending weight
//     order. Each relaxation that would improve a vertex's distance is
//     checked for a negative cycle by walking Previous from the arc's
//     source back toward start; if the arc's terminus is found on that
//     walk, a cycle exists and is returned instead of a tree.
//
// start must exist in g (ErrVertexNotFound otherwise). A negative cycle
// is a normal result (CycleFound=true), never an error.
func Dijkstra[V comparable](g *Digraph[V], start V) (*DijkstraResult[V], error) {
	if !g.HasVertex(start) {
		return nil, ErrVertexNotFound
	}

	run := &dijkstraRun[V]{
		g:          g,
		dist:       map[V]int64{start: 0},
		prev:       map[V]V{},
		hasPrev:    map[V]bool{},
		treeArc:    map[V]*Arc[V]{},
		children:   map[V][]V{},
		definitive: map[V]bool{},
	}
	run.phase1(start)
	if cyc, found := run.phase2(); found {
		return &DijkstraResult[V]{CycleFound: true, Cycle: cyc}, nil
	}

	tree := NewDigraph[V]()
	for _, name := range g.Vertices() {
		if name == start || run.hasPrev[name] {
			_ = tree.AddVertex(name)
		}
	}
	for v, arc := range run.treeArc {
		if _, err := tree.AddArc(arc.Source, v, arc.Weight); err != nil {
			return nil, err
		}
	}

	return &DijkstraResult[V]{
		ShortestPaths: run.dist,
		Previous:      run.prev,
		Tree:          tree,
	}, nil
}

type dijkstraRun[V comparable] struct {
	g          *Digraph[V]
	dist       map[V]int64
	prev       map[V]V
	hasPrev    map[V]bool
	treeArc    map[V]*Arc[V] // tree arc currently selected as v's in-arc
	children   map[V][]V     // tree children of each vertex
	definitive map[V]bool
}

// phase1 runs classical lazy Dijkstra from start, building an initial
// tentative tree. Arcs of any sign are relaxed; correctness in the
// presence of negative arcs is restored by phase2.
func (r *dijkstraRun[V]) phase1(start V) {
	h := minheap.New[V, int64]()
	h.Insert(start, 0)

	for !h.IsEmpty() {
		u, du, _ := h.DeleteTop()
		if r.definitive[u] {
			continue // stale heap entry
		}
		r.definitive[u] = true

		v, ok := r.g.Vertex(u)
		if !ok {
			continue
		}
		for _, arc := range v.OutArcs {
			w := arc.Terminus
			if r.definitive[w] {
				continue
			}
			nd := du + arc.Weight
			cur, seen := r.dist[w]
			if !seen || nd < cur {
				r.setParent(w, u, arc)
				h.Insert(w, nd)
			}
		}
	}
}

// setParent records arc as v's tree in-arc, updating dist/prev/children
// bookkeeping (detaching v from any previous parent's children list).
func (r *dijkstraRun[V]) setParent(v, parent V, arc *Arc[V]) {
	if old, ok := r.treeArc[v]; ok {
		oldParent := old.Source
		r.children[oldParent] = removeV(r.children[oldParent], v)
	}
	r.dist[v] = r.dist[parent] + arc.Weight
	r.prev[v] = parent
	r.hasPrev[v] = true
	r.treeArc[v] = arc
	r.children[parent] = append(r.children[parent], v)
}

func removeV[V comparable](xs []V, target V) []V {
	for i, x := range xs {
		if x == target {
			return append(xs[:i], xs[i+1:]...)
		}
	}

	return xs
}

// phase2 relaxes non-tree arcs whose source is already definitive
// (reachable), in ascending weight order, swapping in improvements and
// watching for negative cycles.
func (r *dijkstraRun[V]) phase2() (*Digraph[V], bool) {
	h := minheap.New[*Arc[V], int64]()
	seed := func() {
		for u := range r.definitive {
			uv, ok := r.g.Vertex(u)
			if !ok {
				continue
			}
			for _, arc := range uv.OutArcs {
				if cur, ok := r.treeArc[arc.Terminus]; !ok || cur != arc {
					h.Insert(arc, arc.Weight)
				}
			}
		}
	}
	seed()

	for !h.IsEmpty() {
		arc, _, _ := h.DeleteTop()
		u, v, w := arc.Source, arc.Terminus, arc.Weight
		if !r.definitive[u] {
			continue
		}
		du, ok := r.dist[u]
		if !ok {
			continue
		}
		dv, hasV := r.dist[v]
		if hasV && du+w >= dv {
			continue // no improvement
		}

		if cyc, found := r.detectCycle(u, v, w); found {
			return cyc, true
		}

		oldDist, hadOld := r.dist[v]
		if old, ok := r.treeArc[v]; ok {
			h.Insert(old, old.Weight) // re-insert the ejected arc
		}
		wasDefinitive := r.definitive[v]
		r.setParent(v, u, arc)
		if hadOld {
			delta := oldDist - r.dist[v]
			r.propagate(v, delta)
		}
		if !wasDefinitive {
			// v just joined the tree: seed the arcs now eligible from it
			r.definitive[v] = true
			if vv, ok := r.g.Vertex(v); ok {
				for _, out := range vv.OutArcs {
					if cur, ok := r.treeArc[out.Terminus]; !ok || cur != out {
						h.Insert(out, out.Weight)
					}
				}
			}
		}
	}

	return nil, false
}

// propagate subtracts delta from every descendant of v in the current
// tree, following the swap of v's in-arc.
func (r *dijkstraRun[V]) propagate(v V, delta int64) {
	for _, c := range r.children[v] {
		r.dist[c] -= delta
		r.propagate(c, delta)
	}
}

// detectCycle walks Previous from u back toward the root, looking for v.
// If found, it returns the cycle v -> ... -> u -> v as a Digraph
// containing exactly the cycle's vertices and arcs.
func (r *dijkstraRun[V]) detectCycle(u, v V, closingWeight int64) (*Digraph[V], bool) {
	path := []V{u}
	cur := u
	for r.hasPrev[cur] {
		cur = r.prev[cur]
		path = append(path, cur)
		if cur == v {
			return r.buildCycle(path, v, u, closingWeight), true
		}
	}

	return nil, false
}

// buildCycle materializes path (u, prev[u], ..., v) plus the closing arc
// u->v into a Digraph: v -> path[k-1] -> ... -> path[1] -> u -> v.
func (r *dijkstraRun[V]) buildCycle(path []V, v, u V, closingWeight int64) *Digraph[V] {
	cyc := NewDigraph[V]()
	for _, name := range path {
		if !cyc.HasVertex(name) {
			_ = cyc.AddVertex(name)
		}
	}
	for i := len(path) - 1; i > 0; i-- {
		child := path[i-1]
		parent := path[i]
		arc := r.treeArc[child]
		_, _ = cyc.AddArc(parent, child, arc.Weight)
	}
	_, _ = cyc.AddArc(u, v, closingWeight)

	return cyc
}
