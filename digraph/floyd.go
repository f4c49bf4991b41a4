package digraph

import (
	"fmt"

	"github.com/arbolito/nagui/xerrors"
)

// ErrNegativeCycle is raised by FloydWarshall when relaxation improves a
// diagonal entry, i.e. some vertex has a negative-weight cycle through it.
var ErrNegativeCycle = fmt.Errorf("digraph: %w", xerrors.ErrNegativeCycle)

// Route is one entry of the Floyd–Warshall routing table: the predecessor
// on the shortest known i->j path and the path's total distance.
// Dist == Infinity means unreachable.
type Route[V comparable] struct {
	Previous V
	Dist     int64
}

// FloydResult is FloydWarshall's output: the full |V|x|V| routing table,
// keyed [source][target].
type FloydResult[V comparable] struct {
	g      *Digraph[V]
	Routes map[V]map[V]Route[V]
}

// FloydWarshall computes all-pairs shortest paths, per spec.md §4.3.
// routes[i][j] starts at (i, 0) on the diagonal, (i, w(i,j)) where a
// direct arc exists, (i, +Infinity) otherwise; each intermediate k
// relaxes every (i,j) pair through it. Fails with ErrNegativeCycle if any
// diagonal entry improves during relaxation.
func FloydWarshall[V comparable](g *Digraph[V]) (*FloydResult[V], error) {
	names := g.Vertices()
	routes := make(map[V]map[V]Route[V], len(names))
	for _, i := range names {
		row := make(map[V]Route[V], len(names))
		for _, j := range names {
			switch {
			case i == j:
				row[j] = Route[V]{Previous: i, Dist: 0}
			default:
				row[j] = Route[V]{Previous: i, Dist: Infinity}
			}
		}
		routes[i] = row
	}
	for _, i := range names {
		v, _ := g.Vertex(i)
		for _, arc := range v.OutArcs {
			if arc.Weight < routes[i][arc.Terminus].Dist {
				routes[i][arc.Terminus] = Route[V]{Previous: i, Dist: arc.Weight}
			}
		}
	}

	for _, k := range names {
		for _, i := range names {
			if i == k || routes[i][k].Dist >= Infinity {
				continue
			}
			for _, j := range names {
				if j == k || routes[k][j].Dist >= Infinity {
					continue
				}
				cand := routes[i][k].Dist + routes[k][j].Dist
				if cand < routes[i][j].Dist {
					routes[i][j] = Route[V]{Previous: routes[k][j].Previous, Dist: cand}
					if i == j {
						return nil, fmt.Errorf("%w: at vertex %v", ErrNegativeCycle, i)
					}
				}
			}
		}
	}

	return &FloydResult[V]{g: g, Routes: routes}, nil
}

// RetrievePath walks backwards from b via Routes[a][*].Previous until
// Previous == a, producing the path a -> ... -> b. Unreachable pairs
// return (nil, false).
func (r *FloydResult[V]) RetrievePath(a, b V) ([]V, bool) {
	if r.Routes[a][b].Dist >= Infinity {
		return nil, false
	}
	if a == b {
		return []V{a}, true
	}

	var rev []V
	cur := b
	for {
		rev = append(rev, cur)
		prev := r.Routes[a][cur].Previous
		if prev == a {
			rev = append(rev, a)

			break
		}
		cur = prev
	}
	path := make([]V, len(rev))
	for i, name := range rev {
		path[len(rev)-1-i] = name
	}

	return path, true
}

// GetTreesFromDict builds, for each vertex v, a Digraph containing v's
// shortest-path arborescence: for every reachable target u, the arc
// Routes[v][u].Previous -> u, weighted by the original digraph's arc
// weight between those two vertices.
func (r *FloydResult[V]) GetTreesFromDict() map[V]*Digraph[V] {
	weight := make(map[V]map[V]int64, r.g.VertexCount())
	for _, name := range r.g.Vertices() {
		v, _ := r.g.Vertex(name)
		row := make(map[V]int64, len(v.OutArcs))
		for _, arc := range v.OutArcs {
			row[arc.Terminus] = arc.Weight
		}
		weight[name] = row
	}

	trees := make(map[V]*Digraph[V], len(r.Routes))
	for v, row := range r.Routes {
		tree := NewDigraph[V]()
		for u := range row {
			if !tree.HasVertex(u) {
				_ = tree.AddVertex(u)
			}
		}
		for u, route := range row {
			if u == v || route.Dist >= Infinity {
				continue
			}
			_, _ = tree.AddArc(route.Previous, u, weight[route.Previous][u])
		}
		trees[v] = tree
	}

	return trees
}
