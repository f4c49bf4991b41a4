package ungraph

// IterativeDFS runs depth-first search from the first vertex in g's
// insertion order using an explicit stack, producing a spanning tree with
// Vertex.Level set. Grounded on dfs/dfs.go's traversal shape, adapted from
// a recursive walker to an explicit stack per spec.md §4.2's "iterative
// DFS" requirement (kept distinct from RecursiveDFS below).
func IterativeDFS[V comparable](g *Graph[V]) (*TraversalResult[V], error) {
	names := g.Vertices()
	if len(names) == 0 {
		return &TraversalResult[V]{Tree: NewGraph[V](), IsConnected: true}, nil
	}

	return iterativeDFSFrom(g, names[0])
}

// IterativeDFSFrom runs iterative DFS starting from an explicit root.
func IterativeDFSFrom[V comparable](g *Graph[V], root V) (*TraversalResult[V], error) {
	if !g.HasVertex(root) {
		return nil, ErrVertexNotFound
	}

	return iterativeDFSFrom(g, root)
}

type dfsStackItem[V comparable] struct {
	name       V
	parent     V
	parentEdge int64
	level      int
	hasPar     bool
}

func iterativeDFSFrom[V comparable](g *Graph[V], root V) (*TraversalResult[V], error) {
	tree := NewGraph[V]()
	visited := map[V]bool{}
	stack := []dfsStackItem[V]{{name: root, level: 0}}

	for len(stack) > 0 {
		item := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if visited[item.name] {
			continue
		}
		visited[item.name] = true
		_ = tree.AddVertex(item.name)
		tree.vertices[item.name].Level = item.level
		if item.hasPar {
			if _, err := tree.AddEdge(item.parent, item.name, item.parentEdge); err != nil {
				return nil, err
			}
		}

		v := g.vertices[item.name]
		// push in reverse so neighbors are explored in adjacency order
		for i := len(v.Edges) - 1; i >= 0; i-- {
			e := v.Edges[i]
			nbr := e.Opposite(item.name)
			if visited[nbr] {
				continue
			}
			stack = append(stack, dfsStackItem[V]{name: nbr, parent: item.name, parentEdge: e.Weight, level: item.level + 1, hasPar: true})
		}
	}

	return &TraversalResult[V]{Tree: tree, IsConnected: tree.VertexCount() == g.VertexCount()}, nil
}

// RecursiveDFS is the same traversal as IterativeDFS, implemented by
// recursion on the chosen root (spec.md §4.2: "Same specification,
// implemented by recursion on the chosen root").
func RecursiveDFS[V comparable](g *Graph[V]) (*TraversalResult[V], error) {
	names := g.Vertices()
	if len(names) == 0 {
		return &TraversalResult[V]{Tree: NewGraph[V](), IsConnected: true}, nil
	}

	return recursiveDFSFrom(g, names[0])
}

// RecursiveDFSFrom runs recursive DFS starting from an explicit root.
func RecursiveDFSFrom[V comparable](g *Graph[V], root V) (*TraversalResult[V], error) {
	if !g.HasVertex(root) {
		return nil, ErrVertexNotFound
	}

	return recursiveDFSFrom(g, root)
}

func recursiveDFSFrom[V comparable](g *Graph[V], root V) (*TraversalResult[V], error) {
	tree := NewGraph[V]()
	visited := map[V]bool{}
	var walkErr error

	var visit func(name V, level int)
	visit = func(name V, level int) {
		if walkErr != nil || visited[name] {
			return
		}
		visited[name] = true
		_ = tree.AddVertex(name)
		tree.vertices[name].Level = level

		v := g.vertices[name]
		for _, e := range v.Edges {
			nbr := e.Opposite(name)
			if visited[nbr] {
				continue
			}
			if _, err := tree.AddEdge(name, nbr, e.Weight); err != nil {
				walkErr = err

				return
			}
			visit(nbr, level+1)
		}
	}
	visit(root, 0)

	if walkErr != nil {
		return nil, walkErr
	}

	return &TraversalResult[V]{Tree: tree, IsConnected: tree.VertexCount() == g.VertexCount()}, nil
}

