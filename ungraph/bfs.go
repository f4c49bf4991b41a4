package ungraph

// TraversalResult is the output of BFS, IterativeDFS, and RecursiveDFS: a
// spanning forest rooted at the chosen start vertex, plus whether it
// covers every vertex of the input graph.
type TraversalResult[V comparable] struct {
	Tree        *Graph[V]
	IsConnected bool
}

// BFS runs breadth-first search from the first vertex in g's insertion
// order (deterministic; see doc.go), producing a spanning tree with
// Vertex.Level set (root = 0, child = parent+1). IsConnected is true iff
// the tree covers every vertex of g.
//
// Grounded on bfs/bfs.go's queueItem/walker shape, adapted to build a
// Graph instead of a distance/parent map pair.
func BFS[V comparable](g *Graph[V]) (*TraversalResult[V], error) {
	names := g.Vertices()
	if len(names) == 0 {
		return &TraversalResult[V]{Tree: NewGraph[V](), IsConnected: true}, nil
	}

	return bfsFrom(g, names[0])
}

// BFSFrom runs BFS starting from an explicit root vertex.
func BFSFrom[V comparable](g *Graph[V], root V) (*TraversalResult[V], error) {
	if !g.HasVertex(root) {
		return nil, ErrVertexNotFound
	}

	return bfsFrom(g, root)
}

type bfsQueueItem[V comparable] struct {
	name  V
	level int
}

func bfsFrom[V comparable](g *Graph[V], root V) (*TraversalResult[V], error) {
	tree := NewGraph[V]()
	_ = tree.AddVertex(root)
	tree.vertices[root].Level = 0

	visited := map[V]bool{root: true}
	queue := []bfsQueueItem[V]{{name: root, level: 0}}

	for len(queue) > 0 {
		item := queue[0]
		queue = queue[1:]

		v := g.vertices[item.name]
		for _, e := range v.Edges {
			nbr := e.Opposite(item.name)
			if visited[nbr] {
				continue
			}
			visited[nbr] = true
			_ = tree.AddVertex(nbr)
			tree.vertices[nbr].Level = item.level + 1
			if _, err := tree.AddEdge(item.name, nbr, e.Weight); err != nil {
				return nil, err
			}
			queue = append(queue, bfsQueueItem[V]{name: nbr, level: item.level + 1})
		}
	}

	return &TraversalResult[V]{Tree: tree, IsConnected: tree.VertexCount() == g.VertexCount()}, nil
}
