// Package ungraph implements spec.md's undirected weighted Graph: a
// mapping from a comparable vertex identifier V to a Vertex carrying its
// degree, BFS/DFS level, and adjacent Edges. It hosts Euler-circuit
// construction (Fleury), spanning-tree traversals (BFS, iterative DFS,
// recursive DFS), and minimum spanning tree (Kruskal, Prim).
//
// Every algorithm here operates on a copy of its input and returns a
// fresh, disjoint Graph (or, for Fleury, a digraph.Digraph tracing the
// circuit) — the input is never mutated. Root/start-vertex selection for
// traversals that don't take an explicit root uses insertion order
// (Graph.Vertices()), not Go's randomized map iteration, so results are
// reproducible across runs.
//
// Complexity and error semantics follow spec.md §4.2: Fleury fails with
// ErrNotRunnable on an empty graph or any odd-degree vertex; Kruskal and
// Prim report HasTree=false (not an error) when no spanning tree exists.
package ungraph
