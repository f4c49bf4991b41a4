// Package digraph implements spec.md's directed weighted Digraph: a
// mapping from a comparable vertex identifier V to a Vertex carrying
// separate in/out arc lists. It hosts a generalized Dijkstra that
// tolerates negative arcs (with negative-cycle extraction) and
// Floyd–Warshall all-pairs shortest paths, plus path retrieval and
// per-vertex shortest-path arborescences.
//
// Parallel arcs with the same (terminus, weight) are allowed, matching
// spec.md §3. Algorithms operate on copies and return fresh structures;
// Dijkstra's negative-cycle case is a normal result (CycleFound), not an
// error — only Floyd–Warshall raises xerrors.ErrNegativeCycle.
package digraph
