// Package nagui (module github.com/arbolito/nagui) is a graph-algorithms
// core library modeling three related combinatorial structures:
//
//   - ungraph — undirected weighted graphs (Fleury, BFS, iterative/recursive
//     DFS, Kruskal, Prim)
//   - digraph — directed weighted graphs (generalized Dijkstra tolerating
//     negative arcs with cycle detection, Floyd–Warshall)
//   - network — capacitated flow networks with per-arc cost/restriction and
//     per-vertex throughput bounds (Ford–Fulkerson, minimum-cost flow by
//     cycle cancellation, minimum-cost flow by successive shortest paths)
//
// Each structure lives in its own package built on a shared minheap and a
// shared error taxonomy (xerrors). Serialization is handled by the
// serialize package; three command-line entry points under cmd/ read a
// JSON graph description, run one algorithm, and write a line-oriented
// text result.
//
// Structures are constructed empty, populated by a caller or the
// serialize loader, and mutated only by the algorithm they're passed to —
// every algorithm copies its input first and returns a fresh, disjoint
// result.
package nagui
