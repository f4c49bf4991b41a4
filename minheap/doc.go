// Package minheap is a binary-heap priority queue keyed by a scalar.
//
// It backs both digraph's generalized Dijkstra (keyed by tentative
// distance) and ungraph's Kruskal (keyed by edge weight) — the two callers
// spec.md §4.1 names. It wraps container/heap, the same mechanism the
// teacher's dijkstra and prim_kruskal packages use for their own ad hoc
// priority queues (nodePQ, edgePQ), generalized with generics into one
// reusable type instead of writing the heap.Interface boilerplate once
// per caller.
package minheap
