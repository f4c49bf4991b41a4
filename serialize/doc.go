// Package serialize implements spec.md §6's two external-interface
// adaptors: a JSON loader that materializes a Graph, Digraph, or Network
// from a node/link document, and a line-oriented text writer that
// persists an algorithm's result (or an exception) to a file.
//
// Neither adaptor is part of the algorithmic core; both exist only to
// give the cmd/ entry points something concrete to call, per spec.md §1's
// framing of I/O as an external collaborator specified at its interface.
package serialize
