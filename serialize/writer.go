package serialize

import (
	"fmt"
	"os"
	"strings"

	"github.com/arbolito/nagui/digraph"
	"github.com/arbolito/nagui/network"
	"github.com/arbolito/nagui/ungraph"
)

// writeDocument assembles the line-oriented text format spec.md §6
// describes: the kind line, a `vertex` section, an `edges` section, an
// optional `extra` section, and the `end` terminator.
func writeDocument(path, kind string, vertexLines, edgeLines, extra []string) error {
	var b strings.Builder
	b.WriteString(kind)
	b.WriteString("\n")
	b.WriteString("vertex\n")
	for _, l := range vertexLines {
		b.WriteString(l)
		b.WriteString("\n")
	}
	b.WriteString("edges\n")
	for _, l := range edgeLines {
		b.WriteString(l)
		b.WriteString("\n")
	}
	if len(extra) > 0 {
		b.WriteString("extra\n")
		for _, l := range extra {
			b.WriteString(l)
			b.WriteString("\n")
		}
	}
	b.WriteString("end\n")

	return os.WriteFile(path, []byte(b.String()), 0o644)
}

// WriteException writes the single-line `exception` footer followed by
// err's message, per spec.md §6's failure format.
func WriteException(path string, err error) error {
	return os.WriteFile(path, []byte(fmt.Sprintf("exception\n%s\n", err.Error())), 0o644)
}

// WriteGraphTree writes an undirected Graph (a BFS/DFS/Kruskal/Prim
// spanning tree) under the `graph` kind: one vertex id per line, one
// `source terminus weight` line per edge (loops included), each counted
// once.
func WriteGraphTree(path string, g *ungraph.Graph[string], extra []string) error {
	var vertexLines, edgeLines []string
	seen := map[*ungraph.Edge[string]]bool{}
	for _, name := range g.Vertices() {
		vertexLines = append(vertexLines, name)
		v, _ := g.Vertex(name)
		for _, e := range v.Edges {
			if seen[e] {
				continue
			}
			seen[e] = true
			edgeLines = append(edgeLines, fmt.Sprintf("%s %s %d", e.Source, e.Terminus, e.Weight))
		}
	}

	return writeDocument(path, "graph", vertexLines, edgeLines, extra)
}

// WriteFleuryCircuit writes a Fleury Euler circuit under the `graph`
// kind: the underlying result is a digraph.Digraph (arc order encodes the
// walk), but the vertex line follows Graph's single-id shape since the
// invoking program is `graph`.
func WriteFleuryCircuit(path string, circuit *digraph.Digraph[string], extra []string) error {
	var vertexLines, edgeLines []string
	for _, name := range circuit.Vertices() {
		vertexLines = append(vertexLines, name)
		v, _ := circuit.Vertex(name)
		for _, a := range v.OutArcs {
			edgeLines = append(edgeLines, fmt.Sprintf("%s %s %d", a.Source, a.Terminus, a.Weight))
		}
	}

	return writeDocument(path, "graph", vertexLines, edgeLines, extra)
}

// WriteDigraphTree writes a Digraph (Dijkstra's shortest-path tree, or a
// negative cycle) under the `digraph` kind: each vertex line is `id id`,
// matching spec.md §6's Digraph vertex format.
func WriteDigraphTree(path string, d *digraph.Digraph[string], extra []string) error {
	var vertexLines, edgeLines []string
	for _, name := range d.Vertices() {
		vertexLines = append(vertexLines, name+" "+name)
		v, _ := d.Vertex(name)
		for _, a := range v.OutArcs {
			edgeLines = append(edgeLines, fmt.Sprintf("%s %s %d", a.Source, a.Terminus, a.Weight))
		}
	}

	return writeDocument(path, "digraph", vertexLines, edgeLines, extra)
}

// WriteDijkstraResult dispatches to the tree or the cycle, per spec.md
// §7's "Dijkstra's negative cycle is a normal result" handling.
func WriteDijkstraResult(path string, res *digraph.DijkstraResult[string], extra []string) error {
	if res.CycleFound {
		return WriteDigraphTree(path, res.Cycle, append(extra, "A negative cycle was found."))
	}

	return WriteDigraphTree(path, res.Tree, extra)
}

// WriteFloydResult writes every per-root shortest-path arborescence
// FloydWarshall.GetTreesFromDict produced, in the caller-supplied order,
// disambiguating vertex names across trees by appending `'`, `''`, `'''`,
// ... (spec.md §6) — the first tree in order keeps its names bare.
func WriteFloydResult(path string, trees map[string]*digraph.Digraph[string], order []string, extra []string) error {
	var vertexLines, edgeLines []string
	for i, root := range order {
		tree, ok := trees[root]
		if !ok {
			continue
		}
		suffix := strings.Repeat("'", i)
		for _, name := range tree.Vertices() {
			tagged := name + suffix
			vertexLines = append(vertexLines, tagged+" "+tagged)
			v, _ := tree.Vertex(name)
			for _, a := range v.OutArcs {
				edgeLines = append(edgeLines, fmt.Sprintf("%s%s %s%s %d", a.Source, suffix, a.Terminus, suffix, a.Weight))
			}
		}
	}

	return writeDocument(path, "digraph", vertexLines, edgeLines, extra)
}

// WriteNetworkResult writes a Network under the `network` kind: vertex
// lines `name type r minRestriction maxRestriction p production` (r/p are
// 0/1 presence flags for a declared range / declared production), edge
// lines `source terminus capacity restriction flow cost`.
func WriteNetworkResult(path string, net *network.Network, sources, sinks []string, ranges map[string]network.VertexRange, production map[string]int64, extra []string) error {
	isSource := make(map[string]bool, len(sources))
	for _, s := range sources {
		isSource[s] = true
	}
	isSink := make(map[string]bool, len(sinks))
	for _, s := range sinks {
		isSink[s] = true
	}

	var vertexLines, edgeLines []string
	for _, name := range net.Vertices() {
		typ := "other"
		switch {
		case isSource[name]:
			typ = "source"
		case isSink[name]:
			typ = "sink"
		}

		rFlag, minR, maxR := 0, int64(0), int64(0)
		if rng, ok := ranges[name]; ok {
			rFlag, minR, maxR = 1, rng.Min, rng.Max
		}
		pFlag, prod := 0, int64(0)
		if p, ok := production[name]; ok {
			pFlag, prod = 1, p
		}
		vertexLines = append(vertexLines, fmt.Sprintf("%s %s %d %d %d %d %d", name, typ, rFlag, minR, maxR, pFlag, prod))

		v, _ := net.Vertex(name)
		for _, a := range v.OutArcs {
			edgeLines = append(edgeLines, fmt.Sprintf("%s %s %d %d %d %d", a.Source, a.Terminus, a.Capacity, a.Restriction, a.Flow, a.Cost))
		}
	}
	allExtra := append([]string{fmt.Sprintf("Flow: %d. Cost: %d.", net.CurrentFlow, net.CurrentCost)}, extra...)

	return writeDocument(path, "network", vertexLines, edgeLines, allExtra)
}
