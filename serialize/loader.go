package serialize

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/arbolito/nagui/digraph"
	"github.com/arbolito/nagui/network"
	"github.com/arbolito/nagui/ungraph"
)

func readDocument(path string) (*document, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedDocument, err)
	}
	var doc document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedDocument, err)
	}

	return &doc, nil
}

// LoadGraph reads an undirected Graph from the node/link JSON document at
// path (spec.md §6: node `{id}`, link `{source,target,weight}`).
func LoadGraph(path string) (*ungraph.Graph[string], error) {
	doc, err := readDocument(path)
	if err != nil {
		return nil, err
	}

	g := ungraph.NewGraph[string]()
	for _, n := range doc.Nodes {
		if err := g.AddVertex(n.ID); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedDocument, err)
		}
	}
	for _, l := range doc.Links {
		if _, err := g.AddEdge(l.Source, l.Target, l.Weight); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedDocument, err)
		}
	}

	return g, nil
}

// LoadDigraph reads a Digraph from the same node/link shape as LoadGraph.
func LoadDigraph(path string) (*digraph.Digraph[string], error) {
	doc, err := readDocument(path)
	if err != nil {
		return nil, err
	}

	d := digraph.NewDigraph[string]()
	for _, n := range doc.Nodes {
		if err := d.AddVertex(n.ID); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedDocument, err)
		}
	}
	for _, l := range doc.Links {
		if _, err := d.AddArc(l.Source, l.Target, l.Weight); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedDocument, err)
		}
	}

	return d, nil
}

// LoadNetwork reads a Network plus its external side structures (spec.md
// §3, §6): node `{id, type, min_flow?, max_flow?, flow?}`, link
// `{source, target, weight, restriction, flow, cost}`. A node's type
// "source"/"sink" populates the declared sources/sinks lists; min_flow
// and max_flow together populate a vertex range; flow alone populates a
// production/demand entry. Link.Weight becomes the arc's Capacity
// (spec.md's Network arc has no separate weight field — capacity is the
// scalar carried under the shared "weight" key, with restriction/flow/cost
// each getting their own key).
func LoadNetwork(path string) (*NetworkLoadResult, error) {
	doc, err := readDocument(path)
	if err != nil {
		return nil, err
	}

	n := network.NewNetwork()
	result := &NetworkLoadResult{
		Net:        n,
		Ranges:     map[string]network.VertexRange{},
		Production: map[string]int64{},
	}

	for _, nd := range doc.Nodes {
		if err := n.AddVertex(nd.ID); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedDocument, err)
		}
		switch nd.Type {
		case "source":
			result.Sources = append(result.Sources, nd.ID)
		case "sink":
			result.Sinks = append(result.Sinks, nd.ID)
		}
		if nd.MinFlow != nil && nd.MaxFlow != nil {
			result.Ranges[nd.ID] = network.VertexRange{Min: *nd.MinFlow, Max: *nd.MaxFlow}
		}
		if nd.Flow != nil {
			result.Production[nd.ID] = *nd.Flow
		}
	}
	for _, l := range doc.Links {
		if _, err := n.AddArc(l.Source, l.Target, l.Weight, l.Restriction, l.Flow, l.Cost); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedDocument, err)
		}
	}

	return result, nil
}
