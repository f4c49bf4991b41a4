package serialize

import (
	"fmt"

	"github.com/arbolito/nagui/network"
	"github.com/arbolito/nagui/xerrors"
)

// ErrMalformedDocument indicates the JSON document did not match the
// node/link shape spec.md §6 describes, or referenced a link endpoint
// absent from its own nodes array.
var ErrMalformedDocument = fmt.Errorf("serialize: %w: malformed document", xerrors.ErrInvariant)

// document is the shared single-line JSON shape spec.md §6 describes for
// all three kinds: an array of nodes and an array of links. Graph and
// Digraph nodes use only ID; Network nodes additionally use Type,
// MinFlow, MaxFlow, Flow. Links use Weight for Graph/Digraph and
// Restriction/Flow/Cost only for Network; json.Unmarshal simply leaves
// the fields a given kind doesn't use at their zero value.
type document struct {
	Nodes []node `json:"nodes"`
	Links []link `json:"links"`
}

type node struct {
	ID      string `json:"id"`
	Type    string `json:"type,omitempty"`
	MinFlow *int64 `json:"min_flow,omitempty"`
	MaxFlow *int64 `json:"max_flow,omitempty"`
	Flow    *int64 `json:"flow,omitempty"`
}

type link struct {
	Source      string `json:"source"`
	Target      string `json:"target"`
	Weight      int64  `json:"weight"`
	Restriction int64  `json:"restriction"`
	Flow        int64  `json:"flow"`
	Cost        int64  `json:"cost"`
}

// NetworkLoadResult bundles a loaded Network with the side structures
// spec.md §3 keeps external to the Network type itself: declared
// sources/sinks, per-vertex throughput ranges, and per-vertex
// production/demand.
type NetworkLoadResult struct {
	Net        *network.Network
	Sources    []string
	Sinks      []string
	Ranges     map[string]network.VertexRange
	Production map[string]int64
}
