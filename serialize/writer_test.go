package serialize_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arbolito/nagui/digraph"
	"github.com/arbolito/nagui/network"
	"github.com/arbolito/nagui/serialize"
	"github.com/arbolito/nagui/ungraph"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteGraphTree_ProducesExpectedShape(t *testing.T) {
	g := ungraph.NewGraph[string]()
	for _, v := range []string{"A", "B"} {
		require.NoError(t, g.AddVertex(v))
	}
	_, err := g.AddEdge("A", "B", 1)
	require.NoError(t, err)

	out := filepath.Join(t.TempDir(), "out.txt")
	require.NoError(t, serialize.WriteGraphTree(out, g, []string{"The minimum tree has weight: 1"}))

	body, err := os.ReadFile(out)
	require.NoError(t, err)
	text := string(body)
	assert.Contains(t, text, "graph\n")
	assert.Contains(t, text, "vertex\n")
	assert.Contains(t, text, "A B 1\n")
	assert.Contains(t, text, "extra\n")
	assert.Contains(t, text, "The minimum tree has weight: 1\n")
	assert.Contains(t, text, "end\n")
}

func TestWriteDigraphTree_UsesDoubledVertexLine(t *testing.T) {
	d := digraph.NewDigraph[string]()
	require.NoError(t, d.AddVertex("A"))
	require.NoError(t, d.AddVertex("B"))
	_, err := d.AddArc("A", "B", 1)
	require.NoError(t, err)

	out := filepath.Join(t.TempDir(), "out.txt")
	require.NoError(t, serialize.WriteDigraphTree(out, d, nil))

	body, err := os.ReadFile(out)
	require.NoError(t, err)
	text := string(body)
	assert.Contains(t, text, "digraph\n")
	assert.Contains(t, text, "A A\n")
	assert.Contains(t, text, "A B 1\n")
}

func TestWriteDijkstraResult_CycleFoundAddsExtraLine(t *testing.T) {
	d := digraph.NewDigraph[string]()
	for _, v := range []string{"A", "B", "C"} {
		require.NoError(t, d.AddVertex(v))
	}
	_, err := d.AddArc("A", "B", 1)
	require.NoError(t, err)
	_, err = d.AddArc("B", "C", -3)
	require.NoError(t, err)
	_, err = d.AddArc("C", "A", 1)
	require.NoError(t, err)

	res, err := digraph.Dijkstra(d, "A")
	require.NoError(t, err)
	require.True(t, res.CycleFound)

	out := filepath.Join(t.TempDir(), "out.txt")
	require.NoError(t, serialize.WriteDijkstraResult(out, res, nil))

	body, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(body), "A negative cycle was found.\n")
}

func TestWriteNetworkResult_EmitsBoundsAndFlowSummary(t *testing.T) {
	n := network.NewNetwork()
	for _, v := range []string{"s", "v", "t"} {
		require.NoError(t, n.AddVertex(v))
	}
	_, err := n.AddArc("s", "v", 10, 0, 4, 1)
	require.NoError(t, err)
	_, err = n.AddArc("v", "t", 10, 0, 4, 1)
	require.NoError(t, err)
	n.CurrentFlow = 4
	n.CurrentCost = 8

	out := filepath.Join(t.TempDir(), "out.txt")
	ranges := map[string]network.VertexRange{"v": {Min: 0, Max: 4}}
	require.NoError(t, serialize.WriteNetworkResult(out, n, []string{"s"}, []string{"t"}, ranges, nil, nil))

	body, err := os.ReadFile(out)
	require.NoError(t, err)
	text := string(body)
	assert.Contains(t, text, "network\n")
	assert.Contains(t, text, "s source 0 0 0 0 0\n")
	assert.Contains(t, text, "v other 1 0 4 0 0\n")
	assert.Contains(t, text, "s v 10 0 4 1\n")
	assert.Contains(t, text, "Flow: 4. Cost: 8.\n")
}

func TestWriteException_SingleLineBody(t *testing.T) {
	out := filepath.Join(t.TempDir(), "out.txt")
	require.NoError(t, serialize.WriteException(out, ungraph.ErrVertexNotFound))

	body, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(body), "exception\n")
}
