package ungraph_test

import (
	"testing"

	"github.com/arbolito/nagui/ungraph"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildK3 is spec.md §8 scenario 2: a triangle A-B-C.
func buildK3(t *testing.T) *ungraph.Graph[string] {
	t.Helper()
	g := ungraph.NewGraph[string]()
	for _, v := range []string{"A", "B", "C"} {
		require.NoError(t, g.AddVertex(v))
	}
	_, err := g.AddEdge("A", "B", 1)
	require.NoError(t, err)
	_, err = g.AddEdge("B", "C", 1)
	require.NoError(t, err)
	_, err = g.AddEdge("A", "C", 1)
	require.NoError(t, err)

	return g
}

func TestBFS_K3RootedAtA(t *testing.T) {
	g := buildK3(t)

	res, err := ungraph.BFSFrom(g, "A")
	require.NoError(t, err)
	assert.True(t, res.IsConnected)

	a, _ := res.Tree.Vertex("A")
	b, _ := res.Tree.Vertex("B")
	c, _ := res.Tree.Vertex("C")
	assert.Equal(t, 0, a.Level)
	assert.Equal(t, 1, b.Level)
	assert.Equal(t, 1, c.Level)
	assert.Equal(t, 2, res.Tree.EdgeCount())
}

func TestBFS_Disconnected(t *testing.T) {
	g := ungraph.NewGraph[string]()
	for _, v := range []string{"A", "B", "C"} {
		require.NoError(t, g.AddVertex(v))
	}
	_, err := g.AddEdge("A", "B", 1)
	require.NoError(t, err)

	res, err := ungraph.BFSFrom(g, "A")
	require.NoError(t, err)
	assert.False(t, res.IsConnected)
	assert.Equal(t, 2, res.Tree.VertexCount())
}

func TestBFS_StartNotFound(t *testing.T) {
	g := ungraph.NewGraph[string]()
	_, err := ungraph.BFSFrom(g, "nope")
	assert.ErrorIs(t, err, ungraph.ErrVertexNotFound)
}
