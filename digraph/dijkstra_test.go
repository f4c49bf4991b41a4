package digraph_test

import (
	"testing"

	"github.com/arbolito/nagui/digraph"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildNoCycle is spec.md §8 scenario 3: A→B(1), B→C(-2), A→C(2).
func buildNoCycle(t *testing.T) *digraph.Digraph[string] {
	t.Helper()
	d := digraph.NewDigraph[string]()
	for _, v := range []string{"A", "B", "C"} {
		require.NoError(t, d.AddVertex(v))
	}
	_, err := d.AddArc("A", "B", 1)
	require.NoError(t, err)
	_, err = d.AddArc("B", "C", -2)
	require.NoError(t, err)
	_, err = d.AddArc("A", "C", 2)
	require.NoError(t, err)

	return d
}

func TestDijkstra_NegativeArcNoCycle(t *testing.T) {
	d := buildNoCycle(t)

	res, err := digraph.Dijkstra(d, "A")
	require.NoError(t, err)
	require.False(t, res.CycleFound)

	assert.Equal(t, int64(0), res.ShortestPaths["A"])
	assert.Equal(t, int64(1), res.ShortestPaths["B"])
	assert.Equal(t, int64(-1), res.ShortestPaths["C"])
	assert.Equal(t, "B", res.Previous["C"])
}

// buildNegativeCycle is spec.md §8 scenario 4: A→B(1), B→C(-3), C→A(1).
func buildNegativeCycle(t *testing.T) *digraph.Digraph[string] {
	t.Helper()
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

	return d
}

func TestDijkstra_NegativeCycleDetected(t *testing.T) {
	d := buildNegativeCycle(t)

	res, err := digraph.Dijkstra(d, "A")
	require.NoError(t, err)
	require.True(t, res.CycleFound)
	require.NotNil(t, res.Cycle)

	names := map[string]bool{}
	for _, v := range res.Cycle.Vertices() {
		names[v] = true
	}
	assert.Equal(t, map[string]bool{"A": true, "B": true, "C": true}, names)
}

func TestDijkstra_StartNotFound(t *testing.T) {
	d := digraph.NewDigraph[string]()
	_, err := digraph.Dijkstra(d, "missing")
	assert.ErrorIs(t, err, digraph.ErrVertexNotFound)
}

func TestDijkstra_Unreachable(t *testing.T) {
	d := digraph.NewDigraph[string]()
	require.NoError(t, d.AddVertex("A"))
	require.NoError(t, d.AddVertex("B"))

	res, err := digraph.Dijkstra(d, "A")
	require.NoError(t, err)
	require.False(t, res.CycleFound)
	_, ok := res.ShortestPaths["B"]
	assert.False(t, ok, "unreachable vertex should have no distance entry")
}
