package digraph_test

import (
	"testing"

	"github.com/arbolito/nagui/digraph"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddArc_InOutInvariant(t *testing.T) {
	d := digraph.NewDigraph[string]()
	require.NoError(t, d.AddVertex("A"))
	require.NoError(t, d.AddVertex("B"))

	_, err := d.AddArc("A", "B", 5)
	require.NoError(t, err)

	a, _ := d.Vertex("A")
	b, _ := d.Vertex("B")
	require.Len(t, a.OutArcs, 1)
	require.Len(t, b.InArcs, 1)
	assert.Equal(t, 1, a.OutDegree)
	assert.Equal(t, 1, b.InDegree)
	assert.Equal(t, "B", a.OutArcs[0].Opposite)
	assert.Equal(t, "A", b.InArcs[0].Opposite)
	assert.Equal(t, int64(5), a.OutArcs[0].Weight)
}

func TestAddArc_MissingVertex(t *testing.T) {
	d := digraph.NewDigraph[string]()
	require.NoError(t, d.AddVertex("A"))
	_, err := d.AddArc("A", "B", 1)
	assert.ErrorIs(t, err, digraph.ErrVertexNotFound)
}

func TestAddArc_ParallelArcsAllowed(t *testing.T) {
	d := digraph.NewDigraph[string]()
	require.NoError(t, d.AddVertex("A"))
	require.NoError(t, d.AddVertex("B"))
	_, err1 := d.AddArc("A", "B", 1)
	_, err2 := d.AddArc("A", "B", 1)
	require.NoError(t, err1)
	require.NoError(t, err2)

	a, _ := d.Vertex("A")
	assert.Len(t, a.OutArcs, 2)
}

func TestClone_IsDisjoint(t *testing.T) {
	d := digraph.NewDigraph[string]()
	require.NoError(t, d.AddVertex("A"))
	require.NoError(t, d.AddVertex("B"))
	_, _ = d.AddArc("A", "B", 3)

	clone := d.Clone()
	_, _ = clone.AddArc("B", "A", 9)

	a, _ := d.Vertex("A")
	assert.Len(t, a.InArcs, 0, "mutating the clone must not affect the original")
}
