package ungraph_test

import (
	"sort"
	"testing"

	"github.com/arbolito/nagui/ungraph"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildEvenCycle4 is a 4-cycle A-B-C-D-A, every vertex of even degree 2.
func buildEvenCycle4(t *testing.T) *ungraph.Graph[string] {
	t.Helper()
	g := ungraph.NewGraph[string]()
	for _, v := range []string{"A", "B", "C", "D"} {
		require.NoError(t, g.AddVertex(v))
	}
	_, err := g.AddEdge("A", "B", 1)
	require.NoError(t, err)
	_, err = g.AddEdge("B", "C", 1)
	require.NoError(t, err)
	_, err = g.AddEdge("C", "D", 1)
	require.NoError(t, err)
	_, err = g.AddEdge("D", "A", 1)
	require.NoError(t, err)

	return g
}

func TestFleury_EvenCycleProducesCircuit(t *testing.T) {
	g := buildEvenCycle4(t)

	res, err := ungraph.Fleury(g)
	require.NoError(t, err)
	assert.True(t, res.IsConnected)
	assert.Equal(t, 4, res.Circuit.VertexCount())

	type arc struct {
		source, terminus string
		weight            int64
	}
	var arcs []arc
	for _, name := range res.Circuit.Vertices() {
		v, _ := res.Circuit.Vertex(name)
		for _, a := range v.OutArcs {
			arcs = append(arcs, arc{a.Source, a.Terminus, a.Weight})
		}
	}
	require.Len(t, arcs, 4)

	sort.Slice(arcs, func(i, j int) bool { return arcs[i].weight < arcs[j].weight })

	// arc weights carry the 1-based walk sequence number
	for i, a := range arcs {
		assert.Equal(t, int64(i+1), a.weight)
	}

	// consecutive arcs in sequence order stay adjacent, and the walk closes
	// into a circuit (spec.md §8's Fleury property)
	for i := 0; i+1 < len(arcs); i++ {
		assert.Equal(t, arcs[i].terminus, arcs[i+1].source, "arc %d and arc %d are not adjacent", i, i+1)
	}
	assert.Equal(t, arcs[len(arcs)-1].terminus, arcs[0].source, "walk does not close into a circuit")

	// the multiset of undirected endpoint pairs equals the input's edges
	normalize := func(a, b string) [2]string {
		if a > b {
			a, b = b, a
		}

		return [2]string{a, b}
	}
	got := map[[2]string]int{}
	for _, a := range arcs {
		got[normalize(a.source, a.terminus)]++
	}
	want := map[[2]string]int{
		normalize("A", "B"): 1,
		normalize("B", "C"): 1,
		normalize("C", "D"): 1,
		normalize("D", "A"): 1,
	}
	assert.Equal(t, want, got)
}

func TestFleury_OddDegreeRejected(t *testing.T) {
	g := ungraph.NewGraph[string]()
	for _, v := range []string{"A", "B", "C"} {
		require.NoError(t, g.AddVertex(v))
	}
	_, err := g.AddEdge("A", "B", 1)
	require.NoError(t, err)
	_, err = g.AddEdge("B", "C", 1)
	require.NoError(t, err)

	_, err = ungraph.Fleury(g)
	assert.ErrorIs(t, err, ungraph.ErrNotRunnable)
}

func TestFleury_EmptyGraphRejected(t *testing.T) {
	g := ungraph.NewGraph[string]()
	_, err := ungraph.Fleury(g)
	assert.ErrorIs(t, err, ungraph.ErrNotRunnable)
}
