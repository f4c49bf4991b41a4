package network_test

import (
	"testing"

	"github.com/arbolito/nagui/network"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildTwoPathNetwork is spec.md §8 scenario 6: two parallel source->sink
// paths of capacity 5 each, costing 1 and 3 per unit respectively.
func buildTwoPathNetwork(t *testing.T) *network.Network {
	t.Helper()
	n := network.NewNetwork()
	for _, name := range []string{"s", "a", "b", "t"} {
		require.NoError(t, n.AddVertex(name))
	}
	_, err := n.AddArc("s", "a", 5, 0, 0, 1)
	require.NoError(t, err)
	_, err = n.AddArc("a", "t", 5, 0, 0, 0)
	require.NoError(t, err)
	_, err = n.AddArc("s", "b", 5, 0, 0, 3)
	require.NoError(t, err)
	_, err = n.AddArc("b", "t", 5, 0, 0, 0)
	require.NoError(t, err)

	return n
}

func TestMinimumCostFlow_CycleCancellation(t *testing.T) {
	n := buildTwoPathNetwork(t)

	result, err := network.MinimumCostFlow(n, []string{"s"}, []string{"t"}, nil, 7)
	require.NoError(t, err)

	assert.Equal(t, int64(7), result.CurrentFlow)
	assert.Equal(t, int64(11), result.CurrentCost)
}

func TestMinimumCostFlowWithShortestPaths_SameNetwork(t *testing.T) {
	n := buildTwoPathNetwork(t)

	result, solved, err := network.MinimumCostFlowWithShortestPaths(n, []string{"s"}, []string{"t"}, nil, 7)
	require.NoError(t, err)
	require.True(t, solved)

	assert.Equal(t, int64(7), result.CurrentFlow)
	assert.Equal(t, int64(11), result.CurrentCost)
}

func TestMinimumCostFlowWithShortestPaths_RejectsPositiveRestriction(t *testing.T) {
	n := network.NewNetwork()
	for _, name := range []string{"s", "t"} {
		require.NoError(t, n.AddVertex(name))
	}
	_, err := n.AddArc("s", "t", 5, 1, 1, 0)
	require.NoError(t, err)

	_, _, err = network.MinimumCostFlowWithShortestPaths(n, []string{"s"}, []string{"t"}, nil, 1)
	assert.ErrorIs(t, err, network.ErrShortestPathRestriction)
}

func TestMinimumCostFlow_InfeasibleTarget(t *testing.T) {
	n := network.NewNetwork()
	for _, name := range []string{"s", "t"} {
		require.NoError(t, n.AddVertex(name))
	}
	_, err := n.AddArc("s", "t", 3, 0, 0, 1)
	require.NoError(t, err)

	_, err = network.MinimumCostFlow(n, []string{"s"}, []string{"t"}, nil, 10)
	assert.ErrorIs(t, err, network.ErrInfeasible)
}
