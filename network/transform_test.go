package network

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestTransformRoundTrip_IdentityRestrictions is spec.md §8's round-trip
// property: makeTransformations followed by revertTransformations with
// identity restrictions (every range [0, capacity]) must reproduce a
// structurally equal network.
func TestTransformRoundTrip_IdentityRestrictions(t *testing.T) {
	n := NewNetwork()
	for _, name := range []string{"s", "v", "t"} {
		require.NoError(t, n.AddVertex(name))
	}
	_, err := n.AddArc("s", "v", 10, 0, 0, 0)
	require.NoError(t, err)
	_, err = n.AddArc("v", "t", 10, 0, 0, 0)
	require.NoError(t, err)

	ranges := map[string]VertexRange{"v": {Min: 0, Max: 10}}

	transformed, state, err := makeTransformations(n, []string{"s"}, []string{"t"}, ranges)
	require.NoError(t, err)
	require.True(t, transformed.HasVertex(SuperSource))
	require.True(t, transformed.HasVertex("v'"))

	reverted, err := revertTransformations(transformed, state)
	require.NoError(t, err)

	assert.False(t, reverted.HasVertex(SuperSource))
	assert.False(t, reverted.HasVertex("v'"))
	assert.ElementsMatch(t, n.Vertices(), reverted.Vertices())

	sv, ok := reverted.Arc("s", "v")
	require.True(t, ok)
	assert.Equal(t, int64(10), sv.Capacity)
	vt, ok := reverted.Arc("v", "t")
	require.True(t, ok)
	assert.Equal(t, int64(10), vt.Capacity)
}

func TestDummyNameFor_CollisionUsesTaggedName(t *testing.T) {
	out := NewNetwork()
	require.NoError(t, out.AddVertex("X"))
	out.addReservedVertex("X'") // simulate a user vertex literally named X'

	name := dummyNameFor(out, "X")
	assert.NotEqual(t, "X'", name)
	assert.False(t, out.HasVertex(name))
}
