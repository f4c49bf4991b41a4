package serialize_test

import (
	"path/filepath"
	"testing"

	"github.com/arbolito/nagui/serialize"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeJSON(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "in.json")
	require.NoError(t, writeFile(path, body))

	return path
}

func TestLoadGraph_BuildsTopology(t *testing.T) {
	path := writeJSON(t, `{"nodes":[{"id":"A"},{"id":"B"},{"id":"C"}],"links":[{"source":"A","target":"B","weight":1},{"source":"B","target":"C","weight":2}]}`)

	g, err := serialize.LoadGraph(path)
	require.NoError(t, err)
	assert.Equal(t, 3, g.VertexCount())
	assert.Equal(t, 2, g.EdgeCount())
}

func TestLoadGraph_RejectsUnknownEndpoint(t *testing.T) {
	path := writeJSON(t, `{"nodes":[{"id":"A"}],"links":[{"source":"A","target":"Z","weight":1}]}`)

	_, err := serialize.LoadGraph(path)
	assert.ErrorIs(t, err, serialize.ErrMalformedDocument)
}

func TestLoadDigraph_BuildsTopology(t *testing.T) {
	path := writeJSON(t, `{"nodes":[{"id":"A"},{"id":"B"}],"links":[{"source":"A","target":"B","weight":1}]}`)

	d, err := serialize.LoadDigraph(path)
	require.NoError(t, err)
	assert.Equal(t, 2, d.VertexCount())
}

func TestLoadNetwork_PopulatesSideStructures(t *testing.T) {
	path := writeJSON(t, `{"nodes":[`+
		`{"id":"s","type":"source"},`+
		`{"id":"v","min_flow":0,"max_flow":4},`+
		`{"id":"t","type":"sink","flow":7}`+
		`],"links":[{"source":"s","target":"v","weight":10,"restriction":0,"flow":0,"cost":0},`+
		`{"source":"v","target":"t","weight":10,"restriction":0,"flow":0,"cost":0}]}`)

	result, err := serialize.LoadNetwork(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"s"}, result.Sources)
	assert.Equal(t, []string{"t"}, result.Sinks)
	assert.Equal(t, int64(4), result.Ranges["v"].Max)
	assert.Equal(t, int64(7), result.Production["t"])

	a, ok := result.Net.Arc("s", "v")
	require.True(t, ok)
	assert.Equal(t, int64(10), a.Capacity)
}

func TestLoadNetwork_RejectsReservedVertexName(t *testing.T) {
	path := writeJSON(t, `{"nodes":[{"id":"a'"}],"links":[]}`)

	_, err := serialize.LoadNetwork(path)
	assert.ErrorIs(t, err, serialize.ErrMalformedDocument)
}

func TestLoadGraph_MalformedJSONRejected(t *testing.T) {
	path := writeJSON(t, `not json`)

	_, err := serialize.LoadGraph(path)
	assert.ErrorIs(t, err, serialize.ErrMalformedDocument)
}
