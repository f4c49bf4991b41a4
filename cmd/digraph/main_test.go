package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeJSON(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "in.json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	return path
}

func TestRun_DijkstraNoCycle(t *testing.T) {
	jsonPath := writeJSON(t, `{"nodes":[{"id":"A"},{"id":"B"},{"id":"C"}],`+
		`"links":[{"source":"A","target":"B","weight":1},{"source":"B","target":"C","weight":-2},`+
		`{"source":"A","target":"C","weight":2}]}`)
	outPath := filepath.Join(t.TempDir(), "out.txt")

	require.NoError(t, run(jsonPath, "dijkstra", "A", outPath))

	body, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Contains(t, string(body), "digraph\n")
}

func TestRun_DijkstraNegativeCycle(t *testing.T) {
	jsonPath := writeJSON(t, `{"nodes":[{"id":"A"},{"id":"B"},{"id":"C"}],`+
		`"links":[{"source":"A","target":"B","weight":1},{"source":"B","target":"C","weight":-3},`+
		`{"source":"C","target":"A","weight":1}]}`)
	outPath := filepath.Join(t.TempDir(), "out.txt")

	require.NoError(t, run(jsonPath, "dijkstra", "A", outPath))

	body, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Contains(t, string(body), "A negative cycle was found.\n")
}

func TestRun_FloydIgnoresStartVertex(t *testing.T) {
	jsonPath := writeJSON(t, `{"nodes":[{"id":"A"},{"id":"B"}],"links":[{"source":"A","target":"B","weight":1}]}`)
	outPath := filepath.Join(t.TempDir(), "out.txt")

	require.NoError(t, run(jsonPath, "floyd", "ignored", outPath))

	body, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Contains(t, string(body), "digraph\n")
}
