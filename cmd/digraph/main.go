// Command digraph is spec.md §6's `digraph` entry program: load a
// node/link JSON document, run generalized Dijkstra from a given start
// vertex or all-pairs Floyd–Warshall, and write the result (or a caught
// failure) to ./data/<id>-final.txt.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/arbolito/nagui/digraph"
	"github.com/arbolito/nagui/serialize"
	"github.com/arbolito/nagui/xerrors"
)

func main() {
	if len(os.Args) < 5 {
		fmt.Fprintln(os.Stderr, "usage: digraph <json-path> <id> {dijkstra|floyd} <startVertex>")
		os.Exit(1)
	}
	jsonPath, id, algo, start := os.Args[1], os.Args[2], os.Args[3], os.Args[4]

	if err := os.MkdirAll("data", 0o755); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	outPath := filepath.Join("data", id+"-final.txt")

	if err := run(jsonPath, algo, start, outPath); err != nil {
		if werr := serialize.WriteException(outPath, err); werr != nil {
			fmt.Fprintln(os.Stderr, werr)
			os.Exit(1)
		}
	}
}

func run(jsonPath, algo, start, outPath string) error {
	d, err := serialize.LoadDigraph(jsonPath)
	if err != nil {
		return err
	}

	switch algo {
	case "dijkstra":
		res, err := digraph.Dijkstra(d, start)
		if err != nil {
			return err
		}

		return serialize.WriteDijkstraResult(outPath, res, nil)
	case "floyd":
		// startVertex is ignored for floyd (spec.md §6): every vertex
		// produces its own shortest-path arborescence.
		res, err := digraph.FloydWarshall(d)
		if err != nil {
			return err
		}
		trees := res.GetTreesFromDict()

		return serialize.WriteFloydResult(outPath, trees, d.Vertices(), nil)
	default:
		return fmt.Errorf("%w: unknown algorithm %q", xerrors.ErrInvariant, algo)
	}
}
