// Command graph is spec.md §6's `graph` entry program: load a node/link
// JSON document, run one of Fleury/BFS/iterative-DFS/recursive-DFS/
// Kruskal/Prim on it, and write the result (or a caught failure) to
// ./data/<id>-final.txt.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/arbolito/nagui/serialize"
	"github.com/arbolito/nagui/ungraph"
	"github.com/arbolito/nagui/xerrors"
)

func main() {
	if len(os.Args) < 4 {
		fmt.Fprintln(os.Stderr, "usage: graph <json-path> <id> {fleury|bfs|idfs|rdfs|kruskal|prim}")
		os.Exit(1)
	}
	jsonPath, id, algo := os.Args[1], os.Args[2], os.Args[3]

	outPath, err := outputPath(id)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if err := run(jsonPath, algo, outPath); err != nil {
		if werr := serialize.WriteException(outPath, err); werr != nil {
			fmt.Fprintln(os.Stderr, werr)
			os.Exit(1)
		}
	}
}

func outputPath(id string) (string, error) {
	if err := os.MkdirAll("data", 0o755); err != nil {
		return "", err
	}

	return filepath.Join("data", id+"-final.txt"), nil
}

func connectivityExtra(isConnected bool) []string {
	if isConnected {
		return nil
	}

	return []string{"The tree does not span every vertex."}
}

func run(jsonPath, algo, outPath string) error {
	g, err := serialize.LoadGraph(jsonPath)
	if err != nil {
		return err
	}

	switch algo {
	case "fleury":
		res, err := ungraph.Fleury(g)
		if err != nil {
			return err
		}
		extra := connectivityExtra(res.IsConnected)

		return serialize.WriteFleuryCircuit(outPath, res.Circuit, extra)
	case "bfs":
		res, err := ungraph.BFS(g)
		if err != nil {
			return err
		}

		return serialize.WriteGraphTree(outPath, res.Tree, connectivityExtra(res.IsConnected))
	case "idfs":
		res, err := ungraph.IterativeDFS(g)
		if err != nil {
			return err
		}

		return serialize.WriteGraphTree(outPath, res.Tree, connectivityExtra(res.IsConnected))
	case "rdfs":
		res, err := ungraph.RecursiveDFS(g)
		if err != nil {
			return err
		}

		return serialize.WriteGraphTree(outPath, res.Tree, connectivityExtra(res.IsConnected))
	case "kruskal":
		res, err := ungraph.Kruskal(g)
		if err != nil {
			return err
		}

		return serialize.WriteGraphTree(outPath, res.Tree, []string{fmt.Sprintf("The minimum tree has weight: %d", res.Weight)})
	case "prim":
		res, err := ungraph.Prim(g)
		if err != nil {
			return err
		}

		return serialize.WriteGraphTree(outPath, res.Tree, []string{fmt.Sprintf("The minimum tree has weight: %d", res.Weight)})
	default:
		return fmt.Errorf("%w: unknown algorithm %q", xerrors.ErrInvariant, algo)
	}
}
