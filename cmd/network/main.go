// Command network is spec.md §6's `network` entry program: load a
// node/link JSON document plus its side structures (sources, sinks,
// vertex ranges, production), run Ford–Fulkerson or one of the two
// minimum-cost-flow variants, and write the result (or a caught failure)
// to ./data/<id>-final.txt. `simplex` is accepted as a recognized token
// and rejected as out of scope (spec.md §9).
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/arbolito/nagui/network"
	"github.com/arbolito/nagui/serialize"
	"github.com/arbolito/nagui/xerrors"
)

// ErrUnsupportedAlgorithm indicates the driver was invoked with the
// `simplex` token, which spec.md §9 documents but explicitly excludes
// from this implementation.
var ErrUnsupportedAlgorithm = fmt.Errorf("network: %w: simplex is not implemented", xerrors.ErrInvariant)

func main() {
	if len(os.Args) < 4 {
		fmt.Fprintln(os.Stderr, "usage: network <json-path> <id> {ford|mincycle|minpaths|simplex} [<F>]")
		os.Exit(1)
	}
	jsonPath, id, algo := os.Args[1], os.Args[2], os.Args[3]
	var target string
	if len(os.Args) > 4 {
		target = os.Args[4]
	}

	if err := os.MkdirAll("data", 0o755); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	outPath := filepath.Join("data", id+"-final.txt")

	if err := run(jsonPath, algo, target, outPath); err != nil {
		if werr := serialize.WriteException(outPath, err); werr != nil {
			fmt.Fprintln(os.Stderr, werr)
			os.Exit(1)
		}
	}
}

func parseTarget(algo, raw string) (int64, error) {
	if raw == "" {
		return 0, fmt.Errorf("%w: %s requires an <F> argument", xerrors.ErrInvariant, algo)
	}

	f, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: <F> must be a decimal integer: %v", xerrors.ErrInvariant, err)
	}

	return f, nil
}

func run(jsonPath, algo, target, outPath string) error {
	loaded, err := serialize.LoadNetwork(jsonPath)
	if err != nil {
		return err
	}

	switch algo {
	case "ford":
		result, err := network.FordFulkerson(loaded.Net, loaded.Sources, loaded.Sinks, loaded.Ranges)
		if err != nil {
			return err
		}

		return serialize.WriteNetworkResult(outPath, result, loaded.Sources, loaded.Sinks, loaded.Ranges, loaded.Production, nil)
	case "mincycle":
		f, err := parseTarget(algo, target)
		if err != nil {
			return err
		}
		result, err := network.MinimumCostFlow(loaded.Net, loaded.Sources, loaded.Sinks, loaded.Ranges, f)
		if err != nil {
			return err
		}

		return serialize.WriteNetworkResult(outPath, result, loaded.Sources, loaded.Sinks, loaded.Ranges, loaded.Production, nil)
	case "minpaths":
		f, err := parseTarget(algo, target)
		if err != nil {
			return err
		}
		result, solutionFound, err := network.MinimumCostFlowWithShortestPaths(loaded.Net, loaded.Sources, loaded.Sinks, loaded.Ranges, f)
		if err != nil {
			return err
		}
		extra := []string{fmt.Sprintf("Solution found: %t.", solutionFound)}

		return serialize.WriteNetworkResult(outPath, result, loaded.Sources, loaded.Sinks, loaded.Ranges, loaded.Production, extra)
	case "simplex":
		return ErrUnsupportedAlgorithm
	default:
		return fmt.Errorf("%w: unknown algorithm %q", xerrors.ErrInvariant, algo)
	}
}
