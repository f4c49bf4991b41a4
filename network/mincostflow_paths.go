package network

import (
	"fmt"

	"github.com/arbolito/nagui/digraph"
	"github.com/arbolito/nagui/xerrors"
)

// ErrShortestPathRestriction indicates MinimumCostFlowWithShortestPaths
// was called on a network carrying a positive minimum restriction, which
// spec.md §4.4 lists as an explicit precondition of this algorithm
// (cycle cancellation handles restrictions instead).
var ErrShortestPathRestriction = fmt.Errorf("network: %w: successive shortest paths requires zero minimum restrictions", xerrors.ErrInvariant)

// MinimumCostFlowWithShortestPaths computes a minimum-cost routing of up
// to target units via successive shortest-path augmentation on the
// marginal network (spec.md §4.4). Unlike MinimumCostFlow, failure to
// reach target units is not an error: the second return value is false
// and the network reflects whatever partial flow was achieved before a
// negative cycle or an unreachable sink was encountered.
func MinimumCostFlowWithShortestPaths(net *Network, sources, sinks []string, ranges map[string]VertexRange, target int64) (*Network, bool, error) {
	if len(sources) == 0 || len(sinks) == 0 {
		return nil, false, ErrNoEndpoints
	}
	for _, name := range net.Vertices() {
		v, _ := net.Vertex(name)
		for _, a := range v.OutArcs {
			if a.Restriction > 0 {
				return nil, false, ErrShortestPathRestriction
			}
		}
	}

	transformed, state, err := makeTransformations(net, sources, sinks, ranges)
	if err != nil {
		return nil, false, err
	}

	for transformed.CurrentFlow < target {
		marginal, residuals := constructMarginalNetwork(transformed)

		res, err := digraph.Dijkstra(marginal, SuperSource)
		if err != nil {
			return nil, false, err
		}
		if res.CycleFound {
			reverted, rerr := revertTransformations(transformed, state)
			if rerr != nil {
				return nil, false, rerr
			}

			return reverted, false, nil
		}

		dist, reachable := res.ShortestPaths[SuperSink]
		if !reachable {
			reverted, rerr := revertTransformations(transformed, state)
			if rerr != nil {
				return nil, false, rerr
			}

			return reverted, false, nil
		}

		path := retrievePathFromPrevious(res.Previous, SuperSource, SuperSink)
		weights := pathArcWeights(res.Tree, path)
		bottleneck := pathBottleneck(path, weights, residuals)
		remaining := target - transformed.CurrentFlow
		amount := bottleneck
		if amount > remaining {
			amount = remaining
		}
		if amount <= 0 {
			break
		}

		applyPathFlow(transformed, path, weights, amount)
		transformed.CurrentCost += amount * dist
		transformed.CurrentFlow += amount
	}

	reverted, err := revertTransformations(transformed, state)
	if err != nil {
		return nil, false, err
	}

	return reverted, reverted.CurrentFlow >= target, nil
}

// retrievePathFromPrevious walks prev backward from sink to source,
// returning the path source ... sink in forward order.
func retrievePathFromPrevious(prev map[string]string, source, sink string) []string {
	rev := []string{sink}
	cur := sink
	for cur != source {
		p, ok := prev[cur]
		if !ok {
			break
		}
		cur = p
		rev = append(rev, cur)
	}

	path := make([]string, len(rev))
	for i, v := range rev {
		path[len(rev)-1-i] = v
	}

	return path
}

// pathArcWeights returns, for each consecutive pair of path, the Weight of
// the Tree arc connecting them — the signed marginal cost that
// pathBottleneck/applyPathFlow need to tell apart two marginal arcs that
// share an endpoint pair (see residualCapacity's doc comment). Tree holds
// exactly one in-arc per vertex, so scanning path[i]'s out-arcs for the one
// terminating at path[i+1] is unambiguous.
func pathArcWeights(tree *digraph.Digraph[string], path []string) []int64 {
	weights := make([]int64, 0, len(path))
	for i := 0; i+1 < len(path); i++ {
		v, _ := tree.Vertex(path[i])
		for _, a := range v.OutArcs {
			if a.Terminus == path[i+1] {
				weights = append(weights, a.Weight)

				break
			}
		}
	}

	return weights
}

// pathBottleneck returns the minimum residual capacity along consecutive
// pairs of path, or 0 if path has fewer than two vertices.
func pathBottleneck(path []string, weights []int64, residuals []residualCapacity) int64 {
	if len(path) < 2 {
		return 0
	}

	bottleneck := Infinity
	for i := 0; i+1 < len(path); i++ {
		if cap := residualCapacityOf(residuals, path[i], path[i+1], weights[i]); cap < bottleneck {
			bottleneck = cap
		}
	}

	return bottleneck
}

// applyPathFlow pushes amount units of flow along path (a sequence of
// marginal arcs) onto net, the same forward/backward rule applyCycleFlow
// uses for cycles: matching each step's weight against Cost (or its
// negation) picks the right original arc when path[i]->path[i+1] and its
// reverse both exist in net.
func applyPathFlow(net *Network, path []string, weights []int64, amount int64) {
	for i := 0; i+1 < len(path); i++ {
		u, w := path[i], path[i+1]
		wt := weights[i]
		if a, ok := net.Arc(u, w); ok && a.Cost == wt {
			net.SetArcFlow(u, w, a.Flow+amount)

			continue
		}
		if a, ok := net.Arc(w, u); ok && a.Cost == -wt {
			net.SetArcFlow(w, u, a.Flow-amount)
		}
	}
}
