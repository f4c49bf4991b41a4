package network

import "github.com/arbolito/nagui/digraph"

// MinimumCostFlow computes a minimum-cost routing of exactly target units
// from the declared sources to the declared sinks, by cycle cancellation
// on the marginal network (spec.md §4.4):
//
//  1. route target units with Ford–Fulkerson's target-flow variant
//     (ErrInfeasible if that's impossible);
//  2. repeatedly build the marginal network and run generalized Dijkstra
//     from every vertex until one reports a negative cycle; if none
//     does, the routing is already cost-optimal;
//  3. otherwise push min(residual capacity along the cycle) units of
//     flow around the cycle in the original network, accumulating
//     units * sum(cycle weights) into CurrentCost, and repeat.
func MinimumCostFlow(net *Network, sources, sinks []string, ranges map[string]VertexRange, target int64) (*Network, error) {
	transformed, state, err := establishTargetFlow(net, sources, sinks, ranges, target)
	if err != nil {
		return nil, err
	}
	// coreLoop only tracks flow, not cost: seed CurrentCost from whatever
	// routing Ford–Fulkerson happened to find before cycle cancellation
	// starts correcting it.
	transformed.CurrentCost = totalFlowCost(transformed)

	for {
		marginal, residuals := constructMarginalNetwork(transformed)

		cyc, found := findNegativeCycle(marginal)
		if !found {
			break
		}

		d := cycleBottleneck(cyc, residuals)
		if d <= 0 {
			break
		}
		applyCycleFlow(transformed, cyc, d)
		transformed.CurrentCost += d * cycleWeightSum(cyc)
	}

	return revertTransformations(transformed, state)
}

// findNegativeCycle runs generalized Dijkstra from every vertex of d in
// turn, returning the first negative cycle reported.
func findNegativeCycle(d *digraph.Digraph[string]) (*digraph.Digraph[string], bool) {
	for _, start := range d.Vertices() {
		res, err := digraph.Dijkstra(d, start)
		if err != nil {
			continue
		}
		if res.CycleFound {
			return res.Cycle, true
		}
	}

	return nil, false
}

// cycleBottleneck returns the minimum residual capacity among cyc's arcs.
// Looking residuals up by (source, terminus, weight) rather than just the
// endpoint pair matters here: cyc's arcs are marginal arcs, and an
// antiparallel pair of original net arcs can contribute two marginal arcs
// between the same ordered pair (see residualCapacity's doc comment).
func cycleBottleneck(cyc *digraph.Digraph[string], residuals []residualCapacity) int64 {
	bottleneck := Infinity
	for _, name := range cyc.Vertices() {
		v, _ := cyc.Vertex(name)
		for _, arc := range v.OutArcs {
			if cap := residualCapacityOf(residuals, arc.Source, arc.Terminus, arc.Weight); cap < bottleneck {
				bottleneck = cap
			}
		}
	}

	return bottleneck
}

// totalFlowCost sums flow*cost over every arc of net, each arc counted
// once (via its source's OutArcs, never its terminus's InArcs).
func totalFlowCost(net *Network) int64 {
	var sum int64
	for _, name := range net.Vertices() {
		v, _ := net.Vertex(name)
		for _, a := range v.OutArcs {
			sum += a.Flow * a.Cost
		}
	}

	return sum
}

// cycleWeightSum sums the weights of cyc's arcs (each counted once).
func cycleWeightSum(cyc *digraph.Digraph[string]) int64 {
	var sum int64
	for _, name := range cyc.Vertices() {
		v, _ := cyc.Vertex(name)
		for _, arc := range v.OutArcs {
			sum += arc.Weight
		}
	}

	return sum
}
