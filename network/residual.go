package network

import "github.com/arbolito/nagui/digraph"

// residualCapacity records the capacity available on a marginal arc,
// keyed by (source, terminus, weight) rather than the endpoint pair alone:
// an antiparallel pair of original net arcs (u->v and v->u) can each
// contribute a marginal arc running the same direction — one the forward
// residual of u->v, the other the backward residual of v->u — so two
// entries can legitimately share an endpoint pair, and only the signed
// weight (the Dijkstra-layer cost that survives into the reconstructed
// Tree/Cycle arcs) tells them apart.
type residualCapacity struct {
	source, terminus string
	weight            int64
	capacity          int64
}

// constructMarginalNetwork builds the residual digraph.Digraph mirroring
// net's vertices and current flow, per spec.md §4.4: for an arc u->v with
// capacity c, restriction r, flow f, cost k — a forward residual arc
// u->v weight +k exists when f < c, and a backward residual arc v->u
// weight -k exists when f > r. The digraph carries the weights (the
// Dijkstra-layer input); residual capacities are returned alongside via
// a side slice, since digraph.Arc has no capacity field.
func constructMarginalNetwork(net *Network) (*digraph.Digraph[string], []residualCapacity) {
	d := digraph.NewDigraph[string]()
	for _, name := range net.Vertices() {
		_ = d.AddVertex(name)
	}

	var residuals []residualCapacity
	for _, name := range net.Vertices() {
		v, _ := net.Vertex(name)
		for _, a := range v.OutArcs {
			if a.Flow < a.Capacity {
				_, _ = d.AddArc(a.Source, a.Terminus, a.Cost)
				residuals = append(residuals, residualCapacity{a.Source, a.Terminus, a.Cost, a.Capacity - a.Flow})
			}
			if a.Flow > a.Restriction {
				_, _ = d.AddArc(a.Terminus, a.Source, -a.Cost)
				residuals = append(residuals, residualCapacity{a.Terminus, a.Source, -a.Cost, a.Flow - a.Restriction})
			}
		}
	}

	return d, residuals
}

// residualCapacityOf looks up the residual capacity of the marginal arc
// source->terminus carrying weight, or 0 if none exists. weight disambiguates
// the antiparallel-original-arcs case described on residualCapacity.
func residualCapacityOf(residuals []residualCapacity, source, terminus string, weight int64) int64 {
	for _, r := range residuals {
		if r.source == source && r.terminus == terminus && r.weight == weight {
			return r.capacity
		}
	}

	return 0
}

// applyCycleFlow pushes amount units of flow around cyc (a Digraph whose
// arcs are marginal arcs) onto net: an arc that coincides with an
// original net arc's direction and cost increases that arc's flow; one
// running against it (matching on the negated cost) decreases the
// opposite arc's flow (spec.md §4.4's cycle cancellation step). Checking
// Cost against the marginal arc's Weight, not just endpoints, is what
// picks the right original arc when u->v and v->u both exist: both can
// produce a marginal arc between the same ordered pair, and only one of
// them has the cost this particular marginal arc was built from.
func applyCycleFlow(net *Network, cyc *digraph.Digraph[string], amount int64) {
	for _, name := range cyc.Vertices() {
		v, _ := cyc.Vertex(name)
		for _, arc := range v.OutArcs {
			u, w := arc.Source, arc.Terminus
			if a, ok := net.Arc(u, w); ok && a.Cost == arc.Weight {
				net.SetArcFlow(u, w, a.Flow+amount)

				continue
			}
			if a, ok := net.Arc(w, u); ok && a.Cost == -arc.Weight {
				net.SetArcFlow(w, u, a.Flow-amount)
			}
		}
	}
}
