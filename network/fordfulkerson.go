package network

import (
	"fmt"

	"github.com/arbolito/nagui/xerrors"
)

// ErrNoEndpoints indicates FordFulkerson was called with no declared
// sources or no declared sinks.
var ErrNoEndpoints = fmt.Errorf("network: %w: no source or sink declared", xerrors.ErrInvariant)

// ErrInfeasible is network's local re-export of xerrors.ErrInfeasible,
// raised when arc minimum restrictions cannot be satisfied by any flow.
var ErrInfeasible = fmt.Errorf("network: %w: arc restrictions cannot be satisfied", xerrors.ErrInfeasible)

type labelState int

const (
	unset labelState = iota
	touched
	examined
)

// label is a vertex's augmenting-chain bookkeeping during one pass of the
// Ford–Fulkerson core loop: which vertex touched it, whether the labeling
// arc runs forward (capacity-constrained) or backward
// (restriction-constrained), and the chain capacity accumulated so far.
type label struct {
	state    labelState
	parent   string
	forward  bool
	chainCap int64
}

// runAugmentingSearch is spec.md §4.4's label-correcting search: starting
// from source (touched), examine every touched-but-not-examined vertex's
// out-arcs (forward labeling where flow < capacity) and in-arcs (backward
// labeling where flow > restriction), until no touched vertex remains.
func runAugmentingSearch(net *Network, source string) map[string]*label {
	labels := map[string]*label{source: {state: touched, chainCap: Infinity}}
	worklist := []string{source}

	for len(worklist) > 0 {
		u := worklist[0]
		worklist = worklist[1:]
		lu := labels[u]
		if lu.state == examined {
			continue
		}

		uv, ok := net.Vertex(u)
		if ok {
			for _, a := range uv.OutArcs {
				if _, labeled := labels[a.Terminus]; labeled {
					continue
				}
				if a.Flow < a.Capacity {
					cap := lu.chainCap
					if room := a.Capacity - a.Flow; room < cap {
						cap = room
					}
					labels[a.Terminus] = &label{state: touched, parent: u, forward: true, chainCap: cap}
					worklist = append(worklist, a.Terminus)
				}
			}
			for _, a := range uv.InArcs {
				if _, labeled := labels[a.Source]; labeled {
					continue
				}
				if a.Flow > a.Restriction {
					cap := lu.chainCap
					if room := a.Flow - a.Restriction; room < cap {
						cap = room
					}
					labels[a.Source] = &label{state: touched, parent: u, forward: false, chainCap: cap}
					worklist = append(worklist, a.Source)
				}
			}
		}
		lu.state = examined
	}

	return labels
}

// augment walks the labeled chain from sink back to source, incrementing
// forward arcs and decrementing backward arcs by amount.
func augment(net *Network, labels map[string]*label, source, sink string, amount int64) {
	cur := sink
	for cur != source {
		l := labels[cur]
		if l.forward {
			a, _ := net.Arc(l.parent, cur)
			net.SetArcFlow(l.parent, cur, a.Flow+amount)
		} else {
			a, _ := net.Arc(cur, l.parent)
			net.SetArcFlow(cur, l.parent, a.Flow-amount)
		}
		cur = l.parent
	}
}

// coreLoop repeatedly searches for an augmenting chain from source to
// sink and pushes flow along it, stopping when the sink is never touched
// (max flow reached) or, if target is non-nil, once net.CurrentFlow
// reaches *target (spec.md §4.4's target-flow variant).
func coreLoop(net *Network, source, sink string, target *int64) {
	for {
		labels := runAugmentingSearch(net, source)
		sinkLabel, ok := labels[sink]
		if !ok {
			break
		}

		amount := sinkLabel.chainCap
		if target != nil {
			remaining := *target - net.CurrentFlow
			if remaining <= 0 {
				break
			}
			if amount > remaining {
				amount = remaining
			}
		}
		if amount <= 0 {
			break
		}

		augment(net, labels, source, sink, amount)
		net.CurrentFlow += amount

		if target != nil && net.CurrentFlow >= *target {
			break
		}
	}
}

type restrictedArc struct {
	source, terminus      string
	restriction, capacity int64
}

// findInitialFlow absorbs arc minimum restrictions before the main
// augmenting search, per spec.md §4.4: build an auxiliary network with
// a''/z'' and a circulation arc pair a'<->z', shrink every restricted
// arc's capacity by its restriction, add a budget arc from each
// restricted source to z'' and to each restricted terminus from a'',
// saturate a''->z'' with Ford–Fulkerson, then distribute the resulting
// flow back onto the original restricted arcs. net must already carry
// a' and z' (i.e. be post-makeTransformations); its restricted arcs'
// Flow fields are updated in place.
func findInitialFlow(net *Network) error {
	aux := net.Clone()
	aux.addReservedVertex(SuperSuperSource)
	aux.addReservedVertex(SuperSuperSink)
	if _, err := aux.addArcUnchecked(SuperSource, SuperSink, Infinity, 0, 0, 0); err != nil {
		return err
	}
	if _, err := aux.addArcUnchecked(SuperSink, SuperSource, Infinity, 0, 0, 0); err != nil {
		return err
	}

	var restricted []restrictedArc
	outBudget := map[string]int64{}
	inBudget := map[string]int64{}

	for _, name := range net.Vertices() {
		v, ok := aux.Vertex(name)
		if !ok {
			continue
		}
		for _, a := range snapshotOutArcs(v) {
			if a.Restriction <= 0 {
				continue
			}
			restricted = append(restricted, restrictedArc{a.Source, a.Terminus, a.Restriction, a.Capacity})
			aux.SetArcBounds(a.Source, a.Terminus, a.Capacity-a.Restriction, 0)
			outBudget[a.Source] += a.Restriction
			inBudget[a.Terminus] += a.Restriction
		}
	}

	if len(restricted) == 0 {
		return nil
	}

	for name, sum := range outBudget {
		if _, err := aux.addArcUnchecked(name, SuperSuperSink, sum, 0, 0, 0); err != nil {
			return err
		}
	}
	for name, sum := range inBudget {
		if _, err := aux.addArcUnchecked(SuperSuperSource, name, sum, 0, 0, 0); err != nil {
			return err
		}
	}

	coreLoop(aux, SuperSuperSource, SuperSuperSink, nil)

	source2, ok := aux.Vertex(SuperSuperSource)
	if !ok {
		return fmt.Errorf("%w: missing auxiliary source", xerrors.ErrInvariant)
	}
	for _, a := range source2.OutArcs {
		if a.Flow < a.Capacity {
			return ErrInfeasible
		}
	}

	remainingOut := map[string]int64{}
	for name := range outBudget {
		v, _ := aux.Vertex(name)
		if a, ok := v.OutArcs[SuperSuperSink]; ok {
			remainingOut[name] = a.Flow
		}
	}
	remainingIn := map[string]int64{}
	for name := range inBudget {
		v, _ := aux.Vertex(name)
		if a, ok := v.InArcs[SuperSuperSource]; ok {
			remainingIn[name] = a.Flow
		}
	}

	for _, ra := range restricted {
		fill := ra.restriction
		if b := remainingOut[ra.source]; b < fill {
			fill = b
		}
		if b := remainingIn[ra.terminus]; b < fill {
			fill = b
		}
		if room := ra.capacity; room < fill {
			fill = room
		}
		if fill < 0 {
			fill = 0
		}
		net.SetArcFlow(ra.source, ra.terminus, fill)
		remainingOut[ra.source] -= fill
		remainingIn[ra.terminus] -= fill
	}

	return nil
}

// FordFulkerson computes a maximum flow from the declared sources to the
// declared sinks, honoring every arc's minimum restriction and every
// ranged vertex's throughput bound, per spec.md §4.4's public contract:
// transform, find an initial feasible flow, saturate the core loop from
// a' to z', then revert the transformations. net is never mutated; the
// returned network is a fresh, disjoint result.
func FordFulkerson(net *Network, sources, sinks []string, ranges map[string]VertexRange) (*Network, error) {
	if len(sources) == 0 || len(sinks) == 0 {
		return nil, ErrNoEndpoints
	}

	transformed, state, err := makeTransformations(net, sources, sinks, ranges)
	if err != nil {
		return nil, err
	}
	if err := findInitialFlow(transformed); err != nil {
		return nil, err
	}
	coreLoop(transformed, SuperSource, SuperSink, nil)

	return revertTransformations(transformed, state)
}

// establishTargetFlow is FordFulkerson's target-flow variant (spec.md
// §4.4), used by both minimum-cost-flow algorithms to establish a
// feasible routing of exactly target units before optimizing cost. It
// returns the still-transformed network (a'/z'/dummies intact) and the
// transformState needed to revert it later, so the caller can keep
// iterating before calling revertTransformations itself.
func establishTargetFlow(net *Network, sources, sinks []string, ranges map[string]VertexRange, target int64) (*Network, *transformState, error) {
	if len(sources) == 0 || len(sinks) == 0 {
		return nil, nil, ErrNoEndpoints
	}

	transformed, state, err := makeTransformations(net, sources, sinks, ranges)
	if err != nil {
		return nil, nil, err
	}
	if err := findInitialFlow(transformed); err != nil {
		return nil, nil, err
	}
	coreLoop(transformed, SuperSource, SuperSink, &target)
	if transformed.CurrentFlow < target {
		return nil, nil, ErrInfeasible
	}

	return transformed, state, nil
}
