package memgraph

import (
	"sort"

	"github.com/katalvlaran/graphwalk/element"
	"github.com/katalvlaran/graphwalk/graph"
	"github.com/katalvlaran/graphwalk/label"
	"github.com/katalvlaran/graphwalk/search"
)

// QueryVertices returns vertex IDs matching s, sorted by ID so that
// repeated queries against an unchanged graph are reproducible.
func (g *Graph[V, E]) QueryVertices(s search.VertexSearch) []graph.VertexID {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	out := make([]graph.VertexID, 0, len(g.vertices))
	for id, v := range g.vertices {
		if !matchesLabel(v.Label(), s.Label) {
			continue
		}
		if !matchesPredicates(v, s.Predicates) {
			continue
		}
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// QueryEdges returns edge IDs incident to pivot, filtered by direction,
// label and predicates, sorted by ID.
func (g *Graph[V, E]) QueryEdges(pivot graph.VertexID, s search.EdgeSearch) []graph.EdgeID {
	g.muEdge.RLock()
	defer g.muEdge.RUnlock()

	candidates := make(map[graph.EdgeID]struct{})
	if s.Direction == search.Outgoing || s.Direction == search.Either {
		for eid := range g.outAdj[pivot] {
			candidates[eid] = struct{}{}
		}
	}
	if s.Direction == search.Incoming || s.Direction == search.Either {
		for eid := range g.inAdj[pivot] {
			candidates[eid] = struct{}{}
		}
	}

	g.muVert.RLock()
	defer g.muVert.RUnlock()

	out := make([]graph.EdgeID, 0, len(candidates))
	for eid := range candidates {
		rec, ok := g.edges[eid]
		if !ok {
			continue
		}
		if !matchesLabel(rec.value.Label(), s.Label) {
			continue
		}
		if !g.matchesNeighborLabelLocked(pivot, rec, s.NeighborLabel) {
			continue
		}
		if !matchesPredicates(rec.value, s.Predicates) {
			continue
		}
		out = append(out, eid)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func matchesLabel(have label.Label, want label.Label) bool {
	if want == nil {
		return true
	}
	return have.Ordinal() == want.Ordinal() && have.Name() == want.Name()
}

// matchesNeighborLabelLocked reports whether rec's endpoint other than
// pivot carries want. Callers must hold muVert. An edge where pivot is
// neither endpoint (shouldn't happen given how candidates is built, but
// defensive) never matches a non-nil want.
func (g *Graph[V, E]) matchesNeighborLabelLocked(pivot graph.VertexID, rec edgeRecord[E], want label.Label) bool {
	if want == nil {
		return true
	}
	var neighbor graph.VertexID
	switch {
	case rec.tail == pivot:
		neighbor = rec.head
	case rec.head == pivot:
		neighbor = rec.tail
	default:
		return false
	}
	v, ok := g.vertices[neighbor]
	if !ok {
		return false
	}
	return matchesLabel(v.Label(), want)
}

func matchesPredicates(e element.Element, preds []search.Predicate) bool {
	for _, p := range preds {
		v, ok := e.FieldValue(p.Field)
		if !ok {
			return false
		}
		if p.Rng != nil {
			if !p.Rng.Contains(v) {
				return false
			}
			continue
		}
		if p.Term != nil {
			text, isString := v.Str()
			if !isString || !search.MatchesTerm(text, *p.Term) {
				return false
			}
			continue
		}
		if !v.Equal(p.Eq) {
			return false
		}
	}
	return true
}
