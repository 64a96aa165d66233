package walker

import (
	"github.com/katalvlaran/graphwalk/element"
	"github.com/katalvlaran/graphwalk/graph"
	"github.com/katalvlaran/graphwalk/search"
)

// idSource is the shared implementation behind Vertices and
// VerticesByID: an ordered ID list (for Vertices, queried on the first
// pull), re-resolved to a live value on every pull so a removal that
// lands between the list being built and a given pull is silently
// skipped rather than surfaced as an error — the contract spec.md
// requires of vertices_by_id, extended here to every source stage for
// uniformity.
type idSource[V, E element.Element] struct {
	query *search.VertexSearch
	ids   []graph.VertexID
	pos   int
}

// Vertices starts a VertexWalker over every vertex matching s. The ID
// list is resolved once, on the first pull, in the backend's
// deterministic order; values are re-read from g on each pull.
func Vertices[V, E element.Element](g graph.Graph[V, E], s search.VertexSearch) VertexWalker[V, E] {
	return &idSource[V, E]{query: &s}
}

// VerticesByID starts a VertexWalker over exactly the given IDs, in the
// given order. IDs that no longer resolve to a live vertex at pull time
// are silently skipped, never reported as an error.
func VerticesByID[V, E element.Element](ids []graph.VertexID) VertexWalker[V, E] {
	cp := make([]graph.VertexID, len(ids))
	copy(cp, ids)
	return &idSource[V, E]{ids: cp}
}

func (w *idSource[V, E]) Next(g graph.Graph[V, E]) (graph.VertexRef[V], *Context, bool) {
	if w.query != nil {
		w.ids = g.QueryVertices(*w.query)
		w.query = nil
	}
	for w.pos < len(w.ids) {
		id := w.ids[w.pos]
		w.pos++
		if v, ok := g.VertexValue(id); ok {
			return graph.VertexRef[V]{ID: id, Value: v}, nil, true
		}
	}
	return graph.VertexRef[V]{}, nil, false
}

// edgesStage expands each vertex pulled from parent into its incident
// edges matching s, flattening the two levels into one EdgeWalker —
// the Go equivalent of graph-api-lib's Edges step composing over a
// VertexWalker parent.
type edgesStage[V, E element.Element] struct {
	parent  VertexWalker[V, E]
	search  search.EdgeSearch
	pending []graph.EdgeID
	ctx     *Context
	pos     int
}

// Edges expands parent's vertices into their incident edges matching s.
func Edges[V, E element.Element](parent VertexWalker[V, E], s search.EdgeSearch) EdgeWalker[V, E] {
	return &edgesStage[V, E]{parent: parent, search: s}
}

func (w *edgesStage[V, E]) Next(g graph.Graph[V, E]) (graph.EdgeRef[E], *Context, bool) {
	for {
		for w.pos < len(w.pending) {
			eid := w.pending[w.pos]
			w.pos++
			tail, head, ok := g.EdgeEndpoints(eid)
			if !ok {
				continue
			}
			val, ok := g.EdgeValue(eid)
			if !ok {
				continue
			}
			return graph.EdgeRef[E]{ID: eid, Value: val, Tail: tail, Head: head}, w.ctx, true
		}
		vref, ctx, ok := w.parent.Next(g)
		if !ok {
			return graph.EdgeRef[E]{}, nil, false
		}
		w.pending = g.QueryEdges(vref.ID, w.search)
		w.ctx = ctx
		w.pos = 0
	}
}
