package walker

import (
	"github.com/katalvlaran/graphwalk/element"
	"github.com/katalvlaran/graphwalk/graph"
)

// endpointsStage turns an EdgeWalker back into a VertexWalker by
// resolving either the head (target) or tail (source) of each pulled
// edge, matching the literal head()/tail() semantics of
// graph-api-lib's Endpoints step (src/walker/endpoints.rs): head moves
// to the edge's target, tail moves to its source.
type endpointsStage[V, E element.Element] struct {
	parent EdgeWalker[V, E]
	toHead bool
}

// Head builds a VertexWalker over parent's edges' target vertices.
func Head[V, E element.Element](parent EdgeWalker[V, E]) VertexWalker[V, E] {
	return &endpointsStage[V, E]{parent: parent, toHead: true}
}

// Tail builds a VertexWalker over parent's edges' source vertices.
func Tail[V, E element.Element](parent EdgeWalker[V, E]) VertexWalker[V, E] {
	return &endpointsStage[V, E]{parent: parent, toHead: false}
}

func (w *endpointsStage[V, E]) Next(g graph.Graph[V, E]) (graph.VertexRef[V], *Context, bool) {
	for {
		eref, ctx, ok := w.parent.Next(g)
		if !ok {
			return graph.VertexRef[V]{}, nil, false
		}
		id := eref.Tail
		if w.toHead {
			id = eref.Head
		}
		v, ok := g.VertexValue(id)
		if !ok {
			continue
		}
		return graph.VertexRef[V]{ID: id, Value: v}, ctx, true
	}
}
