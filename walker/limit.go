package walker

import (
	"github.com/katalvlaran/graphwalk/element"
	"github.com/katalvlaran/graphwalk/graph"
)

type limitVertices[V, E element.Element] struct {
	parent    VertexWalker[V, E]
	remaining int
}

// LimitVertices yields at most n vertices from parent, then reports
// exhausted without pulling parent further.
func LimitVertices[V, E element.Element](parent VertexWalker[V, E], n int) VertexWalker[V, E] {
	return &limitVertices[V, E]{parent: parent, remaining: n}
}

func (w *limitVertices[V, E]) Next(g graph.Graph[V, E]) (graph.VertexRef[V], *Context, bool) {
	if w.remaining <= 0 {
		return graph.VertexRef[V]{}, nil, false
	}
	ref, ctx, ok := w.parent.Next(g)
	if !ok {
		w.remaining = 0
		return graph.VertexRef[V]{}, nil, false
	}
	w.remaining--
	return ref, ctx, true
}

type limitEdges[V, E element.Element] struct {
	parent    EdgeWalker[V, E]
	remaining int
}

// LimitEdges is the edge analog of LimitVertices.
func LimitEdges[V, E element.Element](parent EdgeWalker[V, E], n int) EdgeWalker[V, E] {
	return &limitEdges[V, E]{parent: parent, remaining: n}
}

func (w *limitEdges[V, E]) Next(g graph.Graph[V, E]) (graph.EdgeRef[E], *Context, bool) {
	if w.remaining <= 0 {
		return graph.EdgeRef[E]{}, nil, false
	}
	ref, ctx, ok := w.parent.Next(g)
	if !ok {
		w.remaining = 0
		return graph.EdgeRef[E]{}, nil, false
	}
	w.remaining--
	return ref, ctx, true
}
