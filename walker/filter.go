package walker

import (
	"github.com/katalvlaran/graphwalk/element"
	"github.com/katalvlaran/graphwalk/graph"
)

// VertexPredicate decides whether a pulled vertex survives a Filter
// stage. It receives the element's Context so predicates can depend on
// values accumulated earlier in the pipeline.
type VertexPredicate[V any] func(ref graph.VertexRef[V], ctx *Context) bool

// EdgePredicate is the edge analog of VertexPredicate.
type EdgePredicate[E any] func(ref graph.EdgeRef[E], ctx *Context) bool

type filterVertices[V, E element.Element] struct {
	parent VertexWalker[V, E]
	pred   VertexPredicate[V]
}

// FilterVertices keeps only vertices for which pred returns true.
func FilterVertices[V, E element.Element](parent VertexWalker[V, E], pred VertexPredicate[V]) VertexWalker[V, E] {
	return &filterVertices[V, E]{parent: parent, pred: pred}
}

func (w *filterVertices[V, E]) Next(g graph.Graph[V, E]) (graph.VertexRef[V], *Context, bool) {
	for {
		ref, ctx, ok := w.parent.Next(g)
		if !ok {
			return graph.VertexRef[V]{}, nil, false
		}
		if w.pred(ref, ctx) {
			return ref, ctx, true
		}
	}
}

type filterEdges[V, E element.Element] struct {
	parent EdgeWalker[V, E]
	pred   EdgePredicate[E]
}

// FilterEdges keeps only edges for which pred returns true.
func FilterEdges[V, E element.Element](parent EdgeWalker[V, E], pred EdgePredicate[E]) EdgeWalker[V, E] {
	return &filterEdges[V, E]{parent: parent, pred: pred}
}

func (w *filterEdges[V, E]) Next(g graph.Graph[V, E]) (graph.EdgeRef[E], *Context, bool) {
	for {
		ref, ctx, ok := w.parent.Next(g)
		if !ok {
			return graph.EdgeRef[E]{}, nil, false
		}
		if w.pred(ref, ctx) {
			return ref, ctx, true
		}
	}
}
