package walker

import (
	"github.com/katalvlaran/graphwalk/element"
	"github.com/katalvlaran/graphwalk/graph"
)

// VertexContextFn derives a value to push onto the Context for a pulled
// vertex.
type VertexContextFn[V any] func(ref graph.VertexRef[V], ctx *Context) any

// EdgeContextFn is the edge analog of VertexContextFn.
type EdgeContextFn[E any] func(ref graph.EdgeRef[E], ctx *Context) any

type pushContextVertices[V, E element.Element] struct {
	parent VertexWalker[V, E]
	fn     VertexContextFn[V]
}

// PushContextVertices pushes fn(ref, ctx) onto each pulled vertex's
// Context.
func PushContextVertices[V, E element.Element](parent VertexWalker[V, E], fn VertexContextFn[V]) VertexWalker[V, E] {
	return &pushContextVertices[V, E]{parent: parent, fn: fn}
}

func (w *pushContextVertices[V, E]) Next(g graph.Graph[V, E]) (graph.VertexRef[V], *Context, bool) {
	ref, ctx, ok := w.parent.Next(g)
	if !ok {
		return graph.VertexRef[V]{}, nil, false
	}
	return ref, ctx.Push(w.fn(ref, ctx)), true
}

// PushDefaultContextVertices pushes the vertex's own Value, sugar for
// the common case of wanting the current element available later in
// the chain (matches graph-api-lib's push_default_context, see
// examples/default_context.rs).
func PushDefaultContextVertices[V, E element.Element](parent VertexWalker[V, E]) VertexWalker[V, E] {
	return PushContextVertices[V, E](parent, func(ref graph.VertexRef[V], _ *Context) any { return ref.Value })
}

type pushContextEdges[V, E element.Element] struct {
	parent EdgeWalker[V, E]
	fn     EdgeContextFn[E]
}

// PushContextEdges pushes fn(ref, ctx) onto each pulled edge's Context.
func PushContextEdges[V, E element.Element](parent EdgeWalker[V, E], fn EdgeContextFn[E]) EdgeWalker[V, E] {
	return &pushContextEdges[V, E]{parent: parent, fn: fn}
}

func (w *pushContextEdges[V, E]) Next(g graph.Graph[V, E]) (graph.EdgeRef[E], *Context, bool) {
	ref, ctx, ok := w.parent.Next(g)
	if !ok {
		return graph.EdgeRef[E]{}, nil, false
	}
	return ref, ctx.Push(w.fn(ref, ctx)), true
}

// PushDefaultContextEdges pushes the edge's own Value.
func PushDefaultContextEdges[V, E element.Element](parent EdgeWalker[V, E]) EdgeWalker[V, E] {
	return PushContextEdges[V, E](parent, func(ref graph.EdgeRef[E], _ *Context) any { return ref.Value })
}

type mutateContextVertices[V, E element.Element] struct {
	parent VertexWalker[V, E]
	fn     func(top any) any
}

// MutateContextVertices replaces the top of the Context with
// fn(currentTop), without changing stack depth; on an empty Context fn
// receives nil and its result becomes the only frame. Useful for running
// accumulators (counters, running sums) alongside a traversal.
func MutateContextVertices[V, E element.Element](parent VertexWalker[V, E], fn func(top any) any) VertexWalker[V, E] {
	return &mutateContextVertices[V, E]{parent: parent, fn: fn}
}

func (w *mutateContextVertices[V, E]) Next(g graph.Graph[V, E]) (graph.VertexRef[V], *Context, bool) {
	ref, ctx, ok := w.parent.Next(g)
	if !ok {
		return graph.VertexRef[V]{}, nil, false
	}
	return ref, ctx.Parent().Push(w.fn(ctx.Top())), true
}

type mutateContextEdges[V, E element.Element] struct {
	parent EdgeWalker[V, E]
	fn     func(top any) any
}

// MutateContextEdges is the edge analog of MutateContextVertices.
func MutateContextEdges[V, E element.Element](parent EdgeWalker[V, E], fn func(top any) any) EdgeWalker[V, E] {
	return &mutateContextEdges[V, E]{parent: parent, fn: fn}
}

func (w *mutateContextEdges[V, E]) Next(g graph.Graph[V, E]) (graph.EdgeRef[E], *Context, bool) {
	ref, ctx, ok := w.parent.Next(g)
	if !ok {
		return graph.EdgeRef[E]{}, nil, false
	}
	return ref, ctx.Parent().Push(w.fn(ctx.Top())), true
}
