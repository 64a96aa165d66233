package walker

import (
	"fmt"
	"io"

	"github.com/katalvlaran/graphwalk/element"
	"github.com/katalvlaran/graphwalk/graph"
)

type probeVertices[V, E element.Element] struct {
	parent VertexWalker[V, E]
	fn     func(ref graph.VertexRef[V], ctx *Context)
}

// ProbeVertices calls fn for every vertex pulled through, for its side
// effects, then passes the element through unchanged. Used for
// counting, logging-free diagnostics, or feeding an external
// accumulator without altering the pipeline's shape.
func ProbeVertices[V, E element.Element](parent VertexWalker[V, E], fn func(ref graph.VertexRef[V], ctx *Context)) VertexWalker[V, E] {
	return &probeVertices[V, E]{parent: parent, fn: fn}
}

func (w *probeVertices[V, E]) Next(g graph.Graph[V, E]) (graph.VertexRef[V], *Context, bool) {
	ref, ctx, ok := w.parent.Next(g)
	if !ok {
		return graph.VertexRef[V]{}, nil, false
	}
	w.fn(ref, ctx)
	return ref, ctx, true
}

type probeEdges[V, E element.Element] struct {
	parent EdgeWalker[V, E]
	fn     func(ref graph.EdgeRef[E], ctx *Context)
}

// ProbeEdges is the edge analog of ProbeVertices.
func ProbeEdges[V, E element.Element](parent EdgeWalker[V, E], fn func(ref graph.EdgeRef[E], ctx *Context)) EdgeWalker[V, E] {
	return &probeEdges[V, E]{parent: parent, fn: fn}
}

func (w *probeEdges[V, E]) Next(g graph.Graph[V, E]) (graph.EdgeRef[E], *Context, bool) {
	ref, ctx, ok := w.parent.Next(g)
	if !ok {
		return graph.EdgeRef[E]{}, nil, false
	}
	w.fn(ref, ctx)
	return ref, ctx, true
}

// DbgVertices writes a line for each pulled vertex to w, tagged, then
// passes it through unchanged — the diagnostic escape hatch spec.md
// calls for in place of a logging dependency (see SPEC_FULL.md's
// ambient stack notes on why no logging library is wired in).
func DbgVertices[V, E element.Element](parent VertexWalker[V, E], tag string, w io.Writer) VertexWalker[V, E] {
	return ProbeVertices[V, E](parent, func(ref graph.VertexRef[V], ctx *Context) {
		fmt.Fprintf(w, "[%s] vertex %s ctx=%v\n", tag, ref.ID, ctx.Values())
	})
}

// DbgEdges is the edge analog of DbgVertices.
func DbgEdges[V, E element.Element](parent EdgeWalker[V, E], tag string, w io.Writer) EdgeWalker[V, E] {
	return ProbeEdges[V, E](parent, func(ref graph.EdgeRef[E], ctx *Context) {
		fmt.Fprintf(w, "[%s] edge %s ctx=%v\n", tag, ref.ID, ctx.Values())
	})
}
