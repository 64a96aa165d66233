package builder

import (
	"io"

	"github.com/katalvlaran/graphwalk/element"
	"github.com/katalvlaran/graphwalk/graph"
	"github.com/katalvlaran/graphwalk/walker"
)

// EdgeWalkerBuilder is a fluent chain of edge-producing pipeline stages
// bound to a graph.
type EdgeWalkerBuilder[V, E element.Element] struct {
	g       graph.Graph[V, E]
	mutable bool
	w       walker.EdgeWalker[V, E]
}

// Filter keeps only edges for which pred returns true.
func (b EdgeWalkerBuilder[V, E]) Filter(pred walker.EdgePredicate[E]) EdgeWalkerBuilder[V, E] {
	b.w = walker.FilterEdges[V, E](b.w, pred)
	return b
}

// Limit yields at most n edges.
func (b EdgeWalkerBuilder[V, E]) Limit(n int) EdgeWalkerBuilder[V, E] {
	b.w = walker.LimitEdges[V, E](b.w, n)
	return b
}

// PushContext pushes fn(ref, ctx) onto each edge's Context.
func (b EdgeWalkerBuilder[V, E]) PushContext(fn walker.EdgeContextFn[E]) EdgeWalkerBuilder[V, E] {
	b.w = walker.PushContextEdges[V, E](b.w, fn)
	return b
}

// PushDefaultContext pushes each edge's own Value onto its Context.
func (b EdgeWalkerBuilder[V, E]) PushDefaultContext() EdgeWalkerBuilder[V, E] {
	b.w = walker.PushDefaultContextEdges[V, E](b.w)
	return b
}

// MutateContext replaces the top of each edge's Context via fn.
func (b EdgeWalkerBuilder[V, E]) MutateContext(fn func(top any) any) EdgeWalkerBuilder[V, E] {
	b.w = walker.MutateContextEdges[V, E](b.w, fn)
	return b
}

// Probe calls fn for every edge pulled through, for side effects.
func (b EdgeWalkerBuilder[V, E]) Probe(fn func(ref graph.EdgeRef[E], ctx *walker.Context)) EdgeWalkerBuilder[V, E] {
	b.w = walker.ProbeEdges[V, E](b.w, fn)
	return b
}

// Dbg writes a diagnostic line per edge to w, tagged.
func (b EdgeWalkerBuilder[V, E]) Dbg(tag string, w io.Writer) EdgeWalkerBuilder[V, E] {
	b.w = walker.DbgEdges[V, E](b.w, tag, w)
	return b
}

// Head continues the chain at each edge's target vertex.
func (b EdgeWalkerBuilder[V, E]) Head() VertexWalkerBuilder[V, E] {
	return VertexWalkerBuilder[V, E]{g: b.g, mutable: b.mutable, w: walker.Head[V, E](b.w)}
}

// Tail continues the chain at each edge's source vertex.
func (b EdgeWalkerBuilder[V, E]) Tail() VertexWalkerBuilder[V, E] {
	return VertexWalkerBuilder[V, E]{g: b.g, mutable: b.mutable, w: walker.Tail[V, E](b.w)}
}

// First returns the first matching edge, if any.
func (b EdgeWalkerBuilder[V, E]) First() (graph.EdgeRef[E], bool) {
	return walker.FirstEdge[V, E](b.g, b.w)
}

// Count exhausts the chain, counting matches.
func (b EdgeWalkerBuilder[V, E]) Count() int {
	return walker.CountEdges[V, E](b.g, b.w)
}

// Collect exhausts the chain into a slice of EdgeIDs.
func (b EdgeWalkerBuilder[V, E]) Collect() []graph.EdgeID {
	return walker.CollectEdges[V, E](b.g, b.w)
}

// Fold exhausts the chain, threading acc through fn.
func (b EdgeWalkerBuilder[V, E]) Fold(init any, fn func(acc any, ref graph.EdgeRef[E], ctx *walker.Context) any) any {
	return walker.FoldEdges[V, E, any](b.g, b.w, init, fn)
}

// IntoIter adapts the chain into a Go 1.23 range-over-func iterator.
func (b EdgeWalkerBuilder[V, E]) IntoIter() func(yield func(graph.EdgeRef[E]) bool) {
	return walker.IntoIterEdges[V, E](b.g, b.w)
}

// Mutate pulls every matching edge and applies fn through a mutable
// handle. Returns ErrReadOnlyWalker if the chain was started with Walk
// instead of WalkMut.
func (b EdgeWalkerBuilder[V, E]) Mutate(fn func(ref graph.EdgeRefMut[V, E], ctx *walker.Context)) (int, error) {
	if !b.mutable {
		return 0, ErrReadOnlyWalker
	}
	return walker.MutateEdges[V, E](b.g, b.w, fn), nil
}

// MapEdges applies fn to every matched edge, collecting results.
func MapEdges[V, E element.Element, R any](b EdgeWalkerBuilder[V, E], fn func(ref graph.EdgeRef[E], ctx *walker.Context) R) []R {
	return walker.MapEdges[V, E, R](b.g, b.w, fn)
}
