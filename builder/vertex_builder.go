package builder

import (
	"io"

	"github.com/emirpasic/gods/sets/hashset"

	"github.com/katalvlaran/graphwalk/element"
	"github.com/katalvlaran/graphwalk/graph"
	"github.com/katalvlaran/graphwalk/search"
	"github.com/katalvlaran/graphwalk/walker"
)

// VertexWalkerBuilder is a fluent chain of vertex-producing pipeline
// stages bound to a graph.
type VertexWalkerBuilder[V, E element.Element] struct {
	g       graph.Graph[V, E]
	mutable bool
	w       walker.VertexWalker[V, E]
}

// Filter keeps only vertices for which pred returns true.
func (b VertexWalkerBuilder[V, E]) Filter(pred walker.VertexPredicate[V]) VertexWalkerBuilder[V, E] {
	b.w = walker.FilterVertices[V, E](b.w, pred)
	return b
}

// Limit yields at most n vertices.
func (b VertexWalkerBuilder[V, E]) Limit(n int) VertexWalkerBuilder[V, E] {
	b.w = walker.LimitVertices[V, E](b.w, n)
	return b
}

// PushContext pushes fn(ref, ctx) onto each vertex's Context.
func (b VertexWalkerBuilder[V, E]) PushContext(fn walker.VertexContextFn[V]) VertexWalkerBuilder[V, E] {
	b.w = walker.PushContextVertices[V, E](b.w, fn)
	return b
}

// PushDefaultContext pushes each vertex's own Value onto its Context.
func (b VertexWalkerBuilder[V, E]) PushDefaultContext() VertexWalkerBuilder[V, E] {
	b.w = walker.PushDefaultContextVertices[V, E](b.w)
	return b
}

// MutateContext replaces the top of each vertex's Context via fn.
func (b VertexWalkerBuilder[V, E]) MutateContext(fn func(top any) any) VertexWalkerBuilder[V, E] {
	b.w = walker.MutateContextVertices[V, E](b.w, fn)
	return b
}

// Probe calls fn for every vertex pulled through, for side effects.
func (b VertexWalkerBuilder[V, E]) Probe(fn func(ref graph.VertexRef[V], ctx *walker.Context)) VertexWalkerBuilder[V, E] {
	b.w = walker.ProbeVertices[V, E](b.w, fn)
	return b
}

// Dbg writes a diagnostic line per vertex to w, tagged.
func (b VertexWalkerBuilder[V, E]) Dbg(tag string, w io.Writer) VertexWalkerBuilder[V, E] {
	b.w = walker.DbgVertices[V, E](b.w, tag, w)
	return b
}

// Detour keeps only vertices for which the sub-chain built by fn
// matches at least one element, without advancing the outer chain past
// this vertex. See detour.go for the cross-package wiring that avoids
// a walker<->builder import cycle.
func (b VertexWalkerBuilder[V, E]) Detour(fn func(sub Entry[V, E], ref graph.VertexRef[V]) Probeable[V, E]) VertexWalkerBuilder[V, E] {
	entry := Entry[V, E]{g: b.g, mutable: b.mutable}
	b.w = walker.FilterVertices[V, E](b.w, func(ref graph.VertexRef[V], _ *walker.Context) bool {
		return fn(entry, ref).probeOnce(b.g)
	})
	return b
}

// Edges expands this builder's vertices into their incident edges
// matching s.
func (b VertexWalkerBuilder[V, E]) Edges(s search.EdgeSearch) EdgeWalkerBuilder[V, E] {
	return EdgeWalkerBuilder[V, E]{g: b.g, mutable: b.mutable, w: walker.Edges[V, E](b.w, s)}
}

// First returns the first matching vertex, if any.
func (b VertexWalkerBuilder[V, E]) First() (graph.VertexRef[V], bool) {
	return walker.FirstVertex[V, E](b.g, b.w)
}

// Count exhausts the chain, counting matches.
func (b VertexWalkerBuilder[V, E]) Count() int {
	return walker.CountVertices[V, E](b.g, b.w)
}

// Collect exhausts the chain into a slice of VertexIDs.
func (b VertexWalkerBuilder[V, E]) Collect() []graph.VertexID {
	return walker.CollectVertices[V, E](b.g, b.w)
}

// CollectSet exhausts the chain into a deduplicated set of VertexIDs.
func (b VertexWalkerBuilder[V, E]) CollectSet() *hashset.Set {
	return walker.CollectVertexSet[V, E](b.g, b.w)
}

// Fold exhausts the chain, threading acc through fn.
func (b VertexWalkerBuilder[V, E]) Fold(init any, fn func(acc any, ref graph.VertexRef[V], ctx *walker.Context) any) any {
	return walker.FoldVertices[V, E, any](b.g, b.w, init, fn)
}

// Reduce folds using the first matched vertex as the seed.
func (b VertexWalkerBuilder[V, E]) Reduce(fn func(acc, ref graph.VertexRef[V]) graph.VertexRef[V]) (graph.VertexRef[V], bool) {
	return walker.ReduceVertices[V, E](b.g, b.w, fn)
}

// IntoIter adapts the chain into a Go 1.23 range-over-func iterator.
func (b VertexWalkerBuilder[V, E]) IntoIter() func(yield func(graph.VertexRef[V]) bool) {
	return walker.IntoIterVertices[V, E](b.g, b.w)
}

// Mutate pulls every matching vertex and applies fn through a mutable
// handle. Returns ErrReadOnlyWalker if the chain was started with Walk
// instead of WalkMut.
func (b VertexWalkerBuilder[V, E]) Mutate(fn func(ref graph.VertexRefMut[V, E], ctx *walker.Context)) (int, error) {
	if !b.mutable {
		return 0, ErrReadOnlyWalker
	}
	return walker.MutateVertices[V, E](b.g, b.w, fn), nil
}

// Map applies fn to every matched vertex, collecting results. It is a
// free function, not a method, for the same reason walker.MapVertices
// is: Go methods cannot add a type parameter beyond the receiver's own.
func Map[V, E element.Element, R any](b VertexWalkerBuilder[V, E], fn func(ref graph.VertexRef[V], ctx *walker.Context) R) []R {
	return walker.MapVertices[V, E, R](b.g, b.w, fn)
}
