package walker

import (
	"github.com/emirpasic/gods/sets/hashset"

	"github.com/katalvlaran/graphwalk/element"
	"github.com/katalvlaran/graphwalk/graph"
)

// FirstVertex pulls and returns the first matching vertex, if any.
func FirstVertex[V, E element.Element](g graph.Graph[V, E], w VertexWalker[V, E]) (graph.VertexRef[V], bool) {
	ref, _, ok := w.Next(g)
	return ref, ok
}

// FirstEdge is the edge analog of FirstVertex.
func FirstEdge[V, E element.Element](g graph.Graph[V, E], w EdgeWalker[V, E]) (graph.EdgeRef[E], bool) {
	ref, _, ok := w.Next(g)
	return ref, ok
}

// CountVertices exhausts w, counting matches. It performs no
// allocation proportional to the result size, unlike Collect.
func CountVertices[V, E element.Element](g graph.Graph[V, E], w VertexWalker[V, E]) int {
	n := 0
	for {
		if _, _, ok := w.Next(g); !ok {
			return n
		}
		n++
	}
}

// CountEdges is the edge analog of CountVertices.
func CountEdges[V, E element.Element](g graph.Graph[V, E], w EdgeWalker[V, E]) int {
	n := 0
	for {
		if _, _, ok := w.Next(g); !ok {
			return n
		}
		n++
	}
}

// CollectVertices exhausts w into a slice of VertexIDs, in pull order.
func CollectVertices[V, E element.Element](g graph.Graph[V, E], w VertexWalker[V, E]) []graph.VertexID {
	var out []graph.VertexID
	for {
		ref, _, ok := w.Next(g)
		if !ok {
			return out
		}
		out = append(out, ref.ID)
	}
}

// CollectEdges exhausts w into a slice of EdgeIDs, in pull order.
func CollectEdges[V, E element.Element](g graph.Graph[V, E], w EdgeWalker[V, E]) []graph.EdgeID {
	var out []graph.EdgeID
	for {
		ref, _, ok := w.Next(g)
		if !ok {
			return out
		}
		out = append(out, ref.ID)
	}
}

// CollectVertexSet exhausts w into a deduplicated set of VertexIDs,
// backed by gods/sets/hashset (grounded on JodeZer-dag's go.mod) —
// the same container the pack's own dependency-bearing repo reaches
// for when it needs set semantics over arbitrary comparable keys.
func CollectVertexSet[V, E element.Element](g graph.Graph[V, E], w VertexWalker[V, E]) *hashset.Set {
	set := hashset.New()
	for {
		ref, _, ok := w.Next(g)
		if !ok {
			return set
		}
		set.Add(ref.ID)
	}
}

// FoldVertices exhausts w, threading acc through fn for every match.
func FoldVertices[V, E element.Element, A any](g graph.Graph[V, E], w VertexWalker[V, E], init A, fn func(acc A, ref graph.VertexRef[V], ctx *Context) A) A {
	acc := init
	for {
		ref, ctx, ok := w.Next(g)
		if !ok {
			return acc
		}
		acc = fn(acc, ref, ctx)
	}
}

// FoldEdges is the edge analog of FoldVertices.
func FoldEdges[V, E element.Element, A any](g graph.Graph[V, E], w EdgeWalker[V, E], init A, fn func(acc A, ref graph.EdgeRef[E], ctx *Context) A) A {
	acc := init
	for {
		ref, ctx, ok := w.Next(g)
		if !ok {
			return acc
		}
		acc = fn(acc, ref, ctx)
	}
}

// ReduceVertices folds over w using the first matched vertex as the
// seed. ok is false if w matched nothing.
func ReduceVertices[V, E element.Element](g graph.Graph[V, E], w VertexWalker[V, E], fn func(acc, ref graph.VertexRef[V]) graph.VertexRef[V]) (graph.VertexRef[V], bool) {
	first, _, ok := w.Next(g)
	if !ok {
		return graph.VertexRef[V]{}, false
	}
	acc := first
	for {
		ref, _, ok := w.Next(g)
		if !ok {
			return acc, true
		}
		acc = fn(acc, ref)
	}
}

// MapVertices applies fn to every matched vertex, collecting results.
// It is a free function, not a VertexWalker method, because Go methods
// on a generic type cannot introduce an additional type parameter (R
// here) beyond the receiver's own — the same restriction that makes
// slices.Collect a stdlib function rather than a method.
func MapVertices[V, E element.Element, R any](g graph.Graph[V, E], w VertexWalker[V, E], fn func(ref graph.VertexRef[V], ctx *Context) R) []R {
	var out []R
	for {
		ref, ctx, ok := w.Next(g)
		if !ok {
			return out
		}
		out = append(out, fn(ref, ctx))
	}
}

// MapEdges is the edge analog of MapVertices.
func MapEdges[V, E element.Element, R any](g graph.Graph[V, E], w EdgeWalker[V, E], fn func(ref graph.EdgeRef[E], ctx *Context) R) []R {
	var out []R
	for {
		ref, ctx, ok := w.Next(g)
		if !ok {
			return out
		}
		out = append(out, fn(ref, ctx))
	}
}

// IntoIterVertices adapts w into a Go 1.23 range-over-func iterator.
func IntoIterVertices[V, E element.Element](g graph.Graph[V, E], w VertexWalker[V, E]) func(yield func(graph.VertexRef[V]) bool) {
	return func(yield func(graph.VertexRef[V]) bool) {
		for {
			ref, _, ok := w.Next(g)
			if !ok || !yield(ref) {
				return
			}
		}
	}
}

// IntoIterEdges is the edge analog of IntoIterVertices.
func IntoIterEdges[V, E element.Element](g graph.Graph[V, E], w EdgeWalker[V, E]) func(yield func(graph.EdgeRef[E]) bool) {
	return func(yield func(graph.EdgeRef[E]) bool) {
		for {
			ref, _, ok := w.Next(g)
			if !ok || !yield(ref) {
				return
			}
		}
	}
}

// MutateVertices pulls every matching vertex through an exclusively
// borrowed graph and applies fn, which may write back through the
// supplied mutable handle. It returns the number of elements visited.
// Because the walker chain only ever queries IDs and re-resolves
// current values per pull (see idSource.Next), a mutation performed by
// fn on one element is visible to — or silently absent from, if it
// deleted something — stages still downstream, matching the
// suspend/resume mutation-visibility contract without needing a
// distinct snapshot/resume mechanism.
func MutateVertices[V, E element.Element](g graph.Graph[V, E], w VertexWalker[V, E], fn func(ref graph.VertexRefMut[V, E], ctx *Context)) int {
	n := 0
	for {
		ref, ctx, ok := w.Next(g)
		if !ok {
			return n
		}
		fn(graph.NewVertexRefMut(g, ref), ctx)
		n++
	}
}

// MutateEdges is the edge analog of MutateVertices.
func MutateEdges[V, E element.Element](g graph.Graph[V, E], w EdgeWalker[V, E], fn func(ref graph.EdgeRefMut[V, E], ctx *Context)) int {
	n := 0
	for {
		ref, ctx, ok := w.Next(g)
		if !ok {
			return n
		}
		fn(graph.NewEdgeRefMut(g, ref), ctx)
		n++
	}
}
