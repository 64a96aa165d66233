package builder

import (
	"github.com/katalvlaran/graphwalk/element"
	"github.com/katalvlaran/graphwalk/graph"
	"github.com/katalvlaran/graphwalk/search"
	"github.com/katalvlaran/graphwalk/walker"
)

// Entry is the root of a fluent traversal chain, bound to a graph and
// to whether the chain is allowed to mutate it.
type Entry[V, E element.Element] struct {
	g       graph.Graph[V, E]
	mutable bool
}

// Walk starts a read-only traversal over g. Any Mutate call later in
// the chain returns ErrReadOnlyWalker.
func Walk[V, E element.Element](g graph.Graph[V, E]) Entry[V, E] {
	return Entry[V, E]{g: g}
}

// WalkMut starts a traversal over g that is permitted to call Mutate.
// Callers are responsible for not running two WalkMut chains over the
// same graph concurrently — Go has no borrow checker to enforce the
// exclusive-borrow discipline Rust's walk_mut() gets for free.
func WalkMut[V, E element.Element](g graph.Graph[V, E]) Entry[V, E] {
	return Entry[V, E]{g: g, mutable: true}
}

// Vertices starts a VertexWalkerBuilder over every vertex matching s.
func (e Entry[V, E]) Vertices(s search.VertexSearch) VertexWalkerBuilder[V, E] {
	return VertexWalkerBuilder[V, E]{g: e.g, mutable: e.mutable, w: walker.Vertices[V, E](e.g, s)}
}

// VerticesByID starts a VertexWalkerBuilder over exactly the given IDs.
func (e Entry[V, E]) VerticesByID(ids []graph.VertexID) VertexWalkerBuilder[V, E] {
	return VertexWalkerBuilder[V, E]{g: e.g, mutable: e.mutable, w: walker.VerticesByID[V, E](ids)}
}
