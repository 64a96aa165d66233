// Package walker implements the lazy, pull-based traversal pipeline
// that runs over a graph.Graph: a VertexWalker or EdgeWalker cursor is
// built by wrapping a parent cursor with one stage at a time, and no
// graph access happens until a terminal stage pulls elements through
// the whole chain. This mirrors graph-api-lib's Walker/VertexWalker/
// EdgeWalker traits (src/lib.rs, src/walker/vertices.rs,
// src/walker/vertex_iter.rs), translated from Rust's borrow-scoped
// generic wrapper structs to Go interfaces plus concrete stage structs.
package walker

import (
	"github.com/katalvlaran/graphwalk/element"
	"github.com/katalvlaran/graphwalk/graph"
)

// VertexWalker is a lazy cursor over vertices. Next pulls the next
// matching vertex through this stage and every stage beneath it,
// performing graph access only as needed. ok is false once the chain
// is exhausted; subsequent calls must keep returning false (cursors
// are not required to be restartable).
type VertexWalker[V, E element.Element] interface {
	Next(g graph.Graph[V, E]) (ref graph.VertexRef[V], ctx *Context, ok bool)
}

// EdgeWalker is the edge-cursor analog of VertexWalker.
type EdgeWalker[V, E element.Element] interface {
	Next(g graph.Graph[V, E]) (ref graph.EdgeRef[E], ctx *Context, ok bool)
}
