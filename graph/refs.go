package graph

import "github.com/katalvlaran/graphwalk/element"

// VertexRef is a read-only view of a vertex: its stable ID and current
// payload. Walkers hand these to filter/probe/map callbacks instead of
// raw IDs so that predicates never need a second storage lookup.
type VertexRef[V any] struct {
	ID    VertexID
	Value V
}

// EdgeRef is a read-only view of an edge: its stable ID, payload, and
// endpoints. Tail is the edge's source, Head is its target — matching
// spec's literal head()/tail() pipeline-stage semantics.
type EdgeRef[E any] struct {
	ID    EdgeID
	Value E
	Tail  VertexID
	Head  VertexID
}

// VertexRefMut is a mutable handle to a vertex, obtained only through a
// mutating traversal (builder.WalkMut). Set writes the new payload
// back through the owning graph.
type VertexRefMut[V, E element.Element] struct {
	VertexRef[V]
	g Graph[V, E]
}

// NewVertexRefMut constructs a mutable vertex handle bound to g.
func NewVertexRefMut[V, E element.Element](g Graph[V, E], ref VertexRef[V]) VertexRefMut[V, E] {
	return VertexRefMut[V, E]{VertexRef: ref, g: g}
}

// Set overwrites this vertex's payload in the owning graph.
func (r VertexRefMut[V, E]) Set(v V) error { return r.g.SetVertexValue(r.ID, v) }

// Remove deletes this vertex from the owning graph. Requires
// CapElementRemoval.
func (r VertexRefMut[V, E]) Remove() error { return r.g.RemoveVertex(r.ID) }

// EdgeRefMut is a mutable handle to an edge, obtained only through a
// mutating traversal.
type EdgeRefMut[V, E element.Element] struct {
	EdgeRef[E]
	g Graph[V, E]
}

// NewEdgeRefMut constructs a mutable edge handle bound to g.
func NewEdgeRefMut[V, E element.Element](g Graph[V, E], ref EdgeRef[E]) EdgeRefMut[V, E] {
	return EdgeRefMut[V, E]{EdgeRef: ref, g: g}
}

// Set overwrites this edge's payload in the owning graph.
func (r EdgeRefMut[V, E]) Set(e E) error { return r.g.SetEdgeValue(r.ID, e) }

// Remove deletes this edge from the owning graph. Requires
// CapElementRemoval.
func (r EdgeRefMut[V, E]) Remove() error { return r.g.RemoveEdge(r.ID) }
