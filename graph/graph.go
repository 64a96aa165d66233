package graph

import (
	"github.com/katalvlaran/graphwalk/element"
	"github.com/katalvlaran/graphwalk/search"
)

// Graph is the storage abstraction every traversal pipeline runs
// against. A backend advertises what it supports via Capabilities; a
// caller asking for an unsupported removal or clear gets an
// *UnsupportedFeatureError rather than undefined behavior.
// QueryVertices/QueryEdges return no error, so a search over an index
// kind the backend does not advertise is not rejected through this
// interface.
//
// Contract:
//   - VertexID/EdgeID returned by AddVertex/AddEdge remain valid and
//     stable for the lifetime of the element.
//   - QueryVertices/QueryEdges return results in a deterministic order
//     for a given graph state (required for reproducible traversal
//     ordering per spec's §4.5), but that order is backend-defined and
//     not part of this interface's contract across backends.
//   - Mutation methods (RemoveVertex, RemoveEdge, Clear) are no-ops
//     returning *UnsupportedFeatureError when the corresponding
//     Capability bit is unset.
//
// Concurrency: a Graph implementation must be safe for concurrent reads;
// concurrent reads during a write are backend-defined (memgraph uses a
// pair of sync.RWMutex, one per vertex/edge table).
type Graph[V, E element.Element] interface {
	// Capabilities reports which optional features this backend
	// supports.
	Capabilities() Capability

	AddVertex(v V) (VertexID, error)
	VertexValue(id VertexID) (V, bool)
	HasVertex(id VertexID) bool
	SetVertexValue(id VertexID, v V) error
	RemoveVertex(id VertexID) error

	AddEdge(tail, head VertexID, e E) (EdgeID, error)
	EdgeValue(id EdgeID) (E, bool)
	EdgeEndpoints(id EdgeID) (tail, head VertexID, ok bool)
	HasEdge(id EdgeID) bool
	SetEdgeValue(id EdgeID, e E) error
	RemoveEdge(id EdgeID) error

	Clear() error

	VertexCount() int
	EdgeCount() int

	// QueryVertices returns the vertex IDs matching s.
	QueryVertices(s search.VertexSearch) []VertexID
	// QueryEdges returns the edge IDs incident to pivot matching s.
	QueryEdges(pivot VertexID, s search.EdgeSearch) []EdgeID
}
