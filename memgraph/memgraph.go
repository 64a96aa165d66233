// Package memgraph is the reference in-memory implementation of
// graph.Graph[V,E], adapted from the adjacency-map storage and locking
// discipline of katalvlaran/lvlath's core package: two independent
// sync.RWMutex guards (one for the vertex table, one for the edge and
// adjacency tables, matching core/types.go's muVert/muEdgeAdj split)
// and atomic counters for ID generation (matching core/methods.go's
// atomic.AddUint64 edge-ID minting).
package memgraph

import (
	"sync"
	"sync/atomic"

	"github.com/katalvlaran/graphwalk/element"
	"github.com/katalvlaran/graphwalk/graph"
)

type edgeRecord[E element.Element] struct {
	value E
	tail  graph.VertexID
	head  graph.VertexID
}

// Graph is a generic in-memory property graph. It is safe for
// concurrent reads, and for concurrent reads during writes on the
// table not being written (vertex reads during an edge write and vice
// versa); concurrent writes to the same table serialize on that
// table's mutex.
type Graph[V, E element.Element] struct {
	muVert sync.RWMutex
	muEdge sync.RWMutex

	caps graph.Capability

	nextVertexID uint64
	nextEdgeID   uint64

	vertices map[graph.VertexID]V
	edges    map[graph.EdgeID]edgeRecord[E]

	// outAdj[tail] = set of edge IDs whose tail is that vertex.
	outAdj map[graph.VertexID]map[graph.EdgeID]struct{}
	// inAdj[head] = set of edge IDs whose head is that vertex.
	inAdj map[graph.VertexID]map[graph.EdgeID]struct{}
}

// Option configures a Graph before first use. Options only add
// behavior (capabilities); there is no way to retract a default via
// option.
type Option[V, E element.Element] func(*Graph[V, E])

// WithElementRemoval enables RemoveVertex/RemoveEdge.
func WithElementRemoval[V, E element.Element]() Option[V, E] {
	return func(g *Graph[V, E]) { g.caps |= graph.CapElementRemoval }
}

// WithClear enables Clear.
func WithClear[V, E element.Element]() Option[V, E] {
	return func(g *Graph[V, E]) { g.caps |= graph.CapClear }
}

// New constructs an empty Graph. Hash, range, label, full-text, and
// adjacent-label lookups are all supported (they cost a linear scan in
// this reference backend, but are never silently wrong).
func New[V, E element.Element](opts ...Option[V, E]) *Graph[V, E] {
	g := &Graph[V, E]{
		caps: graph.CapVertexHashIndex | graph.CapEdgeHashIndex |
			graph.CapVertexRangeIndex | graph.CapEdgeRangeIndex |
			graph.CapVertexLabelIndex | graph.CapEdgeLabelIndex |
			graph.CapVertexFullTextIndex | graph.CapEdgeAdjacentLabelIndex,
		vertices: make(map[graph.VertexID]V),
		edges:    make(map[graph.EdgeID]edgeRecord[E]),
		outAdj:   make(map[graph.VertexID]map[graph.EdgeID]struct{}),
		inAdj:    make(map[graph.VertexID]map[graph.EdgeID]struct{}),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Capabilities implements graph.Graph.
func (g *Graph[V, E]) Capabilities() graph.Capability { return g.caps }

func (g *Graph[V, E]) VertexCount() int {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	return len(g.vertices)
}

func (g *Graph[V, E]) EdgeCount() int {
	g.muEdge.RLock()
	defer g.muEdge.RUnlock()
	return len(g.edges)
}

func nextID(counter *uint64) uint64 { return atomic.AddUint64(counter, 1) }
