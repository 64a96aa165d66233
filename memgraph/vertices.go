package memgraph

import (
	"github.com/katalvlaran/graphwalk/graph"
)

// AddVertex inserts v and returns its freshly minted ID. Complexity:
// O(1) amortized.
func (g *Graph[V, E]) AddVertex(v V) (graph.VertexID, error) {
	id := graph.VertexID(nextID(&g.nextVertexID))
	g.muVert.Lock()
	g.vertices[id] = v
	g.muVert.Unlock()
	return id, nil
}

// VertexValue returns the payload stored at id.
func (g *Graph[V, E]) VertexValue(id graph.VertexID) (V, bool) {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	v, ok := g.vertices[id]
	return v, ok
}

// HasVertex reports whether id names a live vertex.
func (g *Graph[V, E]) HasVertex(id graph.VertexID) bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	_, ok := g.vertices[id]
	return ok
}

// SetVertexValue overwrites the payload at id.
func (g *Graph[V, E]) SetVertexValue(id graph.VertexID, v V) error {
	g.muVert.Lock()
	defer g.muVert.Unlock()
	if _, ok := g.vertices[id]; !ok {
		return ErrVertexNotFound
	}
	g.vertices[id] = v
	return nil
}

// RemoveVertex deletes id and every edge incident to it. Staged
// locking mirrors core's RemoveVertex: the edge/adjacency table is
// locked first to collect and delete incident edges, released, then
// the vertex table is locked to delete the vertex itself — the two
// mutexes are never held together.
func (g *Graph[V, E]) RemoveVertex(id graph.VertexID) error {
	if !g.caps.Has(graph.CapElementRemoval) {
		return graph.ErrUnsupportedFeature("ElementRemoval")
	}

	g.muEdge.Lock()
	for eid := range g.outAdj[id] {
		g.deleteEdgeLocked(eid)
	}
	for eid := range g.inAdj[id] {
		g.deleteEdgeLocked(eid)
	}
	delete(g.outAdj, id)
	delete(g.inAdj, id)
	g.muEdge.Unlock()

	g.muVert.Lock()
	if _, ok := g.vertices[id]; !ok {
		g.muVert.Unlock()
		return ErrVertexNotFound
	}
	delete(g.vertices, id)
	g.muVert.Unlock()
	return nil
}
