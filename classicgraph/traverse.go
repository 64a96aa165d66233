// Package classicgraph provides ground-truth classical algorithms —
// breadth-first reachability and Dijkstra shortest paths — over a
// graph.Graph[V,E], independent of the walker pipeline. It exists so
// integration tests can check a walker chain's result against a
// traversal that does not share any code with walker/builder.
package classicgraph

import (
	"container/heap"
	"context"
	"errors"
	"math"

	"github.com/katalvlaran/graphwalk/element"
	"github.com/katalvlaran/graphwalk/graph"
	"github.com/katalvlaran/graphwalk/search"
)

// ErrVertexNotFound is returned when the requested start vertex does
// not exist in the graph.
var ErrVertexNotFound = errors.New("classicgraph: start vertex not found")

// BFSResult holds the outcome of a breadth-first traversal.
type BFSResult struct {
	Order  []graph.VertexID
	Depth  map[graph.VertexID]int
	Parent map[graph.VertexID]graph.VertexID
}

// BFSOptions configures an optional cancellation context and
// per-visit callback.
type BFSOptions struct {
	Ctx     context.Context
	OnVisit func(id graph.VertexID, depth int)
}

// BFS performs a breadth-first traversal of g starting at start,
// following outgoing edges. If opts is nil, sane defaults apply
// (background context, no callback).
func BFS[V, E element.Element](g graph.Graph[V, E], start graph.VertexID, opts *BFSOptions) (*BFSResult, error) {
	if !g.HasVertex(start) {
		return nil, ErrVertexNotFound
	}
	ctx := context.Background()
	var onVisit func(graph.VertexID, int)
	if opts != nil {
		if opts.Ctx != nil {
			ctx = opts.Ctx
		}
		onVisit = opts.OnVisit
	}

	res := &BFSResult{
		Depth:  map[graph.VertexID]int{start: 0},
		Parent: map[graph.VertexID]graph.VertexID{},
	}

	type item struct {
		id    graph.VertexID
		depth int
	}
	queue := []item{{start, 0}}
	visited := map[graph.VertexID]bool{start: true}

	for len(queue) > 0 {
		select {
		case <-ctx.Done():
			return res, ctx.Err()
		default:
		}

		it := queue[0]
		queue = queue[1:]
		res.Order = append(res.Order, it.id)
		if onVisit != nil {
			onVisit(it.id, it.depth)
		}

		for _, eid := range g.QueryEdges(it.id, search.Edges(search.Outgoing)) {
			_, head, ok := g.EdgeEndpoints(eid)
			if !ok || visited[head] {
				continue
			}
			visited[head] = true
			res.Parent[head] = it.id
			res.Depth[head] = it.depth + 1
			queue = append(queue, item{head, it.depth + 1})
		}
	}
	return res, nil
}

// Weight extracts a non-negative edge weight for ShortestPath.
type Weight[E element.Element] func(e E) int64

// ShortestPath runs Dijkstra's algorithm from start over g, weighing
// each edge with weight. It returns the distance and predecessor maps;
// unreached vertices are absent from dist.
func ShortestPath[V, E element.Element](g graph.Graph[V, E], start graph.VertexID, weight Weight[E]) (dist map[graph.VertexID]int64, parent map[graph.VertexID]graph.VertexID, err error) {
	if !g.HasVertex(start) {
		return nil, nil, ErrVertexNotFound
	}

	dist = map[graph.VertexID]int64{start: 0}
	parent = map[graph.VertexID]graph.VertexID{}
	visited := map[graph.VertexID]bool{}

	pq := &nodePQ{&nodeItem{id: start, dist: 0}}
	heap.Init(pq)

	for pq.Len() > 0 {
		u := heap.Pop(pq).(*nodeItem)
		if visited[u.id] {
			continue
		}
		visited[u.id] = true

		for _, eid := range g.QueryEdges(u.id, search.Edges(search.Outgoing)) {
			_, head, ok := g.EdgeEndpoints(eid)
			if !ok || visited[head] {
				continue
			}
			ev, ok := g.EdgeValue(eid)
			if !ok {
				continue
			}
			cand := u.dist + weight(ev)
			cur, known := dist[head]
			if !known || cand < cur {
				if cand < 0 || cand == math.MaxInt64 {
					continue
				}
				dist[head] = cand
				parent[head] = u.id
				heap.Push(pq, &nodeItem{id: head, dist: cand})
			}
		}
	}
	return dist, parent, nil
}

type nodeItem struct {
	id   graph.VertexID
	dist int64
}

type nodePQ []*nodeItem

func (pq nodePQ) Len() int            { return len(pq) }
func (pq nodePQ) Less(i, j int) bool  { return pq[i].dist < pq[j].dist }
func (pq nodePQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	it := old[n-1]
	*pq = old[:n-1]
	return it
}
