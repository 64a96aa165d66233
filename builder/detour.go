package builder

import (
	"github.com/katalvlaran/graphwalk/element"
	"github.com/katalvlaran/graphwalk/graph"
	"github.com/katalvlaran/graphwalk/walker"
)

// Probeable is satisfied by both VertexWalkerBuilder and
// EdgeWalkerBuilder so that Detour's closure can return either kind of
// sub-chain and have it probed uniformly. It lives in builder, not
// walker, avoiding a walker<->builder import cycle that a shared
// interface over builder's own types would otherwise require.
type Probeable[V, E element.Element] interface {
	probeOnce(g graph.Graph[V, E]) bool
}

// probeOnce pulls a single element from the sub-chain; true means the
// detour matched.
func (b VertexWalkerBuilder[V, E]) probeOnce(g graph.Graph[V, E]) bool {
	_, ok := walker.FirstVertex[V, E](g, b.w)
	return ok
}

func (b EdgeWalkerBuilder[V, E]) probeOnce(g graph.Graph[V, E]) bool {
	_, ok := walker.FirstEdge[V, E](g, b.w)
	return ok
}
