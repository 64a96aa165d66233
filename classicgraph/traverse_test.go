package classicgraph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphwalk/classicgraph"
	"github.com/katalvlaran/graphwalk/element"
	"github.com/katalvlaran/graphwalk/graph"
	"github.com/katalvlaran/graphwalk/index"
	"github.com/katalvlaran/graphwalk/label"
	"github.com/katalvlaran/graphwalk/memgraph"
	"github.com/katalvlaran/graphwalk/value"
)

type stop struct{ Name string }

func (stop) Label() label.Label                    { return label.Anonymous }
func (stop) FieldValue(index.ID) (value.Value, bool) { return value.Value{}, false }

type hop struct{ Minutes int64 }

func (hop) Label() label.Label                    { return label.Anonymous }
func (hop) FieldValue(index.ID) (value.Value, bool) { return value.Value{}, false }

var _ element.Element = stop{}
var _ element.Element = hop{}

func buildRouteGraph(t *testing.T) (*memgraph.Graph[stop, hop], graph.VertexID, graph.VertexID, graph.VertexID) {
	t.Helper()
	g := memgraph.New[stop, hop]()
	a, err := g.AddVertex(stop{Name: "A"})
	require.NoError(t, err)
	b, err := g.AddVertex(stop{Name: "B"})
	require.NoError(t, err)
	c, err := g.AddVertex(stop{Name: "C"})
	require.NoError(t, err)
	_, err = g.AddEdge(a, b, hop{Minutes: 5})
	require.NoError(t, err)
	_, err = g.AddEdge(b, c, hop{Minutes: 7})
	require.NoError(t, err)
	_, err = g.AddEdge(a, c, hop{Minutes: 20})
	require.NoError(t, err)
	return g, a, b, c
}

func TestBFSVisitsInBreadthOrder(t *testing.T) {
	g, a, b, c := buildRouteGraph(t)

	res, err := classicgraph.BFS[stop, hop](g, a, nil)
	require.NoError(t, err)
	assert.Equal(t, []graph.VertexID{a, b, c}, res.Order)
	assert.Equal(t, 1, res.Depth[b])
	assert.Equal(t, 1, res.Depth[c])
}

func TestBFSUnknownStartReturnsError(t *testing.T) {
	g, _, _, _ := buildRouteGraph(t)
	_, err := classicgraph.BFS[stop, hop](g, graph.VertexID(999999), nil)
	assert.ErrorIs(t, err, classicgraph.ErrVertexNotFound)
}

func TestShortestPathPrefersCheaperRoute(t *testing.T) {
	g, a, b, c := buildRouteGraph(t)

	dist, parent, err := classicgraph.ShortestPath[stop, hop](g, a, func(e hop) int64 { return e.Minutes })
	require.NoError(t, err)

	assert.Equal(t, int64(12), dist[c])
	assert.Equal(t, b, parent[c])
}
