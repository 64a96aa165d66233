package walker_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphwalk/element"
	"github.com/katalvlaran/graphwalk/graph"
	"github.com/katalvlaran/graphwalk/index"
	"github.com/katalvlaran/graphwalk/label"
	"github.com/katalvlaran/graphwalk/memgraph"
	"github.com/katalvlaran/graphwalk/search"
	"github.com/katalvlaran/graphwalk/value"
	"github.com/katalvlaran/graphwalk/walker"
)

type city struct{ Name string }

func (city) Label() label.Label                    { return label.Anonymous }
func (city) FieldValue(index.ID) (value.Value, bool) { return value.Value{}, false }

type road struct{}

func (road) Label() label.Label                    { return label.Anonymous }
func (road) FieldValue(index.ID) (value.Value, bool) { return value.Value{}, false }

var _ element.Element = city{}
var _ element.Element = road{}

func buildRoadGraph(t *testing.T) (*memgraph.Graph[city, road], graph.VertexID, graph.VertexID, graph.VertexID) {
	t.Helper()
	g := memgraph.New[city, road]()
	a, err := g.AddVertex(city{Name: "Nur-Sultan"})
	require.NoError(t, err)
	b, err := g.AddVertex(city{Name: "Almaty"})
	require.NoError(t, err)
	c, err := g.AddVertex(city{Name: "Shymkent"})
	require.NoError(t, err)
	_, err = g.AddEdge(a, b, road{})
	require.NoError(t, err)
	_, err = g.AddEdge(b, c, road{})
	require.NoError(t, err)
	return g, a, b, c
}

func TestFilterAndLimitVertices(t *testing.T) {
	g, a, b, _ := buildRoadGraph(t)

	w := walker.VerticesByID[city, road]([]graph.VertexID{a, b})
	w = walker.FilterVertices[city, road](w, func(ref graph.VertexRef[city], _ *walker.Context) bool {
		return ref.Value.Name != "Almaty"
	})
	got := walker.CollectVertices[city, road](g, w)
	assert.Equal(t, []graph.VertexID{a}, got)

	limited := walker.LimitVertices[city, road](walker.VerticesByID[city, road]([]graph.VertexID{a, b}), 1)
	assert.Equal(t, 1, walker.CountVertices[city, road](g, limited))
}

func TestHeadAndTailResolveEndpoints(t *testing.T) {
	g, a, b, _ := buildRoadGraph(t)

	edges := walker.Edges[city, road](walker.VerticesByID[city, road]([]graph.VertexID{a}), search.Edges(search.Outgoing))
	heads := walker.CollectVertices[city, road](g, walker.Head[city, road](edges))
	assert.Equal(t, []graph.VertexID{b}, heads)

	edges2 := walker.Edges[city, road](walker.VerticesByID[city, road]([]graph.VertexID{b}), search.Edges(search.Outgoing))
	tails := walker.CollectVertices[city, road](g, walker.Tail[city, road](edges2))
	assert.Equal(t, []graph.VertexID{b}, tails)
}

func TestPushDefaultContextAndMutateContext(t *testing.T) {
	g, a, _, _ := buildRoadGraph(t)

	w := walker.PushDefaultContextVertices[city, road](walker.VerticesByID[city, road]([]graph.VertexID{a}))
	w = walker.MutateContextVertices[city, road](w, func(top any) any {
		return top.(city).Name + "!"
	})

	ref, ctx, ok := w.Next(g)
	require.True(t, ok)
	assert.Equal(t, a, ref.ID)
	assert.Equal(t, "Nur-Sultan!", ctx.Top())
}

func TestDbgVerticesWritesDiagnostics(t *testing.T) {
	g, a, _, _ := buildRoadGraph(t)
	var buf bytes.Buffer

	w := walker.DbgVertices[city, road](walker.VerticesByID[city, road]([]graph.VertexID{a}), "tag", &buf)
	walker.CountVertices[city, road](g, w)

	assert.Contains(t, buf.String(), "[tag] vertex")
}
