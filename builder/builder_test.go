package builder_test

import (
	"testing"

	deep "github.com/go-test/deep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphwalk/builder"
	"github.com/katalvlaran/graphwalk/element"
	"github.com/katalvlaran/graphwalk/graph"
	"github.com/katalvlaran/graphwalk/index"
	"github.com/katalvlaran/graphwalk/label"
	"github.com/katalvlaran/graphwalk/memgraph"
	"github.com/katalvlaran/graphwalk/search"
	"github.com/katalvlaran/graphwalk/value"
	"github.com/katalvlaran/graphwalk/walker"
)

type station struct{ Name string }

func (station) Label() label.Label                    { return label.Anonymous }
func (station) FieldValue(index.ID) (value.Value, bool) { return value.Value{}, false }

type link struct{}

func (link) Label() label.Label                    { return label.Anonymous }
func (link) FieldValue(index.ID) (value.Value, bool) { return value.Value{}, false }

var _ element.Element = station{}
var _ element.Element = link{}

func buildLineGraph(t *testing.T) (*memgraph.Graph[station, link], graph.VertexID, graph.VertexID, graph.VertexID) {
	t.Helper()
	g := memgraph.New[station, link](memgraph.WithElementRemoval[station, link]())
	a, err := g.AddVertex(station{Name: "Central"})
	require.NoError(t, err)
	b, err := g.AddVertex(station{Name: "North"})
	require.NoError(t, err)
	c, err := g.AddVertex(station{Name: "South"})
	require.NoError(t, err)
	_, err = g.AddEdge(a, b, link{})
	require.NoError(t, err)
	_, err = g.AddEdge(a, c, link{})
	require.NoError(t, err)
	return g, a, b, c
}

func TestDetourKeepsVerticesWithMatchingSubChain(t *testing.T) {
	g, a, b, c := buildLineGraph(t)

	hasOutgoingEdge := builder.Walk[station, link](g).
		VerticesByID([]graph.VertexID{a, b, c}).
		Detour(func(sub builder.Entry[station, link], ref graph.VertexRef[station]) builder.Probeable[station, link] {
			return sub.VerticesByID([]graph.VertexID{ref.ID}).
				Edges(search.Edges(search.Outgoing))
		}).
		Collect()

	assert.Equal(t, []graph.VertexID{a}, hasOutgoingEdge)
}

func TestMapProjectsVertexNames(t *testing.T) {
	g, a, b, _ := buildLineGraph(t)

	names := builder.Map(
		builder.Walk[station, link](g).VerticesByID([]graph.VertexID{a, b}),
		func(ref graph.VertexRef[station], _ *walker.Context) string { return ref.Value.Name },
	)

	if diff := deep.Equal([]string{"Central", "North"}, names); diff != nil {
		t.Errorf("unexpected projection: %v", diff)
	}
}

func TestEdgeBuilderHeadAndCount(t *testing.T) {
	g, a, _, _ := buildLineGraph(t)

	n := builder.Walk[station, link](g).
		VerticesByID([]graph.VertexID{a}).
		Edges(search.Edges(search.Outgoing)).
		Head().
		Count()

	assert.Equal(t, 2, n)
}
