package graphwalk_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphwalk/builder"
	"github.com/katalvlaran/graphwalk/graph"
	"github.com/katalvlaran/graphwalk/index"
	"github.com/katalvlaran/graphwalk/label"
	"github.com/katalvlaran/graphwalk/memgraph"
	"github.com/katalvlaran/graphwalk/search"
	"github.com/katalvlaran/graphwalk/value"
	"github.com/katalvlaran/graphwalk/walker"
)

type personLabel struct{}

func (personLabel) Ordinal() int { return 0 }
func (personLabel) Name() string { return "Person" }

var personLbl label.Label = personLabel{}

type knowsLabel struct{}

func (knowsLabel) Ordinal() int { return 1 }
func (knowsLabel) Name() string { return "Knows" }

var knowsLbl label.Label = knowsLabel{}

type ageField struct{}

func (ageField) Field() int                { return 0 }
func (ageField) Name() string              { return "age" }
func (ageField) SupportedKind() index.Kind { return index.Range }

var ageFld index.ID = ageField{}

type person struct {
	Name string
	Age  int64
}

func (person) Label() label.Label { return personLbl }
func (p person) FieldValue(id index.ID) (value.Value, bool) {
	if id == ageFld {
		return value.Int(p.Age), true
	}
	return value.Value{}, false
}

type knows struct{ Since int64 }

func (knows) Label() label.Label                       { return knowsLbl }
func (knows) FieldValue(index.ID) (value.Value, bool) { return value.Value{}, false }

func seedSocialGraph(t *testing.T) (*memgraph.Graph[person, knows], map[string]graph.VertexID) {
	t.Helper()
	g := memgraph.New[person, knows](
		memgraph.WithElementRemoval[person, knows](),
		memgraph.WithClear[person, knows](),
	)
	ids := map[string]graph.VertexID{}
	for _, p := range []person{{"Bryn", 41}, {"Julia", 38}, {"Rust", 12}} {
		id, err := g.AddVertex(p)
		require.NoError(t, err)
		ids[p.Name] = id
	}
	_, err := g.AddEdge(ids["Bryn"], ids["Julia"], knows{Since: 2020})
	require.NoError(t, err)
	_, err = g.AddEdge(ids["Julia"], ids["Rust"], knows{Since: 2021})
	require.NoError(t, err)
	return g, ids
}

func TestWalkCollectsFriendOfFriend(t *testing.T) {
	g, ids := seedSocialGraph(t)

	friendsOfFriends := builder.Walk[person, knows](g).
		VerticesByID([]graph.VertexID{ids["Bryn"]}).
		Edges(search.Edges(search.Outgoing)).
		Head().
		Edges(search.Edges(search.Outgoing)).
		Head().
		Collect()

	require.Len(t, friendsOfFriends, 1)
	assert.Equal(t, ids["Rust"], friendsOfFriends[0])
}

func TestWalkFilterByAge(t *testing.T) {
	g, ids := seedSocialGraph(t)

	adults := builder.Walk[person, knows](g).
		Vertices(search.Vertices()).
		Filter(func(ref graph.VertexRef[person], _ *walker.Context) bool { return ref.Value.Age >= 18 }).
		Collect()

	assert.ElementsMatch(t, []graph.VertexID{ids["Bryn"], ids["Julia"]}, adults)
}

func TestWalkMutateRenamesVertex(t *testing.T) {
	g, ids := seedSocialGraph(t)

	n, err := builder.WalkMut[person, knows](g).
		VerticesByID([]graph.VertexID{ids["Rust"]}).
		Mutate(func(ref graph.VertexRefMut[person, knows], _ *walker.Context) {
			v := ref.Value
			v.Name = "Rust-Lang"
			require.NoError(t, ref.Set(v))
		})
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	v, ok := g.VertexValue(ids["Rust"])
	require.True(t, ok)
	assert.Equal(t, "Rust-Lang", v.Name)
}

func TestMutateOnReadOnlyWalkerFails(t *testing.T) {
	g, ids := seedSocialGraph(t)

	_, err := builder.Walk[person, knows](g).
		VerticesByID([]graph.VertexID{ids["Rust"]}).
		Mutate(func(graph.VertexRefMut[person, knows], *walker.Context) {})
	assert.ErrorIs(t, err, builder.ErrReadOnlyWalker)
}

func TestVerticesByIDSkipsMissingSilently(t *testing.T) {
	g, ids := seedSocialGraph(t)
	missing := graph.VertexID(999999)

	got := builder.Walk[person, knows](g).
		VerticesByID([]graph.VertexID{ids["Bryn"], missing, ids["Julia"]}).
		Collect()

	assert.ElementsMatch(t, []graph.VertexID{ids["Bryn"], ids["Julia"]}, got)
}

func TestQueryVerticesRangePredicate(t *testing.T) {
	g, ids := seedSocialGraph(t)

	adults := g.QueryVertices(search.Vertices().Where(search.RangePredicate(ageFld, value.NewRange(value.Int(18), value.Int(200)))))
	assert.ElementsMatch(t, []graph.VertexID{ids["Bryn"], ids["Julia"]}, adults)
}
