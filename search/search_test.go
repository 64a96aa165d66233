package search_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/graphwalk/label"
	"github.com/katalvlaran/graphwalk/search"
	"github.com/katalvlaran/graphwalk/value"
)

func TestVertexSearchWhereIsCopyOnWrite(t *testing.T) {
	base := search.Vertices()
	withAge := base.Where(search.EqPredicate(nil, value.Int(1)))

	assert.Len(t, base.Predicates, 0)
	assert.Len(t, withAge.Predicates, 1)
}

func TestDirectionString(t *testing.T) {
	assert.Equal(t, "Outgoing", search.Outgoing.String())
	assert.Equal(t, "Incoming", search.Incoming.String())
	assert.Equal(t, "Either", search.Either.String())
	assert.Equal(t, "Unknown", search.Direction(99).String())
}

func TestEdgeSearchOfLabelAndWhereChain(t *testing.T) {
	s := search.Edges(search.Outgoing).OfLabel(label.Anonymous).Where(search.EqPredicate(nil, value.Int(1))).Where(search.EqPredicate(nil, value.Int(2)))

	assert.Len(t, s.Predicates, 2)
	assert.Equal(t, search.Outgoing, s.Direction)
	assert.Equal(t, label.Anonymous, s.Label)
}

func TestMatchesTermWholeTokenCaseInsensitive(t *testing.T) {
	assert.True(t, search.MatchesTerm("Grand Central Station", "central"))
	assert.True(t, search.MatchesTerm("Grand Central Station", "CENTRAL"))
	assert.False(t, search.MatchesTerm("Grand Central Station", "cent"))
	assert.False(t, search.MatchesTerm("", "central"))
}

func TestEdgeSearchOfNeighborLabel(t *testing.T) {
	base := search.Edges(search.Outgoing)
	withNeighbor := base.OfNeighborLabel(label.Anonymous)

	assert.Nil(t, base.NeighborLabel)
	assert.Equal(t, label.Anonymous, withNeighbor.NeighborLabel)
}
