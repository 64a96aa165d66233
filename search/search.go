// Package search defines the descriptor types used to ask a graph.Graph
// for a starting set of vertices/edges, mirroring the VertexSearch and
// EdgeSearch builders of graph-api-lib.
package search

import (
	"strings"

	"github.com/katalvlaran/graphwalk/index"
	"github.com/katalvlaran/graphwalk/label"
	"github.com/katalvlaran/graphwalk/value"
)

// Direction constrains an edge search relative to a vertex.
type Direction int

const (
	// Outgoing selects edges whose tail (source) is the pivot vertex.
	Outgoing Direction = iota
	// Incoming selects edges whose head (target) is the pivot vertex.
	Incoming
	// Either selects edges in both directions.
	Either
)

func (d Direction) String() string {
	switch d {
	case Outgoing:
		return "Outgoing"
	case Incoming:
		return "Incoming"
	case Either:
		return "Either"
	default:
		return "Unknown"
	}
}

// Predicate is a single indexable equality, range, or full-text
// constraint. Exactly one of Eq, Rng, Term is set.
type Predicate struct {
	Field index.ID
	Eq    value.Value
	Rng   *value.Range
	Term  *string
}

// EqPredicate builds an exact-match predicate on the given field.
func EqPredicate(field index.ID, v value.Value) Predicate {
	return Predicate{Field: field, Eq: v}
}

// RangePredicate builds a range predicate on the given field.
func RangePredicate(field index.ID, r value.Range) Predicate {
	return Predicate{Field: field, Rng: &r}
}

// TermPredicate builds a full-text predicate on the given field: it
// matches a string field whose whitespace-tokenized contents contain
// term as a whole, case-insensitive token.
func TermPredicate(field index.ID, term string) Predicate {
	return Predicate{Field: field, Term: &term}
}

// MatchesTerm reports whether term appears in text as a whole,
// case-insensitive, whitespace-delimited token. It is the shared
// definition of full-text matching so every backend that implements
// FullText search agrees on what "contains" means.
func MatchesTerm(text, term string) bool {
	term = strings.ToLower(term)
	for _, tok := range strings.Fields(text) {
		if strings.ToLower(tok) == term {
			return true
		}
	}
	return false
}

// VertexSearch describes a starting set of vertices: optionally
// restricted by label, and optionally by a sequence of indexable field
// predicates (conjunctive).
type VertexSearch struct {
	Label      label.Label // nil means "any label"
	Predicates []Predicate
}

// Vertices returns an unrestricted VertexSearch matching every vertex.
func Vertices() VertexSearch { return VertexSearch{} }

// OfLabel restricts the search to vertices with the given label.
func (s VertexSearch) OfLabel(l label.Label) VertexSearch {
	s.Label = l
	return s
}

// Where appends a predicate to the search (conjunctive with any
// existing predicates).
func (s VertexSearch) Where(p Predicate) VertexSearch {
	s.Predicates = append(append([]Predicate{}, s.Predicates...), p)
	return s
}

// EdgeSearch describes a starting or continuing set of edges relative to
// a pivot vertex: a Direction, optional label restriction, an optional
// restriction on the label of the non-pivot endpoint, and optional
// predicates.
type EdgeSearch struct {
	Direction     Direction
	Label         label.Label
	NeighborLabel label.Label // nil means "any label"
	Predicates    []Predicate
}

// Edges returns an unrestricted EdgeSearch in the given direction.
func Edges(dir Direction) EdgeSearch { return EdgeSearch{Direction: dir} }

// OfLabel restricts the search to edges with the given label.
func (s EdgeSearch) OfLabel(l label.Label) EdgeSearch {
	s.Label = l
	return s
}

// OfNeighborLabel restricts the search to edges whose non-pivot endpoint
// (the head for Outgoing, the tail for Incoming, either endpoint that
// isn't the pivot for Either) carries the given label.
func (s EdgeSearch) OfNeighborLabel(l label.Label) EdgeSearch {
	s.NeighborLabel = l
	return s
}

// Where appends a predicate to the search.
func (s EdgeSearch) Where(p Predicate) EdgeSearch {
	s.Predicates = append(append([]Predicate{}, s.Predicates...), p)
	return s
}
