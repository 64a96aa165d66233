// Package element defines the Element contract that vertex and edge
// payload types must satisfy to be stored in a graph.Graph, mirroring
// graph-api-lib/src/element.rs.
package element

import (
	"github.com/katalvlaran/graphwalk/index"
	"github.com/katalvlaran/graphwalk/label"
	"github.com/katalvlaran/graphwalk/value"
)

// Element is implemented by every vertex and edge payload type stored
// in a graph.Graph. It exposes the element's Label (for label-indexed
// lookup) and an indexed field accessor that the reference backend
// reads to evaluate search predicates (equality, range, full-text)
// without reflection.
type Element interface {
	// Label returns this element's label.
	Label() label.Label
	// FieldValue returns the value stored at the given index field, and
	// false if this element type does not define that field.
	FieldValue(id index.ID) (value.Value, bool)
}
