// Package index defines the index-descriptor types a Graph backend
// advertises support for, mirroring graph-api-lib/src/index.rs.
package index

// Kind enumerates the supported index structures.
type Kind int

const (
	// Hash indexes support exact-match lookup only.
	Hash Kind = iota
	// Range indexes support exact-match and ordered range lookup.
	Range
	// FullText indexes support token/substring search over string
	// fields.
	FullText
)

func (k Kind) String() string {
	switch k {
	case Hash:
		return "Hash"
	case Range:
		return "Range"
	case FullText:
		return "FullText"
	default:
		return "Unknown"
	}
}

// ID identifies a single indexable field on a vertex or edge type. Like
// label.Label, implementations are usually small generated enums; Field
// must be stable and dense so it can back an array-indexed lookup table.
type ID interface {
	// Field returns the dense, stable numeric identifier of the field.
	Field() int
	// Name returns a human-readable field name, for diagnostics.
	Name() string
	// SupportedKind reports the index structure this field is indexed
	// with by a conforming backend (Hash, Range, or FullText).
	SupportedKind() Kind
}
