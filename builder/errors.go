// Package builder provides the fluent entry points that bind a walker
// pipeline to a graph, mirroring graph-api-lib's WalkerBuilder /
// VertexWalkerBuilder / EdgeWalkerBuilder (src/lib.rs).
//
// Rust enforces "no mutating stage inside a shared-borrow walk()" at
// compile time via its borrow checker. Go has no equivalent mechanism,
// so this package enforces the same invariant at runtime instead, the
// way a sentinel error guards any other precondition Go's type system
// can't express: Walk produces a builder that rejects Mutate with
// ErrReadOnlyWalker, instead of a second builder type duplicating every
// chain method.
package builder

import "errors"

// ErrReadOnlyWalker is returned by Mutate when called on a builder
// constructed via Walk instead of WalkMut.
var ErrReadOnlyWalker = errors.New("builder: mutate called on a read-only walker; use WalkMut")
