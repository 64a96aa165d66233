package memgraph

import "errors"

// Sentinel errors for memgraph operations, named and wrapped the way
// core/types.go and core/methods.go name and wrap theirs.
var (
	ErrVertexNotFound = errors.New("memgraph: vertex not found")
	ErrEdgeNotFound   = errors.New("memgraph: edge not found")
)
