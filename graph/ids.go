// Package graph defines the capability-typed storage abstraction that
// traversal pipelines run against, mirroring graph-api-lib's Graph trait
// (lib.rs) translated to a Go generic interface plus a runtime
// capability bitmask in place of Rust's compile-time marker traits.
package graph

import "fmt"

// VertexID is an opaque, stable identifier for a vertex. Backends are
// free to choose any underlying representation; the reference backend
// (memgraph) uses a dense atomic counter.
type VertexID uint64

func (id VertexID) String() string { return fmt.Sprintf("v%d", uint64(id)) }

// EdgeID is an opaque, stable identifier for an edge.
type EdgeID uint64

func (id EdgeID) String() string { return fmt.Sprintf("e%d", uint64(id)) }
