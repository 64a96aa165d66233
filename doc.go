// Package graphwalk is an embeddable property-graph data model plus a
// lazy, pull-based traversal pipeline decoupled from any one storage
// backend.
//
// 🚀 What is graphwalk?
//
//	A generic, thread-safe library that brings together:
//
//	  • A capability-typed Graph[V,E] storage interface — any backend
//	    that implements it can be walked the same way
//	  • A fluent builder chain (Walk/WalkMut) of lazy pipeline stages:
//	    vertices, edges, head/tail, filter, limit, context, detour
//	  • A reference in-memory backend (memgraph) exercised by the tests
//
// ✨ Why graphwalk?
//
//   - Backend-agnostic — pipelines are written once against Graph[V,E]
//   - Lazy — no stage touches storage until a terminal stage pulls
//   - Rock-solid — memgraph's two-mutex split always takes the edge
//     lock before the vertex lock when it holds both
//
// Under the hood, everything is organized under a dozen small packages:
//
//	value/, label/, index/, element/ — the scalar and schema primitives
//	search/                          — VertexSearch/EdgeSearch descriptors
//	graph/                           — the Graph[V,E] storage interface
//	walker/                          — the pipeline stage implementations
//	builder/                         — the fluent Walk/WalkMut entry points
//	memgraph/                        — the reference in-memory backend
//
//	go get github.com/katalvlaran/graphwalk
package graphwalk
