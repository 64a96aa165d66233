// Package topobuilder assembles deterministic graph.Graph[V,E] fixtures
// (cycle, path, star, complete, grid) for tests: a Constructor closure
// type applied in order by a single orchestrator, sentinel errors for
// invalid parameters, and a stable, documented vertex/edge emission
// order so the same inputs always produce the same graph.
package topobuilder

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/graphwalk/element"
	"github.com/katalvlaran/graphwalk/graph"
)

// ErrTooFewVertices is returned when a requested topology's vertex
// count is below the shape's minimum (e.g. a cycle needs at least 3).
var ErrTooFewVertices = errors.New("topobuilder: too few vertices")

// VertexFactory produces the payload for the i-th vertex of a shape
// (0-indexed), letting callers supply their own element.Element type.
type VertexFactory[V element.Element] func(i int) V

// EdgeFactory produces the payload for an edge; shapes that care about
// which endpoints they connect pass the two indices through.
type EdgeFactory[E element.Element] func(i, j int) E

// Constructor applies one deterministic topology to g.
type Constructor[V, E element.Element] func(g graph.Graph[V, E]) error

// BuildGraph runs every constructor against g in order, wrapping the
// first failure with a "BuildGraph: " prefix. It does not
// attempt partial cleanup on failure.
func BuildGraph[V, E element.Element](g graph.Graph[V, E], cons ...Constructor[V, E]) error {
	for i, fn := range cons {
		if fn == nil {
			return fmt.Errorf("topobuilder: nil constructor at index %d", i)
		}
		if err := fn(g); err != nil {
			return fmt.Errorf("BuildGraph: %w", err)
		}
	}
	return nil
}

const minCycleNodes = 3

// Cycle returns a Constructor building an n-vertex simple cycle C_n:
// vertices 0..n-1 added in order, then edges i -> (i+1)%n.
func Cycle[V, E element.Element](n int, vf VertexFactory[V], ef EdgeFactory[E]) Constructor[V, E] {
	return func(g graph.Graph[V, E]) error {
		if n < minCycleNodes {
			return fmt.Errorf("Cycle: n=%d < min=%d: %w", n, minCycleNodes, ErrTooFewVertices)
		}
		ids, err := addVertices(g, n, vf)
		if err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			if _, err := g.AddEdge(ids[i], ids[(i+1)%n], ef(i, (i+1)%n)); err != nil {
				return fmt.Errorf("Cycle: AddEdge(%d->%d): %w", i, (i+1)%n, err)
			}
		}
		return nil
	}
}

const minPathNodes = 2

// Path returns a Constructor building a simple path P_n: vertices
// 0..n-1, edges (i-1) -> i for i = 1..n-1.
func Path[V, E element.Element](n int, vf VertexFactory[V], ef EdgeFactory[E]) Constructor[V, E] {
	return func(g graph.Graph[V, E]) error {
		if n < minPathNodes {
			return fmt.Errorf("Path: n=%d < min=%d: %w", n, minPathNodes, ErrTooFewVertices)
		}
		ids, err := addVertices(g, n, vf)
		if err != nil {
			return err
		}
		for i := 1; i < n; i++ {
			if _, err := g.AddEdge(ids[i-1], ids[i], ef(i-1, i)); err != nil {
				return fmt.Errorf("Path: AddEdge(%d->%d): %w", i-1, i, err)
			}
		}
		return nil
	}
}

const minStarNodes = 2

// Star returns a Constructor building a star with hub vertex 0 (built
// via vf(0)) and n-1 leaves, connected hub -> leaf for i = 1..n-1.
func Star[V, E element.Element](n int, vf VertexFactory[V], ef EdgeFactory[E]) Constructor[V, E] {
	return func(g graph.Graph[V, E]) error {
		if n < minStarNodes {
			return fmt.Errorf("Star: n=%d < min=%d: %w", n, minStarNodes, ErrTooFewVertices)
		}
		ids, err := addVertices(g, n, vf)
		if err != nil {
			return err
		}
		for i := 1; i < n; i++ {
			if _, err := g.AddEdge(ids[0], ids[i], ef(0, i)); err != nil {
				return fmt.Errorf("Star: AddEdge(0->%d): %w", i, err)
			}
		}
		return nil
	}
}

const minCompleteNodes = 1

// Complete returns a Constructor building the complete simple graph
// K_n: every unordered pair {i,j}, i<j, connected once.
func Complete[V, E element.Element](n int, vf VertexFactory[V], ef EdgeFactory[E]) Constructor[V, E] {
	return func(g graph.Graph[V, E]) error {
		if n < minCompleteNodes {
			return fmt.Errorf("Complete: n=%d < min=%d: %w", n, minCompleteNodes, ErrTooFewVertices)
		}
		ids, err := addVertices(g, n, vf)
		if err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if _, err := g.AddEdge(ids[i], ids[j], ef(i, j)); err != nil {
					return fmt.Errorf("Complete: AddEdge(%d->%d): %w", i, j, err)
				}
			}
		}
		return nil
	}
}

const minGridDim = 1

// Grid returns a Constructor building a rows x cols 4-neighborhood
// grid, added in row-major order, connecting each cell to its right
// and bottom neighbors where they exist. vf receives the flattened
// row-major index r*cols+c.
func Grid[V, E element.Element](rows, cols int, vf VertexFactory[V], ef EdgeFactory[E]) Constructor[V, E] {
	return func(g graph.Graph[V, E]) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("Grid: rows=%d cols=%d < min=%d: %w", rows, cols, minGridDim, ErrTooFewVertices)
		}
		ids, err := addVertices(g, rows*cols, vf)
		if err != nil {
			return err
		}
		at := func(r, c int) graph.VertexID { return ids[r*cols+c] }
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if c+1 < cols {
					i, j := r*cols+c, r*cols+c+1
					if _, err := g.AddEdge(at(r, c), at(r, c+1), ef(i, j)); err != nil {
						return fmt.Errorf("Grid: AddEdge(%d,%d -> %d,%d): %w", r, c, r, c+1, err)
					}
				}
				if r+1 < rows {
					i, j := r*cols+c, (r+1)*cols+c
					if _, err := g.AddEdge(at(r, c), at(r+1, c), ef(i, j)); err != nil {
						return fmt.Errorf("Grid: AddEdge(%d,%d -> %d,%d): %w", r, c, r+1, c, err)
					}
				}
			}
		}
		return nil
	}
}

func addVertices[V, E element.Element](g graph.Graph[V, E], n int, vf VertexFactory[V]) ([]graph.VertexID, error) {
	ids := make([]graph.VertexID, n)
	for i := 0; i < n; i++ {
		id, err := g.AddVertex(vf(i))
		if err != nil {
			return nil, fmt.Errorf("AddVertex(%d): %w", i, err)
		}
		ids[i] = id
	}
	return ids, nil
}
