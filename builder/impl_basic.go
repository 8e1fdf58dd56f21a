// SPDX-License-Identifier: MIT
// Package: avgdist/builder
//
// impl_basic.go — Path, Cycle, Star, Complete and Grid constructors.
//
// Contract:
//   - Every vertex index 0..n-1 appears in at least one edge, so
//     core.NewGraph reports VertexCount() == n.
//   - Edges are emitted in stable increasing order.
//
// Complexity:
//   - Linear in the number of emitted edges.

package builder

import (
	"fmt"

	"github.com/katalvlaran/avgdist/core"
)

const (
	methodPath     = "Path"
	methodCycle    = "Cycle"
	methodStar     = "Star"
	methodComplete = "Complete"
	methodGrid     = "Grid"

	minPathNodes  = 2
	minCycleNodes = 3
	minStarNodes  = 2
	minGridCells  = 2
)

// Path returns a Constructor for the path 0–1–…–(n-1).
func Path(n int) Constructor {
	return func(builderConfig) ([]core.Edge, error) {
		if n < minPathNodes {
			return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}
		edges := make([]core.Edge, 0, n-1)
		for i := 1; i < n; i++ {
			edges = append(edges, core.Edge{U: i - 1, V: i})
		}
		return edges, nil
	}
}

// Cycle returns a Constructor for the cycle C_n.
func Cycle(n int) Constructor {
	return func(cfg builderConfig) ([]core.Edge, error) {
		if n < minCycleNodes {
			return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}
		edges, _ := Path(n)(cfg)
		return append(edges, core.Edge{U: n - 1, V: 0}), nil
	}
}

// Star returns a Constructor with center 0 and leaves 1..n-1.
func Star(n int) Constructor {
	return func(builderConfig) ([]core.Edge, error) {
		if n < minStarNodes {
			return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}
		edges := make([]core.Edge, 0, n-1)
		for i := 1; i < n; i++ {
			edges = append(edges, core.Edge{U: 0, V: i})
		}
		return edges, nil
	}
}

// Complete returns a Constructor for K_n.
func Complete(n int) Constructor {
	return func(builderConfig) ([]core.Edge, error) {
		if n < minPathNodes {
			return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minPathNodes, ErrTooFewVertices)
		}
		edges := make([]core.Edge, 0, n*(n-1)/2)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				edges = append(edges, core.Edge{U: i, V: j})
			}
		}
		return edges, nil
	}
}

// Grid returns a Constructor for a rows×cols grid with 4-neighborhood.
// Cell (r,c) is vertex r*cols + c; for each cell the right edge is emitted
// before the bottom edge.
func Grid(rows, cols int) Constructor {
	return func(builderConfig) ([]core.Edge, error) {
		if rows < 1 || cols < 1 || rows*cols < minGridCells {
			return nil, fmt.Errorf("%s: rows=%d, cols=%d (need ≥ %d cells): %w",
				methodGrid, rows, cols, minGridCells, ErrTooFewVertices)
		}
		edges := make([]core.Edge, 0, 2*rows*cols)
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				id := r*cols + c
				if c+1 < cols {
					edges = append(edges, core.Edge{U: id, V: id + 1})
				}
				if r+1 < rows {
					edges = append(edges, core.Edge{U: id, V: id + cols})
				}
			}
		}
		return edges, nil
	}
}
