// SPDX-License-Identifier: MIT
//
// File: graph.go
// Role: NewGraph constructor (edge list → sorted adjacency lists).
// Determinism:
//   - Neighbor lists are sorted ascending; equal inputs give equal graphs.
// Complexity:
//   - Time O(V + E log E), Space O(V + E).

package core

import (
	"fmt"
	"sort"
)

// NewGraph builds a Graph from edges.
//
// The vertex count is 1 + the maximum endpoint. For every accepted edge
// (u,v) the constructor appends v to adjacency[u] and u to adjacency[v],
// then sorts each list. A self-loop is therefore listed twice under its
// vertex unless WithoutLoops is given.
//
// Errors:
//   - ErrEmptyInput if edges is empty.
//   - ErrNegativeVertex if any endpoint is < 0 (wrapped with the edge index).
//   - ErrVertexRange if any endpoint is >= MaxVertices (wrapped likewise).
func NewGraph(edges []Edge, opts ...GraphOption) (*Graph, error) {
	if len(edges) == 0 {
		return nil, ErrEmptyInput
	}
	var cfg graphConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	maxID := 0
	for i, e := range edges {
		if e.U < 0 || e.V < 0 {
			return nil, fmt.Errorf("edge #%d (%d,%d): %w", i, e.U, e.V, ErrNegativeVertex)
		}
		if e.U >= MaxVertices || e.V >= MaxVertices {
			return nil, fmt.Errorf("edge #%d (%d,%d): %w: limit %d", i, e.U, e.V, ErrVertexRange, MaxVertices)
		}
		if e.U > maxID {
			maxID = e.U
		}
		if e.V > maxID {
			maxID = e.V
		}
	}

	n := maxID + 1
	g := &Graph{n: n, adjacency: make([][]int, n)}

	var seen map[Edge]struct{}
	if cfg.dedup {
		seen = make(map[Edge]struct{}, len(edges))
	}
	for _, e := range edges {
		if e.IsLoop() && cfg.dropLoops {
			continue
		}
		if seen != nil {
			key := e.canonical()
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
		}
		g.adjacency[e.U] = append(g.adjacency[e.U], e.V)
		g.adjacency[e.V] = append(g.adjacency[e.V], e.U)
		g.edgeCount++
		if e.IsLoop() {
			g.loops++
		}
	}

	for _, nbrs := range g.adjacency {
		sort.Ints(nbrs)
	}

	return g, nil
}
