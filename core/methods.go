// SPDX-License-Identifier: MIT
//
// File: methods.go
// Role: read-only queries over an immutable Graph.
// Policy:
//   - No method mutates the Graph. Only AdjacentTo hands out an internal
//     slice, and callers must not write to it.

package core

// VertexCount returns the number of vertices, 1 + the largest endpoint.
// Complexity: O(1).
func (g *Graph) VertexCount() int { return g.n }

// EdgeCount returns the number of edges accepted into the graph
// (after WithoutLoops / WithoutMultiEdges filtering).
// Complexity: O(1).
func (g *Graph) EdgeCount() int { return g.edgeCount }

// HasVertex reports whether v is a valid index in [0, VertexCount()).
func (g *Graph) HasVertex(v int) bool { return v >= 0 && v < g.n }

// Neighbors returns a copy of v's sorted neighbor list.
// Out-of-range v yields nil.
// Complexity: O(deg v).
func (g *Graph) Neighbors(v int) []int {
	if !g.HasVertex(v) {
		return nil
	}
	out := make([]int, len(g.adjacency[v]))
	copy(out, g.adjacency[v])
	return out
}

// AdjacentTo returns v's neighbor list without copying. The returned slice
// must be treated as read-only; it is shared by every reader of the Graph.
// Out-of-range v yields nil.
func (g *Graph) AdjacentTo(v int) []int {
	if !g.HasVertex(v) {
		return nil
	}
	return g.adjacency[v]
}

// Degree returns the length of v's neighbor list. A preserved self-loop
// counts twice. Out-of-range v has degree 0.
func (g *Graph) Degree(v int) int {
	if !g.HasVertex(v) {
		return 0
	}
	return len(g.adjacency[v])
}

// Stats computes a summary of the graph.
// Complexity: O(V).
func (g *Graph) Stats() Stats {
	s := Stats{Vertices: g.n, Edges: g.edgeCount, Loops: g.loops}
	for _, nbrs := range g.adjacency {
		d := len(nbrs)
		if d == 0 {
			s.Isolated++
		}
		if d > s.MaxDegree {
			s.MaxDegree = d
		}
	}
	return s
}
