// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Edge, Graph, GraphOption, Stats and the sentinel errors of package core.

package core

import "errors"

// Sentinel errors for graph construction.
var (
	// ErrEmptyInput indicates that construction was attempted from zero edges.
	ErrEmptyInput = errors.New("core: edge list is empty")

	// ErrNegativeVertex indicates that an edge endpoint is below zero.
	ErrNegativeVertex = errors.New("core: negative vertex index")

	// ErrVertexRange indicates that an endpoint would make the vertex
	// count exceed MaxVertices.
	ErrVertexRange = errors.New("core: vertex index out of range")
)

// MaxVertices bounds the vertex count NewGraph will allocate. Vertices are
// dense indices [0, max endpoint], so a single large id costs memory for
// every index below it.
const MaxVertices = 1 << 26

// Edge is an unordered pair of vertex indices.
type Edge struct {
	U int
	V int
}

// IsLoop reports whether both endpoints are the same vertex.
func (e Edge) IsLoop() bool { return e.U == e.V }

// canonical returns the edge with the smaller endpoint first.
func (e Edge) canonical() Edge {
	if e.U > e.V {
		return Edge{U: e.V, V: e.U}
	}
	return e
}

// GraphOption configures how NewGraph treats the incoming edge list.
type GraphOption func(*graphConfig)

type graphConfig struct {
	dropLoops bool // skip edges with U == V
	dedup     bool // skip repeated unordered pairs
}

// WithoutLoops drops self-loops instead of inserting them twice.
func WithoutLoops() GraphOption {
	return func(c *graphConfig) { c.dropLoops = true }
}

// WithoutMultiEdges keeps only the first copy of each unordered pair.
func WithoutMultiEdges() GraphOption {
	return func(c *graphConfig) { c.dedup = true }
}

// Graph is an immutable undirected graph over the vertices [0, n).
//
// adjacency[v] lists the neighbors of v in ascending order. The slice
// header and its contents are never written after NewGraph returns.
type Graph struct {
	n         int
	edgeCount int
	loops     int
	adjacency [][]int
}

// Stats is a read-only summary of a Graph.
type Stats struct {
	Vertices  int `json:"vertices" yaml:"vertices"`
	Edges     int `json:"edges" yaml:"edges"`
	Loops     int `json:"loops" yaml:"loops"`
	Isolated  int `json:"isolated" yaml:"isolated"`
	MaxDegree int `json:"max_degree" yaml:"max_degree"`
}
