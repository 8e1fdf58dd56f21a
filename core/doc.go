// Package core provides the immutable, index-based undirected Graph that
// every traversal in avgdist reads from.
//
// The Graph G = (V,E) is built once from an edge list:
//
//   - Vertices are the integers [0, VertexCount()), where VertexCount() is
//     1 + the largest endpoint seen in any edge. Indices that never appear in
//     an edge are still vertices (isolated, degree 0).
//   - Each undirected edge (u,v) is written into both adjacency lists:
//     adjacency[u] gets v and adjacency[v] gets u.
//   - Every neighbor list is sorted ascending, so BFS visit order is fully
//     reproducible for a given input.
//
// Self-loops and parallel edges are preserved by default, matching a naive
// edge-list reader: a loop (u,u) contributes u twice to adjacency[u], and a
// repeated edge repeats its neighbor. Use WithoutLoops and WithoutMultiEdges
// to build a simple graph instead.
//
// Configuration Options (GraphOption):
//
//	– WithoutLoops()
//	    Drop edges whose endpoints are equal.
//
//	– WithoutMultiEdges()
//	    Keep only the first occurrence of each unordered pair {u,v}.
//
// Core Methods:
//
//	NewGraph(edges []Edge, opts ...GraphOption) (*Graph, error) // O(V + E log E)
//	VertexCount() int                                           // O(1)
//	EdgeCount() int                                             // O(1)
//	HasVertex(v int) bool                                       // O(1)
//	Neighbors(v int) []int                                      // O(deg v), copy
//	Degree(v int) int                                           // O(1)
//	Stats() Stats                                               // O(V)
//
// Concurrency:
//
//	A Graph is never mutated after NewGraph returns, so any number of
//	goroutines may read it concurrently without locks.
//
// Errors:
//
//	ErrEmptyInput       - the edge list is empty; no graph is produced.
//	ErrNegativeVertex   - an edge endpoint is negative.
package core
