// Package bfs provides breadth-first reachability and unweighted shortest-path
// queries over a core.Graph.
//
// What
//
//   - Reachable(g, start): vertices reachable from start, in discovery order
//     (start first, then frontier order). Empty when start is out of range.
//   - ShortestPath(g, start, end): number of edges on a shortest start–end
//     path as a Distance, or Unreachable(). Stops as soon as end is dequeued.
//   - Walk(g, start, opts...): the full traversal behind both, returning a
//     Result with visit Order, per-vertex depth and parent links, and
//     supporting functional options:
//   - WithContext(ctx)     cancellation, checked once per dequeue
//   - WithMaxDepth(d)      do not enqueue vertices deeper than d (>0)
//   - WithTarget(v)        stop once v has been visited
//   - WithOnVisit(fn)      hook per visited vertex; an error aborts the walk
//
// Why
//
//   - BFS dequeues vertices in non-decreasing distance order, so the first
//     time a vertex is reached it already holds its minimal hop count.
//
// Distance
//
//	Distance is a tagged value, Finite(n) or Unreachable(), never a magic
//	"infinite" integer. Use Hops() or IsReachable() to branch on it.
//
// Determinism
//
//	core.Graph keeps neighbor lists sorted ascending and BFS enqueues them in
//	that order, so visit order is fully reproducible.
//
// Concurrency
//
//	Every call allocates its own queue, visited and depth arrays and only
//	reads the Graph. Any number of queries may run in parallel against the
//	same Graph.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E); each vertex is enqueued at most once and each
//     adjacency entry examined at most once.
//   - Memory: O(V)
//
// Errors (Walk only)
//
//   - ErrGraphNil          if the graph pointer is nil.
//   - ErrStartOutOfRange   if start is not in [0, VertexCount()).
//   - ErrOptionViolation   if an option is invalid (negative MaxDepth).
//   - context errors and wrapped OnVisit errors.
package bfs
