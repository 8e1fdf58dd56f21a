// Package bfs provides breadth-first search over a core.Graph,
// returning reachability order and unweighted shortest-path distances.
package bfs

import (
	"fmt"

	"github.com/katalvlaran/avgdist/core"
)

// walker encapsulates mutable BFS state. All slices are private to one walk.
type walker struct {
	graph *core.Graph
	opts  Options
	queue []int
	head  int
	res   *Result
}

// newWalker allocates per-walk state sized to the graph.
func newWalker(g *core.Graph, o Options) *walker {
	n := g.VertexCount()
	w := &walker{
		graph: g,
		opts:  o,
		queue: make([]int, 0, n),
		res: &Result{
			Order:  make([]int, 0, n),
			depth:  make([]int, n),
			parent: make([]int, n),
		},
	}
	for i := range w.res.depth {
		w.res.depth[i] = -1
		w.res.parent[i] = -1
	}
	return w
}

// Walk runs breadth-first search on g starting from start,
// applying any number of functional Options.
// Returns ErrGraphNil, ErrStartOutOfRange or ErrOptionViolation for invalid
// input, the context error on cancellation, or a wrapped OnVisit error.
// On error the partial Result is still returned.
func Walk(g *core.Graph, start int, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.HasVertex(start) {
		return nil, fmt.Errorf("%w: %d not in [0,%d)", ErrStartOutOfRange, start, g.VertexCount())
	}

	w := newWalker(g, o)
	w.res.Start = start
	w.enqueue(start, 0, -1)
	return w.res, w.loop()
}

// Reachable returns every vertex reachable from start in discovery order,
// start first. Each vertex appears exactly once. A nil graph or an
// out-of-range start yields an empty slice.
func Reachable(g *core.Graph, start int) []int {
	if g == nil || !g.HasVertex(start) {
		return []int{}
	}
	w := newWalker(g, DefaultOptions())
	w.res.Start = start
	w.enqueue(start, 0, -1)
	_ = w.loop() // default options cannot fail
	return w.res.Order
}

// ShortestPath returns the number of edges on a shortest path between
// start and end, or Unreachable() if no path exists or either vertex is
// out of range. start == end yields Finite(0) without traversal.
func ShortestPath(g *core.Graph, start, end int) Distance {
	if g == nil || !g.HasVertex(start) || !g.HasVertex(end) {
		return Unreachable()
	}
	if start == end {
		return Finite(0)
	}
	o := DefaultOptions()
	o.Target = end
	w := newWalker(g, o)
	w.res.Start = start
	w.enqueue(start, 0, -1)
	_ = w.loop()
	return w.res.DistanceTo(end)
}

// enqueue marks v seen at depth d with the given parent and queues it.
func (w *walker) enqueue(v, d, parent int) {
	w.res.depth[v] = d
	w.res.parent[v] = parent
	w.queue = append(w.queue, v)
}

// loop processes the queue until empty, target reached, error or cancellation.
func (w *walker) loop() error {
	for w.head < len(w.queue) {
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		v := w.queue[w.head]
		w.head++
		if err := w.visit(v); err != nil {
			return err
		}
		if v == w.opts.Target {
			return nil
		}
		w.enqueueNeighbors(v)
	}
	return nil
}

// visit records v in Order and calls OnVisit.
func (w *walker) visit(v int) error {
	w.res.Order = append(w.res.Order, v)
	if err := w.opts.OnVisit(v, w.res.depth[v]); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %d: %w", v, err)
	}
	return nil
}

// enqueueNeighbors enqueues each unseen neighbor of v within MaxDepth.
func (w *walker) enqueueNeighbors(v int) {
	next := w.res.depth[v] + 1
	if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
		return
	}
	for _, nbr := range w.graph.AdjacentTo(v) {
		if w.res.depth[nbr] < 0 {
			w.enqueue(nbr, next, v)
		}
	}
}
