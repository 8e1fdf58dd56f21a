// Package bfs provides tunable options, results and error definitions
// for breadth-first search over a core.Graph.
package bfs

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for BFS execution.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrStartOutOfRange is returned by Walk when start is not a vertex.
	ErrStartOutOfRange = errors.New("bfs: start vertex out of range")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrNoPath is returned by Result.PathTo for a vertex the walk never reached.
	ErrNoPath = errors.New("bfs: no path")
)

// noTarget marks a walk without an early-exit vertex.
const noTarget = -1

// Option configures Walk via functional arguments.
// Invalid options are recorded and surfaced as ErrOptionViolation by Walk.
type Option func(*Options)

// Options holds parameters and callbacks to customize a walk.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnVisit is called when a vertex is dequeued and appended to Order.
	// Returning an error aborts the walk.
	OnVisit func(v, depth int) error

	// MaxDepth, if > 0, stops exploring beyond this depth.
	// A value of 0 disables the limit.
	MaxDepth int

	// Target, if >= 0, stops the walk right after this vertex is visited.
	Target int

	err error
}

// DefaultOptions returns Options with a background context, no depth limit,
// no target and a no-op OnVisit hook.
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		OnVisit:  func(int, int) error { return nil },
		MaxDepth: 0,
		Target:   noTarget,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the walk.
func WithOnVisit(fn func(v, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops the search at the given depth.
//
//	d > 0: vertices deeper than d are never enqueued
//	d == 0: no depth limit
//	d < 0: ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithTarget ends the walk as soon as v has been visited.
// A negative v clears the target.
func WithTarget(v int) Option {
	return func(o *Options) {
		if v < 0 {
			v = noTarget
		}
		o.Target = v
	}
}

// Result holds the outcome of a walk.
//   - Order: vertices in visit sequence, start first.
//   - depth/parent: per-vertex arrays sized VertexCount(); unreached
//     vertices have depth < 0.
type Result struct {
	Start int
	Order []int

	depth  []int
	parent []int
}

// Visited reports whether the walk reached v.
func (r *Result) Visited(v int) bool {
	return v >= 0 && v < len(r.depth) && r.depth[v] >= 0
}

// DistanceTo returns the hop count from Start to v, or Unreachable()
// if the walk never enqueued v.
func (r *Result) DistanceTo(v int) Distance {
	if !r.Visited(v) {
		return Unreachable()
	}
	return Finite(r.depth[v])
}

// PathTo reconstructs a shortest path from Start to dest, inclusive.
// Returns ErrNoPath if dest was not reached.
func (r *Result) PathTo(dest int) ([]int, error) {
	if !r.Visited(dest) {
		return nil, fmt.Errorf("%w to %d", ErrNoPath, dest)
	}
	path := make([]int, 0, r.depth[dest]+1)
	for cur := dest; cur >= 0; cur = r.parent[cur] {
		path = append(path, cur)
	}
	// reverse to get start → dest
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path, nil
}
