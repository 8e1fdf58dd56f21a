package estimate

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/katalvlaran/avgdist/sampler"
)

// Sentinel errors for the degenerate outcomes of a run.
var (
	// ErrInsufficientReachable indicates fewer than two reachable vertices.
	ErrInsufficientReachable = errors.New("estimate: fewer than 2 vertices to pair")

	// ErrNoPairsFormed indicates the sampler exhausted its budget with no pair.
	ErrNoPairsFormed = errors.New("estimate: no distinct pairs formed")

	// ErrAllPairsUnreachable indicates every sampled pair had no path.
	ErrAllPairsUnreachable = errors.New("estimate: no sampled pair is connected")
)

// Scope selects the vertex population pairs are drawn from.
type Scope int

const (
	// ScopeReachable samples among vertices reachable from the start vertex.
	// Every sampled pair is connected.
	ScopeReachable Scope = iota
	// ScopeAll samples among every vertex of the graph; pairs straddling
	// components are reported as unreachable.
	ScopeAll
)

// String returns the configuration name of s.
func (s Scope) String() string {
	if s == ScopeAll {
		return "all"
	}
	return "reachable"
}

// ParseScope maps "reachable" or "all" to a Scope.
func ParseScope(name string) (Scope, error) {
	switch name {
	case "", "reachable":
		return ScopeReachable, nil
	case "all":
		return ScopeAll, nil
	}
	return ScopeReachable, fmt.Errorf("estimate: unknown scope %q", name)
}

// Result is the outcome of one estimation run.
type Result struct {
	// Start is the BFS start vertex.
	Start int `json:"start" yaml:"start"`
	// Reachable is the number of vertices reachable from Start, Start included.
	Reachable int `json:"reachable" yaml:"reachable"`
	// Population is the number of vertices pairs were drawn from.
	Population int `json:"population" yaml:"population"`
	// Sampled is the number of distinct pairs drawn.
	Sampled int `json:"sampled" yaml:"sampled"`
	// Counted is the number of sampled pairs with a finite distance.
	Counted int `json:"counted" yaml:"counted"`
	// Unreachable is Sampled - Counted.
	Unreachable int `json:"unreachable" yaml:"unreachable"`
	// Total is the sum of all finite distances.
	Total int `json:"total" yaml:"total"`
	// Average is Total / Counted, 0 when nothing was counted.
	Average float64 `json:"average" yaml:"average"`
	// Histogram maps a hop count to the number of pairs at that distance.
	Histogram map[int]int `json:"histogram" yaml:"histogram"`
}

// Option configures an Estimator.
type Option func(*Estimator)

// WithSampleSize sets the number of distinct pairs requested.
// Non-positive values keep the default.
func WithSampleSize(k int) Option {
	return func(e *Estimator) {
		if k > 0 {
			e.sampleSize = k
		}
	}
}

// WithAttemptFactor sets the attempt budget as a multiple of the sample size.
// Non-positive values keep the default.
func WithAttemptFactor(f int) Option {
	return func(e *Estimator) {
		if f > 0 {
			e.attemptFactor = f
		}
	}
}

// WithMaxAttempts pins the attempt budget to an absolute number of draws,
// overriding the attempt factor. Non-positive values clear the override.
func WithMaxAttempts(n int) Option {
	return func(e *Estimator) { e.maxAttempts = n }
}

// WithScope selects the sampling population.
func WithScope(s Scope) Option {
	return func(e *Estimator) { e.scope = s }
}

// WithWorkers bounds the number of concurrent shortest-path queries.
// Values below 1 keep the default of 1.
func WithWorkers(n int) Option {
	return func(e *Estimator) {
		if n > 0 {
			e.workers = n
		}
	}
}

// WithSource injects the random source used by the sampler.
func WithSource(src sampler.Source) Option {
	return func(e *Estimator) {
		if src != nil {
			e.src = src
		}
	}
}

// WithLogger sets the structured logger. The default discards everything.
func WithLogger(l *slog.Logger) Option {
	return func(e *Estimator) {
		if l != nil {
			e.logger = l
		}
	}
}

// WithMetrics attaches Prometheus instruments.
func WithMetrics(m *Metrics) Option {
	return func(e *Estimator) {
		if m != nil {
			e.metrics = m
		}
	}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
