package estimate

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/avgdist/bfs"
	"github.com/katalvlaran/avgdist/core"
	"github.com/katalvlaran/avgdist/sampler"
)

// Estimator runs sampled average-distance estimates. It holds only
// configuration; a single Estimator must not run concurrently when its
// Source is not goroutine-safe (the default *rand.Rand is not).
type Estimator struct {
	sampleSize    int
	attemptFactor int
	maxAttempts   int
	workers       int
	scope         Scope
	src           sampler.Source
	logger        *slog.Logger
	metrics       *Metrics
}

// New returns an Estimator with the default policy: 1000 pairs, an attempt
// budget of 100 × sample size, one worker, seeded default source, no logs.
func New(opts ...Option) *Estimator {
	e := &Estimator{
		sampleSize:    sampler.DefaultSampleSize,
		attemptFactor: sampler.DefaultAttemptFactor,
		workers:       1,
		src:           sampler.NewSource(0),
		logger:        discardLogger(),
		metrics:       NewMetrics(nil),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// budget resolves the attempt cap for this estimator.
func (e *Estimator) budget() int {
	if e.maxAttempts > 0 {
		return e.maxAttempts
	}
	return sampler.AttemptBudget(e.sampleSize, e.attemptFactor)
}

// Run estimates the average shortest-path distance among vertices reachable
// from start. On ErrInsufficientReachable, ErrNoPairsFormed and
// ErrAllPairsUnreachable the partially filled Result is returned with the
// error. A cancelled ctx aborts the distance phase with ctx.Err().
func (e *Estimator) Run(ctx context.Context, g *core.Graph, start int) (res *Result, err error) {
	if g == nil {
		return nil, bfs.ErrGraphNil
	}
	defer func() { e.metrics.RunsTotal.WithLabelValues(outcomeOf(err)).Inc() }()

	res = &Result{Start: start, Histogram: map[int]int{}}

	reachable := bfs.Reachable(g, start)
	res.Reachable = len(reachable)
	e.logger.DebugContext(ctx, "reachability computed",
		slog.Int("start", start),
		slog.Int("reachable", res.Reachable),
		slog.Int("vertices", g.VertexCount()))
	if len(reachable) < 2 && e.scope == ScopeReachable {
		res.Population = len(reachable)
		return res, fmt.Errorf("%w: %d reachable from vertex %d", ErrInsufficientReachable, len(reachable), start)
	}

	population := reachable
	if e.scope == ScopeAll {
		population = allVertices(g)
	}
	res.Population = len(population)
	if len(population) < 2 {
		return res, fmt.Errorf("%w: graph has %d vertices", ErrInsufficientReachable, len(population))
	}

	budget := e.budget()
	pairs := sampler.Sample(population, e.sampleSize, budget, e.src)
	res.Sampled = len(pairs)
	e.metrics.PairsSampled.Add(float64(len(pairs)))
	e.logger.DebugContext(ctx, "pairs sampled",
		slog.String("scope", e.scope.String()),
		slog.Int("requested", e.sampleSize),
		slog.Int("sampled", len(pairs)),
		slog.Int("attempt_budget", budget))
	if len(pairs) == 0 {
		return res, fmt.Errorf("%w: budget of %d attempts", ErrNoPairsFormed, budget)
	}

	dists, err := e.distances(ctx, g, pairs)
	if err != nil {
		return res, err
	}

	for _, d := range dists {
		hops, ok := d.Hops()
		if !ok {
			res.Unreachable++
			continue
		}
		res.Counted++
		res.Total += hops
		res.Histogram[hops]++
	}
	e.metrics.PairsCounted.Add(float64(res.Counted))
	e.metrics.PairsUnreachable.Add(float64(res.Unreachable))

	if res.Counted == 0 {
		return res, fmt.Errorf("%w: %d pairs sampled", ErrAllPairsUnreachable, res.Sampled)
	}
	res.Average = float64(res.Total) / float64(res.Counted)

	e.logger.InfoContext(ctx, "average distance estimated",
		slog.Int("counted", res.Counted),
		slog.Int("unreachable", res.Unreachable),
		slog.Int("total", res.Total),
		slog.Float64("average", res.Average))
	return res, nil
}

// distances evaluates every pair on up to e.workers goroutines. Results are
// written by index, so the output order matches pairs.
func (e *Estimator) distances(ctx context.Context, g *core.Graph, pairs []sampler.Pair) ([]bfs.Distance, error) {
	out := make([]bfs.Distance, len(pairs))
	grp, gctx := errgroup.WithContext(ctx)
	grp.SetLimit(e.workers)
	for i, p := range pairs {
		i, p := i, p
		grp.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			began := time.Now()
			out[i] = bfs.ShortestPath(g, p.A, p.B)
			e.metrics.QueryDuration.Observe(time.Since(began).Seconds())
			return nil
		})
	}
	if err := grp.Wait(); err != nil {
		return nil, fmt.Errorf("estimate: distance phase aborted: %w", err)
	}
	return out, nil
}

// allVertices lists [0, VertexCount()).
func allVertices(g *core.Graph) []int {
	vs := make([]int, g.VertexCount())
	for i := range vs {
		vs[i] = i
	}
	return vs
}
