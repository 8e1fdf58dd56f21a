// Package estimate wires reachability, pair sampling and shortest-path
// queries into a sampled average-distance estimate.
//
// Pipeline
//
//  1. bfs.Reachable from the start vertex.
//  2. sampler.Sample over the reachable set (sample size, attempt budget).
//  3. bfs.ShortestPath per pair, fanned out over a bounded worker pool.
//     Each query only reads the immutable core.Graph.
//  4. Aggregate finite distances: count, total, average, hop histogram.
//
// Degenerate outcomes are errors, each returned together with the partial
// Result so callers can still report what was found:
//
//   - ErrInsufficientReachable  fewer than 2 vertices reachable from start
//   - ErrNoPairsFormed          the sampler produced no pair
//   - ErrAllPairsUnreachable    no sampled pair had a finite distance
//
// Usage
//
//	est := estimate.New(
//	    estimate.WithSampleSize(1000),
//	    estimate.WithWorkers(runtime.NumCPU()),
//	    estimate.WithSource(sampler.NewSource(seed)),
//	    estimate.WithLogger(logger),
//	    estimate.WithMetrics(estimate.NewMetrics(prometheus.DefaultRegisterer)),
//	)
//	res, err := est.Run(ctx, g, start)
package estimate
