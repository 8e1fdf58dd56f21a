package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/avgdist/config"
	"github.com/katalvlaran/avgdist/core"
	"github.com/katalvlaran/avgdist/edgelist"
	"github.com/katalvlaran/avgdist/estimate"
	"github.com/katalvlaran/avgdist/report"
	"github.com/katalvlaran/avgdist/sampler"
)

// Exit codes.
const (
	exitInput    = 1 // input unavailable or empty
	exitInternal = 2 // flags, config, output failures
)

// run executes one estimation with a validated cfg. Input failures are
// reported and returned as exitInput; degenerate estimates are reported
// and end the run successfully. Any other estimation failure, such as
// cancellation, is reported and returned as exitInternal.
func run(ctx context.Context, cfg config.Config, stdout, stderr io.Writer) error {
	lvl, _ := cfg.Level()
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: lvl})).
		With(slog.String("run_id", uuid.NewString()))
	format, _ := report.ParseFormat(cfg.Format)
	scope, _ := estimate.ParseScope(cfg.Scope)

	rep := report.Report{Input: cfg.Input}
	if cfg.Glob != "" {
		rep.Input = cfg.Glob
	}

	ds, err := loadDataset(cfg)
	if err != nil {
		logger.ErrorContext(ctx, "loading edge list", slog.String("input", rep.Input), slog.Any("err", err))
		return reportError(stdout, rep, format, exitInput, err)
	}
	rep.Digest = ds.Digest
	logger.InfoContext(ctx, "edge list loaded",
		slog.Int("files", len(ds.Sources)),
		slog.Int("edges", len(ds.Edges)),
		slog.Int("skipped", ds.Skipped),
		slog.String("digest", ds.Digest))

	var gopts []core.GraphOption
	if cfg.DropLoops {
		gopts = append(gopts, core.WithoutLoops())
	}
	if cfg.DropMultiEdges {
		gopts = append(gopts, core.WithoutMultiEdges())
	}
	g, err := core.NewGraph(ds.Edges, gopts...)
	if err != nil {
		logger.ErrorContext(ctx, "building graph", slog.Any("err", err))
		return reportError(stdout, rep, format, exitInput, err)
	}
	stats := g.Stats()
	rep.Graph = &stats

	start := cfg.Start
	if start < 0 {
		start = ds.Edges[0].U
	}

	reg := prometheus.NewRegistry()
	est := estimate.New(
		estimate.WithSampleSize(cfg.SampleSize),
		estimate.WithAttemptFactor(cfg.AttemptFactor),
		estimate.WithWorkers(cfg.Workers),
		estimate.WithScope(scope),
		estimate.WithSource(sampler.NewSource(cfg.Seed)),
		estimate.WithLogger(logger),
		estimate.WithMetrics(estimate.NewMetrics(reg)),
	)
	res, runErr := est.Run(ctx, g, start)
	rep.Result, rep.Err = res, runErr
	if runErr != nil && !degenerate(runErr) {
		logger.ErrorContext(ctx, "estimation aborted", slog.Any("err", runErr))
		return reportError(stdout, rep, format, exitInternal, runErr)
	}

	if err := report.Write(stdout, rep, format); err != nil {
		return errorf(exitInternal, err)
	}
	if cfg.MetricsFile != "" {
		if err := prometheus.WriteToTextfile(cfg.MetricsFile, reg); err != nil {
			return errorf(exitInternal, fmt.Errorf("writing metrics: %w", err))
		}
	}
	return nil
}

func loadDataset(cfg config.Config) (*edgelist.Dataset, error) {
	opt := edgelist.WithHeader(cfg.Header)
	if cfg.Glob != "" {
		return edgelist.LoadGlob(cfg.Glob, opt)
	}
	return edgelist.Load(cfg.Input, opt)
}

// reportError writes rep with err as its outcome and returns an exitError
// carrying code.
func reportError(w io.Writer, rep report.Report, f report.Format, code int, err error) error {
	rep.Err = err
	if werr := report.Write(w, rep, f); werr != nil {
		return errorf(exitInternal, werr)
	}
	return errorf(code, err)
}

// degenerate reports whether err is an estimation outcome rather than a failure.
func degenerate(err error) bool {
	return errors.Is(err, estimate.ErrInsufficientReachable) ||
		errors.Is(err, estimate.ErrNoPairsFormed) ||
		errors.Is(err, estimate.ErrAllPairsUnreachable)
}
