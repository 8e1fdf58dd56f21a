package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/avgdist/config"
)

// Version is the avgdist release.
var Version = "0.3.0"

// exitError carries a process exit code for outcomes already reported.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	var (
		cfgPath string
		flags   = config.Default()
	)

	cmd := &cobra.Command{
		Use:   "avgdist [edge-list]",
		Short: "Estimate the average shortest-path distance of an undirected graph",
		Long: `avgdist reads a "u,v" edge list, runs a BFS from the first vertex of the
first edge, samples distinct pairs among the reachable vertices and averages
their BFS shortest-path distances.

Inputs ending in .zst or .gz are decompressed; --glob loads sharded inputs.`,
		Version:       Version,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Default()
			if cfgPath != "" {
				loaded, err := config.Load(cfgPath)
				if err != nil {
					return err
				}
				cfg = loaded
			}
			applyFlags(cmd, &cfg, flags)
			if len(args) == 1 {
				cfg.Input = args[0]
				cfg.Glob = ""
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			return run(cmd.Context(), cfg, stdout, stderr)
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	f := cmd.Flags()
	f.StringVarP(&cfgPath, "config", "c", "", "YAML configuration file")
	f.StringVar(&flags.Glob, "glob", flags.Glob, "load every file matching this ** pattern")
	f.BoolVar(&flags.Header, "header", flags.Header, "skip the first line of each input")
	f.IntVar(&flags.Start, "start", flags.Start, "BFS start vertex (negative: first edge's first endpoint)")
	f.IntVarP(&flags.SampleSize, "samples", "n", flags.SampleSize, "number of distinct pairs to sample")
	f.IntVar(&flags.AttemptFactor, "attempt-factor", flags.AttemptFactor, "sampler attempt budget as a multiple of --samples")
	f.Int64Var(&flags.Seed, "seed", flags.Seed, "sampler seed (0: fixed default)")
	f.IntVarP(&flags.Workers, "workers", "w", flags.Workers, "concurrent shortest-path queries")
	f.StringVar(&flags.Scope, "scope", flags.Scope, "sampling population: reachable|all")
	f.StringVarP(&flags.Format, "format", "o", flags.Format, "output format: text|yaml|json")
	f.StringVar(&flags.MetricsFile, "metrics-file", flags.MetricsFile, "write Prometheus metrics to this file")
	f.StringVar(&flags.LogLevel, "log-level", flags.LogLevel, "debug|info|warn|error")
	f.BoolVar(&flags.DropLoops, "drop-loops", flags.DropLoops, "ignore self-loops")
	f.BoolVar(&flags.DropMultiEdges, "drop-multi-edges", flags.DropMultiEdges, "collapse parallel edges")

	return cmd
}

// applyFlags copies every explicitly set flag from src onto dst, so flags
// win over the configuration file and unset flags do not clobber it.
func applyFlags(cmd *cobra.Command, dst *config.Config, src config.Config) {
	set := map[string]func(){
		"glob":             func() { dst.Glob = src.Glob },
		"header":           func() { dst.Header = src.Header },
		"start":            func() { dst.Start = src.Start },
		"samples":          func() { dst.SampleSize = src.SampleSize },
		"attempt-factor":   func() { dst.AttemptFactor = src.AttemptFactor },
		"seed":             func() { dst.Seed = src.Seed },
		"workers":          func() { dst.Workers = src.Workers },
		"scope":            func() { dst.Scope = src.Scope },
		"format":           func() { dst.Format = src.Format },
		"metrics-file":     func() { dst.MetricsFile = src.MetricsFile },
		"log-level":        func() { dst.LogLevel = src.LogLevel },
		"drop-loops":       func() { dst.DropLoops = src.DropLoops },
		"drop-multi-edges": func() { dst.DropMultiEdges = src.DropMultiEdges },
	}
	for name, apply := range set {
		if cmd.Flags().Changed(name) {
			apply()
		}
	}
}

// errorf builds an exitError after the outcome was already reported.
func errorf(code int, err error) error {
	return &exitError{code: code, err: fmt.Errorf("avgdist: %w", err)}
}
