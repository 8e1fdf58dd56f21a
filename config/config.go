// Package config holds the run configuration of the avgdist command:
// compiled-in defaults, an optional YAML file, and validation.
package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/avgdist/estimate"
	"github.com/katalvlaran/avgdist/report"
	"github.com/katalvlaran/avgdist/sampler"
)

// DefaultInput is the edge list read when no path is given.
const DefaultInput = "fb-pages-company_edges.txt"

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the complete set of run parameters.
type Config struct {
	// Input is the edge-list path; ignored when Glob is set.
	Input string `yaml:"input"`
	// Glob loads every matching file as one sharded edge list.
	Glob string `yaml:"glob"`
	// Header skips the first line of each input file.
	Header bool `yaml:"header"`
	// Start is the BFS start vertex; negative selects the first endpoint
	// of the first edge.
	Start int `yaml:"start"`
	// SampleSize is the number of distinct pairs requested.
	SampleSize int `yaml:"sample_size"`
	// AttemptFactor × SampleSize bounds sampler draws.
	AttemptFactor int `yaml:"attempt_factor"`
	// Seed for the pair sampler; 0 selects the fixed default seed.
	Seed int64 `yaml:"seed"`
	// Workers bounds concurrent shortest-path queries.
	Workers int `yaml:"workers"`
	// Scope is "reachable" or "all".
	Scope string `yaml:"scope"`
	// Format is "text", "yaml" or "json".
	Format string `yaml:"format"`
	// MetricsFile, when set, receives Prometheus metrics in text format.
	MetricsFile string `yaml:"metrics_file"`
	// LogLevel is a slog level name: debug, info, warn, error.
	LogLevel string `yaml:"log_level"`
	// DropLoops removes self-loops before building the graph.
	DropLoops bool `yaml:"drop_loops"`
	// DropMultiEdges collapses parallel edges before building the graph.
	DropMultiEdges bool `yaml:"drop_multi_edges"`
}

// Default returns the configuration used when nothing is overridden.
func Default() Config {
	return Config{
		Input:         DefaultInput,
		Header:        true,
		Start:         -1,
		SampleSize:    sampler.DefaultSampleSize,
		AttemptFactor: sampler.DefaultAttemptFactor,
		Workers:       1,
		Scope:         estimate.ScopeReachable.String(),
		Format:        string(report.FormatText),
		LogLevel:      "warn",
	}
}

// Load reads a YAML file over Default(). Unknown keys are rejected.
func Load(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	defer f.Close()
	return Decode(f)
}

// Decode reads YAML from r over Default(). An empty document yields the
// defaults.
func Decode(r io.Reader) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}
	return cfg, cfg.Validate()
}

// Validate checks ranges and enumerations.
func (c Config) Validate() error {
	if c.Input == "" && c.Glob == "" {
		return fmt.Errorf("%w: input or glob is required", ErrInvalidConfig)
	}
	if c.SampleSize <= 0 {
		return fmt.Errorf("%w: sample_size must be > 0 (got %d)", ErrInvalidConfig, c.SampleSize)
	}
	if c.AttemptFactor <= 0 {
		return fmt.Errorf("%w: attempt_factor must be > 0 (got %d)", ErrInvalidConfig, c.AttemptFactor)
	}
	if c.Workers <= 0 {
		return fmt.Errorf("%w: workers must be > 0 (got %d)", ErrInvalidConfig, c.Workers)
	}
	if _, err := estimate.ParseScope(c.Scope); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if _, err := report.ParseFormat(c.Format); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if _, err := c.Level(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}

// Level parses LogLevel.
func (c Config) Level() (slog.Level, error) {
	var lvl slog.Level
	if c.LogLevel == "" {
		return slog.LevelWarn, nil
	}
	if err := lvl.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("log_level: %w", err)
	}
	return lvl, nil
}
