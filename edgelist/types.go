package edgelist

import (
	"errors"

	"github.com/katalvlaran/avgdist/core"
)

var (
	// ErrInputUnavailable indicates a source that could not be opened or read.
	ErrInputUnavailable = errors.New("edgelist: input unavailable")

	// ErrEmptyInput is core.ErrEmptyInput; a source with zero valid edges
	// fails the same way as building a graph from nothing.
	ErrEmptyInput = core.ErrEmptyInput
)

// Dataset is the parsed content of one or more edge-list sources.
type Dataset struct {
	// Edges in input order.
	Edges []core.Edge
	// Sources lists the files read, in order. Empty for Parse.
	Sources []string
	// Lines counts data lines examined (headers excluded).
	Lines int
	// Skipped counts data lines rejected as malformed.
	Skipped int
	// Digest is the hex BLAKE3-256 digest of all bytes read.
	Digest string
}

// Option configures parsing.
type Option func(*config)

type config struct {
	header bool
}

func defaultConfig() config { return config{header: true} }

// WithHeader controls whether the first line of each source is skipped.
// Default true.
func WithHeader(skip bool) Option {
	return func(c *config) { c.header = skip }
}
