// SPDX-License-Identifier: MIT
// Package: avgdist/builder
//
// options.go — Constructor type, builder configuration and Build entry point.

package builder

import (
	"math/rand"

	"github.com/katalvlaran/avgdist/core"
)

// Constructor emits the edges of one graph family given the resolved config.
type Constructor func(cfg builderConfig) ([]core.Edge, error)

// Option mutates builderConfig before a Constructor runs.
type Option func(*builderConfig)

type builderConfig struct {
	rng *rand.Rand
}

// WithSeed installs a deterministic RNG seeded with seed.
func WithSeed(seed int64) Option {
	return func(c *builderConfig) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithRand installs a caller-owned RNG. A nil r is ignored.
func WithRand(r *rand.Rand) Option {
	return func(c *builderConfig) {
		if r != nil {
			c.rng = r
		}
	}
}

// Build resolves opts and runs c.
func Build(c Constructor, opts ...Option) ([]core.Edge, error) {
	var cfg builderConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	return c(cfg)
}
