// Package sampler draws distinct unordered vertex pairs for distance
// estimation.
//
// Sample is a best-effort rejection sampler: it draws two indices uniformly
// with replacement, rejects equal indices and pairs already chosen, and
// gives up after a fixed attempt budget. For a small vertex set relative to
// the requested size it may return fewer pairs than asked, or none.
//
// Randomness is injected through Source so tests can force any branch.
// *math/rand.Rand satisfies Source; math/rand.Rand is not goroutine-safe,
// so do not share one Source across concurrent samplers.
package sampler

import "math/rand"

// Defaults for the sampling policy.
const (
	// DefaultSampleSize is the number of distinct pairs requested.
	DefaultSampleSize = 1000

	// DefaultAttemptFactor multiplies the sample size into the attempt budget.
	DefaultAttemptFactor = 100

	// defaultSeed replaces seed 0 in NewSource.
	defaultSeed int64 = 1
)

// Source yields uniform integers in [0, n).
type Source interface {
	Intn(n int) int
}

// NewSource returns a deterministic Source. seed == 0 selects a fixed
// default seed so the zero configuration is reproducible too.
func NewSource(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultSeed
	}
	return rand.New(rand.NewSource(seed))
}

// Pair is an unordered vertex pair stored as A < B.
type Pair struct {
	A int `json:"a" yaml:"a"`
	B int `json:"b" yaml:"b"`
}

// NewPair canonicalizes (a,b) so the smaller vertex comes first.
func NewPair(a, b int) Pair {
	if a > b {
		a, b = b, a
	}
	return Pair{A: a, B: b}
}

// Sample draws up to k distinct pairs from vertices using at most
// maxAttempts draws of two indices each. Pairs are returned in the order
// found. Fewer than two vertices, k <= 0 or maxAttempts <= 0 yield nil.
//
// Duplicate vertex ids in vertices are not expected; two positions holding
// the same id are rejected like equal indices.
//
// Complexity: O(maxAttempts) time, O(k) space.
func Sample(vertices []int, k, maxAttempts int, src Source) []Pair {
	m := len(vertices)
	if m < 2 || k <= 0 || maxAttempts <= 0 {
		return nil
	}
	if limit := m * (m - 1) / 2; k > limit {
		k = limit
	}

	chosen := make(map[Pair]struct{}, k)
	pairs := make([]Pair, 0, k)
	for attempts := 0; len(pairs) < k && attempts < maxAttempts; attempts++ {
		i := src.Intn(m)
		j := src.Intn(m)
		if i == j || vertices[i] == vertices[j] {
			continue
		}
		p := NewPair(vertices[i], vertices[j])
		if _, dup := chosen[p]; dup {
			continue
		}
		chosen[p] = struct{}{}
		pairs = append(pairs, p)
	}
	return pairs
}

// AttemptBudget returns k × factor, the attempt cap for a sample of size k.
// Non-positive factors fall back to DefaultAttemptFactor.
func AttemptBudget(k, factor int) int {
	if factor <= 0 {
		factor = DefaultAttemptFactor
	}
	return k * factor
}
