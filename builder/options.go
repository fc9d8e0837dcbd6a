// SPDX-License-Identifier: MIT
// Package: sssp-algorithm/builder
//
// options.go — functional options for the builder package.
//
// Contract (strict):
//   • Options are functional (type Option func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Constructors themselves MUST NOT panic.
//   • Determinism is explicit: seeding is done via WithSeed, WithSeedLabel
//     or WithRand.
//   • No hidden globals; everything flows through builderConfig.
//
// AI-Hints:
//   • Prefer WithSeed for reproducible fixtures; WithSeedLabel when a test
//     wants a stable human-readable identity instead of a number.
//   • WithWeightRange(lo, hi) draws uniformly from [lo, hi).

package builder

import (
	"math"
	"math/rand" // RNG source for stochastic builders

	"github.com/cespare/xxhash/v2"
)

// Option customizes the behavior of a constructor by mutating a
// builderConfig instance before graph construction begins.
// Complexity: applying N options costs O(N) time, O(1) space.
type Option func(*builderConfig)

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
// Use this in tests and examples to lock outcomes.
// Complexity: O(1) time, O(1) space.
func WithSeed(seed int64) Option {
	return func(c *builderConfig) {
		// Seeded source → reproducible shuffles/draws.
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithSeedLabel derives the seed from a human-readable label via xxhash,
// so fixtures can be named ("dense-1k-smoke") instead of numbered. The
// same label always yields the same graph.
// Complexity: O(len(label)) time, O(1) space.
func WithSeedLabel(label string) Option {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(int64(xxhash.Sum64String(label))))
	}
}

// WithRand provides an explicit RNG for stochastic builders.
// Panics on nil; prefer WithSeed for reproducible runs.
// Complexity: O(1) time, O(1) space.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		// Fail fast to avoid silent non-determinism later.
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		// Attach the RNG; callers decide the seed policy.
		c.rng = r
	}
}

// WithWeightRange sets the half-open interval [lo, hi) edge weights are
// drawn from. Panics when lo is negative, hi < lo, or either bound is not
// finite; shortest-path solvers downstream reject negative weights anyway.
// Complexity: O(1) time, O(1) space.
func WithWeightRange(lo, hi float64) Option {
	if math.IsNaN(lo) || math.IsNaN(hi) || math.IsInf(lo, 0) || math.IsInf(hi, 0) {
		panic("builder: WithWeightRange with non-finite bound")
	}
	if lo < 0 || hi < lo {
		panic("builder: WithWeightRange requires 0 <= lo <= hi")
	}
	return func(c *builderConfig) {
		c.minWeight, c.maxWeight = lo, hi
	}
}
