// SPDX-License-Identifier: MIT
// Package: sssp-algorithm/builder
//
// config.go — internal configuration and deterministic defaults.
//
// Design:
//   • builderConfig is the single source of truth for all builder knobs.
//   • Defaults are deterministic and documented; no globals.
//   • newBuilderConfig applies options in-order (later overrides earlier).
//
// Deterministic defaults (no surprises):
//   • rng       = rand.New(rand.NewSource(defaultSeed)); every Build is
//     reproducible out of the box, reseed via WithSeed/WithSeedLabel/WithRand.
//   • minWeight = 0.1
//   • maxWeight = 10.0
//
// AI-Hints:
//   • Set WithSeed for per-fixture reproducibility instead of relying on the
//     shared default seed.
//   • WithWeightRange matters for every constructor; all of them draw weights.

package builder

import (
	"math/rand" // RNG for stochastic builders
)

// Deterministic defaults (named, no magic numbers).
const (
	defaultSeed      = int64(1) // RNG seed when none is supplied
	defaultMinWeight = 0.1      // lower bound of the weight draw
	defaultMaxWeight = 10.0     // upper bound of the weight draw
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors (immutable to callers).
type builderConfig struct {
	// RNG for stochastic choices; never nil after newBuilderConfig.
	rng *rand.Rand

	// Half-open weight range [minWeight, maxWeight) for edge draws.
	minWeight float64
	maxWeight float64
}

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order. Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...Option) builderConfig {
	// Start with strict, deterministic defaults.
	cfg := builderConfig{
		rng:       rand.New(rand.NewSource(defaultSeed)),
		minWeight: defaultMinWeight,
		maxWeight: defaultMaxWeight,
	}

	// Apply options in the given order; last-wins semantics.
	for _, opt := range opts {
		opt(&cfg)
	}

	// Return by value to encourage immutability for callers.
	return cfg
}

// weight draws one edge weight uniformly from [minWeight, maxWeight).
func (c builderConfig) weight() float64 {
	return c.minWeight + c.rng.Float64()*(c.maxWeight-c.minWeight)
}
