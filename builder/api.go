// SPDX-License-Identifier: MIT
// Package: sssp-algorithm/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract (strict):
//   - One orchestrator: Build(n, opts, cons...). Creates g, resolves cfg, runs cons in order.
//   - All public factories are declared in impl_*.go (one topology per file).
//   - Functional options (Option) resolve into an immutable builderConfig (no global state).
//   - Determinism: same n/options/seed and constructor order ⇒ identical graphs.
//   - Safety: never panic; return sentinel errors from constructors.
//
// AI-Hints (practical):
//   - Compose multiple constructors in Build to assemble complex fixtures deterministically.
//   - Use WithSeed(...)/WithSeedLabel(...) to freeze stochastic paths.
//   - Constructors see the vertex count through g.VertexCount(); Build owns allocation.

package builder

import (
	"fmt"

	"github.com/Xavierblaze6/sssp-algorithm/core"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors MUST:
//   - Validate parameters early and return sentinel errors (no panics).
//   - Preserve determinism for the same config and call order.
//
// Rationale: isolates topology logic behind a uniform function type.
type Constructor func(g *core.Graph, cfg builderConfig) error

// Build creates a new core.Graph over n vertices, resolves the builder
// configuration from opts, and applies all constructors in order. Any
// constructor error is wrapped with the context "Build: %w" and returned
// immediately; no partial cleanup is attempted.
//
// Complexity:
//   - Resolving options: O(len(opts)) time, O(1) space.
//   - Applying K constructors: Σ cost of each constructor; wrapper overhead O(K).
//
// Errors:
//   - Wraps constructor errors via %w; callers should branch with errors.Is
//     against builder sentinels (ErrTooFewVertices, ErrTooManyEdges, ...).
func Build(n int, opts []Option, cons ...Constructor) (*core.Graph, error) {
	// Create the graph over the fixed id space (O(n) allocation).
	g := core.New(n)

	// Resolve deterministic builder configuration from functional options.
	cfg := newBuilderConfig(opts...)

	// Apply each constructor sequentially to preserve deterministic order & effects.
	for i, fn := range cons {
		// Reject a nil constructor to avoid a panic later (programmer error).
		if fn == nil {
			return nil, fmt.Errorf("Build: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		// Execute the constructor. Implementations must not panic; they return errors.
		if err := fn(g, cfg); err != nil {
			// Wrap once at the API boundary; inner layers already carry method context.
			return nil, fmt.Errorf("Build: %w", err)
		}
	}

	// Success: return the fully constructed graph (deterministic for equal inputs).
	return g, nil
}
