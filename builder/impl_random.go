// SPDX-License-Identifier: MIT
// Package: sssp-algorithm/builder
//
// impl_random.go - implementation of the RandomConnected(m) constructor.
//
// Canonical model:
//   - Phase 1 guarantees reachability from vertex 0: the vertices 1..n-1 are
//     shuffled and each is attached by one arc from a uniformly chosen vertex
//     already in the tree (vertex 0 seeds it).
//   - Phase 2 tops the graph up to m arcs with uniform (u,v) draws, skipping
//     self-loops and pairs that already carry an arc.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - m ≥ n-1 (else ErrTooFewEdges; the spanning phase alone needs that many).
//   - m ≤ n·(n-1) (else ErrTooManyEdges).
//   - Weight policy: cfg.weight() per arc, uniform in [minWeight, maxWeight).
//   - Returns only sentinel errors; never panics at runtime.
//
// Determinism:
//   - Stable phase order: spanning tree first, then top-up draws.
//   - Deterministic outcomes for a fixed seed due to the fixed draw order.
//
// Best effort:
//   - The top-up phase caps its draw attempts at m·10. A graph that cannot
//     absorb the full budget (dense composition, tiny n) keeps the arcs
//     placed so far; the shortfall is not an error.

package builder

import (
	"fmt"

	"github.com/Xavierblaze6/sssp-algorithm/core"
)

// File-local constants (no magic literals; stable method tag and domains).
const (
	methodRandomConnected      = "RandomConnected"
	minRandomConnectedVertices = 1
	topUpAttemptFactor         = 10
)

// RandomConnected returns a Constructor that samples a weakly connected
// digraph with exactly m arcs (best effort past the spanning phase): a
// random spanning arborescence from vertex 0 plus uniform extra arcs.
func RandomConnected(m int) Constructor {
	// The returned closure captures m; Build supplies (g, cfg).
	return func(g *core.Graph, cfg builderConfig) error {
		n := g.VertexCount()

		// 1) Validate parameters early (fail fast, zero side-effects on invalid input).
		if n < minRandomConnectedVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				methodRandomConnected, n, minRandomConnectedVertices, ErrTooFewVertices)
		}
		if m < n-1 {
			return fmt.Errorf("%s: m=%d < n-1=%d: %w",
				methodRandomConnected, m, n-1, ErrTooFewEdges)
		}
		if max := n * (n - 1); m > max {
			return fmt.Errorf("%s: m=%d > n·(n-1)=%d: %w",
				methodRandomConnected, m, max, ErrTooManyEdges)
		}

		added := 0

		// 2) Spanning phase: shuffle 1..n-1 and hang each vertex off a
		//    uniformly chosen vertex already placed.
		if n > 1 {
			order := make([]int, n-1)
			for i := range order {
				order[i] = i + 1
			}
			cfg.rng.Shuffle(len(order), func(i, j int) { order[i], order[j] = order[j], order[i] })

			placed := make([]int, 1, n)
			placed[0] = 0
			for _, v := range order {
				u := placed[cfg.rng.Intn(len(placed))]
				if err := g.AddEdge(u, v, cfg.weight()); err != nil {
					return fmt.Errorf("%s: AddEdge(%d,%d): %w", methodRandomConnected, u, v, err)
				}
				placed = append(placed, v)
				added++
			}
		}

		// 3) Top-up phase: uniform draws until the budget is met or the
		//    attempt cap fires.
		attempts := 0
		maxAttempts := m * topUpAttemptFactor
		for added < m && attempts < maxAttempts {
			attempts++
			u := cfg.rng.Intn(n)
			v := cfg.rng.Intn(n)
			if u == v {
				continue
			}
			if _, exists := g.Weight(u, v); exists {
				continue
			}
			if err := g.AddEdge(u, v, cfg.weight()); err != nil {
				return fmt.Errorf("%s: AddEdge(%d,%d): %w", methodRandomConnected, u, v, err)
			}
			added++
		}

		return nil
	}
}
