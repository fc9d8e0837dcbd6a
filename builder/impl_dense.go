// SPDX-License-Identifier: MIT
// Package: sssp-algorithm/builder
//
// impl_dense.go - implementation of the Dense(p) constructor.
//
// Canonical model:
//   - Edge budget m = ⌊n·(n-1)·p⌋, i.e. the expected arc count of a G(n,p)
//     digraph, realized through RandomConnected so reachability from vertex 0
//     still holds.
//
// Contract:
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - Derived m must satisfy RandomConnected's own bounds; its sentinels
//     surface through the Dense context.

package builder

import (
	"fmt"

	"github.com/Xavierblaze6/sssp-algorithm/core"
)

// File-local constants (stable method tag and probability domain).
const (
	methodDense = "Dense"
	probMin     = 0.0
	probMax     = 1.0
)

// Dense returns a Constructor for a connected digraph carrying the edge
// budget of an Erdős–Rényi digraph with arc probability p.
func Dense(p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		// 1) Validate probability: must lie in the closed interval [0,1].
		if !(p >= probMin && p <= probMax) {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodDense, p, probMin, probMax, ErrInvalidProbability)
		}

		// 2) Derive the edge budget and delegate.
		n := g.VertexCount()
		m := int(float64(n*(n-1)) * p)
		if err := RandomConnected(m)(g, cfg); err != nil {
			return fmt.Errorf("%s: %w", methodDense, err)
		}

		return nil
	}
}
