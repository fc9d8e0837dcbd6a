// SPDX-License-Identifier: MIT
// Package: sssp-algorithm/builder
//
// impl_sparse.go - implementation of the Sparse(avgDegree) constructor.
//
// Canonical model:
//   - Thin wrapper over RandomConnected with the edge budget m = ⌊n·avgDegree⌋.
//   - Inherits the spanning-plus-top-up behavior and all of its guarantees.
//
// Contract:
//   - avgDegree ≥ 0 (else ErrBadShape).
//   - Derived m must satisfy RandomConnected's own bounds; its sentinels
//     surface through the Sparse context.

package builder

import (
	"fmt"

	"github.com/Xavierblaze6/sssp-algorithm/core"
)

const methodSparse = "Sparse"

// Sparse returns a Constructor for a connected digraph whose average
// out-degree is approximately avgDegree.
func Sparse(avgDegree float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		// 1) Validate the degree target before deriving the budget.
		if !(avgDegree >= 0) {
			return fmt.Errorf("%s: avgDegree=%v must be >= 0: %w", methodSparse, avgDegree, ErrBadShape)
		}

		// 2) Derive the edge budget and delegate.
		m := int(float64(g.VertexCount()) * avgDegree)
		if err := RandomConnected(m)(g, cfg); err != nil {
			return fmt.Errorf("%s: %w", methodSparse, err)
		}

		return nil
	}
}
