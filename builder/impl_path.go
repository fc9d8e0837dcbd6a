// SPDX-License-Identifier: MIT
// Package: sssp-algorithm/builder
//
// impl_path.go - implementation of the Path() constructor.
//
// Canonical model:
//   - The simple chain 0→1→2→...→n-1 with one arc per consecutive pair.
//   - Weights are still drawn from cfg, so a seeded Path is reproducible but
//     not unit-weight unless WithWeightRange(w, w) pins it.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices); n = 1 yields the empty arc set.
//   - Deterministic arc order: ascending i.

package builder

import (
	"fmt"

	"github.com/Xavierblaze6/sssp-algorithm/core"
)

// File-local constants (stable method tag and domain).
const (
	methodPath      = "Path"
	minPathVertices = 1
)

// Path returns a Constructor that lays the vertices out as a single
// directed chain.
func Path() Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		n := g.VertexCount()

		// 1) Validate the vertex count.
		if n < minPathVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				methodPath, n, minPathVertices, ErrTooFewVertices)
		}

		// 2) Chain consecutive ids in ascending order.
		for i := 0; i < n-1; i++ {
			if err := g.AddEdge(i, i+1, cfg.weight()); err != nil {
				return fmt.Errorf("%s: AddEdge(%d,%d): %w", methodPath, i, i+1, err)
			}
		}

		return nil
	}
}
