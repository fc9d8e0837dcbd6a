// SPDX-License-Identifier: MIT
// Package: sssp-algorithm/builder
//
// impl_layered.go - implementation of the Layered(layers, width, fanout) constructor.
//
// Canonical model:
//   - A layered DAG: vertices are grouped into `layers` consecutive blocks of
//     `width` ids, and arcs only run from layer i into layer i+1.
//   - Each vertex picks min(fanout, width) DISTINCT targets in the next layer
//     uniformly at random (a permutation prefix, so no duplicate arcs).
//
// Contract:
//   - layers ≥ 1 and width ≥ 1 (else ErrBadShape).
//   - fanout ≥ 0 (else ErrBadShape); fanout = 0 yields an arcless DAG.
//   - g.VertexCount() must equal layers·width (else ErrBadShape); Build owns
//     the allocation, so the caller states the same shape twice on purpose.
//
// Determinism:
//   - Stable order: layers ascending, vertices ascending within the layer,
//     one permutation draw per vertex.

package builder

import (
	"fmt"

	"github.com/Xavierblaze6/sssp-algorithm/core"
)

const methodLayered = "Layered"

// Layered returns a Constructor that builds a layered DAG where every arc
// crosses exactly one layer boundary forward.
func Layered(layers, width, fanout int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		// 1) Validate the shape parameters.
		if layers < 1 || width < 1 {
			return fmt.Errorf("%s: layers=%d width=%d must both be >= 1: %w",
				methodLayered, layers, width, ErrBadShape)
		}
		if fanout < 0 {
			return fmt.Errorf("%s: fanout=%d must be >= 0: %w", methodLayered, fanout, ErrBadShape)
		}
		if n := g.VertexCount(); n != layers*width {
			return fmt.Errorf("%s: n=%d but layers·width=%d: %w",
				methodLayered, n, layers*width, ErrBadShape)
		}

		// 2) Clamp the fanout to the layer width.
		f := fanout
		if f > width {
			f = width
		}

		// 3) Wire each layer into the next.
		for layer := 0; layer < layers-1; layer++ {
			layerStart := layer * width
			nextStart := (layer + 1) * width
			for i := 0; i < width; i++ {
				u := layerStart + i
				for _, off := range cfg.rng.Perm(width)[:f] {
					v := nextStart + off
					if err := g.AddEdge(u, v, cfg.weight()); err != nil {
						return fmt.Errorf("%s: AddEdge(%d,%d): %w", methodLayered, u, v, err)
					}
				}
			}
		}

		return nil
	}
}
