// This file wires validation, parameter derivation and the recursion
// together behind the public Solve / SolveEdges entry points.
package bmssp

import (
	"fmt"
	"math"

	"github.com/Xavierblaze6/sssp-algorithm/core"
)

// Solve computes single-source shortest paths on g from source.
//
// Steps:
//  1. Validate: non-nil graph, source in range, no negative arc weight.
//  2. Derive k, t and the recursion depth from the vertex count.
//  3. Run the top-level recursion with an infinite boundary.
//  4. Collect finite distances (and predecessors, when requested) into
//     a Result together with the run's Diagnostics.
//
// On error the returned Result is nil and the error wraps one of the
// package sentinels (ErrNilGraph, ErrVertexRange, ErrNegativeWeight).
func Solve(g *core.Graph, source int, opts ...Option) (*Result, error) {
	cfg := DefaultOptions()
	for _, o := range opts {
		o(&cfg)
	}

	// 1. Validation.
	if g == nil {
		return nil, ErrNilGraph
	}
	n := g.VertexCount()
	if source < 0 || source >= n {
		return nil, fmt.Errorf("%w: source=%d with n=%d", ErrVertexRange, source, n)
	}
	if err := scanNegative(g); err != nil {
		return nil, err
	}

	// 2. Parameters.
	prm := deriveParams(n)
	st := newSolveState(g, prm, source)

	// 3. Top-level call: full depth, unbounded. The returned boundary and
	//    completed set only matter to recursive callers.
	st.bmssp(prm.lMax, math.Inf(1), []int{source})

	// 4. Harvest.
	res := &Result{Dist: make(map[int]float64, n)}
	for v := 0; v < n; v++ {
		if !math.IsInf(st.dist[v], 1) {
			res.Dist[v] = st.dist[v]
		}
	}
	if cfg.Predecessors {
		res.Pred = make(map[int]int, len(res.Dist))
		for v := 0; v < n; v++ {
			if st.pred[v] != noPredecessor {
				res.Pred[v] = st.pred[v]
			}
		}
	}
	res.Diag = newDiagnostics(st)

	return res, nil
}

// SolveEdges builds a graph with n vertices from edges and solves it.
// It is a convenience wrapper over core.FromEdges and Solve.
func SolveEdges(n int, edges []core.Edge, source int, opts ...Option) (*Result, error) {
	g, err := core.FromEdges(n, edges)
	if err != nil {
		return nil, fmt.Errorf("bmssp: %w", err)
	}

	return Solve(g, source, opts...)
}

// scanNegative rejects graphs with any negative arc weight up front, so
// the recursion can rely on distances never improving non-monotonically.
func scanNegative(g *core.Graph) error {
	n := g.VertexCount()
	for u := 0; u < n; u++ {
		var bad error
		g.ForEachArc(u, func(v int, w float64) {
			if w < 0 && bad == nil {
				bad = fmt.Errorf("%w: edge %d→%d weight=%g", ErrNegativeWeight, u, v, w)
			}
		})
		if bad != nil {
			return bad
		}
	}

	return nil
}
