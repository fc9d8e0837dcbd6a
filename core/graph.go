// This file implements the Graph mutation, query, and snapshot methods.
package core

import (
	"fmt"
	"sort"
)

// AddEdge inserts (or overwrites) the directed arc u→v with weight w.
//
// Validation, in order:
//  1. u and v must lie in [0, n)  → ErrVertexRange.
//  2. w must be finite            → ErrBadWeight.
//
// A repeated (u, v) pair replaces the stored weight, so the last declaration
// wins. Self-loops (u == v) are permitted; they are inert for shortest-path
// purposes but preserved by snapshots and serialization.
func (g *Graph) AddEdge(u, v int, w float64) error {
	// 1) Range-check both endpoints before touching adjacency.
	if !g.inRange(u) || !g.inRange(v) {
		return fmt.Errorf("%w: edge %d→%d with n=%d", ErrVertexRange, u, v, len(g.adj))
	}

	// 2) Reject NaN and ±Inf; they poison distance comparisons downstream.
	if !finite(w) {
		return fmt.Errorf("%w: edge %d→%d weight=%v", ErrBadWeight, u, v, w)
	}

	// 3) Lazily allocate the out-map for u.
	if g.adj[u] == nil {
		g.adj[u] = make(map[int]float64)
	}

	// 4) Count the pair only on first insertion; overwrite otherwise.
	if _, seen := g.adj[u][v]; !seen {
		g.arcs++
	}
	g.adj[u][v] = w

	return nil
}

// VertexCount returns n, the size of the id space.
func (g *Graph) VertexCount() int { return len(g.adj) }

// EdgeCount returns the number of distinct (u, v) arcs.
func (g *Graph) EdgeCount() int { return g.arcs }

// OutDegree returns the number of distinct arcs leaving u, or 0 when u is out
// of range.
func (g *Graph) OutDegree(u int) int {
	if !g.inRange(u) {
		return 0
	}

	return len(g.adj[u])
}

// Weight returns the weight of arc u→v and whether that arc exists.
func (g *Graph) Weight(u, v int) (float64, bool) {
	if !g.inRange(u) {
		return 0, false
	}
	w, ok := g.adj[u][v]

	return w, ok
}

// ForEachArc calls fn(v, w) for every arc u→v. Iteration order is
// unspecified (map order); callers needing determinism use Edges.
// Out-of-range u is a no-op. This is the solvers' hot-path accessor: no
// allocation, no copying.
func (g *Graph) ForEachArc(u int, fn func(v int, w float64)) {
	if !g.inRange(u) {
		return
	}
	for v, w := range g.adj[u] {
		fn(v, w)
	}
}

// Edges returns a snapshot of all arcs sorted by (From, To).
// The slice is freshly allocated; mutating it does not affect the Graph.
func (g *Graph) Edges() []Edge {
	out := make([]Edge, 0, g.arcs)
	for u, nbrs := range g.adj {
		for v, w := range nbrs {
			out = append(out, Edge{From: u, To: v, Weight: w})
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].From != out[j].From {
			return out[i].From < out[j].From
		}

		return out[i].To < out[j].To
	})

	return out
}

// Clone returns a deep copy of g; the copy may be mutated independently.
func (g *Graph) Clone() *Graph {
	c := &Graph{adj: make([]map[int]float64, len(g.adj)), arcs: g.arcs}
	for u, nbrs := range g.adj {
		if nbrs == nil {
			continue
		}
		dup := make(map[int]float64, len(nbrs))
		for v, w := range nbrs {
			dup[v] = w
		}
		c.adj[u] = dup
	}

	return c
}
