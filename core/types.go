// This file declares the Edge value type, the Graph container, sentinel
// errors, and the New/FromEdges constructors.
package core

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors for core graph operations.
var (
	// ErrVertexRange indicates an edge endpoint or queried vertex id lies
	// outside the graph's id space [0, n).
	ErrVertexRange = errors.New("core: vertex id out of range")

	// ErrBadWeight indicates an edge weight that is NaN or infinite.
	ErrBadWeight = errors.New("core: edge weight must be finite")
)

// Edge is a single directed arc u→v with a float64 weight.
//
// Edge is a value type used at the container boundary: FromEdges consumes a
// slice of them, Edges returns a sorted snapshot, and the builder and graphio
// packages exchange them. Inside the Graph only the adjacency maps exist.
type Edge struct {
	// From is the source vertex id, in [0, n).
	From int

	// To is the destination vertex id, in [0, n).
	To int

	// Weight is the cost of traversing the arc. Must be finite.
	Weight float64
}

// Graph is a directed weighted graph over the fixed vertex set {0, …, n-1}.
//
// The zero value is an empty graph with no vertices; use New to size one.
// Methods are not safe for concurrent mutation; once construction is done the
// Graph is read-only and safe to share across goroutines.
type Graph struct {
	// adj[u] maps neighbor id → weight of the arc u→neighbor.
	// Entries are allocated lazily on the first AddEdge from u, so a
	// mostly-isolated vertex set costs no per-vertex map.
	adj []map[int]float64

	// arcs counts distinct (u,v) pairs; duplicates overwrite and do not
	// increment it.
	arcs int
}

// New returns an empty Graph over vertex ids 0..n-1.
// A negative n is treated as 0.
func New(n int) *Graph {
	if n < 0 {
		n = 0
	}

	return &Graph{adj: make([]map[int]float64, n)}
}

// FromEdges builds a Graph over n vertices from an edge list, applying the
// same validation as AddEdge. Duplicate (From, To) pairs keep the
// last-declared weight. The first invalid edge aborts the build.
func FromEdges(n int, edges []Edge) (*Graph, error) {
	g := New(n)
	for _, e := range edges {
		if err := g.AddEdge(e.From, e.To, e.Weight); err != nil {
			return nil, fmt.Errorf("core: FromEdges: %w", err)
		}
	}

	return g, nil
}

// inRange reports whether id is a valid vertex id for g.
func (g *Graph) inRange(id int) bool {
	return id >= 0 && id < len(g.adj)
}

// finite reports whether w is an ordinary float64 (not NaN, not ±Inf).
func finite(w float64) bool {
	return !math.IsNaN(w) && !math.IsInf(w, 0)
}
