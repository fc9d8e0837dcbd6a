// Package core provides the directed weighted graph container shared by every
// solver and tool in this module.
//
// A Graph is created with a fixed vertex count n and addresses vertices by
// dense integer ids 0..n-1. Adjacency is stored per vertex as a map from
// neighbor id to edge weight, which fixes the duplicate-edge semantics: a
// second (u,v) declaration overwrites the previous weight (last declaration
// wins), and a self-loop (u,u) is an ordinary edge. Weights are float64 and
// must be finite. The container itself accepts negative weights because not
// every algorithm forbids them; solvers that require non-negativity (bmssp,
// dijkstra) validate at solve time and fail fast.
//
// Why this shape?
//
//   - Dense ids let solvers keep per-vertex state in flat slices indexed by
//     id instead of hash maps: one allocation per solve, O(1) access.
//   - Map-valued adjacency gives O(1) duplicate collapse at build time and
//     allocation-free iteration through ForEachArc at solve time.
//
// Lifecycle: a Graph is mutable while it is being built (AddEdge) and must be
// treated as read-only once handed to a solver; distinct solves may then
// share one Graph freely. There is no vertex insertion after construction,
// no metadata, and no locking.
//
// Core methods:
//
//	New(n) *Graph                            // O(n) ids reserved, lazy adjacency
//	FromEdges(n, edges) (*Graph, error)      // O(E) build with validation
//	AddEdge(u, v int, w float64) error       // O(1) expected
//	Weight(u, v int) (float64, bool)         // O(1) expected
//	OutDegree(u int) int                     // O(1)
//	ForEachArc(u int, fn func(v, w))         // O(deg(u)), no allocation
//	Edges() []Edge                           // O(E log E), sorted (From, To)
//	VertexCount() / EdgeCount()              // O(1)
//	Clone() *Graph                           // O(V + E) deep copy
//
// Errors (sentinel):
//
//	ErrVertexRange - an edge endpoint or queried id is outside [0, n)
//	ErrBadWeight   - an edge weight is NaN or infinite
package core
