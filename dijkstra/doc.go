// Package dijkstra provides a precise, high-performance implementation of Dijkstra's
// shortest-path algorithm on weighted graphs with non-negative edge weights.
//
// Overview:
//
//   - Dijkstra computes the minimum-cost path from a single source vertex to all
//     reachable vertices in O((V + E) log V) time, where V = |vertices| and E = |edges|.
//   - It relies on a min-heap (priority queue) to always expand the next-closest vertex.
//   - Supports optional path reconstruction and distance caps.
//   - Within this repository it doubles as the reference baseline: the recursive
//     bounded solver in package bmssp is validated against it, and package hybrid
//     uses it as the fallback engine.
//
// When to use:
//
//   - In any scenario where you need guaranteed shortest paths on a static weighted graph.
//   - As the trusted oracle when checking another solver's output (see hybrid.Compare).
//   - As a building block for network routing, traffic simulations, resource allocation,
//     or any domain requiring exact, non-negative shortest paths.
//
// Key features:
//
//   - Functional options allow fine-tuning behavior without changing the API signature.
//   - ReturnPath: if enabled, returns a “predecessor” map, so you can rebuild each path.
//   - MaxDistance: aborts exploration beyond a specified distance, saving work in large graphs.
//
// Performance and complexity:
//
//   - Time:  O((V + E) log V)
//   - Each vertex is extracted at most once from the priority queue (V extracts total).
//   - Each edge relaxation may push one new entry (up to E pushes).
//   - Each heap Push/Pop costs O(log N) where N ≤ V + E, simplified to O(log V).
//   - Space: O(V + E)
//   - O(V) to store distance and (optional) predecessor arrays.
//   - O(E) worst-case entries in the heap under “lazy decrease-key” strategy.
//
// Error handling (sentinel errors):
//
//   - ErrNilGraph:
//     Returned if you pass a nil *core.Graph to Solve.
//   - ErrVertexRange:
//     Returned if the source vertex id lies outside [0, n).
//   - ErrNegativeWeight:
//     Returned if any edge in the graph has a negative weight (detected by a fast O(E) pre-scan).
//   - ErrBadMaxDistance:
//     Returned (via panic) if you set MaxDistance to a negative or NaN value.
//
// API reference:
//
//	func Solve(
//	    g *core.Graph,
//	    source int,
//	    opts ...Option,
//	) (dist map[int]float64, prev map[int]int, err error)
//
//	  - g:       pointer to a core.Graph with non-negative weights.
//	  - source:  id of the starting vertex, in [0, g.VertexCount()).
//	  - opts:    zero or more functional options, including:
//	      • WithReturnPath():          if set, returns a predecessor map; otherwise prev == nil.
//	      • WithMaxDistance(float64):  if set, explores only vertices with distance ≤ given value.
//	  - dist:    map[v] = minimal distance from source to v; unreached vertices are absent.
//	  - prev:    map[v] = immediate predecessor of v on one shortest path from source.
//	              The source itself carries no entry. Nil if ReturnPath=false.
//	  - err:     one of the sentinel errors (ErrNilGraph, ErrVertexRange,
//	              ErrNegativeWeight), or nil on success.
//
// Thread safety:
//
//   - Solve itself is not thread-safe if the same *core.Graph is modified concurrently.
//   - Concurrent Solve calls on an immutable graph are safe; each call owns its state.
//
// See also:
//
//   - core.Graph: graph construction, arc addition, dense vertex ids.
//   - bmssp.Solve: the recursive bounded multi-source solver this package benchmarks against.
//   - hybrid.Solve: automatic selection between the two engines with a safety timeout.
//
// Thanks for choosing sssp-algorithm! We aim to provide rock-solid shortest-path
// engines that blend mathematical rigor, performance, and clarity. If you spot any
// issue or have suggestions, please open an issue or PR on GitHub.
package dijkstra
