// Package bmssp computes single-source shortest paths on directed graphs
// with non-negative float64 weights using a recursive bounded multi-source
// algorithm (Duan et al., 2025: "Breaking the Sorting Barrier").
//
// Instead of settling vertices one by one in globally sorted order the way
// Dijkstra does, the algorithm partitions work by distance level: each
// recursion level completes a batch of vertices below a moving boundary,
// shrinks its source set to a few "pivots" whose shortest-path subtrees are
// provably large, and delegates narrower distance windows to the level below.
// Level 0 is a bounded multi-source Dijkstra capped at k+1 completions.
//
// The moving parts, leaf-first:
//
//   - ordered frontier: a bucketed container keyed by vertex holding
//     (distance, path length, predecessor) triples, with improve-only
//     insertion and a bounded pull that also reports the exact value
//     boundary separating pulled keys from remaining ones.
//   - base case: multi-source Dijkstra that stops after k+1 distinct
//     completions and shrinks its result below the (k+1)-th distance.
//   - pivot finding: k rounds of Bellman-Ford-style relaxation followed by
//     subtree counting over the implicit predecessor forest.
//   - the recursion itself: pull a batch, recurse a level down over it,
//     relax edges out of the completed batch, and re-queue affected vertices
//     either into the frontier or, for the window below the current pull
//     boundary, via batch-prepend.
//
// Parameters are derived from the vertex count n once per solve:
// k = ⌊log₂(n)^(1/3)⌋ and t = ⌊log₂(n)^(2/3)⌋ (both at least 1), recursion
// depth l_max = ⌈log₂(n)/t⌉ (0 for n ≤ 1). A level-l call uses frontier
// capacity 2^((l-1)·t) and completes at most k·2^(l·t) vertices.
//
// Termination is guarded: every recursion frame enforces an iteration cap of
// max(1000, 10·n) and a stall detector that breaks out when a pulled key set
// recurs without the pull boundary advancing. A guarded break degrades the
// answer to a valid partial result (vertices keep their last-known, possibly
// infinite, distance); it never loops unboundedly and never reports a wrong
// finite distance. Callers that must distinguish "unreachable" from
// "unresolved" re-check with the hybrid package's Dijkstra fallback.
//
// When to use:
//
//   - Solve / SolveEdges for plain distance queries.
//   - hybrid.Solve when a wall-clock deadline and a guaranteed-complete
//     answer matter more than raw speed.
//   - dijkstra.Solve as the reference solver for validation.
//
// Complexity:
//
//   - Design target of the underlying algorithm: O(m·log^(2/3) n) on sparse
//     graphs; the constant factors of this in-memory rendition favor clarity
//     over micro-optimization.
//   - Space: O(n + m).
//
// Concurrency: a solve is single-threaded and owns its per-vertex state;
// distinct solves against one read-only Graph may run in parallel.
//
// Errors (sentinel):
//
//   - ErrNilGraph       - nil *core.Graph.
//   - ErrVertexRange    - source id outside [0, n).
//   - ErrNegativeWeight - a negative edge weight was detected up front.
//
// See also: package dijkstra (reference), package hybrid (deadline +
// fallback), package experiment (benchmark harness).
package bmssp
