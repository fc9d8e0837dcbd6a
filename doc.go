// Package sssp is a laboratory for single-source shortest paths on
// directed graphs — a recursive partial-ordering solver, a classic
// Dijkstra reference, and the tooling to generate, persist and race
// them against each other.
//
// 🚀 What is sssp?
//
//	A focused library that brings together:
//		• Core primitives: a compact directed graph with float64 arc weights
//		• BMSSP: bounded multi-source recursion with pivots and batched frontiers
//		• Dijkstra: the lazy decrease-key reference everything is measured against
//		• Hybrid: budgeted orchestration with wholesale fallback and gap filling
//		• Builders: seeded sparse, dense, path and layered generators
//		• Interchange: plain-text graph files that round-trip bit for bit
//		• Experiments: YAML-driven sweeps with CSV output
//
// ✨ Why choose sssp?
//
//   - Verified – the recursion is continuously compared against Dijkstra
//   - Deterministic – every generator is seeded, every sweep reproducible
//   - Pure Go solvers – no cgo, nothing exotic on the hot path
//   - Observable – diagnostics on every run, structured logs on every sweep
//
// Under the hood, everything is organized under focused subpackages:
//
//	core/       — directed graph container: vertices, weighted arcs, snapshots
//	bmssp/      — the recursive solver: frontier, base case, pivots, recursion
//	dijkstra/   — reference solver with lazy decrease-key and distance caps
//	builder/    — seeded graph constructors for tests, benchmarks and the CLI
//	graphio/    — "n m / u v w" text format: Read, Write, Save, Load
//	hybrid/     — budgeted solve with fallback, plus the comparison harness
//	experiment/ — plan-driven benchmark runner emitting CSV
//	cmd/sssp/   — the command line: generate, solve, compare, bench
//
// Quick ASCII example:
//
//	    0───1
//	    │   │
//	    2───3
//
//	a diamond with two routes from 0 to 3; both solvers agree the cheap
//	one goes the long way round.
//
// Dive into the package docs for API details; hybrid.Compare is the
// recommended starting point when validating changes to the recursion.
//
//	go get github.com/Xavierblaze6/sssp-algorithm
package sssp
