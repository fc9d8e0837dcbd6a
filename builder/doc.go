// Package builder provides deterministic “functional-options”-style graph
// generators for the shortest-path engines in this repository. It lives
// alongside the core package to centralize fixture construction, seeding,
// and weight policy, keeping benchmarks, tests, and the CLI consistent.
//
// The package offers the following key components:
//
//   - Configuration primitives:
//     – Option:         a function that mutates builderConfig before use.
//     – builderConfig:  holds the RNG and the edge-weight range.
//   - Seeding policy:
//     – WithSeed:       numeric seed → reproducible graphs.
//     – WithSeedLabel:  human label hashed (xxhash) into a seed.
//     – WithRand:       caller-owned *rand.Rand for full control.
//   - Weight policy:
//     – WithWeightRange: uniform draw from [lo, hi); defaults to [0.1, 10).
//   - Topology constructors (one per impl_*.go file):
//     – RandomConnected(m): spanning arborescence from 0 plus uniform extras.
//     – Sparse(avgDegree):  RandomConnected with m = ⌊n·avgDegree⌋.
//     – Dense(p):           RandomConnected with m = ⌊n·(n-1)·p⌋.
//     – Path():             the chain 0→1→…→n-1.
//     – Layered(l, w, f):   a layered DAG with f distinct forward arcs per vertex.
//
// Guarantees:
//
//   - Determinism: the same n, options, and constructor order yield an
//     identical graph, arc for arc and weight for weight.
//   - Fast-fail on invalid option parameters via panics in option-constructors.
//   - Structured runtime errors for invalid build parameters: sentinel errors
//     wrapped with a method token for easy filtering via errors.Is.
//   - Reachability: every RandomConnected-based topology is reachable from
//     vertex 0, which the solvers treat as the conventional source.
//
// See individual function documentation for detailed contracts, panic
// conditions, parameter descriptions, and performance notes.
package builder
