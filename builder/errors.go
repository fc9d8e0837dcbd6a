// SPDX-License-Identifier: MIT
// Package: sssp-algorithm/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Sentinels are NEVER wrapped with formatted strings at definition site.
//   • Implementations SHOULD attach context using `%w`.
//   • Constructors MUST NOT panic at runtime; validation panics are confined
//     to option constructor functions (WithX...).
//
// AI-Hints (practical guidance):
//   • Wrap lower-level errors with method context: fmt.Errorf("%s: ...: %w", method, Err).
//   • Return ONLY these sentinels for validation classes (size/edge budget/probability/shape).
//   • Check with errors.Is in tests and production code; avoid string comparisons.

package builder

import "errors"

// ErrTooFewVertices indicates that the graph passed to a constructor has
// fewer vertices than the requested topology needs.
// Classification: Validation error (size).
// Usage: if errors.Is(err, ErrTooFewVertices) { /* report invalid size */ }.
var ErrTooFewVertices = errors.New("builder: too few vertices")

// ErrTooFewEdges indicates that the requested edge budget cannot produce a
// connected topology (m < n-1 for a spanning construction).
// Usage: if errors.Is(err, ErrTooFewEdges) { /* raise m or drop connectivity */ }.
var ErrTooFewEdges = errors.New("builder: too few edges for connectivity")

// ErrTooManyEdges indicates that the requested edge budget exceeds the
// maximum simple-digraph capacity n·(n-1).
// Usage: if errors.Is(err, ErrTooManyEdges) { /* lower m */ }.
var ErrTooManyEdges = errors.New("builder: edge budget exceeds capacity")

// ErrInvalidProbability indicates that a probability value is outside the
// closed interval [0,1]. This covers Dense(p).
// Usage: if errors.Is(err, ErrInvalidProbability) { /* clamp or reject p */ }.
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrBadShape indicates that topology dimensions are inconsistent: a
// non-positive layer count or width, a negative fanout, or a vertex count
// that does not match layers·width.
// Usage: if errors.Is(err, ErrBadShape) { /* fix the shape parameters */ }.
var ErrBadShape = errors.New("builder: inconsistent topology shape")

// ErrConstructFailed indicates that Build could not run a constructor at
// all (for example a nil Constructor in the argument list).
// Usage: if errors.Is(err, ErrConstructFailed) { /* fix the composition */ }.
var ErrConstructFailed = errors.New("builder: construction failed")
