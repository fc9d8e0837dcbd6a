// This file declares the sentinel errors, functional options, and the Result
// type returned by Solve.
package bmssp

import (
	"errors"
)

// Sentinel errors returned by Solve and SolveEdges.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed in.
	ErrNilGraph = errors.New("bmssp: graph is nil")

	// ErrVertexRange indicates that the source vertex id lies outside [0, n).
	ErrVertexRange = errors.New("bmssp: source vertex out of range")

	// ErrNegativeWeight indicates that a negative edge weight was detected
	// during the upfront scan. The algorithm's invariants assume
	// non-negativity, so this fails fast instead of producing garbage.
	ErrNegativeWeight = errors.New("bmssp: negative edge weight encountered")
)

// Options configures a single Solve run.
//
// Predecessors – if true, Result.Pred is populated with the predecessor of
// every vertex that received a finite distance, for path reconstruction.
type Options struct {
	Predecessors bool
}

// Option is a functional option for configuring Solve.
type Option func(*Options)

// WithPredecessors requests the predecessor map in the result.
// Without it Result.Pred stays nil and the solve allocates nothing extra.
func WithPredecessors() Option {
	return func(o *Options) { o.Predecessors = true }
}

// DefaultOptions returns the baseline configuration: no predecessor map.
func DefaultOptions() Options {
	return Options{Predecessors: false}
}

// Result is the outcome of one solve.
type Result struct {
	// Dist maps vertex id → shortest-path distance, restricted to vertices
	// that received a finite distance. A vertex absent from Dist is either
	// unreachable or was left unresolved by a guarded early break; callers
	// needing the distinction re-check via the hybrid package.
	Dist map[int]float64

	// Pred maps vertex id → predecessor id on the recorded shortest path,
	// for the same key set as Dist minus the source. Nil unless
	// WithPredecessors was given.
	Pred map[int]int

	// Diag is the read-only diagnostics snapshot for this run.
	Diag Diagnostics
}
