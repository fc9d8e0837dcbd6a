// Package dijkstra defines the configuration options and sentinel errors
// for the reference shortest-path implementation.
//
// Options:
//
//	– ReturnPath:  if true, return the predecessor map for path reconstruction.
//	– MaxDistance: optional cap on distances to explore; vertices beyond it are skipped.
//
// Errors (sentinel):
//
//	– ErrNilGraph       if the provided graph pointer is nil.
//	– ErrVertexRange    if the source vertex id lies outside [0, n).
//	– ErrNegativeWeight if a negative edge weight is detected in the graph.
//	– ErrBadMaxDistance if MaxDistance is negative or NaN.
package dijkstra

import (
	"errors"
	"math"
)

// Sentinel errors returned by Solve.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed to Solve.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrVertexRange indicates that the source vertex id does not exist in
	// the graph.
	ErrVertexRange = errors.New("dijkstra: source vertex out of range")

	// ErrNegativeWeight indicates that a negative edge weight was detected
	// by the upfront scan.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative or
	// NaN value, which is not meaningful for a distance threshold.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")
)

// Options configures the behavior of one Solve run.
//
// ReturnPath  – if true, return the predecessor map; otherwise it is nil.
// MaxDistance – cap on distances to explore; vertices whose shortest
// distance exceeds it are left unreported. Default +Inf (no cap).
type Options struct {
	ReturnPath  bool
	MaxDistance float64
}

// Option represents a functional option for configuring Solve.
type Option func(*Options)

// WithReturnPath enables generation of the predecessor map in the result.
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithMaxDistance sets a maximum distance threshold. Vertices whose
// shortest distance exceeds it are not explored. Must be non-negative;
// negative or NaN values panic with ErrBadMaxDistance.
func WithMaxDistance(max float64) Option {
	return func(o *Options) {
		if max < 0 || math.IsNaN(max) {
			// Panic to signal invalid configuration early.
			panic(ErrBadMaxDistance.Error())
		}
		o.MaxDistance = max
	}
}

// DefaultOptions returns the baseline configuration: no predecessor map,
// no distance cap.
func DefaultOptions() Options {
	return Options{
		ReturnPath:  false,
		MaxDistance: math.Inf(1),
	}
}
