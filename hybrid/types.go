// This file declares the sentinel errors, functional options and the
// result types shared by Solve and Compare.
package hybrid

import (
	"errors"
	"fmt"
	"time"

	"github.com/Xavierblaze6/sssp-algorithm/bmssp"
)

// Sentinel errors for option validation. The option constructors panic
// with these messages because a bad timeout or tolerance is a programming
// error, not a runtime condition.
var (
	// ErrBadTimeout indicates WithTimeout was given a non-positive duration.
	ErrBadTimeout = errors.New("hybrid: timeout must be positive")

	// ErrBadTolerance indicates WithTolerance was given a negative or NaN value.
	ErrBadTolerance = errors.New("hybrid: tolerance must be non-negative")
)

// Engine identifies which solver produced the distances in a Result.
type Engine string

const (
	// EngineBMSSP marks a result whose distances came from the recursive
	// partial-ordering solver.
	EngineBMSSP Engine = "bmssp"

	// EngineDijkstra marks a result produced by the reference solver,
	// either as a wholesale fallback or in Compare.
	EngineDijkstra Engine = "dijkstra"
)

const (
	defaultTimeout   = 30 * time.Second
	defaultTolerance = 1e-9
)

// Options configures Solve and Compare.
//
// Timeout       – wall-clock budget for the primary solver before Solve
//                 degrades to the fallback. Solve only.
// Fill          – when true, vertices absent from a successful primary
//                 result are supplied by a reference pass. Solve only.
// Predecessors  – request predecessor maps from both engines.
// Tolerance     – absolute tolerance for distance agreement. Compare only.
type Options struct {
	Timeout      time.Duration
	Fill         bool
	Predecessors bool
	Tolerance    float64
}

// Option is a functional option for Solve and Compare.
type Option func(*Options)

// WithTimeout overrides the primary solver's wall-clock budget.
// Panics if d is not positive.
func WithTimeout(d time.Duration) Option {
	if d <= 0 {
		panic(ErrBadTimeout.Error())
	}
	return func(o *Options) { o.Timeout = d }
}

// WithoutFill disables the reference pass that tops up vertices missing
// from a successful primary result. The result then reflects exactly what
// the primary solver resolved.
func WithoutFill() Option {
	return func(o *Options) { o.Fill = false }
}

// WithPredecessors requests predecessor maps for path reconstruction.
func WithPredecessors() Option {
	return func(o *Options) { o.Predecessors = true }
}

// WithTolerance overrides the absolute tolerance Compare uses when
// deciding whether two distances agree. Panics on negative or NaN values.
func WithTolerance(tol float64) Option {
	if !(tol >= 0) {
		panic(ErrBadTolerance.Error())
	}
	return func(o *Options) { o.Tolerance = tol }
}

// DefaultOptions returns the baseline configuration: 30s budget, fill
// enabled, no predecessors, 1e-9 tolerance.
func DefaultOptions() Options {
	return Options{
		Timeout:   defaultTimeout,
		Fill:      true,
		Tolerance: defaultTolerance,
	}
}

// Result is the outcome of one hybrid solve.
type Result struct {
	// Dist maps vertex id → shortest-path distance for every vertex the
	// winning engine (plus the fill pass, when enabled) resolved.
	Dist map[int]float64

	// Pred maps vertex id → predecessor on the recorded shortest path.
	// Nil unless WithPredecessors was given.
	Pred map[int]int

	// Engine names the solver whose output populates Dist.
	Engine Engine

	// Degraded is true when the primary solver timed out or failed and
	// the reference solver took over wholesale.
	Degraded bool

	// Filled counts the vertices supplied by the reference fill pass on
	// top of a successful primary result. Zero when Degraded or when
	// WithoutFill was given.
	Filled int

	// PrimaryDuration is the wall-clock time spent in the primary solver.
	// On a degraded run it records the time spent before abandonment.
	PrimaryDuration time.Duration

	// FallbackDuration is the wall-clock time spent in the reference
	// solver, covering both the fill pass and a wholesale fallback.
	// Zero when no reference pass ran.
	FallbackDuration time.Duration

	// Diag is the primary solver's diagnostics snapshot. Nil on a
	// degraded run.
	Diag *bmssp.Diagnostics
}

// Mismatch records one vertex on which the two engines disagree beyond
// the configured tolerance.
type Mismatch struct {
	Vertex   int
	BMSSP    float64
	Dijkstra float64
}

// Comparison is the outcome of running both engines over the same input.
type Comparison struct {
	// N is the vertex count of the compared graph.
	N int

	// DijkstraReached and BMSSPReached count the vertices each engine
	// assigned a finite distance.
	DijkstraReached int
	BMSSPReached    int

	// Matched counts vertices both engines reached with distances within
	// tolerance of each other.
	Matched int

	// Mismatches lists vertices both engines reached but with distances
	// differing beyond tolerance, in ascending vertex order.
	Mismatches []Mismatch

	// MissingFromBMSSP lists vertices only the reference engine reached,
	// ascending. Under-coverage: tolerated by Agree.
	MissingFromBMSSP []int

	// ExtraInBMSSP lists vertices only the candidate engine reached,
	// ascending. Over-claiming: never tolerated.
	ExtraInBMSSP []int

	// BMSSPDuration and DijkstraDuration are the wall-clock timings of
	// the two passes.
	BMSSPDuration    time.Duration
	DijkstraDuration time.Duration
}

// Agree reports whether the candidate engine produced no wrong distance
// and claimed no vertex the reference engine cannot reach. Vertices the
// candidate left unresolved do not break agreement.
func (c *Comparison) Agree() bool {
	return len(c.Mismatches) == 0 && len(c.ExtraInBMSSP) == 0
}

// String renders a one-line summary for logs and the compare subcommand.
func (c *Comparison) String() string {
	return fmt.Sprintf("n=%d dijkstra=%d bmssp=%d matched=%d mismatched=%d missing=%d extra=%d",
		c.N, c.DijkstraReached, c.BMSSPReached, c.Matched,
		len(c.Mismatches), len(c.MissingFromBMSSP), len(c.ExtraInBMSSP))
}
