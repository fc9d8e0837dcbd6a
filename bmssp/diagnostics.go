// This file computes the post-run diagnostics snapshot.
package bmssp

import (
	"fmt"
	"math"
)

// Diagnostics summarizes one completed solve: the derived parameters and the
// reachability and path statistics of the final arena. Benchmarking and CLI
// tooling consume it; the solver itself never reads it back.
type Diagnostics struct {
	// N is the vertex count of the solved graph.
	N int

	// K and T are the parameters derived from N for this run.
	K int
	T int

	// ReachableCount and UnreachableCount partition the vertex set by
	// whether a finite distance was computed. An unreachable count may
	// include vertices a guarded early break left unresolved.
	ReachableCount   int
	UnreachableCount int

	// MaxDistance and AvgDistance are over vertices with finite distance;
	// zero when nothing is reachable.
	MaxDistance float64
	AvgDistance float64

	// AvgPathLength and MaxPathLength are edge counts of the recorded
	// shortest paths over reachable vertices; zero when nothing is
	// reachable.
	AvgPathLength float64
	MaxPathLength int64
}

// newDiagnostics derives the snapshot from a finished solve's arena.
func newDiagnostics(st *solveState) Diagnostics {
	d := Diagnostics{N: st.prm.n, K: st.prm.k, T: st.prm.t}

	var sumDist float64
	var sumLen int64
	for v := 0; v < st.prm.n; v++ {
		if math.IsInf(st.dist[v], 1) {
			d.UnreachableCount++
			continue
		}
		d.ReachableCount++
		sumDist += st.dist[v]
		if st.dist[v] > d.MaxDistance {
			d.MaxDistance = st.dist[v]
		}
		if st.pathLen[v] != unknownPathLen {
			sumLen += st.pathLen[v]
			if st.pathLen[v] > d.MaxPathLength {
				d.MaxPathLength = st.pathLen[v]
			}
		}
	}
	if d.ReachableCount > 0 {
		d.AvgDistance = sumDist / float64(d.ReachableCount)
		d.AvgPathLength = float64(sumLen) / float64(d.ReachableCount)
	}

	return d
}

// ReachablePct is the share of vertices with a finite distance, in percent.
func (d Diagnostics) ReachablePct() float64 {
	if d.N == 0 {
		return 0
	}

	return 100 * float64(d.ReachableCount) / float64(d.N)
}

// String renders the snapshot as a compact single-line summary.
func (d Diagnostics) String() string {
	return fmt.Sprintf(
		"n=%d k=%d t=%d reachable=%d/%d (%.1f%%) maxDist=%.4f avgDist=%.4f avgLen=%.2f maxLen=%d",
		d.N, d.K, d.T, d.ReachableCount, d.N, d.ReachablePct(),
		d.MaxDistance, d.AvgDistance, d.AvgPathLength, d.MaxPathLength,
	)
}
