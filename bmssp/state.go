// This file holds the per-solve vertex state arena and the one relaxation
// rule shared by every phase of the algorithm.
package bmssp

import (
	"math"
	"sort"

	"github.com/Xavierblaze6/sssp-algorithm/core"
)

// noPredecessor marks a vertex with no recorded predecessor. The source and
// every untouched vertex carry it.
const noPredecessor = -1

// unknownPathLen marks an unset path length. Any vertex whose distance is
// finite also has a finite path length; the two are always written together.
const unknownPathLen = math.MaxInt64

// solveState is the mutable state of one solve: the read-only graph, the
// fixed parameters, and the per-vertex arena indexed by id. It is created at
// solve start, threaded through the whole recursion, and owns the run; two
// solves never share one.
type solveState struct {
	g   *core.Graph
	prm params

	// dist[v] is the current best distance estimate; +Inf until touched.
	// It only ever decreases (or, on an exact distance tie, keeps its value
	// while pathLen/pred improve).
	dist []float64

	// pathLen[v] counts edges on the best-known path; tie-breaking only.
	pathLen []int64

	// pred[v] is the predecessor on the best-known path, noPredecessor if
	// none. The predecessor pointers of all touched vertices form a forest
	// that findPivots reconstructs on demand.
	pred []int
}

// newSolveState builds the arena for n vertices with the source seeded at
// distance 0 and path length 0.
func newSolveState(g *core.Graph, prm params, source int) *solveState {
	n := g.VertexCount()
	st := &solveState{
		g:       g,
		prm:     prm,
		dist:    make([]float64, n),
		pathLen: make([]int64, n),
		pred:    make([]int, n),
	}
	for v := 0; v < n; v++ {
		st.dist[v] = math.Inf(1)
		st.pathLen[v] = unknownPathLen
		st.pred[v] = noPredecessor
	}
	st.dist[source] = 0
	st.pathLen[source] = 0

	return st
}

// predRank maps a stored predecessor to its rank in the tie-break ordering:
// a real id ranks as itself, "no predecessor" ranks above every id so that
// any concrete candidate beats it.
func predRank(p int) int {
	if p == noPredecessor {
		return math.MaxInt
	}

	return p
}

// wins reports whether the candidate (newDist, newLen, u) beats v's stored
// (dist, pathLen, pred) triple lexicographically: smaller distance wins, a
// distance tie prefers fewer edges, a full tie prefers the smaller
// predecessor id. An identical triple does not win, which makes relaxation
// idempotent.
func (st *solveState) wins(newDist float64, newLen int64, u, v int) bool {
	switch {
	case newDist < st.dist[v]:
		return true
	case newDist > st.dist[v]:
		return false
	}
	switch {
	case newLen < st.pathLen[v]:
		return true
	case newLen > st.pathLen[v]:
		return false
	}

	return u < predRank(st.pred[v])
}

// tryRelax attempts the candidate update of v via u with edge weight w and
// reports whether it was accepted. Every phase of the algorithm (base case,
// pivot finding, the post-recursion sweep) relaxes through this one
// function; the invariants only hold if they all apply the identical rule.
//
// The caller guarantees dist[u] is finite, so newLen cannot overflow.
func (st *solveState) tryRelax(u, v int, w float64) bool {
	newDist := st.dist[u] + w
	newLen := st.pathLen[u] + 1
	if !st.wins(newDist, newLen, u, v) {
		return false
	}

	st.dist[v] = newDist
	st.pathLen[v] = newLen
	st.pred[v] = u

	return true
}

// sortedVertexSet converts a vertex set to a sorted slice for deterministic
// iteration.
func sortedVertexSet(set map[int]struct{}) []int {
	out := make([]int, 0, len(set))
	for v := range set {
		out = append(out, v)
	}
	sort.Ints(out)

	return out
}
