// This file derives the per-solve algorithm parameters from the vertex count.
package bmssp

import "math"

// maxPow2Shift clamps 2^x capacity computations. 2^40 vertices is far beyond
// any completed-set size this in-memory solver can hold, and k·2^40 still
// fits an int without overflow.
const maxPow2Shift = 40

// params holds the constants of one solve, fixed at entry.
//
//	k    – pivot subtree threshold and base-case completion budget.
//	t    – level width exponent.
//	lMax – top recursion level.
type params struct {
	n    int
	k    int
	t    int
	lMax int
}

// deriveParams computes k = ⌊log₂(n)^(1/3)⌋ and t = ⌊log₂(n)^(2/3)⌋, both
// floored to at least 1, and lMax = ⌈log₂(n)/t⌉ (0 when n ≤ 1). Logarithms
// are taken over max(2, n) so tiny graphs stay well-defined.
func deriveParams(n int) params {
	nLog := n
	if nLog < 2 {
		nLog = 2
	}
	lg := math.Log2(float64(nLog))

	k := int(math.Cbrt(lg))
	if k < 1 {
		k = 1
	}
	t := int(math.Pow(lg, 2.0/3.0))
	if t < 1 {
		t = 1
	}

	lMax := 0
	if n > 1 {
		lMax = int(math.Ceil(lg / float64(t)))
	}

	return params{n: n, k: k, t: t, lMax: lMax}
}

// pow2 returns 2^shift with the exponent clamped to [0, maxPow2Shift].
func pow2(shift int) int {
	if shift < 0 {
		shift = 0
	}
	if shift > maxPow2Shift {
		shift = maxPow2Shift
	}

	return 1 << uint(shift)
}

// frontierCapacity is M for a level-l frontier: 2^((l-1)·t), at least 1.
func (p params) frontierCapacity(level int) int {
	return pow2((level - 1) * p.t)
}

// completedCapacity bounds the completed-set size of a level-l call:
// k·2^(l·t).
func (p params) completedCapacity(level int) int {
	return p.k * pow2(level*p.t)
}

// maxIterations caps one frame's pull loop as a function of graph size.
func (p params) maxIterations() int {
	const (
		minIterationCap       = 1000
		iterationCapPerVertex = 10
	)
	if scaled := p.n * iterationCapPerVertex; scaled > minIterationCap {
		return scaled
	}

	return minIterationCap
}
