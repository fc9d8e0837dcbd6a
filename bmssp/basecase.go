// This file implements the level-0 leaf of the recursion: a multi-source
// Dijkstra run capped at k+1 distinct completions.
package bmssp

import (
	"container/heap"
	"sort"
)

// baseCase runs a bounded multi-source Dijkstra seeded from every vertex in
// sources at its current arena distance and path length, completing at most
// k+1 distinct vertices, and admitting relaxations only below bound.
//
// Returns (B', U):
//
//   - ≤ k completions → B' = bound unchanged, U = every completed vertex.
//   - k+1 completions → B' = the (k+1)-th smallest completed distance and
//     U = completed vertices strictly below B'. U then never exceeds k
//     vertices; the excluded ones stay correct and eligible for a later
//     call at a wider bound.
func (st *solveState) baseCase(bound float64, sources []int) (float64, []int) {
	// 1) Seed the heap with the sources at their current global state.
	pq := make(baseHeap, 0, len(sources))
	for _, s := range sources {
		pq = append(pq, &baseItem{
			dist:    st.dist[s],
			pathLen: st.pathLen[s],
			vertex:  s,
			pred:    st.pred[s],
		})
	}
	heap.Init(&pq)

	// completed tracks finalized vertices; distances remembers each one's
	// distance at completion time for the boundary computation below.
	completed := make(map[int]struct{}, st.prm.k+1)
	distances := make(map[int]float64, st.prm.k+1)

	// 2) Settle vertices in (dist, pathLen, vertex, pred) order until the
	//    heap drains or k+1 distinct vertices have been completed.
	for pq.Len() > 0 && len(completed) < st.prm.k+1 {
		item := heap.Pop(&pq).(*baseItem)
		u := item.vertex

		// 2a) Drop stale entries: anything lexicographically behind the
		//     arena was superseded after it was pushed.
		if item.dist > st.dist[u] {
			continue
		}
		if item.dist == st.dist[u] {
			if item.pathLen > st.pathLen[u] {
				continue
			}
			if item.pathLen == st.pathLen[u] && item.pred > st.pred[u] {
				continue
			}
		}

		// 2b) A vertex already settled in this call pops only as a stale
		//     duplicate; skip it.
		if _, done := completed[u]; done {
			continue
		}

		completed[u] = struct{}{}
		distances[u] = item.dist

		// 2c) Relax outgoing edges, admitting only candidates strictly
		//     below the bound.
		st.g.ForEachArc(u, func(v int, w float64) {
			if st.dist[u]+w >= bound {
				return
			}
			if st.tryRelax(u, v, w) {
				heap.Push(&pq, &baseItem{
					dist:    st.dist[v],
					pathLen: st.pathLen[v],
					vertex:  v,
					pred:    u,
				})
			}
		})
	}

	// 3) Within budget: everything found is complete under the given bound.
	if len(completed) <= st.prm.k {
		return bound, sortedVertexSet(completed)
	}

	// 4) Over budget: shrink below the (k+1)-th smallest completed distance.
	sorted := make([]float64, 0, len(distances))
	for _, d := range distances {
		sorted = append(sorted, d)
	}
	sort.Float64s(sorted)
	boundary := sorted[st.prm.k]

	trimmed := make([]int, 0, st.prm.k)
	for v, d := range distances {
		if d < boundary {
			trimmed = append(trimmed, v)
		}
	}
	sort.Ints(trimmed)

	return boundary, trimmed
}

// baseItem is one heap entry: the vertex plus the snapshot of its ordering
// triple at push time. Entries go stale when the arena improves afterwards;
// they are filtered on pop.
type baseItem struct {
	dist    float64
	pathLen int64
	vertex  int
	pred    int
}

// baseHeap is a min-heap of *baseItem under the full lexicographic order
// (dist, pathLen, vertex, pred), matching the settle order the boundary
// computation depends on.
type baseHeap []*baseItem

func (h baseHeap) Len() int { return len(h) }

func (h baseHeap) Less(i, j int) bool {
	a, b := h[i], h[j]
	if a.dist != b.dist {
		return a.dist < b.dist
	}
	if a.pathLen != b.pathLen {
		return a.pathLen < b.pathLen
	}
	if a.vertex != b.vertex {
		return a.vertex < b.vertex
	}

	return a.pred < b.pred
}

func (h baseHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *baseHeap) Push(x interface{}) { *h = append(*h, x.(*baseItem)) }

func (h *baseHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]

	return item
}
