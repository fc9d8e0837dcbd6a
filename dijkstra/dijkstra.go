// Package dijkstra implements Dijkstra's shortest-path algorithm on weighted graphs.
//
// Dijkstra computes the minimum-cost path from a single source vertex to all
// other reachable vertices in a graph with non-negative edge weights.
// It processes vertices in order of increasing distance using a min-heap priority queue,
// relaxing edges and updating distances accordingly.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Each vertex is extracted at most once: V extractions from the heap.
//   - Each edge relaxation may push a new entry into the heap: up to E pushes.
//   - Each heap operation (Push/Pop) costs O(log N), where N ≤ V + E. Simplified to O(log V).
//   - Space: O(V + E)
//   - O(V) for distance and predecessor arrays.
//   - O(E) worst-case for entries in the heap under “lazy-decrease-key”.
//
// Notes on implementation choices:
//
//   - We perform an upfront scan of all edges (O(E)) to detect negative weights and fail fast.
//   - We stop exploring once the minimum distance in the heap exceeds MaxDistance.
//   - We use a “lazy” decrease-key strategy: pushing duplicates into the heap and ignoring stale entries.
package dijkstra

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/Xavierblaze6/sssp-algorithm/core"
)

// Solve computes shortest distances from the source vertex to all other
// vertices in the weighted graph g. It accepts functional options to
// customize behavior (ReturnPath, MaxDistance).
//
// Returns:
//
//   - dist: map from vertex id to minimum distance; unreached vertices are absent.
//   - prev: optional predecessor map if ReturnPath=true (nil otherwise).
//     prev[v] == u means the shortest path to v arrives through u.
//     The source has no predecessor and is absent from prev.
//   - err:  error if inputs are invalid or if a negative weight is detected.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. source must lie in [0, g.VertexCount()) (ErrVertexRange).
//  3. No edge in g can have negative weight (ErrNegativeWeight).
//
// Options customization:
//
//   - WithReturnPath(): return predecessor map.
//   - WithMaxDistance(x): vertices with distance > x are not explored (x ≥ 0).
//
// Complexity:
//
//   - O((V + E) log V) time, O(V + E) space.
func Solve(g *core.Graph, source int, opts ...Option) (map[int]float64, map[int]int, error) {
	// 1) Apply defaults, then caller-provided options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate inputs in documented order.
	if g == nil {
		return nil, nil, ErrNilGraph
	}
	n := g.VertexCount()
	if source < 0 || source >= n {
		return nil, nil, fmt.Errorf("%w: source=%d with n=%d", ErrVertexRange, source, n)
	}
	if u, v, w, found := scanNegative(g); found {
		return nil, nil, fmt.Errorf("%w: edge %d→%d weight=%g", ErrNegativeWeight, u, v, w)
	}

	// 3) Initialize the runner state and execute the main loop.
	r := newRunner(g, cfg, source)
	r.run()

	// 4) Harvest dense arrays into sparse result maps.
	return r.collect()
}

// scanNegative walks every arc once and reports the first negative weight.
func scanNegative(g *core.Graph) (int, int, float64, bool) {
	var (
		bu, bv int
		bw     float64
		found  bool
	)
	for u := 0; u < g.VertexCount() && !found; u++ {
		g.ForEachArc(u, func(v int, w float64) {
			if !found && w < 0 {
				bu, bv, bw, found = u, v, w, true
			}
		})
	}
	return bu, bv, bw, found
}

// noPrev marks a vertex without a recorded predecessor.
const noPrev = -1

// runner holds all mutable state of one Solve invocation.
type runner struct {
	g       *core.Graph // input graph (read-only)
	cfg     Options     // resolved options
	source  int         // start vertex
	dist    []float64   // tentative distances, +Inf if untouched
	prev    []int       // predecessor per vertex, noPrev if none
	visited []bool      // true once a vertex is finalized
	pq      *nodePQ     // min-heap of (distance, vertex) pairs
}

// newRunner allocates the arrays and seeds the source at distance zero.
func newRunner(g *core.Graph, cfg Options, source int) *runner {
	n := g.VertexCount()
	r := &runner{
		g:       g,
		cfg:     cfg,
		source:  source,
		dist:    make([]float64, n),
		prev:    make([]int, n),
		visited: make([]bool, n),
		pq:      &nodePQ{},
	}
	for i := 0; i < n; i++ {
		r.dist[i] = math.Inf(1)
		r.prev[i] = noPrev
	}
	r.dist[source] = 0
	heap.Init(r.pq)
	heap.Push(r.pq, node{vertex: source, dist: 0})
	return r
}

// run drains the priority queue, finalizing one vertex per iteration.
func (r *runner) run() {
	for r.pq.Len() > 0 {
		// 1) Extract the closest unfinalized vertex.
		item := heap.Pop(r.pq).(node)
		u := item.vertex

		// 2) Skip stale duplicates left behind by lazy decrease-key.
		if r.visited[u] || item.dist > r.dist[u] {
			continue
		}

		// 3) Stop once the frontier passes the distance cap.
		if item.dist > r.cfg.MaxDistance {
			return
		}
		r.visited[u] = true

		// 4) Relax every outgoing arc of u.
		r.g.ForEachArc(u, func(v int, w float64) {
			r.relax(u, v, w)
		})
	}
}

// relax offers dist[u]+w as a new tentative distance for v and pushes a
// fresh heap entry on improvement.
func (r *runner) relax(u, v int, w float64) {
	if r.visited[v] {
		return
	}
	nd := r.dist[u] + w
	if nd >= r.dist[v] {
		return
	}
	if nd > r.cfg.MaxDistance {
		// Beyond the cap; leave v unexplored.
		return
	}
	r.dist[v] = nd
	r.prev[v] = u
	heap.Push(r.pq, node{vertex: v, dist: nd})
}

// collect converts the dense arrays into the public map form, keeping
// only vertices that were actually reached within the cap.
func (r *runner) collect() (map[int]float64, map[int]int, error) {
	dist := make(map[int]float64, len(r.dist))
	for v, d := range r.dist {
		if !math.IsInf(d, 1) && d <= r.cfg.MaxDistance {
			dist[v] = d
		}
	}
	if !r.cfg.ReturnPath {
		return dist, nil, nil
	}
	prev := make(map[int]int, len(dist))
	for v := range dist {
		if p := r.prev[v]; p != noPrev {
			prev[v] = p
		}
	}
	return dist, prev, nil
}

// node is one heap entry: a vertex together with the distance it was
// pushed at. Stale entries are filtered on pop.
type node struct {
	vertex int
	dist   float64
}

// nodePQ implements heap.Interface ordered by ascending distance.
type nodePQ []node

func (pq nodePQ) Len() int            { return len(pq) }
func (pq nodePQ) Less(i, j int) bool  { return pq[i].dist < pq[j].dist }
func (pq nodePQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(node)) }
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]
	return item
}
