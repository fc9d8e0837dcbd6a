// This file implements the recursive driver tying pivots, the frontier, and
// the level below into one bounded multi-source pass.
package bmssp

import "math"

// stallStrikeLimit is how many consecutive non-advancing pulls a frame
// tolerates before breaking out with a partial result.
const stallStrikeLimit = 5

// bmssp completes, within the given bound, the shortest-path work reachable
// from sources at recursion level, and returns (B', U): a refined boundary
// and the set of vertices whose distances are final below it.
//
// Level 0 delegates to the base case. A positive level shrinks sources to
// pivots, then repeatedly pulls a batch from its frontier, recurses one
// level down over the batch within the pull boundary, and relaxes edges out
// of the completed batch, re-queueing affected vertices into the frontier
// for the [Bi, B) window or through batch-prepend for the [B'i, Bi) window
// below the pull boundary.
//
// The pull loop carries two mandatory guards: an iteration cap scaled by
// vertex count, and a stall detector for pulls that recur without the
// boundary advancing. Either break exits with a valid partial result;
// distances already written stay correct, unpulled work stays pending.
func (st *solveState) bmssp(level int, bound float64, sources []int) (float64, []int) {
	if level == 0 {
		return st.baseCase(bound, sources)
	}

	// 1) Shrink the source set to pivots; remember everything touched.
	pivots, touched := st.findPivots(bound, sources)

	// 2) This frame's frontier, seeded with the pivots at their settled
	//    distances.
	frontier := newBoundedFrontier(st.prm.frontierCapacity(level), bound)
	for _, p := range pivots {
		frontier.Insert(p, st.dist[p], st.pathLen[p], st.pred[p])
	}

	// 3) The inner boundary starts at the nearest pivot; with no pivots the
	//    frame cannot refine the bound at all.
	lastInner := bound
	if len(pivots) > 0 {
		lastInner = st.dist[pivots[0]]
		for _, p := range pivots[1:] {
			if st.dist[p] < lastInner {
				lastInner = st.dist[p]
			}
		}
	}

	completed := make(map[int]struct{})
	capacity := st.prm.completedCapacity(level)
	maxIter := st.prm.maxIterations()

	// Guard state: pulled keys seen so far, strike count, previous pull
	// boundary.
	processed := make(map[int]struct{})
	stall := 0
	lastPull := math.Inf(-1)

	// 4) Pull loop.
	for iter := 0; len(completed) < capacity && !frontier.Empty(); iter++ {
		if iter >= maxIter {
			break
		}

		// 4a) Pull the next batch and its separating boundary.
		bi, si := frontier.Pull()

		// 4b) Stall detection: every pulled key seen before and the
		//     boundary did not advance.
		recurring := true
		for _, x := range si {
			if _, seen := processed[x]; !seen {
				recurring = false
				break
			}
		}
		if recurring && bi <= lastPull {
			stall++
			if stall > stallStrikeLimit {
				break
			}
		} else {
			stall = 0
			for _, x := range si {
				processed[x] = struct{}{}
			}
		}
		lastPull = bi

		// 4c) Recurse one level down over the batch.
		inner, batchDone := st.bmssp(level-1, bi, si)
		lastInner = inner
		for _, u := range batchDone {
			completed[u] = struct{}{}
		}

		// 4d) Relax out of the completed batch. A slack edge, one whose
		//     candidate distance exceeds the stored one, contributes
		//     nothing. Every other edge re-announces its head at the
		//     stored distance even when the state write is a no-op;
		//     vertices first reached during pivot finding re-enter the
		//     work queue exactly this way. A head in [bi, bound) belongs
		//     to this frontier, one in [inner, bi) goes through
		//     batch-prepend below.
		var batch []frontierItem
		for _, u := range batchDone {
			st.g.ForEachArc(u, func(v int, w float64) {
				if st.dist[u]+w > st.dist[v] {
					return
				}
				st.tryRelax(u, v, w)
				switch d := st.dist[v]; {
				case bi <= d && d < bound:
					frontier.Insert(v, d, st.pathLen[v], st.pred[v])
				case inner <= d && d < bi:
					batch = append(batch, frontierItem{key: v, value: d, pathLen: st.pathLen[v], pred: st.pred[v]})
				}
			})
		}

		// 4e) A pulled vertex whose settled distance landed in [inner, bi)
		//     was evicted before its true distance was known; re-queue it.
		for _, x := range si {
			if d := st.dist[x]; inner <= d && d < bi {
				batch = append(batch, frontierItem{key: x, value: d, pathLen: st.pathLen[x], pred: st.pred[x]})
			}
		}
		frontier.BatchPrepend(batch)
	}

	// 5) Drained frontier means full success at this bound; anything else
	//    is a partial pass capped by the last inner boundary.
	boundary := bound
	if !frontier.Empty() {
		boundary = math.Min(lastInner, bound)
	}

	// 6) Fold in touched vertices already settled below the boundary; they
	//    are known-correct and must not be dropped.
	for w := range touched {
		if st.dist[w] < boundary {
			completed[w] = struct{}{}
		}
	}

	return boundary, sortedVertexSet(completed)
}
