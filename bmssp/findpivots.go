// This file implements pivot finding: the branching-factor bound of the
// recursion.
package bmssp

import "sort"

// findPivots runs exactly k rounds of synchronous relaxation out of sources
// and selects the subset of sources whose shortest-path subtrees grew to at
// least k vertices. It returns (pivots, touched): the pivot set and W, the
// set of every vertex admitted under the bound during the rounds.
//
// A neighbor joins the next round's frontier and W when its distance after
// the relaxation attempt is within the bound (inclusively). If W ever grows
// past k·|sources| the frontier is expanding too fast for pivoting to pay
// off; the rounds stop and every source is its own pivot.
func (st *solveState) findPivots(bound float64, sources []int) ([]int, map[int]struct{}) {
	inSources := make(map[int]struct{}, len(sources))
	touched := make(map[int]struct{}, len(sources))
	for _, s := range sources {
		inSources[s] = struct{}{}
		touched[s] = struct{}{}
	}

	// 1) k rounds of Bellman-Ford-style expansion. Updates land in the
	//    arena immediately; membership checks read the freshest value.
	frontier := append([]int(nil), sources...)
	sort.Ints(frontier)
	for round := 0; round < st.prm.k && len(frontier) > 0; round++ {
		next := make(map[int]struct{})
		for _, u := range frontier {
			st.g.ForEachArc(u, func(v int, w float64) {
				st.tryRelax(u, v, w)
				// Admission looks at the current distance whether or not
				// this particular attempt won; an earlier round may
				// already have put v under the bound.
				if st.dist[v] <= bound {
					next[v] = struct{}{}
					touched[v] = struct{}{}
				}
			})
		}
		frontier = sortedVertexSet(next)

		// 2) Early exit on runaway growth: pivoting cannot shrink this.
		if len(touched) > st.prm.k*len(sources) {
			return append([]int(nil), sources...), touched
		}
	}

	// 3) Reconstruct the implicit forest over W from predecessor pointers.
	//    An edge (pred(v), v) counts only when the parent is itself part of
	//    this phase's world (a source or a touched vertex).
	forest := make(map[int][]int)
	for _, v := range sortedVertexSet(touched) {
		p := st.pred[v]
		if p == noPredecessor {
			continue
		}
		_, inW := touched[p]
		_, inS := inSources[p]
		if inW || inS {
			forest[p] = append(forest[p], v)
		}
	}

	// 4) Measure each candidate root's subtree. Roots can nest (one source
	//    may sit inside another source's subtree), so every root gets its
	//    own visited set; sharing one set across roots would undercount the
	//    nested ones.
	pivots := make([]int, 0, len(sources))
	for _, s := range sources {
		if _, ok := touched[s]; !ok {
			continue
		}
		if subtreeSize(forest, s) >= st.prm.k {
			pivots = append(pivots, s)
		}
	}
	sort.Ints(pivots)

	return pivots, touched
}

// subtreeSize counts the vertices reachable from root through forest edges,
// iteratively to keep recursion depth off the goroutine stack.
func subtreeSize(forest map[int][]int, root int) int {
	visited := map[int]struct{}{root: {}}
	stack := []int{root}
	size := 0
	for len(stack) > 0 {
		node := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		size++
		for _, child := range forest[node] {
			if _, seen := visited[child]; seen {
				continue
			}
			visited[child] = struct{}{}
			stack = append(stack, child)
		}
	}

	return size
}
