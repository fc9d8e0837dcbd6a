// This file implements the two entry points: Solve, the budgeted
// primary/fallback orchestration, and Compare, the agreement harness.
package hybrid

import (
	"context"
	"fmt"
	"math"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/Xavierblaze6/sssp-algorithm/bmssp"
	"github.com/Xavierblaze6/sssp-algorithm/core"
	"github.com/Xavierblaze6/sssp-algorithm/dijkstra"
)

// Solve computes single-source shortest paths from source, preferring the
// recursive solver and degrading to the reference solver when the budget
// runs out.
//
// Steps:
//  1. Start bmssp.Solve on an errgroup worker under the configured
//     wall-clock budget (WithTimeout, 30s default).
//  2. If the worker finishes in time and succeeds, top up vertices it
//     left unresolved from a Dijkstra pass (WithoutFill disables).
//  3. If the worker errors or the budget lapses, run Dijkstra wholesale
//     and mark the result Degraded.
//
// The recursion has no internal cancellation point, so a worker that
// outlives its budget is abandoned: it keeps reading g until it unwinds
// on its own and its result is discarded. Callers must not mutate g
// immediately after a degraded return.
//
// Cancellation of ctx itself aborts the solve with ctx's error instead
// of degrading; only the budget lapsing triggers the fallback.
func Solve(ctx context.Context, g *core.Graph, source int, opts ...Option) (*Result, error) {
	cfg := DefaultOptions()
	for _, o := range opts {
		o(&cfg)
	}
	if ctx == nil {
		ctx = context.Background()
	}

	runCtx, cancel := context.WithTimeout(ctx, cfg.Timeout)
	defer cancel()

	var engineOpts []bmssp.Option
	if cfg.Predecessors {
		engineOpts = append(engineOpts, bmssp.WithPredecessors())
	}

	// Worker state: written by the worker only, read only after the done
	// channel delivers. The channel send orders the accesses.
	var (
		primary    *bmssp.Result
		primaryErr error
		primaryDur time.Duration
	)
	started := time.Now()
	var eg errgroup.Group
	eg.Go(func() error {
		primary, primaryErr = bmssp.Solve(g, source, engineOpts...)
		primaryDur = time.Since(started)
		return primaryErr
	})
	done := make(chan error, 1)
	go func() { done <- eg.Wait() }()

	select {
	case <-done:
		if primaryErr != nil {
			return fallback(g, source, cfg, primaryDur)
		}
		return topUp(g, source, cfg, primary, primaryDur)
	case <-runCtx.Done():
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("hybrid: %w", err)
		}
		return fallback(g, source, cfg, time.Since(started))
	}
}

// fallback runs the reference solver wholesale after the primary solver
// failed or overran its budget.
func fallback(g *core.Graph, source int, cfg Options, primaryDur time.Duration) (*Result, error) {
	var dOpts []dijkstra.Option
	if cfg.Predecessors {
		dOpts = append(dOpts, dijkstra.WithReturnPath())
	}

	start := time.Now()
	dist, prev, err := dijkstra.Solve(g, source, dOpts...)
	dur := time.Since(start)
	if err != nil {
		return nil, fmt.Errorf("hybrid: fallback: %w", err)
	}

	res := &Result{
		Dist:             dist,
		Engine:           EngineDijkstra,
		Degraded:         true,
		PrimaryDuration:  primaryDur,
		FallbackDuration: dur,
	}
	if cfg.Predecessors {
		res.Pred = prev
	}
	return res, nil
}

// topUp wraps a successful primary result and, unless disabled, supplies
// vertices the primary solver left unresolved from a reference pass.
func topUp(g *core.Graph, source int, cfg Options, primary *bmssp.Result, primaryDur time.Duration) (*Result, error) {
	res := &Result{
		Dist:            primary.Dist,
		Pred:            primary.Pred,
		Engine:          EngineBMSSP,
		PrimaryDuration: primaryDur,
	}
	diag := primary.Diag
	res.Diag = &diag

	// Full coverage leaves nothing to fill.
	if !cfg.Fill || len(res.Dist) == g.VertexCount() {
		return res, nil
	}

	var dOpts []dijkstra.Option
	if cfg.Predecessors {
		dOpts = append(dOpts, dijkstra.WithReturnPath())
	}
	start := time.Now()
	dist, prev, err := dijkstra.Solve(g, source, dOpts...)
	res.FallbackDuration = time.Since(start)
	if err != nil {
		return nil, fmt.Errorf("hybrid: fill: %w", err)
	}

	for v, dv := range dist {
		if _, ok := res.Dist[v]; ok {
			continue
		}
		res.Dist[v] = dv
		if cfg.Predecessors {
			if p, ok := prev[v]; ok {
				res.Pred[v] = p
			}
		}
		res.Filled++
	}
	return res, nil
}

// Compare runs the reference solver and the recursive solver over the
// same input and reports where they disagree.
//
// Distances within the configured absolute tolerance count as matched.
// Vertices only the reference engine reached land in MissingFromBMSSP;
// vertices only the candidate claimed land in ExtraInBMSSP. All slices
// come back in ascending vertex order.
func Compare(g *core.Graph, source int, opts ...Option) (*Comparison, error) {
	cfg := DefaultOptions()
	for _, o := range opts {
		o(&cfg)
	}

	dStart := time.Now()
	dDist, _, err := dijkstra.Solve(g, source)
	dDur := time.Since(dStart)
	if err != nil {
		return nil, fmt.Errorf("hybrid: reference: %w", err)
	}

	bStart := time.Now()
	bRes, err := bmssp.Solve(g, source)
	bDur := time.Since(bStart)
	if err != nil {
		return nil, fmt.Errorf("hybrid: candidate: %w", err)
	}

	cmp := &Comparison{
		N:                g.VertexCount(),
		DijkstraReached:  len(dDist),
		BMSSPReached:     len(bRes.Dist),
		BMSSPDuration:    bDur,
		DijkstraDuration: dDur,
	}
	for v, dv := range dDist {
		bv, ok := bRes.Dist[v]
		if !ok {
			cmp.MissingFromBMSSP = append(cmp.MissingFromBMSSP, v)
			continue
		}
		if math.Abs(bv-dv) > cfg.Tolerance {
			cmp.Mismatches = append(cmp.Mismatches, Mismatch{Vertex: v, BMSSP: bv, Dijkstra: dv})
		} else {
			cmp.Matched++
		}
	}
	for v := range bRes.Dist {
		if _, ok := dDist[v]; !ok {
			cmp.ExtraInBMSSP = append(cmp.ExtraInBMSSP, v)
		}
	}
	sort.Ints(cmp.MissingFromBMSSP)
	sort.Ints(cmp.ExtraInBMSSP)
	sort.Slice(cmp.Mismatches, func(i, j int) bool {
		return cmp.Mismatches[i].Vertex < cmp.Mismatches[j].Vertex
	})
	return cmp, nil
}
