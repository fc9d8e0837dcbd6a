package hybrid_test

import (
	"context"
	"math"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/Xavierblaze6/sssp-algorithm/core"
	"github.com/Xavierblaze6/sssp-algorithm/dijkstra"
	"github.com/Xavierblaze6/sssp-algorithm/hybrid"
)

// diamond returns the four-vertex graph with two competing routes from 0
// to 3. Shortest distances: 0, 1, 3, 4.
func diamond(t *testing.T) *core.Graph {
	t.Helper()
	g := core.New(4)
	for _, e := range []core.Edge{
		{From: 0, To: 1, Weight: 1.0},
		{From: 0, To: 2, Weight: 4.0},
		{From: 1, To: 2, Weight: 2.0},
		{From: 1, To: 3, Weight: 5.0},
		{From: 2, To: 3, Weight: 1.0},
	} {
		require.NoError(t, g.AddEdge(e.From, e.To, e.Weight))
	}
	return g
}

// randomGraph builds a digraph with three out-arcs per vertex and weights
// in [0.1, 10).
func randomGraph(t *testing.T, n int, seed int64) *core.Graph {
	t.Helper()
	r := rand.New(rand.NewSource(seed))
	g := core.New(n)
	for u := 0; u < n; u++ {
		for j := 0; j < 3; j++ {
			v := r.Intn(n)
			w := 0.1 + r.Float64()*9.9
			require.NoError(t, g.AddEdge(u, v, w))
		}
	}
	return g
}

// zeroCycleGraph returns the adversarial input with a zero-weight cycle
// between 1 and 2 feeding vertex 3.
func zeroCycleGraph(t *testing.T) *core.Graph {
	t.Helper()
	g := core.New(4)
	require.NoError(t, g.AddEdge(0, 1, 0))
	require.NoError(t, g.AddEdge(1, 2, 0))
	require.NoError(t, g.AddEdge(2, 1, 0))
	require.NoError(t, g.AddEdge(2, 3, 1))
	return g
}

func TestSolve_PrimaryWins(t *testing.T) {
	t.Parallel()

	res, err := hybrid.Solve(context.Background(), diamond(t), 0)
	require.NoError(t, err)

	require.Equal(t, hybrid.EngineBMSSP, res.Engine)
	require.False(t, res.Degraded)
	require.Zero(t, res.Filled)
	require.Equal(t, map[int]float64{0: 0, 1: 1, 2: 3, 3: 4}, res.Dist)
	require.NotNil(t, res.Diag)
	require.Equal(t, 4, res.Diag.N)
	require.Nil(t, res.Pred)
}

func TestSolve_Predecessors(t *testing.T) {
	t.Parallel()

	res, err := hybrid.Solve(context.Background(), diamond(t), 0, hybrid.WithPredecessors())
	require.NoError(t, err)
	require.Equal(t, map[int]int{1: 0, 2: 1, 3: 2}, res.Pred)
}

func TestSolve_FillMatchesReferenceCoverage(t *testing.T) {
	t.Parallel()

	// The zero-weight cycle may leave the primary solver short of full
	// coverage; the fill pass must close exactly that gap.
	g := zeroCycleGraph(t)
	res, err := hybrid.Solve(context.Background(), g, 0)
	require.NoError(t, err)

	want, _, err := dijkstra.Solve(g, 0)
	require.NoError(t, err)
	require.Equal(t, want, res.Dist)
}

func TestSolve_WithoutFillNeverOverClaims(t *testing.T) {
	t.Parallel()

	g := zeroCycleGraph(t)
	res, err := hybrid.Solve(context.Background(), g, 0, hybrid.WithoutFill())
	require.NoError(t, err)
	require.Zero(t, res.Filled)

	want, _, err := dijkstra.Solve(g, 0)
	require.NoError(t, err)
	for v, dv := range res.Dist {
		wv, ok := want[v]
		require.Truef(t, ok, "vertex %d claimed but unreachable", v)
		require.InDelta(t, wv, dv, 1e-9, "vertex %d", v)
	}
}

func TestSolve_DegradesOnTinyBudget(t *testing.T) {
	t.Parallel()

	g := randomGraph(t, 5000, 99)
	res, err := hybrid.Solve(context.Background(), g, 0, hybrid.WithTimeout(time.Nanosecond))
	require.NoError(t, err)

	require.True(t, res.Degraded)
	require.Equal(t, hybrid.EngineDijkstra, res.Engine)
	require.Nil(t, res.Diag)

	want, _, err := dijkstra.Solve(g, 0)
	require.NoError(t, err)
	require.Equal(t, want, res.Dist)
}

func TestSolve_CanceledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := hybrid.Solve(ctx, randomGraph(t, 5000, 7), 0)
	require.ErrorIs(t, err, context.Canceled)
}

func TestSolve_ValidationSurfacesFallbackErrors(t *testing.T) {
	t.Parallel()

	_, err := hybrid.Solve(context.Background(), nil, 0)
	require.ErrorIs(t, err, dijkstra.ErrNilGraph)

	_, err = hybrid.Solve(context.Background(), diamond(t), 9)
	require.ErrorIs(t, err, dijkstra.ErrVertexRange)

	g := core.New(2)
	require.NoError(t, g.AddEdge(0, 1, -1))
	_, err = hybrid.Solve(context.Background(), g, 0)
	require.ErrorIs(t, err, dijkstra.ErrNegativeWeight)
}

func TestCompare_AgreesOnRandomGraph(t *testing.T) {
	t.Parallel()

	g := randomGraph(t, 80, 5)
	cmp, err := hybrid.Compare(g, 0)
	require.NoError(t, err)

	require.True(t, cmp.Agree(), "comparison: %s", cmp)
	require.Equal(t, 80, cmp.N)
	require.Empty(t, cmp.Mismatches)
	require.Empty(t, cmp.ExtraInBMSSP)
	require.Equal(t, cmp.DijkstraReached,
		cmp.Matched+len(cmp.Mismatches)+len(cmp.MissingFromBMSSP))
}

func TestCompare_ZeroCycleNeverOverClaims(t *testing.T) {
	t.Parallel()

	cmp, err := hybrid.Compare(zeroCycleGraph(t), 0)
	require.NoError(t, err)
	require.True(t, cmp.Agree(), "comparison: %s", cmp)
}

func TestCompare_ValidationError(t *testing.T) {
	t.Parallel()

	_, err := hybrid.Compare(nil, 0)
	require.ErrorIs(t, err, dijkstra.ErrNilGraph)
}

func TestOptionPanics(t *testing.T) {
	t.Parallel()

	require.PanicsWithValue(t, hybrid.ErrBadTimeout.Error(), func() {
		hybrid.WithTimeout(0)
	})
	require.PanicsWithValue(t, hybrid.ErrBadTimeout.Error(), func() {
		hybrid.WithTimeout(-time.Second)
	})
	require.PanicsWithValue(t, hybrid.ErrBadTolerance.Error(), func() {
		hybrid.WithTolerance(-1e-9)
	})
	require.PanicsWithValue(t, hybrid.ErrBadTolerance.Error(), func() {
		hybrid.WithTolerance(math.NaN())
	})
}
