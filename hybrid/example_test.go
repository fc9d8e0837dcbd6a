package hybrid_test

import (
	"context"
	"fmt"

	"github.com/Xavierblaze6/sssp-algorithm/core"
	"github.com/Xavierblaze6/sssp-algorithm/hybrid"
)

// ExampleSolve runs the orchestrated solve over a small diamond graph.
func ExampleSolve() {
	// 1) Two routes from 0 to 3; the cheaper one goes through 1 and 2.
	g := core.New(4)
	_ = g.AddEdge(0, 1, 1.0)
	_ = g.AddEdge(0, 2, 4.0)
	_ = g.AddEdge(1, 2, 2.0)
	_ = g.AddEdge(1, 3, 5.0)
	_ = g.AddEdge(2, 3, 1.0)

	// 2) Solve with the default budget.
	res, err := hybrid.Solve(context.Background(), g, 0)
	if err != nil {
		fmt.Println("solve failed:", err)
		return
	}

	// 3) The recursion finishes well inside the budget here.
	fmt.Printf("engine=%s degraded=%v\n", res.Engine, res.Degraded)
	fmt.Printf("dist[3]=%v\n", res.Dist[3])

	// Output:
	// engine=bmssp degraded=false
	// dist[3]=4
}

// ExampleCompare checks the two engines against each other.
func ExampleCompare() {
	g := core.New(4)
	_ = g.AddEdge(0, 1, 1.0)
	_ = g.AddEdge(0, 2, 4.0)
	_ = g.AddEdge(1, 2, 2.0)
	_ = g.AddEdge(1, 3, 5.0)
	_ = g.AddEdge(2, 3, 1.0)

	cmp, err := hybrid.Compare(g, 0)
	if err != nil {
		fmt.Println("compare failed:", err)
		return
	}
	fmt.Println(cmp)

	// Output:
	// n=4 dijkstra=4 bmssp=4 matched=4 mismatched=0 missing=0 extra=0
}
