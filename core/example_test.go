package core_test

import (
	"fmt"

	"github.com/Xavierblaze6/sssp-algorithm/core"
)

// ExampleGraph demonstrates building a small directed graph and inspecting it.
func ExampleGraph() {
	// 1) Reserve four vertex ids: 0..3.
	g := core.New(4)

	// 2) Add weighted arcs; a repeated pair keeps the last weight.
	_ = g.AddEdge(0, 1, 1.0)
	_ = g.AddEdge(1, 2, 2.0)
	_ = g.AddEdge(1, 2, 2.5)

	// 3) Inspect counts and a single weight.
	w, _ := g.Weight(1, 2)
	fmt.Println("vertices:", g.VertexCount())
	fmt.Println("arcs:", g.EdgeCount())
	fmt.Println("w(1,2):", w)

	// Output:
	// vertices: 4
	// arcs: 2
	// w(1,2): 2.5
}

// ExampleFromEdges demonstrates the edge-list constructor with validation.
func ExampleFromEdges() {
	edges := []core.Edge{
		{From: 0, To: 1, Weight: 4.0},
		{From: 1, To: 0, Weight: 0.5},
	}
	g, err := core.FromEdges(2, edges)
	if err != nil {
		fmt.Println("build failed:", err)
		return
	}
	for _, e := range g.Edges() {
		fmt.Printf("%d->%d %.1f\n", e.From, e.To, e.Weight)
	}

	// Output:
	// 0->1 4.0
	// 1->0 0.5
}
