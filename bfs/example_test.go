package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/avgdist/bfs"
	"github.com/katalvlaran/avgdist/core"
)

// ExampleReachable lists vertices in discovery order on a small tree.
func ExampleReachable() {
	//	3 ── 0 ── 1 ── 2
	//	          │
	//	          4
	g, _ := core.NewGraph([]core.Edge{{U: 0, V: 1}, {U: 1, V: 2}, {U: 0, V: 3}, {U: 1, V: 4}})
	fmt.Println(bfs.Reachable(g, 0))
	// Output:
	// [0 1 3 2 4]
}

// ExampleShortestPath queries hop counts, including an unreachable pair.
func ExampleShortestPath() {
	g, _ := core.NewGraph([]core.Edge{{U: 0, V: 1}, {U: 1, V: 2}, {U: 0, V: 3}, {U: 1, V: 4}, {U: 5, V: 6}})
	fmt.Println(bfs.ShortestPath(g, 0, 2))
	fmt.Println(bfs.ShortestPath(g, 3, 4))
	fmt.Println(bfs.ShortestPath(g, 0, 6))
	// Output:
	// 2
	// 3
	// unreachable
}

// ExampleResult_PathTo reconstructs the route behind a distance.
func ExampleResult_PathTo() {
	// Route1: 0–1–2–3–9 (4 hops), Route2: 0–4–5–9 (3 hops)
	g, _ := core.NewGraph([]core.Edge{
		{U: 0, V: 1}, {U: 1, V: 2}, {U: 2, V: 3}, {U: 3, V: 9},
		{U: 0, V: 4}, {U: 4, V: 5}, {U: 5, V: 9},
	})
	res, err := bfs.Walk(g, 0)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	p, _ := res.PathTo(9)
	fmt.Println(p, res.DistanceTo(9))
	// Output:
	// [0 4 5 9] 3
}
