package search_test

import (
	"fmt"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/search"
)

// ExampleNewRun drives an A* run step by step around a wall.
//
//	S.#.
//	..#.
//	...E
func ExampleNewRun() {
	g, _ := grid.ParseString("S.#.\n..#.\n...E")
	r, _ := search.NewRun(g, g.Start(), g.End(), search.WithAlgorithm(search.AStar))

	for r.Step() == search.Continue {
	}
	path, _ := r.Path()

	fmt.Println("outcome:", r.Outcome())
	fmt.Println("cost:", r.Cost())
	fmt.Println("nodes:", len(path))
	fmt.Print(g.Node(path[0]).Point(), " -> ", g.Node(path[len(path)-1]).Point(), "\n")

	// Output:
	// outcome: found
	// cost: 5
	// nodes: 6
	// {0 0} -> {3 2}
}

// ExampleParseAlgorithm shows the accepted names.
func ExampleParseAlgorithm() {
	for _, name := range []string{"bfs", "Dijkstra", "a*"} {
		a, _ := search.ParseAlgorithm(name)
		fmt.Println(a)
	}

	// Output:
	// bfs
	// dijkstra
	// astar
}
