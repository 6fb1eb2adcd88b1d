package engine_test

import (
	"fmt"

	"github.com/katalvlaran/gridpath/engine"
	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/search"
)

// ExampleEngine_Advance interleaves search steps with host work the way an
// interactive loop does: one Advance per frame.
func ExampleEngine_Advance() {
	g, _ := grid.ParseString(`
S....
.###.
....E
`)
	e := engine.New(g, engine.WithConfig(engine.Config{
		Algorithm: search.Dijkstra,
		MinSide:   4,
	}))
	if err := e.StartGridRun(); err != nil {
		fmt.Println(err)
		return
	}

	frames := 0
	for {
		res, _ := e.Advance(0)
		frames++
		// a host would redraw here
		if res.Outcome.Terminal() {
			fmt.Println("outcome:", res.Outcome)
			fmt.Println("length:", res.Length, "cost:", res.Cost)
			break
		}
	}
	fmt.Println("frames:", frames)

	// Output:
	// outcome: found
	// length: 7 cost: 6
	// frames: 7
}

// ExampleEngine_Solve runs to completion with diagonal moves.
func ExampleEngine_Solve() {
	g, _ := grid.New(5, 5)
	_ = g.SetStart(0, 0)
	_ = g.SetEnd(4, 4)

	e := engine.New(g)
	_ = e.Configure(engine.Config{Algorithm: search.AStar, Diagonal: true, MinSide: 4})
	res, _ := e.Solve()

	fmt.Printf("%s %d nodes, cost %.4f\n", res.Outcome, res.Length, res.Cost)

	// Output:
	// found 5 nodes, cost 5.6569
}
