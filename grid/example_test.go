package grid_test

import (
	"fmt"

	"github.com/katalvlaran/gridpath/grid"
)

// ExampleParse builds a grid from a textual map and lists the neighbors of
// the start cell under 8-connectivity. The wall at (1,0) blocks both the east
// move and the south-east corner cut.
func ExampleParse() {
	g, _ := grid.ParseString("S#.\n...\n..E")
	g.SetDiagonal(true)

	fmt.Println("start:", g.StartPoint(), "end:", g.EndPoint())
	for _, e := range g.Neighbors(g.Start()) {
		fmt.Printf("%s -> %v cost %.0f\n", e.Dir, g.Node(e.To).Point(), e.Cost)
	}

	// Output:
	// start: {0 0} end: {2 2}
	// S -> {0 1} cost 1
}

// ExampleGrid_String shows the round trip between edits and the map format.
func ExampleGrid_String() {
	g, _ := grid.New(4, 2)
	_ = g.SetStart(0, 0)
	_ = g.SetEnd(3, 1)
	_ = g.SetWall(1, 0, true)
	_ = g.SetWall(2, 1, true)

	fmt.Print(g)

	// Output:
	// S#..
	// ..#E
}
