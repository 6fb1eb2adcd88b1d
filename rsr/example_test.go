package rsr_test

import (
	"fmt"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/rsr"
)

// ExampleReduce collapses a 24×6 open corridor. Columns 0 and 23 hold the
// endpoints, so four squares cover the rest of the map.
func ExampleReduce() {
	g, _ := grid.New(24, 6)
	_ = g.SetStart(0, 2)
	_ = g.SetEnd(23, 2)

	for _, r := range rsr.Reduce(g) {
		fmt.Printf("square at (%d,%d) side %d\n", r.Col, r.Row, r.Side)
	}
	border, skippable := rsr.Count(g)
	fmt.Println("border:", border, "skippable:", skippable)

	// Output:
	// square at (1,0) side 6
	// square at (7,0) side 6
	// square at (13,0) side 6
	// square at (19,0) side 4
	// border: 72 skippable: 52
}
