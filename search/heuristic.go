package search

import (
	"math"

	"github.com/katalvlaran/gridpath/grid"
)

// Manhattan returns |Δcol| + |Δrow|, admissible for 4-way movement.
func Manhattan(a, b grid.Point) float64 {
	dx, dy := delta(a, b)
	return dx + dy
}

// Octile returns dx + dy + (√2 − 2)·min(dx,dy), admissible for 8-way
// movement with diagonal cost √2.
func Octile(a, b grid.Point) float64 {
	dx, dy := delta(a, b)
	return dx + dy + (grid.DiagonalCost-2)*math.Min(dx, dy)
}

func delta(a, b grid.Point) (dx, dy float64) {
	return math.Abs(float64(a.Col - b.Col)), math.Abs(float64(a.Row - b.Row))
}

// heuristic estimates the remaining cost from node i to the goal under the
// grid's movement model.
func (r *Run) heuristic(i int) float64 {
	a, b := r.g.Node(i).Point(), r.g.Node(r.goal).Point()
	if r.g.Diagonal() {
		return Octile(a, b)
	}
	return Manhattan(a, b)
}
