package search

import (
	"fmt"

	"github.com/katalvlaran/gridpath/grid"
)

// Reconstruct follows CameFrom links from goal back to start and returns the
// node indices in start→goal order, marking each with grid.FlagPath.
// The walk is bounded by g.Len() links; a chain that ends or loops before
// reaching start yields ErrNoPath and leaves no path marks.
// Complexity: O(L), L = path length.
func Reconstruct(g *grid.Grid, start, goal int) ([]int, error) {
	if start < 0 || start >= g.Len() || goal < 0 || goal >= g.Len() {
		return nil, fmt.Errorf("%w: endpoint out of range", ErrNoPath)
	}

	path := []int{goal}
	for cur := goal; cur != start; {
		if len(path) > g.Len() {
			return nil, fmt.Errorf("%w: came-from chain exceeds %d nodes", ErrNoPath, g.Len())
		}
		cur = g.Node(cur).CameFrom
		if cur == grid.None {
			return nil, fmt.Errorf("%w: chain from %v ends before start", ErrNoPath, g.Node(goal).Point())
		}
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	for _, i := range path {
		g.Node(i).Set(grid.FlagPath)
	}

	return path, nil
}

// Points converts node indices to coordinates.
func Points(g *grid.Grid, path []int) []grid.Point {
	out := make([]grid.Point, len(path))
	for k, i := range path {
		out[k] = g.Node(i).Point()
	}
	return out
}

// PathCost sums the edge costs along path using the grid's neighbor maps.
// Consecutive nodes that are not adjacent yield ErrNoPath.
func PathCost(g *grid.Grid, path []int) (float64, error) {
	total := 0.0
	for k := 1; k < len(path); k++ {
		found := false
		for _, e := range g.Neighbors(path[k-1]) {
			if e.To == path[k] {
				total += e.Cost
				found = true
				break
			}
		}
		if !found {
			return 0, fmt.Errorf("%w: %v and %v are not adjacent", ErrNoPath,
				g.Node(path[k-1]).Point(), g.Node(path[k]).Point())
		}
	}
	return total, nil
}
