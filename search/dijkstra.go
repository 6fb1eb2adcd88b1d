package search

import (
	"math"
	"sort"

	"github.com/katalvlaran/gridpath/grid"
)

// stepDijkstra raises the cost ceiling by one move and expands eligible
// frontier nodes.
//
// Steps:
//  1. ceiling += delta; drop nodes expanded during the previous step.
//  2. Empty frontier: Exhausted.
//  3. Collect frontier nodes with cost ≤ ceiling and sort them by cost.
//  4. Expand them in order, stopping before any node costlier than the
//     cheapest cost assigned during this step. The goal ends the run when
//     its turn comes.
func (r *Run) stepDijkstra() Outcome {
	r.ceiling += r.delta

	open := r.frontier[:0]
	for _, i := range r.frontier {
		if !r.closed[i] {
			open = append(open, i)
		}
	}
	r.frontier = open
	if len(r.frontier) == 0 {
		return Exhausted
	}

	r.batch = r.batch[:0]
	for _, i := range r.frontier {
		if r.g.Node(i).Cost <= r.ceiling+costEpsilon {
			r.batch = append(r.batch, i)
		}
	}
	sort.SliceStable(r.batch, func(a, b int) bool {
		return r.g.Node(r.batch[a]).Cost < r.g.Node(r.batch[b]).Cost
	})

	stepMin := math.Inf(1)
	for _, i := range r.batch {
		cur := r.g.Node(i)
		if cur.Cost > stepMin+costEpsilon {
			break
		}
		if i == r.goal {
			return Found
		}
		r.closed[i] = true
		r.expand(i)

		for _, e := range r.g.Neighbors(i) {
			if r.closed[e.To] {
				continue
			}
			c := cur.Cost + e.Cost
			n := r.g.Node(e.To)
			switch {
			case !n.Is(grid.FlagVisited):
				n.Set(grid.FlagVisited)
				r.frontier = append(r.frontier, e.To)
			case c < n.Cost-costEpsilon:
			default:
				continue
			}
			n.Cost = c
			n.CameFrom = i
			if c < stepMin {
				stepMin = c
			}
		}
	}

	return Continue
}

// Ceiling returns the current Dijkstra cost ceiling (zero for other
// algorithms).
func (r *Run) Ceiling() float64 { return r.ceiling }
