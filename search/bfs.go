package search

import "github.com/katalvlaran/gridpath/grid"

// stepBFS expands the current generation.
//
// The frontier holds the previous generation (already expanded) followed by
// the current one. Dropping the previous generation is deferred to the start
// of the next step, so a whole generation stays inspectable until then.
func (r *Run) stepBFS() Outcome {
	r.frontier = r.frontier[r.flush:]
	r.flush = 0
	if len(r.frontier) == 0 {
		return Exhausted
	}

	generation := len(r.frontier)
	for k := 0; k < generation; k++ {
		i := r.frontier[k]
		if i == r.goal {
			return Found
		}
		cur := r.g.Node(i)
		for _, e := range r.g.Neighbors(i) {
			n := r.g.Node(e.To)
			if n.Is(grid.FlagVisited) {
				continue
			}
			n.Set(grid.FlagVisited)
			n.CameFrom = i
			n.Cost = cur.Cost + e.Cost
			r.frontier = append(r.frontier, e.To)
		}
		r.expand(i)
	}
	r.flush = generation

	return Continue
}
