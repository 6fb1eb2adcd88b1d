package search

import "github.com/katalvlaran/gridpath/grid"

// stepAStar pops the best live entry and expands it.
//
// Entries whose node was closed or re-queued with a lower priority are
// discarded within the same step. A neighbor is (re)queued when it is new or
// reachable more cheaply than before.
func (r *Run) stepAStar() Outcome {
	var i int
	for {
		e, ok := r.queue.pop()
		if !ok {
			return Exhausted
		}
		if r.closed[e.idx] || e.priority != r.g.Node(e.idx).Priority {
			continue
		}
		i = e.idx
		break
	}
	if i == r.goal {
		return Found
	}
	r.closed[i] = true
	r.expand(i)

	cur := r.g.Node(i)
	for _, e := range r.g.Neighbors(i) {
		if r.closed[e.To] {
			continue
		}
		c := cur.Cost + e.Cost
		n := r.g.Node(e.To)
		if n.Is(grid.FlagVisited) && c >= n.Cost-costEpsilon {
			continue
		}
		n.Set(grid.FlagVisited)
		n.Cost = c
		n.CameFrom = i
		n.Heuristic = r.heuristic(e.To)
		n.Priority = c + n.Heuristic
		r.queue.push(e.To, n.Priority)
	}

	return Continue
}
