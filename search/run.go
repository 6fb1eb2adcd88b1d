package search

import (
	"fmt"

	"github.com/katalvlaran/gridpath/grid"
)

// costEpsilon absorbs floating point noise when comparing accumulated costs.
const costEpsilon = 1e-9

// Run is the mutable state of one search from start to goal. It is not safe
// for concurrent use; one caller drives it with Step.
type Run struct {
	g     *grid.Grid
	opts  Options
	start int
	goal  int

	outcome  Outcome
	steps    int
	expanded int

	// BFS and Dijkstra
	frontier []int
	flush    int // BFS: leading frontier entries to drop on the next step
	batch    []int
	ceiling  float64
	delta    float64

	// Dijkstra and AStar
	closed []bool

	// AStar
	queue queue
}

// NewRun validates the endpoints, clears previous search state on g and
// seeds a new run at start. start and goal are node indices of g.
// Returns ErrInvalidEndpoints when either index is out of range, they are
// equal, or one of them is a wall.
func NewRun(g *grid.Grid, start, goal int, opts ...Option) (*Run, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := checkEndpoints(g, start, goal); err != nil {
		return nil, err
	}

	g.ResetSearch()
	r := &Run{
		g:     g,
		opts:  o,
		start: start,
		goal:  goal,
	}
	s := g.Node(start)
	s.Set(grid.FlagVisited)

	switch o.Algorithm {
	case BFS:
		r.frontier = append(r.frontier, start)
	case Dijkstra:
		r.closed = make([]bool, g.Len())
		r.delta = grid.OrthogonalCost
		if g.Diagonal() {
			r.delta = grid.DiagonalCost
		}
		r.frontier = append(r.frontier, start)
	case AStar:
		r.closed = make([]bool, g.Len())
		s.Heuristic = r.heuristic(start)
		s.Priority = s.Heuristic
		r.queue.push(start, s.Priority)
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownAlgorithm, o.Algorithm)
	}

	return r, nil
}

func checkEndpoints(g *grid.Grid, start, goal int) error {
	switch {
	case g == nil:
		return fmt.Errorf("%w: nil grid", ErrInvalidEndpoints)
	case start < 0 || start >= g.Len():
		return fmt.Errorf("%w: start unset or out of range", ErrInvalidEndpoints)
	case goal < 0 || goal >= g.Len():
		return fmt.Errorf("%w: goal unset or out of range", ErrInvalidEndpoints)
	case start == goal:
		return fmt.Errorf("%w: start equals goal", ErrInvalidEndpoints)
	case g.Node(start).Is(grid.FlagWall):
		return fmt.Errorf("%w: start %v is a wall", ErrInvalidEndpoints, g.Node(start).Point())
	case g.Node(goal).Is(grid.FlagWall):
		return fmt.Errorf("%w: goal %v is a wall", ErrInvalidEndpoints, g.Node(goal).Point())
	}
	return nil
}

// Step advances the run by one bounded unit of work: one generation for BFS
// and Dijkstra, one queue pop for AStar. After a terminal outcome Step does
// nothing and returns that outcome again.
func (r *Run) Step() Outcome {
	if r.outcome.Terminal() {
		return r.outcome
	}
	r.steps++
	switch r.opts.Algorithm {
	case BFS:
		r.outcome = r.stepBFS()
	case Dijkstra:
		r.outcome = r.stepDijkstra()
	default:
		r.outcome = r.stepAStar()
	}
	return r.outcome
}

// Finish steps until the run is terminal and returns the final outcome.
func (r *Run) Finish() Outcome {
	for !r.Step().Terminal() {
	}
	return r.outcome
}

// expand records n as expanded and runs the hook.
func (r *Run) expand(i int) {
	r.expanded++
	r.opts.OnExpand(i)
}

// Grid returns the grid the run operates on.
func (r *Run) Grid() *grid.Grid { return r.g }

// Algorithm returns the run's algorithm.
func (r *Run) Algorithm() Algorithm { return r.opts.Algorithm }

// Start returns the start index.
func (r *Run) Start() int { return r.start }

// Goal returns the goal index.
func (r *Run) Goal() int { return r.goal }

// Outcome returns the latest outcome.
func (r *Run) Outcome() Outcome { return r.outcome }

// Steps returns the number of Step calls that did work.
func (r *Run) Steps() int { return r.steps }

// Expanded returns the number of node expansions so far.
func (r *Run) Expanded() int { return r.expanded }

// FrontierLen returns the number of pending frontier or queue entries.
func (r *Run) FrontierLen() int {
	if r.opts.Algorithm == AStar {
		return r.queue.Len()
	}
	return len(r.frontier) - r.flush
}

// Path reconstructs the found path as node indices from start to goal and
// marks its nodes with grid.FlagPath. Returns ErrNoPath unless the outcome
// is Found.
func (r *Run) Path() ([]int, error) {
	if r.outcome != Found {
		return nil, fmt.Errorf("%w: outcome is %s", ErrNoPath, r.outcome)
	}
	return Reconstruct(r.g, r.start, r.goal)
}

// Cost returns the accumulated cost of the goal. Meaningful once Found.
func (r *Run) Cost() float64 { return r.g.Node(r.goal).Cost }
