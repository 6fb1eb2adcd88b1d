package engine

import (
	"fmt"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/rsr"
	"github.com/katalvlaran/gridpath/search"
)

// Engine drives searches over one grid. It is not safe for concurrent use.
type Engine struct {
	g         *grid.Grid
	cfg       Config
	log       *logrus.Entry
	now       func() time.Time
	observers []Observer

	// preparation state
	prepared bool
	prepRev  uint64
	prepCfg  Config
	rects    []rsr.Rect
	timings  Timings

	// run state
	run      *search.Run
	runID    ulid.ULID
	algoTime time.Duration
	finished bool
	path     []grid.Point
}

// New returns an engine over g, which may be nil until SetGrid. An invalid
// WithConfig value is replaced by DefaultConfig and logged.
func New(g *grid.Grid, opts ...Option) *Engine {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	e := &Engine{
		g:         g,
		cfg:       o.Config,
		log:       o.Logger,
		now:       o.Clock,
		observers: o.Observers,
	}
	if err := e.cfg.Validate(); err != nil {
		e.log.WithError(err).Warn("falling back to default configuration")
		e.cfg = DefaultConfig()
	}
	return e
}

// Grid returns the current grid (possibly nil).
func (e *Engine) Grid() *grid.Grid { return e.g }

// Config returns the current configuration.
func (e *Engine) Config() Config { return e.cfg }

// SetGrid replaces the grid and discards all derived and run state.
func (e *Engine) SetGrid(g *grid.Grid) {
	e.g = g
	e.prepared = false
	e.rects = nil
	e.dropRun()
}

// Configure validates and applies c. The current run is discarded; derived
// data is marked stale when the neighbor topology would change.
func (e *Engine) Configure(c Config) error {
	if err := c.Validate(); err != nil {
		return err
	}
	if !c.sameTopology(e.cfg) {
		e.prepared = false
	}
	e.cfg = c
	e.dropRun()
	e.log.WithFields(logrus.Fields{
		"algorithm": c.Algorithm,
		"diagonal":  c.Diagonal,
		"rsr":       c.RSR,
	}).Debug("configured")
	return nil
}

// Prepare rebuilds every piece of derived data: it resets classification
// and neighbor maps, applies symmetry reduction when enabled and eagerly
// builds all neighbor maps. It returns the time spent in each phase.
// Calling it twice without changes yields identical neighbor graphs.
func (e *Engine) Prepare() (Timings, error) {
	if e.g == nil {
		return Timings{}, ErrNoGrid
	}
	e.dropRun()

	var t Timings
	began := e.now()
	e.g.ResetDerived()
	e.g.SetDiagonal(e.cfg.Diagonal)
	mark := e.now()
	t.Reset = mark.Sub(began)

	e.rects = nil
	if e.cfg.RSR {
		e.rects = rsr.Reduce(e.g, rsr.WithMinSide(e.cfg.MinSide))
		next := e.now()
		t.RSR = next.Sub(mark)
		mark = next
	}

	built := e.g.BuildNeighbors()
	t.Neighbors = e.now().Sub(mark)

	e.timings = t
	e.prepared = true
	e.prepRev = e.g.Revision()
	e.prepCfg = e.cfg

	e.log.WithFields(logrus.Fields{
		"width":     e.g.Width,
		"height":    e.g.Height,
		"rects":     len(e.rects),
		"nodes":     built,
		"reset":     t.Reset,
		"rsr":       t.RSR,
		"neighbors": t.Neighbors,
	}).Debug("prepared")
	stats := e.Stats()
	for _, o := range e.observers {
		o.Prepared(stats)
	}

	return t, nil
}

// stale reports whether derived data must be rebuilt before a run.
func (e *Engine) stale() bool {
	return !e.prepared || e.prepRev != e.g.Revision() || !e.prepCfg.sameTopology(e.cfg)
}

// StartRun seeds a new run from start to end. Endpoints that differ from
// the grid's current ones are moved there first, then stale derived data is
// rebuilt. Returns ErrNoGrid, or search.ErrInvalidEndpoints when an endpoint
// is unset, out of bounds, a wall, or both are the same cell.
func (e *Engine) StartRun(start, end grid.Point) error {
	if e.g == nil {
		return ErrNoGrid
	}
	if err := e.placeEndpoints(start, end); err != nil {
		return err
	}
	if e.stale() {
		if _, err := e.Prepare(); err != nil {
			return err
		}
	}

	e.dropRun()
	run, err := search.NewRun(e.g, e.g.Start(), e.g.End(), search.WithAlgorithm(e.cfg.Algorithm))
	if err != nil {
		return err
	}
	e.run = run
	e.runID = ulid.Make()

	fields := logrus.Fields{
		"run":       e.runID.String(),
		"algorithm": e.cfg.Algorithm,
		"start":     start,
		"end":       end,
	}
	if e.cfg.Algorithm == search.BFS && e.cfg.RSR && len(e.rects) > 0 {
		e.log.WithFields(fields).Warn("bfs ignores skip edge costs; path may not be shortest")
	}
	e.log.WithFields(fields).Info("run started")

	return nil
}

// StartGridRun starts a run between the grid's own start and end.
func (e *Engine) StartGridRun() error {
	if e.g == nil {
		return ErrNoGrid
	}
	return e.StartRun(e.g.StartPoint(), e.g.EndPoint())
}

// placeEndpoints validates start and end and moves the grid's endpoints.
func (e *Engine) placeEndpoints(start, end grid.Point) error {
	check := func(role string, p grid.Point) error {
		if !p.Valid() {
			return fmt.Errorf("%w: %s unset", search.ErrInvalidEndpoints, role)
		}
		n := e.g.At(p.Col, p.Row)
		if n == nil {
			return fmt.Errorf("%w: %s %v out of bounds", search.ErrInvalidEndpoints, role, p)
		}
		if n.Is(grid.FlagWall) {
			return fmt.Errorf("%w: %s %v is a wall", search.ErrInvalidEndpoints, role, p)
		}
		return nil
	}
	if err := check("start", start); err != nil {
		return err
	}
	if err := check("end", end); err != nil {
		return err
	}
	if start == end {
		return fmt.Errorf("%w: start equals end %v", search.ErrInvalidEndpoints, start)
	}

	if e.g.StartPoint() == start && e.g.EndPoint() == end {
		return nil
	}
	// clear both first so swapped endpoints do not collide
	e.g.ClearStart()
	e.g.ClearEnd()
	if err := e.g.SetStart(start.Col, start.Row); err != nil {
		return fmt.Errorf("%w: %v", search.ErrInvalidEndpoints, err)
	}
	if err := e.g.SetEnd(end.Col, end.Row); err != nil {
		return fmt.Errorf("%w: %v", search.ErrInvalidEndpoints, err)
	}
	return nil
}

// Advance steps the current run within budget (see package doc) and returns
// the outcome. On Found the path is reconstructed once and returned by every
// later call until the next run.
func (e *Engine) Advance(budget time.Duration) (Result, error) {
	if e.run == nil {
		return Result{}, ErrNoRun
	}
	if e.finished {
		return e.result(), nil
	}

	began := e.now()
	for {
		out := e.run.Step()
		if out.Terminal() || budget == 0 {
			break
		}
		if budget > 0 && e.now().Sub(began) > budget {
			break
		}
	}
	e.algoTime += e.now().Sub(began)

	if e.run.Outcome().Terminal() {
		if err := e.finish(); err != nil {
			return Result{Outcome: e.run.Outcome()}, err
		}
	}
	return e.result(), nil
}

// finish reconstructs the path on Found and notifies observers.
func (e *Engine) finish() error {
	e.finished = true
	fields := logrus.Fields{
		"run":      e.runID.String(),
		"outcome":  e.run.Outcome(),
		"steps":    e.run.Steps(),
		"expanded": e.run.Expanded(),
		"elapsed":  e.algoTime,
	}
	if e.run.Outcome() == search.Found {
		idx, err := e.run.Path()
		if err != nil {
			e.log.WithFields(fields).WithError(err).Error("path reconstruction failed")
			return err
		}
		e.path = search.Points(e.g, idx)
		fields["nodes"] = len(e.path)
		fields["cost"] = e.run.Cost()
	}
	e.log.WithFields(fields).Info("run finished")

	stats := e.Stats()
	for _, o := range e.observers {
		o.RunFinished(stats)
	}
	return nil
}

func (e *Engine) result() Result {
	r := Result{Outcome: e.run.Outcome()}
	if r.Outcome == search.Found && e.path != nil {
		r.Path = e.path
		r.Length = len(e.path)
		r.Cost = e.run.Cost()
	}
	return r
}

// Solve starts a run between the grid's endpoints and runs it to completion.
func (e *Engine) Solve() (Result, error) {
	if err := e.StartGridRun(); err != nil {
		return Result{}, err
	}
	return e.Advance(RunToCompletion)
}

// Running reports whether a run exists and has not reached a terminal outcome.
func (e *Engine) Running() bool { return e.run != nil && !e.finished }

// Stats returns a snapshot of preparation and run statistics.
func (e *Engine) Stats() Stats {
	s := Stats{
		Config:  e.cfg,
		Prepare: e.timings,
		Rects:   len(e.rects),
	}
	if e.run == nil {
		return s
	}
	s.RunID = e.runID.String()
	s.AlgoTime = e.algoTime
	s.Steps = e.run.Steps()
	s.Expanded = e.run.Expanded()
	s.Frontier = e.run.FrontierLen()
	s.Outcome = e.run.Outcome()
	if s.Outcome == search.Found && e.path != nil {
		s.PathNodes = len(e.path)
		s.PathCost = e.run.Cost()
	}
	return s
}

// ResetRun discards the current run and clears search marks on the grid,
// keeping walls, classification and neighbor maps.
func (e *Engine) ResetRun() {
	e.dropRun()
	if e.g != nil {
		e.g.ResetSearch()
	}
}

// Reset discards the run and all derived data; the next StartRun prepares
// again.
func (e *Engine) Reset() {
	e.dropRun()
	e.prepared = false
	e.rects = nil
	e.timings = Timings{}
	if e.g != nil {
		e.g.ResetDerived()
	}
}

func (e *Engine) dropRun() {
	e.run = nil
	e.runID = ulid.ULID{}
	e.algoTime = 0
	e.finished = false
	e.path = nil
}
