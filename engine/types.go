// Package engine defines configuration, options, statistics and sentinel
// errors for the host-facing pathfinding engine.
package engine

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/rsr"
	"github.com/katalvlaran/gridpath/search"
)

// Sentinel errors for engine operations. Endpoint problems are reported
// with search.ErrInvalidEndpoints.
var (
	// ErrNoGrid indicates an operation that needs a grid on an engine without one.
	ErrNoGrid = errors.New("engine: no grid")

	// ErrNoRun indicates Advance before StartRun, or after ResetRun.
	ErrNoRun = errors.New("engine: no run started")

	// ErrInvalidConfig indicates an unusable Config.
	ErrInvalidConfig = errors.New("engine: invalid configuration")
)

// RunToCompletion is the Advance budget that never yields before a
// terminal outcome.
const RunToCompletion time.Duration = -1

// Config selects the search strategy and the preprocessing passes. It is
// passed explicitly through Configure; there is no global state.
type Config struct {
	Algorithm search.Algorithm `json:"algorithm" yaml:"algorithm"`
	Diagonal  bool             `json:"diagonal" yaml:"diagonal"`
	RSR       bool             `json:"rsr" yaml:"rsr"`
	MinSide   int              `json:"min_side" yaml:"min_side"`
}

// DefaultConfig returns A* with 4-way moves and no symmetry reduction.
func DefaultConfig() Config {
	return Config{
		Algorithm: search.AStar,
		MinSide:   rsr.DefaultMinSide,
	}
}

// Validate reports ErrInvalidConfig for an unknown algorithm or a minimum
// square side below 2.
func (c Config) Validate() error {
	switch c.Algorithm {
	case search.BFS, search.Dijkstra, search.AStar:
	default:
		return fmt.Errorf("%w: algorithm %v", ErrInvalidConfig, c.Algorithm)
	}
	if c.MinSide < 2 {
		return fmt.Errorf("%w: min side %d < 2", ErrInvalidConfig, c.MinSide)
	}
	return nil
}

// String renders c the way the benchmark report labels variations.
func (c Config) String() string {
	s := c.Algorithm.String()
	if c.Diagonal {
		s += "+diag"
	}
	if c.RSR {
		s += "+rsr"
	}
	return s
}

// sameTopology reports whether c and o derive identical neighbor graphs.
func (c Config) sameTopology(o Config) bool {
	return c.Diagonal == o.Diagonal && c.RSR == o.RSR && (!c.RSR || c.MinSide == o.MinSide)
}

// Timings holds the elapsed time of each preparation phase.
type Timings struct {
	Reset     time.Duration `json:"reset"`
	RSR       time.Duration `json:"rsr"`
	Neighbors time.Duration `json:"neighbors"`
}

// Total returns the sum of all phases.
func (t Timings) Total() time.Duration { return t.Reset + t.RSR + t.Neighbors }

// Stats is a read-only snapshot of the engine.
type Stats struct {
	RunID     string         `json:"run_id,omitempty"`
	Config    Config         `json:"config"`
	Prepare   Timings        `json:"prepare"`
	Rects     int            `json:"rects"`
	AlgoTime  time.Duration  `json:"algo_time"`
	Steps     int            `json:"steps"`
	Expanded  int            `json:"expanded"`
	Frontier  int            `json:"frontier"`
	Outcome   search.Outcome `json:"outcome"`
	PathNodes int            `json:"path_nodes"`
	PathCost  float64        `json:"path_cost"`
}

// Result is returned by Advance. Path, Length and Cost are set only when
// Outcome is search.Found.
type Result struct {
	Outcome search.Outcome `json:"outcome"`
	Path    []grid.Point   `json:"path,omitempty"`
	Length  int            `json:"length"`
	Cost    float64        `json:"cost"`
}

// Observer receives engine lifecycle notifications.
type Observer interface {
	// Prepared is called after every successful Prepare.
	Prepared(s Stats)
	// RunFinished is called once per run when it reaches a terminal outcome.
	RunFinished(s Stats)
}

// Options configures an Engine.
type Options struct {
	Config    Config
	Logger    *logrus.Entry
	Clock     func() time.Time
	Observers []Observer
}

// Option configures an Engine via functional arguments.
type Option func(*Options)

// DefaultOptions returns DefaultConfig, a logger that discards output and
// the wall clock.
func DefaultOptions() Options {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return Options{
		Config: DefaultConfig(),
		Logger: logrus.NewEntry(l),
		Clock:  time.Now,
	}
}

// WithConfig sets the initial configuration.
func WithConfig(c Config) Option {
	return func(o *Options) { o.Config = c }
}

// WithLogger routes engine logs to l.
func WithLogger(l *logrus.Entry) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithClock replaces time.Now, for deterministic scheduling in tests.
func WithClock(now func() time.Time) Option {
	return func(o *Options) {
		if now != nil {
			o.Clock = now
		}
	}
}

// WithObserver registers an Observer.
func WithObserver(obs Observer) Option {
	return func(o *Options) {
		if obs != nil {
			o.Observers = append(o.Observers, obs)
		}
	}
}
