// Package bench compares every engine configuration on one grid and
// renders the results as a table.
//
// Each variation (algorithm × diagonal × symmetry reduction, minus BFS with
// symmetry reduction, whose paths are not comparable) is prepared and solved
// Cycles times; times are averaged and rows sorted by algorithm time.
package bench

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/katalvlaran/gridpath/engine"
	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/rsr"
	"github.com/katalvlaran/gridpath/search"
)

// ErrNoCycles indicates a non-positive cycle count.
var ErrNoCycles = errors.New("bench: cycles must be positive")

// Row is the averaged result of one variation.
type Row struct {
	Config    engine.Config
	Outcome   search.Outcome
	AlgoTime  time.Duration
	Prepare   time.Duration
	Steps     int
	Expanded  int
	PathNodes int
	PathCost  float64
}

// Options configures Run.
type Options struct {
	Cycles  int
	MinSide int
	Engine  []engine.Option
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns 10 cycles and the default minimum square side.
func DefaultOptions() Options {
	return Options{Cycles: 10, MinSide: rsr.DefaultMinSide}
}

// WithCycles sets how many times each variation runs.
func WithCycles(n int) Option { return func(o *Options) { o.Cycles = n } }

// WithMinSide sets the symmetry minimum square side.
func WithMinSide(n int) Option { return func(o *Options) { o.MinSide = n } }

// WithEngineOptions passes options (clock, logger, observers) to every
// engine created by Run.
func WithEngineOptions(opts ...engine.Option) Option {
	return func(o *Options) { o.Engine = append(o.Engine, opts...) }
}

// Variations lists every compared configuration.
func Variations(minSide int) []engine.Config {
	var out []engine.Config
	for _, diagonal := range []bool{false, true} {
		for _, reduce := range []bool{false, true} {
			for _, algo := range search.Algorithms {
				if algo == search.BFS && reduce {
					continue
				}
				out = append(out, engine.Config{Algorithm: algo, Diagonal: diagonal, RSR: reduce, MinSide: minSide})
			}
		}
	}
	return out
}

// Run benchmarks every variation on g. The grid's derived data and search
// marks are overwritten; walls and endpoints are kept.
func Run(g *grid.Grid, opts ...Option) ([]Row, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.Cycles <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrNoCycles, o.Cycles)
	}

	var rows []Row
	for _, cfg := range Variations(o.MinSide) {
		e := engine.New(g, append([]engine.Option{engine.WithConfig(cfg)}, o.Engine...)...)
		row := Row{Config: cfg}
		for c := 0; c < o.Cycles; c++ {
			t, err := e.Prepare()
			if err != nil {
				return nil, err
			}
			if err := e.StartGridRun(); err != nil {
				return nil, fmt.Errorf("%s: %w", cfg, err)
			}
			if _, err := e.Advance(engine.RunToCompletion); err != nil {
				return nil, fmt.Errorf("%s: %w", cfg, err)
			}
			s := e.Stats()
			row.Prepare += t.Total()
			row.AlgoTime += s.AlgoTime
			row.Outcome, row.Steps, row.Expanded = s.Outcome, s.Steps, s.Expanded
			row.PathNodes, row.PathCost = s.PathNodes, s.PathCost
		}
		row.Prepare /= time.Duration(o.Cycles)
		row.AlgoTime /= time.Duration(o.Cycles)
		rows = append(rows, row)
	}
	g.ResetSearch()

	sort.SliceStable(rows, func(i, j int) bool { return rows[i].AlgoTime < rows[j].AlgoTime })
	return rows, nil
}

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	borderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("62"))
)

// Report renders rows as a bordered table.
func Report(rows []Row) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(borderStyle).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		Headers("variation", "outcome", "algo time", "prepare", "steps", "expanded", "nodes", "cost")
	for _, r := range rows {
		cost := "-"
		if r.Outcome == search.Found {
			cost = fmt.Sprintf("%.3f", r.PathCost)
		}
		t.Row(
			r.Config.String(),
			r.Outcome.String(),
			r.AlgoTime.String(),
			r.Prepare.String(),
			fmt.Sprint(r.Steps),
			fmt.Sprint(r.Expanded),
			fmt.Sprint(r.PathNodes),
			cost,
		)
	}
	return t.String()
}
