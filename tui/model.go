// Package tui is an interactive bubbletea host for the engine: it advances
// the current run once per tick within the configured time budget and
// redraws the grid between ticks.
package tui

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/gridpath/engine"
	"github.com/katalvlaran/gridpath/render"
	"github.com/katalvlaran/gridpath/search"
)

// minFrame bounds the tick rate when no step delay is configured.
const minFrame = 16 * time.Millisecond

// TickMsg asks the model to advance the run. Seq identifies the tick chain
// that scheduled it; ticks from a superseded chain are dropped.
type TickMsg struct {
	Seq uint64
	At  time.Time
}

// Options configures a Model.
type Options struct {
	Budget  time.Duration
	Delay   time.Duration
	Density float64
	Seed    int64
	Theme   render.Theme
	Keys    KeyMap
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns a 16ms budget, no extra delay, 1/11 wall density
// and the default theme.
func DefaultOptions() Options {
	return Options{
		Budget:  16 * time.Millisecond,
		Density: 1.0 / 11,
		Seed:    time.Now().UnixNano(),
		Theme:   render.DefaultTheme(),
		Keys:    DefaultKeyMap(),
	}
}

// WithBudget sets the Advance budget per tick.
func WithBudget(d time.Duration) Option { return func(o *Options) { o.Budget = d } }

// WithDelay sets the pause between ticks.
func WithDelay(d time.Duration) Option { return func(o *Options) { o.Delay = d } }

// WithDensity sets the probability used by the random walls key.
func WithDensity(p float64) Option { return func(o *Options) { o.Density = p } }

// WithSeed fixes the random wall generator.
func WithSeed(seed int64) Option { return func(o *Options) { o.Seed = seed } }

// WithTheme selects the render theme.
func WithTheme(t render.Theme) Option { return func(o *Options) { o.Theme = t } }

// Model is the bubbletea model.
type Model struct {
	eng  *engine.Engine
	opts Options
	rng  *rand.Rand
	help help.Model

	// seq is bumped whenever a new tick chain starts, so at most one is live.
	seq    uint64
	paused bool
	status string
	err    error
	width  int
}

// New returns a Model driving e, whose grid must be set.
func New(e *engine.Engine, opts ...Option) Model {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return Model{
		eng:  e,
		opts: o,
		rng:  rand.New(rand.NewSource(o.Seed)),
		help: help.New(),
	}
}

// Init implements tea.Model. It starts the first run on the initial chain.
func (m Model) Init() tea.Cmd {
	return m.start()
}

// restart starts a fresh run on a new tick chain.
func (m *Model) restart() tea.Cmd {
	m.seq++
	return m.start()
}

func (m *Model) start() tea.Cmd {
	m.err = m.eng.StartGridRun()
	if m.err != nil {
		m.status = "cannot start: " + m.err.Error()
		return nil
	}
	m.status = "running " + m.eng.Config().String()
	return m.tick()
}

func (m *Model) tick() tea.Cmd {
	seq := m.seq
	d := max(m.opts.Delay, minFrame)
	return tea.Tick(d, func(t time.Time) tea.Msg { return TickMsg{Seq: seq, At: t} })
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil
	case TickMsg:
		if msg.Seq != m.seq || m.paused || !m.eng.Running() {
			return m, nil
		}
		cmd := m.advance(m.opts.Budget)
		return m, cmd
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

// advance runs one Advance call and returns the next tick while running.
func (m *Model) advance(budget time.Duration) tea.Cmd {
	res, err := m.eng.Advance(budget)
	if err != nil {
		m.err = err
		m.status = err.Error()
		return nil
	}
	switch res.Outcome {
	case search.Found:
		m.status = fmt.Sprintf("found: %d nodes, cost %.3f", res.Length, res.Cost)
		return nil
	case search.Exhausted:
		m.status = "exhausted: no path"
		return nil
	}
	if m.paused {
		return nil
	}
	return m.tick()
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	k := m.opts.Keys
	switch {
	case key.Matches(msg, k.Quit):
		return m, tea.Quit
	case key.Matches(msg, k.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(msg, k.Pause):
		if !m.eng.Running() {
			return m, nil
		}
		m.paused = !m.paused
		if m.paused {
			m.status = "paused"
			return m, nil
		}
		m.status = "running " + m.eng.Config().String()
		m.seq++
		return m, m.tick()
	case key.Matches(msg, k.Step):
		if !m.eng.Running() {
			return m, nil
		}
		m.paused = true
		m.advance(0)
		return m, nil
	case key.Matches(msg, k.Restart):
		m.paused = false
		cmd := m.restart()
		return m, cmd
	case key.Matches(msg, k.Algorithm):
		c := m.eng.Config()
		c.Algorithm = search.Algorithms[(int(c.Algorithm)+1)%len(search.Algorithms)]
		return m.reconfigure(c)
	case key.Matches(msg, k.Diagonal):
		c := m.eng.Config()
		c.Diagonal = !c.Diagonal
		return m.reconfigure(c)
	case key.Matches(msg, k.Symmetry):
		c := m.eng.Config()
		c.RSR = !c.RSR
		return m.reconfigure(c)
	case key.Matches(msg, k.Walls):
		m.eng.ResetRun()
		m.eng.Grid().RandomWalls(m.rng, m.opts.Density)
		m.paused = false
		cmd := m.restart()
		return m, cmd
	case key.Matches(msg, k.Clear):
		g := m.eng.Grid()
		s, e := g.StartPoint(), g.EndPoint()
		g.Clear()
		if s.Valid() {
			_ = g.SetStart(s.Col, s.Row)
		}
		if e.Valid() {
			_ = g.SetEnd(e.Col, e.Row)
		}
		m.paused = false
		cmd := m.restart()
		return m, cmd
	}
	return m, nil
}

func (m Model) reconfigure(c engine.Config) (tea.Model, tea.Cmd) {
	if err := m.eng.Configure(c); err != nil {
		m.err = err
		m.status = err.Error()
		return m, nil
	}
	m.paused = false
	cmd := m.restart()
	return m, cmd
}

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("170"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	panelStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("62")).Padding(0, 1)
)

// View implements tea.Model.
func (m Model) View() string {
	g := m.eng.Grid()
	if g == nil {
		return errorStyle.Render("no grid loaded") + "\n"
	}
	cfg := m.eng.Config()

	board := panelStyle.Render(strings.TrimSuffix(render.Grid(g,
		render.WithTheme(m.opts.Theme),
		render.WithSymmetry(cfg.RSR)), "\n"))
	stats := panelStyle.Render(render.Stats(m.eng.Stats(), m.opts.Theme))

	var body string
	if m.width > 0 && lipgloss.Width(board)+lipgloss.Width(stats) > m.width {
		body = lipgloss.JoinVertical(lipgloss.Left, board, stats)
	} else {
		body = lipgloss.JoinHorizontal(lipgloss.Top, board, " ", stats)
	}

	status := statusStyle.Render(m.status)
	if m.err != nil {
		status = errorStyle.Render(m.status)
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("gridpath"),
		body,
		status,
		m.help.View(m.opts.Keys),
	) + "\n"
}

// Run starts an interactive program over e and blocks until it exits.
func Run(e *engine.Engine, opts ...Option) error {
	_, err := tea.NewProgram(New(e, opts...), tea.WithAltScreen()).Run()
	return err
}
