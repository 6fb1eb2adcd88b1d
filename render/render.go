// Package render draws grids and statistics for terminal hosts using
// lipgloss styles.
package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/gridpath/engine"
	"github.com/katalvlaran/gridpath/grid"
)

// Class is the visual category of a cell. When several apply, the first in
// declaration order wins.
type Class uint8

const (
	ClassStart Class = iota
	ClassEnd
	ClassWall
	ClassPath
	ClassVisited
	ClassBorder
	ClassSkippable
	ClassFree
	classCount
)

// Glyphs maps each class to its character.
var Glyphs = [classCount]byte{
	ClassStart:     grid.SymbolStart,
	ClassEnd:       grid.SymbolEnd,
	ClassWall:      grid.SymbolWall,
	ClassPath:      '*',
	ClassVisited:   'o',
	ClassBorder:    '+',
	ClassSkippable: '~',
	ClassFree:      grid.SymbolFree,
}

// Classify returns the class of n. Symmetry classes are reported only when
// symmetry is true.
func Classify(n *grid.Node, symmetry bool) Class {
	switch {
	case n.Is(grid.FlagStart):
		return ClassStart
	case n.Is(grid.FlagEnd):
		return ClassEnd
	case n.Is(grid.FlagWall):
		return ClassWall
	case n.Is(grid.FlagPath):
		return ClassPath
	case n.Is(grid.FlagVisited):
		return ClassVisited
	case symmetry && n.Is(grid.FlagBorder):
		return ClassBorder
	case symmetry && n.Is(grid.FlagSkippable):
		return ClassSkippable
	}
	return ClassFree
}

// Theme holds one style per class plus label styles for statistics.
type Theme struct {
	Cells [classCount]lipgloss.Style
	Label lipgloss.Style
	Value lipgloss.Style
	Title lipgloss.Style
}

// DefaultTheme returns a 256-color theme.
func DefaultTheme() Theme {
	fg := func(c string) lipgloss.Style { return lipgloss.NewStyle().Foreground(lipgloss.Color(c)) }
	return Theme{
		Cells: [classCount]lipgloss.Style{
			ClassStart:     fg("42").Bold(true),
			ClassEnd:       fg("196").Bold(true),
			ClassWall:      fg("245"),
			ClassPath:      fg("214").Bold(true),
			ClassVisited:   fg("62"),
			ClassBorder:    fg("170"),
			ClassSkippable: fg("238"),
			ClassFree:      fg("240"),
		},
		Label: fg("241"),
		Value: lipgloss.NewStyle().Bold(true),
		Title: fg("170").Bold(true),
	}
}

// PlainTheme returns a theme without any styling.
func PlainTheme() Theme {
	var t Theme
	for i := range t.Cells {
		t.Cells[i] = lipgloss.NewStyle()
	}
	t.Label, t.Value, t.Title = lipgloss.NewStyle(), lipgloss.NewStyle(), lipgloss.NewStyle()
	return t
}

// Options configures Grid.
type Options struct {
	Theme Theme
	// Symmetry draws border and skippable cells.
	Symmetry bool
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns DefaultTheme without symmetry classes.
func DefaultOptions() Options { return Options{Theme: DefaultTheme()} }

// WithTheme selects the theme.
func WithTheme(t Theme) Option { return func(o *Options) { o.Theme = t } }

// WithSymmetry toggles drawing of symmetry classes.
func WithSymmetry(on bool) Option { return func(o *Options) { o.Symmetry = on } }

// Grid renders g one row per line. Consecutive cells of the same class are
// styled together.
// Complexity: O(W×H).
func Grid(g *grid.Grid, opts ...Option) string {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	var sb strings.Builder
	run := make([]byte, 0, g.Width)
	for row := 0; row < g.Height; row++ {
		cur := Classify(g.At(0, row), o.Symmetry)
		run = run[:0]
		for col := 0; col < g.Width; col++ {
			c := Classify(g.At(col, row), o.Symmetry)
			if c != cur {
				sb.WriteString(o.Theme.Cells[cur].Render(string(run)))
				run, cur = run[:0], c
			}
			run = append(run, Glyphs[c])
		}
		sb.WriteString(o.Theme.Cells[cur].Render(string(run)))
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Stats renders s as aligned label/value lines.
func Stats(s engine.Stats, t Theme) string {
	rows := [][2]string{
		{"config", s.Config.String()},
		{"outcome", s.Outcome.String()},
		{"steps", fmt.Sprint(s.Steps)},
		{"expanded", fmt.Sprint(s.Expanded)},
		{"algorithm time", s.AlgoTime.String()},
		{"prepare time", s.Prepare.Total().String()},
	}
	if s.Config.RSR {
		rows = append(rows, [2]string{"symmetry rects", fmt.Sprint(s.Rects)})
	}
	if s.PathNodes > 0 {
		rows = append(rows,
			[2]string{"path nodes", fmt.Sprint(s.PathNodes)},
			[2]string{"path cost", fmt.Sprintf("%.3f", s.PathCost)})
	}
	if s.RunID != "" {
		rows = append(rows, [2]string{"run", s.RunID})
	}

	width := 0
	for _, r := range rows {
		width = max(width, len(r[0]))
	}
	lines := make([]string, len(rows))
	for i, r := range rows {
		label := t.Label.Render(fmt.Sprintf("%-*s", width, r[0]))
		lines[i] = label + "  " + t.Value.Render(r[1])
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
