package render_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/engine"
	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/render"
	"github.com/katalvlaran/gridpath/search"
)

// TestGrid_Plain renders a solved grid without styling.
func TestGrid_Plain(t *testing.T) {
	g, err := grid.ParseString("S..\n.#.\n..E")
	require.NoError(t, err)
	e := engine.New(g, engine.WithConfig(engine.Config{Algorithm: search.BFS, MinSide: 4}))
	res, err := e.Solve()
	require.NoError(t, err)
	require.Equal(t, search.Found, res.Outcome)

	out := render.Grid(g, render.WithTheme(render.PlainTheme()))
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, byte('S'), lines[0][0])
	assert.Equal(t, byte('#'), lines[1][1])
	assert.Equal(t, byte('E'), lines[2][2])
	assert.Equal(t, 3, strings.Count(out, "*"), "path nodes between S and E")
}

// TestGrid_Symmetry checks border and skippable glyphs.
func TestGrid_Symmetry(t *testing.T) {
	g, err := grid.New(4, 4)
	require.NoError(t, err)
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			if r == 0 || c == 0 || r == 3 || c == 3 {
				g.At(c, r).Set(grid.FlagBorder)
			} else {
				g.At(c, r).Set(grid.FlagSkippable)
			}
		}
	}
	plain := render.WithTheme(render.PlainTheme())

	assert.Equal(t, "++++\n+~~+\n+~~+\n++++\n", render.Grid(g, plain, render.WithSymmetry(true)))
	assert.Equal(t, "....\n....\n....\n....\n", render.Grid(g, plain))
}

// TestClassify checks precedence.
func TestClassify(t *testing.T) {
	var n grid.Node
	n.Set(grid.FlagVisited | grid.FlagPath | grid.FlagBorder)
	assert.Equal(t, render.ClassPath, render.Classify(&n, true))
	n.Clear(grid.FlagPath)
	assert.Equal(t, render.ClassVisited, render.Classify(&n, true))
	n.Clear(grid.FlagVisited)
	assert.Equal(t, render.ClassBorder, render.Classify(&n, true))
	assert.Equal(t, render.ClassFree, render.Classify(&n, false))
}

// TestStats lists the path rows only for found runs.
func TestStats(t *testing.T) {
	s := engine.Stats{
		Config:    engine.Config{Algorithm: search.AStar, RSR: true, MinSide: 4},
		Outcome:   search.Found,
		Rects:     2,
		PathNodes: 9,
		PathCost:  8,
	}
	out := render.Stats(s, render.PlainTheme())
	assert.Contains(t, out, "astar+rsr")
	assert.Contains(t, out, "symmetry rects  2")
	assert.Contains(t, out, "path cost       8.000")

	s.PathNodes = 0
	s.Outcome = search.Exhausted
	assert.NotContains(t, render.Stats(s, render.PlainTheme()), "path cost")
}
