package rsr_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/rsr"
)

func openGrid(t *testing.T, w, h int, start, end grid.Point) *grid.Grid {
	t.Helper()
	g, err := grid.New(w, h)
	require.NoError(t, err)
	require.NoError(t, g.SetStart(start.Col, start.Row))
	require.NoError(t, g.SetEnd(end.Col, end.Row))
	return g
}

// TestReduce_OpenSquare checks that an 8×8 open grid with corner endpoints
// collapses into a single side-7 square.
func TestReduce_OpenSquare(t *testing.T) {
	g := openGrid(t, 8, 8, grid.Point{Col: 0, Row: 0}, grid.Point{Col: 7, Row: 7})

	rects := rsr.Reduce(g)
	require.Equal(t, []rsr.Rect{{Col: 0, Row: 1, Side: 7}}, rects)
	assert.Equal(t, 25, rects[0].Interior())

	border, skippable := rsr.Count(g)
	assert.Equal(t, 24, border)
	assert.Equal(t, 25, skippable)
	assert.True(t, g.At(3, 4).Is(grid.FlagSkippable))
	assert.True(t, g.At(0, 7).Is(grid.FlagBorder))
	assert.False(t, g.At(7, 0).Any(grid.FlagBorder|grid.FlagSkippable))
}

// TestReduce_Corridor checks the squares found along a 24×6 corridor whose
// endpoints sit on the middle of the short sides.
func TestReduce_Corridor(t *testing.T) {
	g := openGrid(t, 24, 6, grid.Point{Col: 0, Row: 2}, grid.Point{Col: 23, Row: 2})

	rects := rsr.Reduce(g)
	assert.Equal(t, []rsr.Rect{
		{Col: 1, Row: 0, Side: 6},
		{Col: 7, Row: 0, Side: 6},
		{Col: 13, Row: 0, Side: 6},
		{Col: 19, Row: 0, Side: 4},
	}, rects)
}

// TestReduce_Walls checks that walls cap square growth and MinSide filters
// the result.
func TestReduce_Walls(t *testing.T) {
	tests := []struct {
		name    string
		minSide int
		want    []rsr.Rect
	}{
		{"default keeps nothing", rsr.DefaultMinSide, nil},
		{"min side 3", 3, []rsr.Rect{{Col: 0, Row: 0, Side: 3}}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g, err := grid.New(6, 6)
			require.NoError(t, err)
			require.NoError(t, g.SetWall(3, 3, true))

			rects := rsr.Reduce(g, rsr.WithMinSide(tc.minSide))
			if tc.want == nil {
				assert.Empty(t, rects)
				return
			}
			require.NotEmpty(t, rects)
			assert.Equal(t, tc.want[0], rects[0])
			assert.False(t, g.At(3, 3).Any(grid.FlagBorder|grid.FlagSkippable))
		})
	}
}

// TestReduce_NeverClassifiesEndpoints checks endpoints and walls keep their
// role and squares never overlap.
func TestReduce_NeverClassifiesEndpoints(t *testing.T) {
	g, err := grid.ParseString(`
..........
....#.....
..........
.....S....
..........
.......E..
..........
..........
`)
	require.NoError(t, err)

	rects := rsr.Reduce(g)
	require.NotEmpty(t, rects)

	seen := make(map[grid.Point]bool)
	for _, r := range rects {
		assert.GreaterOrEqual(t, r.Side, rsr.DefaultMinSide)
		for dr := 0; dr < r.Side; dr++ {
			for dc := 0; dc < r.Side; dc++ {
				p := grid.Point{Col: r.Col + dc, Row: r.Row + dr}
				assert.False(t, seen[p], "overlap at %v", p)
				seen[p] = true
				assert.False(t, g.At(p.Col, p.Row).Any(grid.FlagWall|grid.FlagStart|grid.FlagEnd))
			}
		}
	}
	assert.False(t, g.At(5, 3).Any(grid.FlagBorder|grid.FlagSkippable))
	assert.False(t, g.At(7, 5).Any(grid.FlagBorder|grid.FlagSkippable))
}

// TestReduce_Idempotent checks that a second pass finds nothing and a pass
// after ResetDerived finds the same squares.
func TestReduce_Idempotent(t *testing.T) {
	g := openGrid(t, 12, 9, grid.Point{Col: 0, Row: 0}, grid.Point{Col: 11, Row: 8})

	first := rsr.Reduce(g)
	require.NotEmpty(t, first)
	assert.Empty(t, rsr.Reduce(g))

	g.ResetDerived()
	assert.Equal(t, first, rsr.Reduce(g))
}

// TestReduce_SkipEdges checks the neighbor map of a border node after
// reduction: the eastward edge jumps across the square.
func TestReduce_SkipEdges(t *testing.T) {
	g := openGrid(t, 8, 8, grid.Point{Col: 0, Row: 0}, grid.Point{Col: 7, Row: 7})
	rsr.Reduce(g)

	var east grid.Edge
	for _, e := range g.Neighbors(g.Index(0, 4)) {
		if e.Dir == grid.East {
			east = e
		}
	}
	assert.Equal(t, g.Index(6, 4), east.To)
	assert.Equal(t, 6.0, east.Cost)
	assert.Empty(t, g.Neighbors(g.Index(3, 4)))
}
