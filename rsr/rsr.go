package rsr

import "github.com/katalvlaran/gridpath/grid"

// blocking stops square growth.
const blocking = grid.FlagWall | grid.FlagStart | grid.FlagEnd | grid.FlagBorder | grid.FlagSkippable

// Reduce classifies maximal open squares of g and returns them in discovery
// order. Cells already marked border or skippable are left alone, so calling
// Reduce on a reduced grid finds nothing new; call g.ResetDerived first to
// start over. Neighbor maps are invalidated when at least one square is kept.
//
// Steps:
//  1. Visit anchors column-major: (0,0), (0,1), ..., (1,0), ...
//  2. Skip anchors that are walls, endpoints or already classified.
//  3. Grow side s from 2 while the new column and new row are free.
//  4. Keep side s-1 when it reaches MinSide.
func Reduce(g *grid.Grid, opts ...Option) []Rect {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	var rects []Rect
	for col := 0; col < g.Width; col++ {
		for row := 0; row < g.Height; row++ {
			if g.At(col, row).Any(blocking) {
				continue
			}
			side := grow(g, col, row)
			if side < o.MinSide {
				continue
			}
			r := Rect{Col: col, Row: row, Side: side}
			mark(g, r)
			rects = append(rects, r)
		}
	}
	if len(rects) > 0 {
		g.Invalidate()
	}

	return rects
}

// grow returns the largest side of a free square anchored at (col,row).
func grow(g *grid.Grid, col, row int) int {
	side := 1
	for {
		s := side + 1
		// new right column and new bottom row, sharing the corner cell
		for k := 0; k < s; k++ {
			if !free(g, col+s-1, row+k) || !free(g, col+k, row+s-1) {
				return side
			}
		}
		side = s
	}
}

// free reports whether (col,row) is in bounds and can join a square.
func free(g *grid.Grid, col, row int) bool {
	n := g.At(col, row)
	return n != nil && !n.Any(blocking)
}

// mark sets border on the perimeter of r and skippable on its interior.
func mark(g *grid.Grid, r Rect) {
	last := r.Side - 1
	for dr := 0; dr < r.Side; dr++ {
		for dc := 0; dc < r.Side; dc++ {
			n := g.At(r.Col+dc, r.Row+dr)
			if dr == 0 || dc == 0 || dr == last || dc == last {
				n.Set(grid.FlagBorder)
			} else {
				n.Set(grid.FlagSkippable)
			}
		}
	}
}

// Count returns the number of border and skippable cells in g.
func Count(g *grid.Grid) (border, skippable int) {
	for i := 0; i < g.Len(); i++ {
		n := g.Node(i)
		switch {
		case n.Is(grid.FlagBorder):
			border++
		case n.Is(grid.FlagSkippable):
			skippable++
		}
	}
	return border, skippable
}
