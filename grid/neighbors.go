package grid

// Diagonal reports whether neighbor maps include diagonal moves.
func (g *Grid) Diagonal() bool { return g.diagonal }

// SetDiagonal selects 4- (false) or 8-directional (true) neighbor maps.
// Changing the setting invalidates every cached neighbor map.
func (g *Grid) SetDiagonal(on bool) {
	if g.diagonal != on {
		g.diagonal = on
		g.Invalidate()
	}
}

// Invalidate discards every cached neighbor map; each is rebuilt lazily on
// its next Neighbors call. Complexity: O(1).
func (g *Grid) Invalidate() { g.gen++ }

// Neighbors returns the neighbor map of node i, building it on first use.
//
// Behavior:
//  1. Skippable (symmetry interior) and wall nodes have no neighbors.
//  2. Orthogonal moves into in-bounds, non-wall cells cost OrthogonalCost.
//  3. With diagonals enabled, a diagonal move costs DiagonalCost and is
//     present only when both adjoining orthogonal cells are non-wall.
//  4. For border nodes, every edge landing on a skippable node is replaced by
//     an edge to the first non-skippable node further along the same
//     direction, with cost multiplied by the number of cells jumped.
//
// Out-of-bounds moves are simply absent. The returned slice is owned by the
// grid and must not be modified.
// Complexity: O(1) amortized; O(side) once per border edge.
func (g *Grid) Neighbors(i int) []Edge {
	n := &g.nodes[i]
	if n.edgesGen == g.gen {
		return n.edges
	}
	n.edges = g.buildEdges(n, n.edges[:0])
	n.edgesGen = g.gen

	return n.edges
}

// BuildNeighbors eagerly computes the neighbor map of every non-skippable,
// non-wall node and returns how many maps were built. Calling it twice
// without topology or setting changes yields identical maps.
// Complexity: O(W×H×d), d = 4 or 8.
func (g *Grid) BuildNeighbors() int {
	built := 0
	for i := range g.nodes {
		if g.nodes[i].Any(FlagSkippable | FlagWall) {
			continue
		}
		g.Neighbors(i)
		built++
	}
	return built
}

// buildEdges appends the edges of n to dst.
func (g *Grid) buildEdges(n *Node, dst []Edge) []Edge {
	if n.Any(FlagSkippable | FlagWall) {
		return dst
	}

	limit := 4
	if g.diagonal {
		limit = len(Directions)
	}
	for _, d := range Directions[:limit] {
		dc, dr := d.Offset()
		col, row := n.Col+dc, n.Row+dr
		if !g.open(col, row) {
			continue
		}
		// no corner cutting: both orthogonal components must be open
		if d.Diagonal() && (!g.open(n.Col+dc, n.Row) || !g.open(n.Col, n.Row+dr)) {
			continue
		}
		e := Edge{Dir: d, To: g.index(col, row), Cost: d.Cost()}
		if n.Is(FlagBorder) && g.nodes[e.To].Is(FlagSkippable) {
			var ok bool
			if e, ok = g.skip(e); !ok {
				continue
			}
		}
		dst = append(dst, e)
	}

	return dst
}

// open reports whether (col,row) is in bounds and not a wall.
func (g *Grid) open(col, row int) bool {
	return g.InBounds(col, row) && !g.nodes[g.index(col, row)].Is(FlagWall)
}

// skip walks from a skippable target along e.Dir until it reaches a
// non-skippable node and returns the rewritten edge. The walk always ends on
// the opposite border of the same rectangle; leaving the grid is reported as
// !ok and the edge dropped.
func (g *Grid) skip(e Edge) (Edge, bool) {
	dc, dr := e.Dir.Offset()
	steps := 1
	cur := &g.nodes[e.To]
	for cur.Is(FlagSkippable) {
		col, row := cur.Col+dc, cur.Row+dr
		if !g.InBounds(col, row) {
			return e, false
		}
		cur = &g.nodes[g.index(col, row)]
		steps++
	}
	e.To = g.index(cur.Col, cur.Row)
	e.Cost = e.Dir.Cost() * float64(steps)

	return e, true
}
