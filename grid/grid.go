package grid

import (
	"fmt"
	"math/rand"
	"strings"
)

// Map symbols understood by Parse and produced by String.
const (
	SymbolFree  = '.'
	SymbolWall  = '#'
	SymbolStart = 'S'
	SymbolEnd   = 'E'
)

// New returns an open width×height grid with no start or end.
// Returns ErrEmptyGrid if either dimension is not positive.
// Complexity: O(W×H) time and memory.
func New(width, height int) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrEmptyGrid
	}
	g := &Grid{
		Width:  width,
		Height: height,
		nodes:  make([]Node, width*height),
		start:  None,
		end:    None,
		gen:    1,
	}
	for i := range g.nodes {
		n := &g.nodes[i]
		n.Col, n.Row = g.Coordinate(i)
		n.CameFrom = None
	}

	return g, nil
}

// Parse builds a grid from textual rows using '#' for walls, '.' for free
// cells, 'S' for the start and 'E' for the end. Blank lines are ignored.
// Returns ErrEmptyGrid, ErrNonRectangular, ErrBadSymbol or
// ErrDuplicateEndpoint for malformed input.
func Parse(rows []string) (*Grid, error) {
	lines := make([]string, 0, len(rows))
	for _, r := range rows {
		r = strings.TrimRight(r, "\r \t")
		if r == "" {
			continue
		}
		lines = append(lines, r)
	}
	if len(lines) == 0 {
		return nil, ErrEmptyGrid
	}
	w := len(lines[0])
	for _, l := range lines {
		if len(l) != w {
			return nil, ErrNonRectangular
		}
	}

	g, err := New(w, len(lines))
	if err != nil {
		return nil, err
	}
	for row, l := range lines {
		for col := 0; col < w; col++ {
			switch l[col] {
			case SymbolFree:
			case SymbolWall:
				g.nodes[g.index(col, row)].Set(FlagWall)
			case SymbolStart:
				if g.start != None {
					return nil, ErrDuplicateEndpoint
				}
				g.place(&g.start, FlagStart, g.index(col, row))
			case SymbolEnd:
				if g.end != None {
					return nil, ErrDuplicateEndpoint
				}
				g.place(&g.end, FlagEnd, g.index(col, row))
			default:
				return nil, fmt.Errorf("%w: %q at (%d,%d)", ErrBadSymbol, l[col], col, row)
			}
		}
	}

	return g, nil
}

// ParseString splits s on newlines and calls Parse.
func ParseString(s string) (*Grid, error) {
	return Parse(strings.Split(s, "\n"))
}

// InBounds reports whether (col,row) lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(col, row int) bool {
	return col >= 0 && col < g.Width && row >= 0 && row < g.Height
}

// index converts (col,row) to a node index without bounds checking.
func (g *Grid) index(col, row int) int { return row*g.Width + col }

// Index returns the node index of (col,row), or None when out of bounds.
func (g *Grid) Index(col, row int) int {
	if !g.InBounds(col, row) {
		return None
	}
	return g.index(col, row)
}

// Coordinate converts a node index back to (col,row).
func (g *Grid) Coordinate(i int) (col, row int) {
	return i % g.Width, i / g.Width
}

// Len returns the number of nodes.
func (g *Grid) Len() int { return len(g.nodes) }

// Node returns the node at index i. It panics if i is out of range.
func (g *Grid) Node(i int) *Node { return &g.nodes[i] }

// At returns the node at (col,row), or nil when out of bounds.
func (g *Grid) At(col, row int) *Node {
	if !g.InBounds(col, row) {
		return nil
	}
	return &g.nodes[g.index(col, row)]
}

// Start returns the start index, or None.
func (g *Grid) Start() int { return g.start }

// End returns the end index, or None.
func (g *Grid) End() int { return g.end }

// StartPoint returns the start coordinate, or Unset.
func (g *Grid) StartPoint() Point { return g.point(g.start) }

// EndPoint returns the end coordinate, or Unset.
func (g *Grid) EndPoint() Point { return g.point(g.end) }

func (g *Grid) point(i int) Point {
	if i == None {
		return Unset
	}
	return g.nodes[i].Point()
}

// Revision increases on every topology edit (walls, start, end). Callers
// compare revisions to decide whether derived data must be rebuilt.
func (g *Grid) Revision() uint64 { return g.rev }

// SetWall sets or clears the wall flag of (col,row). Start and end cells
// cannot become walls (ErrOccupied).
func (g *Grid) SetWall(col, row int, wall bool) error {
	i := g.Index(col, row)
	if i == None {
		return fmt.Errorf("%w: (%d,%d)", ErrOutOfBounds, col, row)
	}
	n := &g.nodes[i]
	if n.Is(FlagWall) == wall {
		return nil
	}
	if wall && n.Any(FlagStart|FlagEnd) {
		return fmt.Errorf("%w: (%d,%d) is an endpoint", ErrOccupied, col, row)
	}
	if wall {
		n.Set(FlagWall)
	} else {
		n.Clear(FlagWall)
	}
	g.touch()

	return nil
}

// SetStart moves the start to (col,row). The cell must not be a wall or the end.
func (g *Grid) SetStart(col, row int) error {
	return g.setEndpoint(&g.start, FlagStart, FlagEnd, col, row)
}

// SetEnd moves the end to (col,row). The cell must not be a wall or the start.
func (g *Grid) SetEnd(col, row int) error {
	return g.setEndpoint(&g.end, FlagEnd, FlagStart, col, row)
}

func (g *Grid) setEndpoint(slot *int, role, other Flag, col, row int) error {
	i := g.Index(col, row)
	if i == None {
		return fmt.Errorf("%w: (%d,%d)", ErrOutOfBounds, col, row)
	}
	if *slot == i {
		return nil
	}
	if g.nodes[i].Any(FlagWall | other) {
		return fmt.Errorf("%w: (%d,%d)", ErrOccupied, col, row)
	}
	g.place(slot, role, i)
	g.touch()

	return nil
}

// place moves role from the node in *slot (if any) to node i.
func (g *Grid) place(slot *int, role Flag, i int) {
	if *slot != None {
		g.nodes[*slot].Clear(role)
	}
	*slot = i
	g.nodes[i].Set(role)
}

// ClearStart removes the start designation.
func (g *Grid) ClearStart() {
	if g.start != None {
		g.nodes[g.start].Clear(FlagStart)
		g.start = None
		g.touch()
	}
}

// ClearEnd removes the end designation.
func (g *Grid) ClearEnd() {
	if g.end != None {
		g.nodes[g.end].Clear(FlagEnd)
		g.end = None
		g.touch()
	}
}

// touch records a topology edit and invalidates every neighbor map.
func (g *Grid) touch() {
	g.rev++
	g.Invalidate()
}

// ResetSearch clears visited/path marks and per-node search fields while
// keeping walls, endpoints, symmetry classification and neighbor maps.
// Complexity: O(W×H).
func (g *Grid) ResetSearch() {
	for i := range g.nodes {
		g.nodes[i].resetSearch()
	}
}

// ResetDerived clears everything computed from the topology: search state,
// border/skippable classification and neighbor maps.
func (g *Grid) ResetDerived() {
	for i := range g.nodes {
		n := &g.nodes[i]
		n.resetSearch()
		n.Clear(derivedFlags)
		n.edges = nil
		n.edgesGen = 0
	}
	g.Invalidate()
}

// Clear removes walls and endpoints and resets all derived data.
func (g *Grid) Clear() {
	for i := range g.nodes {
		g.nodes[i].Clear(FlagWall | FlagStart | FlagEnd)
	}
	g.start, g.end = None, None
	g.ResetDerived()
	g.rev++
}

// RandomWalls turns each free, non-endpoint cell into a wall with the given
// probability and returns the number of walls added. density is clamped to [0,1].
func (g *Grid) RandomWalls(r *rand.Rand, density float64) int {
	if density <= 0 {
		return 0
	}
	added := 0
	for i := range g.nodes {
		n := &g.nodes[i]
		if n.Any(FlagWall | FlagStart | FlagEnd) {
			continue
		}
		if r.Float64() < density {
			n.Set(FlagWall)
			added++
		}
	}
	if added > 0 {
		g.touch()
	}

	return added
}

// Walls returns the number of wall cells.
func (g *Grid) Walls() int {
	count := 0
	for i := range g.nodes {
		if g.nodes[i].Is(FlagWall) {
			count++
		}
	}
	return count
}

// String renders the topology with the Parse symbols, one row per line.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow((g.Width + 1) * g.Height)
	for row := 0; row < g.Height; row++ {
		for col := 0; col < g.Width; col++ {
			n := &g.nodes[g.index(col, row)]
			switch {
			case n.Is(FlagStart):
				sb.WriteByte(SymbolStart)
			case n.Is(FlagEnd):
				sb.WriteByte(SymbolEnd)
			case n.Is(FlagWall):
				sb.WriteByte(SymbolWall)
			default:
				sb.WriteByte(SymbolFree)
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
