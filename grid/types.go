// Package grid defines core types, flags, options, and sentinel errors
// for the grid subpackage of github.com/katalvlaran/gridpath.
package grid

import (
	"errors"
	"math"
)

// Sentinel errors for grid operations.
var (
	// ErrEmptyGrid indicates a grid with no rows or no columns.
	ErrEmptyGrid = errors.New("grid: grid must have at least one row and one column")
	// ErrNonRectangular indicates map rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrOutOfBounds indicates a (column,row) pair outside the grid.
	ErrOutOfBounds = errors.New("grid: coordinate out of bounds")
	// ErrBadSymbol indicates an unknown character in a textual map.
	ErrBadSymbol = errors.New("grid: unknown map symbol")
	// ErrOccupied indicates a cell already holds a conflicting role
	// (a wall on the start or end, start on end, and so on).
	ErrOccupied = errors.New("grid: cell already occupied")
	// ErrDuplicateEndpoint indicates a textual map with more than one S or E.
	ErrDuplicateEndpoint = errors.New("grid: more than one start or end in map")
)

// Move costs. Diagonal moves use a fixed constant so results are reproducible.
const (
	OrthogonalCost = 1.0
	DiagonalCost   = math.Sqrt2
)

// None marks an absent node index (unset start/end, no predecessor).
const None = -1

// Flag is a bit set of per-node classification and search marks.
type Flag uint8

const (
	// FlagWall marks a blocked cell.
	FlagWall Flag = 1 << iota
	// FlagStart marks the designated start cell.
	FlagStart
	// FlagEnd marks the designated end cell.
	FlagEnd
	// FlagVisited is set once a node is discovered during a run.
	FlagVisited
	// FlagPath is set on nodes of a reconstructed path.
	FlagPath
	// FlagBorder marks the perimeter of a symmetry rectangle.
	FlagBorder
	// FlagSkippable marks the interior of a symmetry rectangle.
	FlagSkippable
)

// searchFlags are cleared by ResetSearch.
const searchFlags = FlagVisited | FlagPath

// derivedFlags are cleared by ResetDerived.
const derivedFlags = searchFlags | FlagBorder | FlagSkippable

// Direction is one of the eight compass moves.
type Direction uint8

const (
	East Direction = iota
	South
	North
	West
	SouthEast
	NorthEast
	SouthWest
	NorthWest
)

// Directions lists orthogonal moves first, then diagonals.
var Directions = [...]Direction{East, South, North, West, SouthEast, NorthEast, SouthWest, NorthWest}

var directionOffsets = [...][2]int{
	East:      {1, 0},
	South:     {0, 1},
	North:     {0, -1},
	West:      {-1, 0},
	SouthEast: {1, 1},
	NorthEast: {1, -1},
	SouthWest: {-1, 1},
	NorthWest: {-1, -1},
}

var directionNames = [...]string{
	East:      "E",
	South:     "S",
	North:     "N",
	West:      "W",
	SouthEast: "SE",
	NorthEast: "NE",
	SouthWest: "SW",
	NorthWest: "NW",
}

// Offset returns the column and row delta of a single move in d.
func (d Direction) Offset() (dc, dr int) {
	o := directionOffsets[d]
	return o[0], o[1]
}

// Diagonal reports whether d moves along both axes.
func (d Direction) Diagonal() bool { return d >= SouthEast }

// Cost returns the move cost of a single step in d.
func (d Direction) Cost() float64 {
	if d.Diagonal() {
		return DiagonalCost
	}
	return OrthogonalCost
}

// String returns the compass label ("E", "SW", ...).
func (d Direction) String() string {
	if int(d) < len(directionNames) {
		return directionNames[d]
	}
	return "?"
}

// Point is a (column,row) coordinate. Negative values mean "unset".
type Point struct {
	Col int `json:"col" yaml:"col"`
	Row int `json:"row" yaml:"row"`
}

// Unset is the zero-information point.
var Unset = Point{Col: None, Row: None}

// Valid reports whether both coordinates are non-negative.
func (p Point) Valid() bool { return p.Col >= 0 && p.Row >= 0 }

// Edge is one entry of a node's neighbor map: the move direction, the target
// node index and the move cost. Skip edges across a symmetry rectangle carry
// the original direction cost multiplied by the number of cells jumped.
type Edge struct {
	Dir  Direction
	To   int
	Cost float64
}

// Node is a single cell. The Grid owns every Node; all cross references
// (CameFrom, Edge.To) are indices into the Grid's node array.
type Node struct {
	Col, Row int

	// Cost is the accumulated path cost from the start of the current run.
	Cost float64
	// Heuristic is the estimated remaining cost (A* only).
	Heuristic float64
	// Priority is Cost + Heuristic (A* only).
	Priority float64
	// CameFrom is the predecessor index on the best path found so far, or None.
	CameFrom int

	flags    Flag
	edges    []Edge
	edgesGen uint64
}

// Is reports whether every bit of f is set.
func (n *Node) Is(f Flag) bool { return n.flags&f == f }

// Any reports whether at least one bit of f is set.
func (n *Node) Any(f Flag) bool { return n.flags&f != 0 }

// Set sets the bits of f.
func (n *Node) Set(f Flag) { n.flags |= f }

// Clear clears the bits of f.
func (n *Node) Clear(f Flag) { n.flags &^= f }

// Flags returns the raw flag set.
func (n *Node) Flags() Flag { return n.flags }

// Point returns the node's coordinate.
func (n *Node) Point() Point { return Point{Col: n.Col, Row: n.Row} }

// resetSearch clears per-run search state.
func (n *Node) resetSearch() {
	n.flags &^= searchFlags
	n.Cost = 0
	n.Heuristic = 0
	n.Priority = 0
	n.CameFrom = None
}

// Grid is a fixed Width×Height array of nodes stored row-major, with at most
// one start and one end. It is not safe for concurrent mutation; a single
// caller drives it, matching the cooperative execution model of the engine.
type Grid struct {
	Width, Height int

	nodes    []Node
	start    int
	end      int
	diagonal bool

	// gen is the neighbor-graph generation; a node's edges are valid only
	// while node.edgesGen == gen.
	gen uint64
	// rev counts topology edits (walls, start, end).
	rev uint64
}
