package snapshot

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/gridpath/grid"
)

// Capture records the topology of g under a new random ID.
func Capture(g *grid.Grid) *Snapshot {
	s := &Snapshot{
		ID:     uuid.New().String(),
		Width:  g.Width,
		Height: g.Height,
		Cells:  make([]string, g.Height),
	}
	if p := g.StartPoint(); p.Valid() {
		s.Start = &p
	}
	if p := g.EndPoint(); p.Valid() {
		s.End = &p
	}

	row := make([]byte, g.Width)
	for r := 0; r < g.Height; r++ {
		for c := 0; c < g.Width; c++ {
			row[c] = grid.SymbolFree
			if g.At(c, r).Is(grid.FlagWall) {
				row[c] = grid.SymbolWall
			}
		}
		s.Cells[r] = string(row)
	}
	return s
}

// Validate checks dimensions, cell symbols and endpoints.
func (s *Snapshot) Validate() error {
	if s.Width <= 0 || s.Height <= 0 {
		return fmt.Errorf("%w: dimensions %dx%d", ErrInvalidSnapshot, s.Width, s.Height)
	}
	if len(s.Cells) != s.Height {
		return fmt.Errorf("%w: %d rows, want %d", ErrInvalidSnapshot, len(s.Cells), s.Height)
	}
	for r, row := range s.Cells {
		if len(row) != s.Width {
			return fmt.Errorf("%w: row %d has %d cells, want %d", ErrInvalidSnapshot, r, len(row), s.Width)
		}
		if i := strings.IndexFunc(row, func(c rune) bool { return c != grid.SymbolFree && c != grid.SymbolWall }); i >= 0 {
			return fmt.Errorf("%w: symbol %q at (%d,%d)", ErrInvalidSnapshot, row[i], i, r)
		}
	}
	check := func(role string, p *grid.Point) error {
		if p == nil {
			return nil
		}
		if p.Col < 0 || p.Col >= s.Width || p.Row < 0 || p.Row >= s.Height {
			return fmt.Errorf("%w: %s %v out of bounds", ErrInvalidSnapshot, role, *p)
		}
		if s.Cells[p.Row][p.Col] == grid.SymbolWall {
			return fmt.Errorf("%w: %s %v is a wall", ErrInvalidSnapshot, role, *p)
		}
		return nil
	}
	if err := check("start", s.Start); err != nil {
		return err
	}
	if err := check("end", s.End); err != nil {
		return err
	}
	if s.Start != nil && s.End != nil && *s.Start == *s.End {
		return fmt.Errorf("%w: start equals end", ErrInvalidSnapshot)
	}
	return nil
}

// Grid validates s and builds a fresh grid from it.
func (s *Snapshot) Grid() (*grid.Grid, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	g, err := grid.New(s.Width, s.Height)
	if err != nil {
		return nil, err
	}
	for r, row := range s.Cells {
		for c := 0; c < len(row); c++ {
			if row[c] == grid.SymbolWall {
				if err := g.SetWall(c, r, true); err != nil {
					return nil, err
				}
			}
		}
	}
	if s.Start != nil {
		if err := g.SetStart(s.Start.Col, s.Start.Row); err != nil {
			return nil, err
		}
	}
	if s.End != nil {
		if err := g.SetEnd(s.End.Col, s.End.Row); err != nil {
			return nil, err
		}
	}
	return g, nil
}

// Encode writes g to w in format f.
func Encode(w io.Writer, g *grid.Grid, f Format) error {
	switch f {
	case JSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(Capture(g))
	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(Capture(g)); err != nil {
			return err
		}
		return enc.Close()
	case Text:
		_, err := io.WriteString(w, g.String())
		return err
	}
	return fmt.Errorf("%w: %v", ErrUnknownFormat, f)
}

// Decode reads a grid in format f from r.
func Decode(r io.Reader, f Format) (*grid.Grid, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	var s Snapshot
	switch f {
	case JSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&s); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidSnapshot, err)
		}
	case YAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&s); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidSnapshot, err)
		}
	case Text:
		g, err := grid.ParseString(string(data))
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidSnapshot, err)
		}
		return g, nil
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownFormat, f)
	}
	return s.Grid()
}

// Save writes g to path, choosing the format from the extension.
func Save(path string, g *grid.Grid) error {
	f, err := FormatFromPath(path)
	if err != nil {
		return fmt.Errorf("%w: %s", err, path)
	}
	var buf bytes.Buffer
	if err := Encode(&buf, g, f); err != nil {
		return err
	}
	return os.WriteFile(path, buf.Bytes(), 0o644)
}

// Load reads a grid from path, choosing the format from the extension.
func Load(path string) (*grid.Grid, error) {
	f, err := FormatFromPath(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", err, path)
	}
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return Decode(file, f)
}
