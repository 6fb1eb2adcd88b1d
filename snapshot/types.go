// Package snapshot defines the persisted grid format and its sentinel errors.
package snapshot

import (
	"errors"
	"path/filepath"
	"strings"

	"github.com/katalvlaran/gridpath/grid"
)

// Sentinel errors for snapshot encoding and validation.
var (
	// ErrInvalidSnapshot indicates a snapshot that does not describe a valid grid.
	ErrInvalidSnapshot = errors.New("snapshot: invalid snapshot")

	// ErrUnknownFormat indicates an unsupported encoding or file extension.
	ErrUnknownFormat = errors.New("snapshot: unknown format")
)

// Format is an on-disk encoding.
type Format uint8

const (
	// JSON encodes the Snapshot struct as indented JSON.
	JSON Format = iota + 1
	// YAML encodes the Snapshot struct as YAML.
	YAML
	// Text is the plain map format of grid.Parse: one row per line with
	// '#', '.', 'S' and 'E'. It carries no ID.
	Text
)

// String returns the canonical format name.
func (f Format) String() string {
	switch f {
	case JSON:
		return "json"
	case YAML:
		return "yaml"
	case Text:
		return "text"
	default:
		return "unknown"
	}
}

// FormatFromPath picks a Format from the file extension: .json, .yaml/.yml,
// .txt/.map.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return JSON, nil
	case ".yaml", ".yml":
		return YAML, nil
	case ".txt", ".map":
		return Text, nil
	}
	return 0, ErrUnknownFormat
}

// Snapshot is the persisted state of a grid: dimensions, endpoints and the
// wall layout. Derived data (symmetry classification, neighbor maps, search
// marks) is never stored.
type Snapshot struct {
	ID     string      `json:"id,omitempty" yaml:"id,omitempty"`
	Width  int         `json:"width" yaml:"width"`
	Height int         `json:"height" yaml:"height"`
	Start  *grid.Point `json:"start,omitempty" yaml:"start,omitempty"`
	End    *grid.Point `json:"end,omitempty" yaml:"end,omitempty"`
	// Cells holds one string per row; '#' is a wall, '.' is free.
	Cells []string `json:"cells" yaml:"cells"`
}
