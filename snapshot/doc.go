// Package snapshot saves and loads grids.
//
// A Snapshot stores width, height, optional start and end coordinates and
// the wall flag of every cell. Capture builds one from a grid and Grid
// rebuilds a fresh grid from it, so a loaded grid never carries stale
// classification, neighbor maps or search marks: hosts must Prepare again
// before searching.
//
// Encodings: JSON (encoding/json), YAML (gopkg.in/yaml.v3) and the plain
// text map of grid.Parse. Save and Load choose by file extension.
package snapshot
