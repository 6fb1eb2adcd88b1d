// Package grid models a rectangular cell grid as a node arena addressed by
// index, the substrate every search in gridpath runs on.
//
// What:
//
//   - Grid holds Width×Height nodes stored row-major: node i sits at
//     row*Width + col.
//   - Each Node carries flags (wall, start, end, visited, path, border,
//     skippable) plus per-run search fields (Cost, Heuristic, Priority,
//     CameFrom). CameFrom and Edge.To are node indices, never pointers.
//   - Neighbor maps are built lazily with 4 or 8 directions. Diagonal moves
//     never cut a wall corner.
//   - Border nodes of a symmetry rectangle (see package rsr) get skip edges
//     that jump straight across the skippable interior.
//
// Resets:
//
//   - ResetSearch clears visited/path marks and search fields only.
//   - ResetDerived also drops symmetry classification and neighbor maps.
//   - Clear additionally removes walls, start and end.
//
// Complexity:
//
//   - New, Parse, ResetSearch, ResetDerived, BuildNeighbors: O(W×H).
//   - Neighbors: O(1) amortized, O(side) once per skip edge.
//
// Errors:
//
//   - ErrEmptyGrid: zero rows or columns.
//   - ErrNonRectangular: textual rows of differing lengths.
//   - ErrBadSymbol, ErrDuplicateEndpoint: malformed textual maps.
//   - ErrOutOfBounds: coordinate outside the grid.
//   - ErrOccupied: wall on an endpoint, or start on end.
package grid
