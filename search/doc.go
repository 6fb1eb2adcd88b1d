// Package search runs resumable shortest-path searches over a *grid.Grid.
//
// A Run is created with NewRun and advanced with Step. Each Step performs one
// bounded unit of work and returns an Outcome:
//
//   - Continue: call Step again.
//   - Found: the goal was reached; Path returns start→goal.
//   - Exhausted: no path exists. This is a normal result, not an error.
//
// Once terminal, a Run is frozen and Step keeps returning the same Outcome.
//
// Algorithms:
//
//   - BFS: one generation per step. Nodes expanded in a step are dropped from
//     the frontier at the start of the next one. Edge costs are ignored for
//     ordering, so with symmetry skip edges the path is not guaranteed to be
//     cheapest.
//   - Dijkstra: each step raises a global cost ceiling by 1 (√2 with
//     diagonals) and expands the frontier nodes under it in ascending cost
//     order. A node is never expanded while a cheaper one is known, so the
//     result is exact.
//   - AStar: each step pops the best entry of a queue kept sorted by
//     priority = cost + heuristic. Equal priorities pop in insertion order.
//     The heuristic is Manhattan distance with 4-way moves and octile
//     distance with 8-way moves.
//
// All run state lives on the grid nodes (Visited, Cost, CameFrom, ...) and in
// the Run; NewRun clears previous search marks with grid.ResetSearch.
//
// Complexity:
//
//   - BFS:      O(V + E) over the whole run.
//   - Dijkstra: O(V·F log F) worst case, F = frontier size.
//   - AStar:    O(V·Q) worst case, Q = queue length (sorted insert).
//
// Errors:
//
//   - ErrInvalidEndpoints: start/goal unset, identical, out of range or walls.
//   - ErrNoPath: Path before Found, or a broken came-from chain.
//   - ErrUnknownAlgorithm: ParseAlgorithm with an unknown name.
package search
