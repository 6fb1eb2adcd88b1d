// Package engine is the host-facing facade over grid, rsr and search.
//
// A host (CLI, terminal UI, HTTP handler) owns the grid and uses an Engine to:
//
//   - Configure the algorithm, diagonal moves and symmetry reduction.
//   - Prepare derived data: reset, symmetry reduction, neighbor maps. Each
//     phase is timed.
//   - StartRun between two cells. Stale preparation (walls, endpoints or
//     configuration changed since the last Prepare) is redone first.
//   - Advance the run within a time budget and render between calls.
//   - Read Stats.
//
// Scheduling:
//
//	budget  > 0: step until terminal or until more than budget has elapsed
//	budget == 0: exactly one step
//	budget  < 0: run to completion (RunToCompletion)
//
// Advance is the only suspension point. The engine keeps no timers between
// calls; a host stops a run simply by not calling Advance again. Algorithm
// time only accumulates inside Advance.
//
// Exhausted is a normal Result, never an error.
package engine
