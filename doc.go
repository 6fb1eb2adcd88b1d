// Package gridpath is an incremental pathfinding engine for 2D grids.
//
// A host owns a grid of walls, a start and an end, and asks the engine to
// search between them in small time-budgeted slices so it can draw the
// frontier between calls.
//
// What is in the box?
//
//   - Grid model with 4-way or 8-way moves and no corner cutting
//   - Rectangular symmetry reduction: open squares become jump edges along
//     their border
//   - BFS, windowed Dijkstra and A* as resumable step machines
//   - A scheduler that advances a run within a time budget
//   - Snapshots in JSON, YAML or plain ASCII maps
//
// Packages:
//
//	grid/     cells, flags, endpoints and neighbor maps
//	rsr/      symmetry reduction (square scan, border/skippable marks)
//	search/   BFS, Dijkstra, A*, path reconstruction
//	engine/   configure, prepare, start, advance, stats
//	snapshot/ save and load grids
//	config/   YAML configuration and logger setup
//	metrics/  Prometheus collectors fed by engine events
//	render/   lipgloss rendering of grids and stats
//	bench/    timed comparison of every configuration
//	tui/      bubbletea front-end
//	server/   HTTP solve endpoint
//
// Quick start:
//
//	g, _ := grid.ParseString("S..#\n.#..\n...E")
//	e := engine.New(g, engine.WithConfig(engine.Config{
//		Algorithm: search.AStar,
//		Diagonal:  true,
//		MinSide:   rsr.DefaultMinSide,
//	}))
//	res, _ := e.Solve()
//	fmt.Println(res.Outcome, res.Length, res.Cost)
//
// The gridpath command wraps all of this; see cmd/gridpath.
package gridpath
