package metrics_test

import (
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/engine"
	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/metrics"
	"github.com/katalvlaran/gridpath/search"
)

// TestCollector wires a Collector into an engine and checks the exported
// series after one found and one exhausted run.
func TestCollector(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := metrics.New(reg)

	g, err := grid.New(8, 8)
	require.NoError(t, err)
	require.NoError(t, g.SetStart(0, 0))
	require.NoError(t, g.SetEnd(7, 7))
	e := engine.New(g,
		engine.WithConfig(engine.Config{Algorithm: search.AStar, RSR: true, MinSide: 4}),
		engine.WithObserver(c))

	res, err := e.Solve()
	require.NoError(t, err)
	require.Equal(t, search.Found, res.Outcome)

	// wall off the goal
	require.NoError(t, g.SetWall(6, 7, true))
	require.NoError(t, g.SetWall(7, 6, true))
	res, err = e.Solve()
	require.NoError(t, err)
	require.Equal(t, search.Exhausted, res.Outcome)

	expected := `
# HELP gridpath_runs_total Finished search runs by algorithm and outcome.
# TYPE gridpath_runs_total counter
gridpath_runs_total{algorithm="astar",outcome="exhausted"} 1
gridpath_runs_total{algorithm="astar",outcome="found"} 1
`
	assert.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected), "gridpath_runs_total"))

	// the second preparation shrinks the square to side 6
	rects := `
# HELP gridpath_symmetry_rects Symmetry rectangles found by the latest preparation.
# TYPE gridpath_symmetry_rects gauge
gridpath_symmetry_rects 1
`
	assert.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(rects), "gridpath_symmetry_rects"))

	phases, err := testutil.GatherAndCount(reg, "gridpath_prepare_seconds")
	require.NoError(t, err)
	assert.Equal(t, 3, phases)
	paths, err := testutil.GatherAndCount(reg, "gridpath_path_nodes")
	require.NoError(t, err)
	assert.Equal(t, 1, paths)
}

// TestCollector_DoubleRegister verifies registration uses the given registry.
func TestCollector_DoubleRegister(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics.New(reg)
	assert.Panics(t, func() { metrics.New(reg) })
	assert.NotPanics(t, func() { metrics.New(prometheus.NewRegistry()) })
}
