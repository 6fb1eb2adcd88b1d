package engine_test

import (
	"strings"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/engine"
	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/search"
)

// fakeClock advances by step on every call.
func fakeClock(step time.Duration) func() time.Time {
	t := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	return func() time.Time {
		t = t.Add(step)
		return t
	}
}

// recorder is an Observer that keeps every notification.
type recorder struct {
	prepared []engine.Stats
	finished []engine.Stats
}

func (r *recorder) Prepared(s engine.Stats)    { r.prepared = append(r.prepared, s) }
func (r *recorder) RunFinished(s engine.Stats) { r.finished = append(r.finished, s) }

func mustParse(t *testing.T, s string) *grid.Grid {
	t.Helper()
	g, err := grid.ParseString(s)
	require.NoError(t, err)
	return g
}

func openGrid(t *testing.T, w, h int) *grid.Grid {
	t.Helper()
	g, err := grid.New(w, h)
	require.NoError(t, err)
	require.NoError(t, g.SetStart(0, 0))
	require.NoError(t, g.SetEnd(w-1, h-1))
	return g
}

// ---- //

// TestEngine_NoGrid verifies the errors of an engine without a grid.
func TestEngine_NoGrid(t *testing.T) {
	e := engine.New(nil)

	_, err := e.Prepare()
	assert.ErrorIs(t, err, engine.ErrNoGrid)
	assert.ErrorIs(t, e.StartGridRun(), engine.ErrNoGrid)
	assert.ErrorIs(t, e.StartRun(grid.Point{}, grid.Point{Col: 1}), engine.ErrNoGrid)
	_, err = e.Advance(engine.RunToCompletion)
	assert.ErrorIs(t, err, engine.ErrNoRun)
	assert.False(t, e.Running())
}

// TestConfigure validates configurations.
func TestConfigure(t *testing.T) {
	e := engine.New(openGrid(t, 3, 3))
	assert.Equal(t, engine.DefaultConfig(), e.Config())

	bad := engine.DefaultConfig()
	bad.MinSide = 1
	assert.ErrorIs(t, e.Configure(bad), engine.ErrInvalidConfig)
	bad = engine.DefaultConfig()
	bad.Algorithm = search.Algorithm(42)
	assert.ErrorIs(t, e.Configure(bad), engine.ErrInvalidConfig)

	good := engine.Config{Algorithm: search.Dijkstra, Diagonal: true, RSR: true, MinSide: 5}
	require.NoError(t, e.Configure(good))
	assert.Equal(t, good, e.Config())
	assert.Equal(t, "dijkstra+diag+rsr", good.String())

	// invalid initial configuration falls back to defaults
	e = engine.New(nil, engine.WithConfig(engine.Config{MinSide: 0}))
	assert.Equal(t, engine.DefaultConfig(), e.Config())
}

// TestStartRun_InvalidEndpoints covers every rejected endpoint pair.
func TestStartRun_InvalidEndpoints(t *testing.T) {
	g := mustParse(t, "S.#\n..E")
	e := engine.New(g)

	tests := []struct {
		name       string
		start, end grid.Point
	}{
		{"start unset", grid.Unset, grid.Point{Col: 2, Row: 1}},
		{"end unset", grid.Point{}, grid.Unset},
		{"identical", grid.Point{Col: 1, Row: 1}, grid.Point{Col: 1, Row: 1}},
		{"walled end", grid.Point{}, grid.Point{Col: 2, Row: 0}},
		{"out of bounds", grid.Point{}, grid.Point{Col: 3, Row: 0}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.ErrorIs(t, e.StartRun(tc.start, tc.end), search.ErrInvalidEndpoints)
		})
	}
	// the grid is untouched by rejected calls
	assert.Equal(t, grid.Point{Col: 0, Row: 0}, g.StartPoint())
	assert.Equal(t, grid.Point{Col: 2, Row: 1}, g.EndPoint())

	g.ClearEnd()
	assert.ErrorIs(t, e.StartGridRun(), search.ErrInvalidEndpoints)
}

// TestSolve checks a complete run and its statistics on the 5×5 open grid.
func TestSolve(t *testing.T) {
	for _, algo := range search.Algorithms {
		t.Run(algo.String(), func(t *testing.T) {
			rec := &recorder{}
			e := engine.New(openGrid(t, 5, 5),
				engine.WithConfig(engine.Config{Algorithm: algo, MinSide: 4}),
				engine.WithObserver(rec))

			res, err := e.Solve()
			require.NoError(t, err)
			assert.Equal(t, search.Found, res.Outcome)
			assert.Equal(t, 9, res.Length)
			assert.Len(t, res.Path, 9)
			assert.InDelta(t, 8.0, res.Cost, 1e-9)
			assert.Equal(t, grid.Point{Col: 0, Row: 0}, res.Path[0])
			assert.Equal(t, grid.Point{Col: 4, Row: 4}, res.Path[8])

			s := e.Stats()
			assert.Len(t, s.RunID, 26)
			assert.Equal(t, search.Found, s.Outcome)
			assert.Equal(t, 9, s.PathNodes)
			assert.InDelta(t, 8.0, s.PathCost, 1e-9)
			assert.Positive(t, s.Steps)
			assert.False(t, e.Running())

			require.Len(t, rec.prepared, 1)
			require.Len(t, rec.finished, 1)
			assert.Equal(t, s.RunID, rec.finished[0].RunID)

			// later calls return the frozen result without notifying again
			again, err := e.Advance(0)
			require.NoError(t, err)
			assert.Equal(t, res, again)
			assert.Len(t, rec.finished, 1)
		})
	}
}

// TestAdvance_Exhausted surfaces an unreachable goal as an outcome.
func TestAdvance_Exhausted(t *testing.T) {
	e := engine.New(mustParse(t, "S.#.\n..#E"))
	res, err := e.Solve()
	require.NoError(t, err)
	assert.Equal(t, search.Exhausted, res.Outcome)
	assert.Empty(t, res.Path)
	assert.Zero(t, e.Stats().PathNodes)
}

// TestAdvance_ZeroBudget performs exactly one step per call.
func TestAdvance_ZeroBudget(t *testing.T) {
	e := engine.New(mustParse(t, "S...E"))
	require.NoError(t, e.StartGridRun())

	for k := 1; k <= 4; k++ {
		res, err := e.Advance(0)
		require.NoError(t, err)
		require.Equal(t, search.Continue, res.Outcome)
		assert.Equal(t, k, e.Stats().Steps)
		assert.True(t, e.Running())
	}
	res, err := e.Advance(0)
	require.NoError(t, err)
	assert.Equal(t, search.Found, res.Outcome)
	assert.Equal(t, 5, e.Stats().Steps)
}

// TestAdvance_TimeBudget uses a clock that advances 1ms per reading: with a
// 5ms budget the sixth step is the first to exceed it.
func TestAdvance_TimeBudget(t *testing.T) {
	corridor := "S" + strings.Repeat(".", 28) + "E"
	e := engine.New(mustParse(t, corridor),
		engine.WithConfig(engine.Config{Algorithm: search.BFS, MinSide: 4}),
		engine.WithClock(fakeClock(time.Millisecond)))
	require.NoError(t, e.StartGridRun())

	res, err := e.Advance(5 * time.Millisecond)
	require.NoError(t, err)
	assert.Equal(t, search.Continue, res.Outcome)
	assert.Equal(t, 6, e.Stats().Steps)
	assert.Equal(t, 7*time.Millisecond, e.Stats().AlgoTime)

	res, err = e.Advance(engine.RunToCompletion)
	require.NoError(t, err)
	assert.Equal(t, search.Found, res.Outcome)
	assert.Equal(t, 30, res.Length)
}

// TestStartRun_AutoPrepare checks that topology and configuration changes
// trigger a new Prepare while unchanged state reuses the previous one.
func TestStartRun_AutoPrepare(t *testing.T) {
	rec := &recorder{}
	g := openGrid(t, 6, 6)
	e := engine.New(g, engine.WithObserver(rec))

	require.NoError(t, e.StartGridRun())
	require.NoError(t, e.StartGridRun())
	assert.Len(t, rec.prepared, 1, "unchanged grid reuses preparation")

	require.NoError(t, g.SetWall(2, 2, true))
	require.NoError(t, e.StartGridRun())
	assert.Len(t, rec.prepared, 2, "wall edit")

	cfg := e.Config()
	cfg.Algorithm = search.Dijkstra
	require.NoError(t, e.Configure(cfg))
	require.NoError(t, e.StartGridRun())
	assert.Len(t, rec.prepared, 2, "algorithm change needs no preparation")

	cfg.Diagonal = true
	require.NoError(t, e.Configure(cfg))
	require.NoError(t, e.StartGridRun())
	assert.Len(t, rec.prepared, 3, "diagonal toggle")
	assert.True(t, g.Diagonal())
}

// TestStartRun_MovesEndpoints checks explicit endpoints, including a swap.
func TestStartRun_MovesEndpoints(t *testing.T) {
	g := openGrid(t, 4, 4)
	e := engine.New(g)

	require.NoError(t, e.StartRun(grid.Point{Col: 1, Row: 1}, grid.Point{Col: 3, Row: 2}))
	assert.Equal(t, grid.Point{Col: 1, Row: 1}, g.StartPoint())
	assert.Equal(t, grid.Point{Col: 3, Row: 2}, g.EndPoint())

	require.NoError(t, e.StartRun(grid.Point{Col: 3, Row: 2}, grid.Point{Col: 1, Row: 1}))
	assert.Equal(t, grid.Point{Col: 3, Row: 2}, g.StartPoint())
	res, err := e.Advance(engine.RunToCompletion)
	require.NoError(t, err)
	assert.Equal(t, 4, res.Length)
}

// TestPrepare_Symmetry checks phase timings and rectangle counting.
func TestPrepare_Symmetry(t *testing.T) {
	e := engine.New(openGrid(t, 8, 8),
		engine.WithConfig(engine.Config{Algorithm: search.AStar, RSR: true, MinSide: 4}),
		engine.WithClock(fakeClock(time.Millisecond)))

	tm, err := e.Prepare()
	require.NoError(t, err)
	assert.Equal(t, time.Millisecond, tm.Reset)
	assert.Equal(t, time.Millisecond, tm.RSR)
	assert.Equal(t, time.Millisecond, tm.Neighbors)
	assert.Equal(t, 3*time.Millisecond, tm.Total())
	assert.Equal(t, 1, e.Stats().Rects)

	res, err := e.Solve()
	require.NoError(t, err)
	assert.InDelta(t, 14.0, res.Cost, 1e-9)
}

// TestPrepare_Idempotent compares neighbor maps from two preparations.
func TestPrepare_Idempotent(t *testing.T) {
	g := mustParse(t, "S.....#...\n..##......\n......#..E\n..........\n..........")
	e := engine.New(g, engine.WithConfig(engine.Config{Algorithm: search.AStar, Diagonal: true, RSR: true, MinSide: 3}))

	capture := func() [][]grid.Edge {
		out := make([][]grid.Edge, g.Len())
		for i := range out {
			out[i] = append([]grid.Edge(nil), g.Neighbors(i)...)
		}
		return out
	}
	_, err := e.Prepare()
	require.NoError(t, err)
	first := capture()
	_, err = e.Prepare()
	require.NoError(t, err)
	assert.Equal(t, first, capture())
}

// TestResets checks ResetRun and Reset.
func TestResets(t *testing.T) {
	g := openGrid(t, 8, 8)
	e := engine.New(g, engine.WithConfig(engine.Config{Algorithm: search.AStar, RSR: true, MinSide: 4}))
	_, err := e.Solve()
	require.NoError(t, err)
	require.True(t, g.At(0, 0).Is(grid.FlagPath))

	e.ResetRun()
	_, err = e.Advance(0)
	assert.ErrorIs(t, err, engine.ErrNoRun)
	assert.False(t, g.At(0, 0).Is(grid.FlagPath))
	assert.True(t, g.At(3, 3).Is(grid.FlagSkippable), "classification survives ResetRun")

	e.Reset()
	assert.False(t, g.At(3, 3).Is(grid.FlagSkippable))
	assert.Zero(t, e.Stats().Rects)
}

// TestLogging checks run logs and the warning for BFS over skip edges.
func TestLogging(t *testing.T) {
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	e := engine.New(openGrid(t, 8, 8),
		engine.WithConfig(engine.Config{Algorithm: search.BFS, RSR: true, MinSide: 4}),
		engine.WithLogger(logrus.NewEntry(logger)))

	_, err := e.Solve()
	require.NoError(t, err)

	var levels []logrus.Level
	var messages []string
	for _, entry := range hook.AllEntries() {
		levels = append(levels, entry.Level)
		messages = append(messages, entry.Message)
	}
	assert.Contains(t, levels, logrus.WarnLevel)
	assert.Contains(t, messages, "prepared")
	assert.Contains(t, messages, "run started")
	assert.Equal(t, "run finished", hook.LastEntry().Message)
	assert.Equal(t, search.Found, hook.LastEntry().Data["outcome"])
}
