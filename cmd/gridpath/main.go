// Command gridpath solves, visualizes and benchmarks grid path searches.
//
// Usage:
//
//	gridpath solve [flags] map
//	gridpath tui   [flags] [map]
//	gridpath serve [flags]
//	gridpath bench [flags] map
//	gridpath gen   [flags] out
//
// Maps are .json or .yaml snapshots or .txt/.map ASCII grids.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/gridpath/bench"
	"github.com/katalvlaran/gridpath/config"
	"github.com/katalvlaran/gridpath/engine"
	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/render"
	"github.com/katalvlaran/gridpath/search"
	"github.com/katalvlaran/gridpath/server"
	"github.com/katalvlaran/gridpath/snapshot"
	"github.com/katalvlaran/gridpath/tui"
)

var version = "dev"

const usage = `gridpath %s

Usage:
  gridpath solve [-config f] [-algo a] [-diag] [-rsr] [-min-side n] [-plain] [-out f] map
  gridpath tui   [-config f] [-algo a] [-diag] [-rsr] [-budget d] [-delay d] [-density p] [-seed s] [map]
  gridpath serve [-config f] [-addr a]
  gridpath bench [-config f] [-cycles n] [-min-side n] map
  gridpath gen   [-w n] [-h n] [-density p] [-seed s] out
  gridpath version

Maps are .json or .yaml snapshots, or .txt/.map ASCII grids
('#' wall, '.' free, 'S' start, 'E' end).
`

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run dispatches a subcommand and returns the exit code.
func run(args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		fmt.Fprintf(stderr, usage, version)
		return 2
	}

	cmds := map[string]func([]string, io.Writer, io.Writer) error{
		"solve": cmdSolve,
		"tui":   cmdTUI,
		"serve": cmdServe,
		"bench": cmdBench,
		"gen":   cmdGen,
	}
	name, rest := args[0], args[1:]
	switch name {
	case "version", "-version", "--version":
		fmt.Fprintf(stdout, "gridpath %s\n", version)
		return 0
	case "help", "-h", "-help", "--help":
		fmt.Fprintf(stdout, usage, version)
		return 0
	}
	cmd, ok := cmds[name]
	if !ok {
		fmt.Fprintf(stderr, "unknown command %q\n\n", name)
		fmt.Fprintf(stderr, usage, version)
		return 2
	}

	if err := cmd(rest, stdout, stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		if errors.Is(err, errUsage) {
			return 2
		}
		fmt.Fprintf(stderr, "gridpath %s: %v\n", name, err)
		return 1
	}
	return 0
}

var (
	// errUsage reports bad flags or arguments; the flag set has already
	// printed the details.
	errUsage = errors.New("usage")

	// errExhausted makes solve exit non-zero when no path exists.
	errExhausted = errors.New("no path: search exhausted")
)

// common holds the flags shared by subcommands that run an engine.
type common struct {
	configPath string
	algo       string
	diag       bool
	rsr        bool
	minSide    int
}

func (c *common) register(fs *flag.FlagSet) {
	fs.StringVar(&c.configPath, "config", "", "YAML configuration file")
	fs.StringVar(&c.algo, "algo", "", "search algorithm: bfs, dijkstra, astar")
	fs.BoolVar(&c.diag, "diag", false, "allow diagonal moves")
	fs.BoolVar(&c.rsr, "rsr", false, "enable rectangular symmetry reduction")
	fs.IntVar(&c.minSide, "min-side", 0, "minimum square side for symmetry reduction")
}

// load reads the configuration file, if any, and applies the flags that
// were set explicitly on top of it.
func (c *common) load(fs *flag.FlagSet) (config.Config, error) {
	cfg := config.Default()
	if c.configPath != "" {
		var err error
		if cfg, err = config.Load(c.configPath); err != nil {
			return config.Config{}, err
		}
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "algo":
			cfg.Engine.Algorithm = c.algo
		case "diag":
			cfg.Engine.Diagonal = c.diag
		case "rsr":
			cfg.Engine.RSR = c.rsr
		case "min-side":
			cfg.Engine.MinSide = c.minSide
		}
	})
	return cfg, cfg.Validate()
}

// newEngine builds a logger and an engine over g from cfg.
func newEngine(cfg config.Config, g *grid.Grid, logOut io.Writer) (*engine.Engine, *logrus.Logger, error) {
	log, err := cfg.NewLogger(logOut)
	if err != nil {
		return nil, nil, err
	}
	ec, err := cfg.EngineConfig()
	if err != nil {
		return nil, nil, err
	}
	e := engine.New(g, engine.WithConfig(ec), engine.WithLogger(logrus.NewEntry(log)))
	return e, log, nil
}

// parse runs fs over args and requires exactly want positional arguments,
// or at most want when optional is set.
func parse(fs *flag.FlagSet, args []string, want int, optional bool) error {
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return err
		}
		return errUsage
	}
	n := fs.NArg()
	if n == want || (optional && n < want) {
		return nil
	}
	fmt.Fprintf(fs.Output(), "%s: expected %d argument(s), got %d\n", fs.Name(), want, n)
	fs.Usage()
	return errUsage
}

// ---- //

func cmdSolve(args []string, stdout, stderr io.Writer) error {
	var c common
	fs := flag.NewFlagSet("solve", flag.ContinueOnError)
	fs.SetOutput(stderr)
	c.register(fs)
	plain := fs.Bool("plain", false, "render without colors")
	out := fs.String("out", "", "write the solved grid as a snapshot to this file")
	if err := parse(fs, args, 1, false); err != nil {
		return err
	}

	cfg, err := c.load(fs)
	if err != nil {
		return err
	}
	g, err := snapshot.Load(fs.Arg(0))
	if err != nil {
		return err
	}
	e, _, err := newEngine(cfg, g, stderr)
	if err != nil {
		return err
	}

	res, err := e.Solve()
	if err != nil {
		return err
	}

	theme := render.DefaultTheme()
	if *plain {
		theme = render.PlainTheme()
	}
	ec := e.Config()
	fmt.Fprintln(stdout, render.Grid(g, render.WithTheme(theme), render.WithSymmetry(ec.RSR)))
	fmt.Fprintln(stdout, render.Stats(e.Stats(), theme))

	if *out != "" {
		if err := snapshot.Save(*out, g); err != nil {
			return err
		}
	}
	if res.Outcome != search.Found {
		return errExhausted
	}
	return nil
}

func cmdTUI(args []string, _, stderr io.Writer) error {
	var c common
	fs := flag.NewFlagSet("tui", flag.ContinueOnError)
	fs.SetOutput(stderr)
	c.register(fs)
	budget := fs.Duration("budget", 0, "time budget per frame (default from config)")
	delay := fs.Duration("delay", 0, "pause between frames (default from config)")
	density := fs.Float64("density", 0.25, "probability of a wall for the random walls key")
	seed := fs.Int64("seed", time.Now().UnixNano(), "random seed")
	width := fs.Int("w", 60, "width of the generated grid when no map is given")
	height := fs.Int("h", 24, "height of the generated grid when no map is given")
	if err := parse(fs, args, 1, true); err != nil {
		return err
	}

	cfg, err := c.load(fs)
	if err != nil {
		return err
	}
	var g *grid.Grid
	if fs.NArg() == 1 {
		g, err = snapshot.Load(fs.Arg(0))
	} else {
		g, err = generate(*width, *height, *density, *seed)
	}
	if err != nil {
		return err
	}
	// the terminal belongs to the UI; logs would corrupt it
	e, _, err := newEngine(cfg, g, io.Discard)
	if err != nil {
		return err
	}

	opts := []tui.Option{
		tui.WithBudget(cfg.Schedule.TimeBudget.Std()),
		tui.WithDelay(cfg.Schedule.StepDelay.Std()),
		tui.WithDensity(*density),
		tui.WithSeed(*seed),
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "budget":
			opts = append(opts, tui.WithBudget(*budget))
		case "delay":
			opts = append(opts, tui.WithDelay(*delay))
		}
	})
	return tui.Run(e, opts...)
}

func cmdServe(args []string, _, stderr io.Writer) error {
	var configPath string
	fs := flag.NewFlagSet("serve", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&configPath, "config", "", "YAML configuration file")
	addr := fs.String("addr", "", "listen address (default from config)")
	if err := parse(fs, args, 0, false); err != nil {
		return err
	}

	cfg := config.Default()
	if configPath != "" {
		var err error
		if cfg, err = config.Load(configPath); err != nil {
			return err
		}
	}
	if *addr != "" {
		cfg.Server.Addr = *addr
	}
	log, err := cfg.NewLogger(stderr)
	if err != nil {
		return err
	}
	ec, err := cfg.EngineConfig()
	if err != nil {
		return err
	}

	srv := server.New(
		server.WithAddr(cfg.Server.Addr),
		server.WithTimeouts(cfg.Server.ReadTimeout.Std(), cfg.Server.WriteTimeout.Std()),
		server.WithMaxCells(cfg.Server.MaxCells),
		server.WithEngineConfig(ec),
		server.WithLogger(logrus.NewEntry(log)),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return srv.ListenAndServe(ctx)
}

func cmdBench(args []string, stdout, stderr io.Writer) error {
	var configPath string
	fs := flag.NewFlagSet("bench", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&configPath, "config", "", "YAML configuration file")
	cycles := fs.Int("cycles", 10, "runs per configuration")
	minSide := fs.Int("min-side", 0, "minimum square side for symmetry reduction (default from config)")
	if err := parse(fs, args, 1, false); err != nil {
		return err
	}

	cfg := config.Default()
	if configPath != "" {
		var err error
		if cfg, err = config.Load(configPath); err != nil {
			return err
		}
	}
	if *minSide > 0 {
		cfg.Engine.MinSide = *minSide
	}
	g, err := snapshot.Load(fs.Arg(0))
	if err != nil {
		return err
	}
	log, err := cfg.NewLogger(stderr)
	if err != nil {
		return err
	}

	rows, err := bench.Run(g,
		bench.WithCycles(*cycles),
		bench.WithMinSide(cfg.Engine.MinSide),
		bench.WithEngineOptions(engine.WithLogger(logrus.NewEntry(log))),
	)
	if err != nil {
		return err
	}
	fmt.Fprintln(stdout, bench.Report(rows))
	return nil
}

func cmdGen(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("gen", flag.ContinueOnError)
	fs.SetOutput(stderr)
	width := fs.Int("w", 40, "grid width")
	height := fs.Int("h", 20, "grid height")
	density := fs.Float64("density", 0.25, "probability of a wall per free cell")
	seed := fs.Int64("seed", time.Now().UnixNano(), "random seed")
	if err := parse(fs, args, 1, false); err != nil {
		return err
	}

	g, err := generate(*width, *height, *density, *seed)
	if err != nil {
		return err
	}
	if err := snapshot.Save(fs.Arg(0), g); err != nil {
		return err
	}
	fmt.Fprintf(stdout, "wrote %dx%d grid with %d walls to %s\n", g.Width, g.Height, g.Walls(), fs.Arg(0))
	return nil
}

// generate builds a w×h grid with endpoints in opposite corners and random
// walls elsewhere.
func generate(w, h int, density float64, seed int64) (*grid.Grid, error) {
	g, err := grid.New(w, h)
	if err != nil {
		return nil, err
	}
	if err := g.SetStart(0, 0); err != nil {
		return nil, err
	}
	if err := g.SetEnd(w-1, h-1); err != nil {
		return nil, err
	}
	g.RandomWalls(rand.New(rand.NewSource(seed)), density)
	return g, nil
}
