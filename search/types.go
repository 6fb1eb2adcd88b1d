// Package search defines algorithms, step outcomes, options and sentinel
// errors for resumable grid searches.
package search

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for search runs.
var (
	// ErrInvalidEndpoints indicates a missing, identical or walled start or goal.
	ErrInvalidEndpoints = errors.New("search: invalid start or goal")

	// ErrNoPath indicates path reconstruction without a Found outcome, or a
	// came-from chain that does not lead back to the start.
	ErrNoPath = errors.New("search: no path")

	// ErrUnknownAlgorithm indicates an unrecognized algorithm name.
	ErrUnknownAlgorithm = errors.New("search: unknown algorithm")
)

// Algorithm selects the stepping strategy of a Run.
type Algorithm uint8

const (
	// BFS expands one uniform-cost generation per step and ignores edge costs.
	BFS Algorithm = iota
	// Dijkstra expands nodes under a cost ceiling raised once per step.
	Dijkstra
	// AStar pops one node per step from a priority-sorted queue.
	AStar
)

// Algorithms lists every algorithm in declaration order.
var Algorithms = []Algorithm{BFS, Dijkstra, AStar}

// String returns the canonical lower-case name.
func (a Algorithm) String() string {
	switch a {
	case BFS:
		return "bfs"
	case Dijkstra:
		return "dijkstra"
	case AStar:
		return "astar"
	default:
		return fmt.Sprintf("algorithm(%d)", uint8(a))
	}
}

// ParseAlgorithm maps a name ("bfs", "dijkstra", "astar" or "a*", case
// insensitive) to an Algorithm.
func ParseAlgorithm(s string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "bfs", "flood", "floodfill":
		return BFS, nil
	case "dijkstra":
		return Dijkstra, nil
	case "astar", "a*", "a-star":
		return AStar, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, s)
}

// MarshalText implements encoding.TextMarshaler.
func (a Algorithm) MarshalText() ([]byte, error) { return []byte(a.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (a *Algorithm) UnmarshalText(b []byte) error {
	v, err := ParseAlgorithm(string(b))
	if err != nil {
		return err
	}
	*a = v
	return nil
}

// Outcome is the result of one Step.
type Outcome uint8

const (
	// Continue means the run can make more progress.
	Continue Outcome = iota
	// Found means the goal was reached; the path can be reconstructed.
	Found
	// Exhausted means the frontier emptied without reaching the goal.
	Exhausted
)

// String returns "continue", "found" or "exhausted".
func (o Outcome) String() string {
	switch o {
	case Continue:
		return "continue"
	case Found:
		return "found"
	case Exhausted:
		return "exhausted"
	default:
		return fmt.Sprintf("outcome(%d)", uint8(o))
	}
}

// Terminal reports whether o ends the run.
func (o Outcome) Terminal() bool { return o != Continue }

// MarshalText implements encoding.TextMarshaler.
func (o Outcome) MarshalText() ([]byte, error) { return []byte(o.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (o *Outcome) UnmarshalText(b []byte) error {
	for _, v := range []Outcome{Continue, Found, Exhausted} {
		if v.String() == string(b) {
			*o = v
			return nil
		}
	}
	return fmt.Errorf("search: unknown outcome %q", b)
}

// Options configures a Run.
type Options struct {
	// Algorithm selects the stepping strategy. Default AStar.
	Algorithm Algorithm

	// OnExpand is called with the node index each time a node is expanded.
	OnExpand func(i int)
}

// Option configures a Run via functional arguments.
type Option func(*Options)

// DefaultOptions returns Options with A* and a no-op OnExpand hook.
func DefaultOptions() Options {
	return Options{
		Algorithm: AStar,
		OnExpand:  func(int) {},
	}
}

// WithAlgorithm selects the stepping strategy.
func WithAlgorithm(a Algorithm) Option {
	return func(o *Options) { o.Algorithm = a }
}

// WithOnExpand registers a callback run on every node expansion.
func WithOnExpand(fn func(i int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}
