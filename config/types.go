// Package config defines the YAML configuration file of gridpath.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig indicates a configuration that failed to parse or validate.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the root of the configuration file.
type Config struct {
	Engine   Engine   `yaml:"engine"`
	Schedule Schedule `yaml:"schedule"`
	Log      Log      `yaml:"log"`
	Server   Server   `yaml:"server"`
}

// Engine selects the search and its preprocessing.
type Engine struct {
	Algorithm string `yaml:"algorithm"`
	Diagonal  bool   `yaml:"diagonal"`
	RSR       bool   `yaml:"rsr"`
	MinSide   int    `yaml:"min_side"`
}

// Schedule controls how hosts pace Advance calls.
type Schedule struct {
	// TimeBudget is passed to every Advance; -1 runs to completion and 0
	// performs a single step.
	TimeBudget Duration `yaml:"time_budget"`
	// StepDelay is the pause a host inserts between Advance calls.
	StepDelay Duration `yaml:"step_delay"`
}

// Log configures the logrus logger.
type Log struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Server configures the HTTP host.
type Server struct {
	Addr         string   `yaml:"addr"`
	ReadTimeout  Duration `yaml:"read_timeout"`
	WriteTimeout Duration `yaml:"write_timeout"`
	// MaxCells caps the size of grids accepted by the solve endpoint.
	MaxCells int `yaml:"max_cells"`
}

// Duration is a time.Duration written as a Go duration string ("16ms").
// The bare value -1 is accepted and means "no limit".
type Duration time.Duration

// Std returns d as a time.Duration.
func (d Duration) Std() time.Duration { return time.Duration(d) }

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(n *yaml.Node) error {
	v := strings.TrimSpace(n.Value)
	switch v {
	case "-1":
		*d = -1
		return nil
	case "", "0":
		*d = 0
		return nil
	}
	parsed, err := time.ParseDuration(v)
	if err != nil {
		return fmt.Errorf("%w: line %d: %v", ErrInvalidConfig, n.Line, err)
	}
	*d = Duration(parsed)
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (d Duration) MarshalYAML() (any, error) {
	if d < 0 {
		return -1, nil
	}
	return time.Duration(d).String(), nil
}
