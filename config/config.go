package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/gridpath/engine"
	"github.com/katalvlaran/gridpath/rsr"
	"github.com/katalvlaran/gridpath/search"
)

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Engine: Engine{
			Algorithm: search.AStar.String(),
			MinSide:   rsr.DefaultMinSide,
		},
		Schedule: Schedule{
			TimeBudget: Duration(16 * time.Millisecond),
		},
		Log: Log{
			Level:  logrus.InfoLevel.String(),
			Format: "text",
		},
		Server: Server{
			Addr:         ":8080",
			ReadTimeout:  Duration(10 * time.Second),
			WriteTimeout: Duration(30 * time.Second),
			MaxCells:     1_000_000,
		},
	}
}

// Load reads path over Default and validates the result.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	return Parse(data)
}

// Parse decodes YAML over Default and validates the result. Empty input
// yields Default.
func Parse(data []byte) (Config, error) {
	c := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil && !errors.Is(err, io.EOF) {
		if errors.Is(err, ErrInvalidConfig) {
			return Config{}, err
		}
		return Config{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Write encodes c as YAML.
func (c Config) Write(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return err
	}
	return enc.Close()
}

// Validate rejects unknown algorithms, log levels and formats, a minimum
// square side below 2 and negative step delays.
func (c Config) Validate() error {
	if _, err := search.ParseAlgorithm(c.Engine.Algorithm); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if c.Engine.MinSide < 2 {
		return fmt.Errorf("%w: engine.min_side %d < 2", ErrInvalidConfig, c.Engine.MinSide)
	}
	if c.Schedule.StepDelay < 0 {
		return fmt.Errorf("%w: schedule.step_delay is negative", ErrInvalidConfig)
	}
	if _, err := logrus.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("%w: log.format %q", ErrInvalidConfig, c.Log.Format)
	}
	if c.Server.MaxCells < 0 {
		return fmt.Errorf("%w: server.max_cells is negative", ErrInvalidConfig)
	}
	return nil
}

// EngineConfig converts the engine section.
func (c Config) EngineConfig() (engine.Config, error) {
	algo, err := search.ParseAlgorithm(c.Engine.Algorithm)
	if err != nil {
		return engine.Config{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	ec := engine.Config{
		Algorithm: algo,
		Diagonal:  c.Engine.Diagonal,
		RSR:       c.Engine.RSR,
		MinSide:   c.Engine.MinSide,
	}
	return ec, ec.Validate()
}

// NewLogger builds a logrus logger writing to w with the configured level
// and formatter.
func (c Config) NewLogger(w io.Writer) (*logrus.Logger, error) {
	lvl, err := logrus.ParseLevel(c.Log.Level)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	l := logrus.New()
	l.SetOutput(w)
	l.SetLevel(lvl)
	if c.Log.Format == "json" {
		l.SetFormatter(&logrus.JSONFormatter{})
	} else {
		l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	return l, nil
}
