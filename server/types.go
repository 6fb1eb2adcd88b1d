// Package server exposes the engine over HTTP.
//
// Routes:
//
//	POST /v1/solve  solve a snapshot to completion
//	GET  /metrics   Prometheus exposition
//	GET  /healthz   liveness
//
// Every solve request builds its own grid and Engine, so handlers share
// nothing but the metrics Collector.
package server

import (
	"errors"
	"io"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/gridpath/engine"
	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/search"
	"github.com/katalvlaran/gridpath/snapshot"
)

// ErrTooLarge indicates a grid with more cells than Options.MaxCells.
var ErrTooLarge = errors.New("server: grid too large")

// maxBodyBytes caps a solve request body.
const maxBodyBytes = 32 << 20

// SolveRequest is the body of POST /v1/solve. Config is optional; a
// missing or zero MinSide falls back to the server default.
type SolveRequest struct {
	Grid   snapshot.Snapshot `json:"grid"`
	Config *engine.Config    `json:"config,omitempty"`
}

// SolveResponse is returned by POST /v1/solve. Path is empty unless
// Outcome is "found".
type SolveResponse struct {
	ID      string         `json:"id,omitempty"`
	Outcome search.Outcome `json:"outcome"`
	Path    []grid.Point   `json:"path,omitempty"`
	Length  int            `json:"length"`
	Cost    float64        `json:"cost"`
	Stats   engine.Stats   `json:"stats"`
}

// ErrorResponse carries a failed request's message.
type ErrorResponse struct {
	Error string `json:"error"`
}

// Options configures a Server.
type Options struct {
	Addr         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	// MaxCells caps Width*Height of solved grids; 0 disables the cap.
	MaxCells int
	// Engine is the configuration used when a request carries none.
	Engine engine.Config
	Logger *logrus.Entry
	// Registry receives the engine metrics and backs /metrics.
	Registry *prometheus.Registry
}

// Option configures a Server via functional arguments.
type Option func(*Options)

// DefaultOptions returns a server on :8080 with engine.DefaultConfig, a
// discarding logger and a fresh registry.
func DefaultOptions() Options {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return Options{
		Addr:         ":8080",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		MaxCells:     1_000_000,
		Engine:       engine.DefaultConfig(),
		Logger:       logrus.NewEntry(l),
		Registry:     prometheus.NewRegistry(),
	}
}

// WithAddr sets the listen address.
func WithAddr(addr string) Option { return func(o *Options) { o.Addr = addr } }

// WithTimeouts sets the HTTP read and write timeouts.
func WithTimeouts(read, write time.Duration) Option {
	return func(o *Options) {
		o.ReadTimeout = read
		o.WriteTimeout = write
	}
}

// WithMaxCells caps the accepted grid size.
func WithMaxCells(n int) Option { return func(o *Options) { o.MaxCells = n } }

// WithEngineConfig sets the default engine configuration.
func WithEngineConfig(c engine.Config) Option { return func(o *Options) { o.Engine = c } }

// WithLogger routes request and engine logs to l.
func WithLogger(l *logrus.Entry) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithRegistry sets the Prometheus registry.
func WithRegistry(r *prometheus.Registry) Option {
	return func(o *Options) {
		if r != nil {
			o.Registry = r
		}
	}
}
