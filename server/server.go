package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/gridpath/engine"
	"github.com/katalvlaran/gridpath/metrics"
	"github.com/katalvlaran/gridpath/search"
	"github.com/katalvlaran/gridpath/snapshot"
)

// Server is an http.Handler serving the solve, metrics and health routes.
type Server struct {
	opts    Options
	log     *logrus.Entry
	metrics *metrics.Collector
	router  chi.Router
}

// New builds a Server. The metrics Collector is registered on the
// configured registry, so one registry serves at most one Server.
func New(opts ...Option) *Server {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	s := &Server{
		opts:    o,
		log:     o.Logger,
		metrics: metrics.New(o.Registry),
	}
	s.router = s.buildRouter()
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// ListenAndServe serves until ctx is done, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.opts.Addr,
		Handler:           s,
		ReadHeaderTimeout: s.opts.ReadTimeout,
		ReadTimeout:       s.opts.ReadTimeout,
		WriteTimeout:      s.opts.WriteTimeout,
	}

	errc := make(chan error, 1)
	go func() { errc <- srv.ListenAndServe() }()
	s.log.WithField("addr", s.opts.Addr).Info("listening")

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// buildRouter constructs the chi router with all routes and middleware.
func (s *Server) buildRouter() chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(s.requestLogger)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealth)
	r.Handle("/metrics", promhttp.HandlerFor(s.opts.Registry, promhttp.HandlerOpts{}))

	r.Route("/v1", func(r chi.Router) {
		r.Post("/solve", s.handleSolve)
	})

	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleSolve decodes a snapshot, solves it to completion and returns the
// result with run statistics.
func (s *Server) handleSolve(w http.ResponseWriter, r *http.Request) {
	var req SolveRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		s.fail(w, r, http.StatusBadRequest, fmt.Errorf("%w: %v", snapshot.ErrInvalidSnapshot, err))
		return
	}

	if limit := s.opts.MaxCells; limit > 0 && req.Grid.Width*req.Grid.Height > limit {
		s.fail(w, r, http.StatusRequestEntityTooLarge,
			fmt.Errorf("%w: %dx%d exceeds %d cells", ErrTooLarge, req.Grid.Width, req.Grid.Height, limit))
		return
	}

	cfg := s.opts.Engine
	if req.Config != nil {
		cfg = *req.Config
		if cfg.MinSide == 0 {
			cfg.MinSide = s.opts.Engine.MinSide
		}
	}
	if err := cfg.Validate(); err != nil {
		s.fail(w, r, http.StatusBadRequest, err)
		return
	}

	g, err := req.Grid.Grid()
	if err != nil {
		s.fail(w, r, http.StatusBadRequest, err)
		return
	}

	e := engine.New(g,
		engine.WithConfig(cfg),
		engine.WithLogger(s.log.WithField("request", middleware.GetReqID(r.Context()))),
		engine.WithObserver(s.metrics),
	)
	res, err := e.Solve()
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, search.ErrInvalidEndpoints) {
			status = http.StatusUnprocessableEntity
		}
		s.fail(w, r, status, err)
		return
	}

	writeJSON(w, http.StatusOK, SolveResponse{
		ID:      req.Grid.ID,
		Outcome: res.Outcome,
		Path:    res.Path,
		Length:  res.Length,
		Cost:    res.Cost,
		Stats:   e.Stats(),
	})
}

// fail logs err and writes it as an ErrorResponse.
func (s *Server) fail(w http.ResponseWriter, r *http.Request, status int, err error) {
	s.log.WithFields(logrus.Fields{
		"request": middleware.GetReqID(r.Context()),
		"status":  status,
	}).WithError(err).Warn("request failed")
	writeJSON(w, status, ErrorResponse{Error: err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
