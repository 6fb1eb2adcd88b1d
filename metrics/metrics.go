// Package metrics exports engine activity as Prometheus metrics. A
// Collector is an engine.Observer; register it with engine.WithObserver.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/katalvlaran/gridpath/engine"
)

// Namespace prefixes every metric name.
const Namespace = "gridpath"

// Collector records preparation and run statistics.
type Collector struct {
	runs           *prometheus.CounterVec
	runSeconds     *prometheus.HistogramVec
	runExpanded    *prometheus.HistogramVec
	pathNodes      *prometheus.HistogramVec
	prepareSeconds *prometheus.HistogramVec
	rects          prometheus.Gauge
}

// New creates a Collector and registers its metrics with reg.
// It panics if registration fails, like promauto.
func New(reg prometheus.Registerer) *Collector {
	f := promauto.With(reg)
	return &Collector{
		runs: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "runs_total",
			Help:      "Finished search runs by algorithm and outcome.",
		}, []string{"algorithm", "outcome"}),
		runSeconds: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: Namespace,
			Name:      "run_algorithm_seconds",
			Help:      "Algorithm time of finished runs, excluding time between Advance calls.",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 2, 14), // 0.1ms to ~1.6s
		}, []string{"algorithm"}),
		runExpanded: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: Namespace,
			Name:      "run_expanded_nodes",
			Help:      "Nodes expanded per finished run.",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 10),
		}, []string{"algorithm"}),
		pathNodes: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: Namespace,
			Name:      "path_nodes",
			Help:      "Length in nodes of found paths.",
			Buckets:   prometheus.ExponentialBuckets(2, 2, 12),
		}, []string{"algorithm"}),
		prepareSeconds: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: Namespace,
			Name:      "prepare_seconds",
			Help:      "Preparation time by phase.",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 2, 12),
		}, []string{"phase"}),
		rects: f.NewGauge(prometheus.GaugeOpts{
			Namespace: Namespace,
			Name:      "symmetry_rects",
			Help:      "Symmetry rectangles found by the latest preparation.",
		}),
	}
}

// Prepared implements engine.Observer.
func (c *Collector) Prepared(s engine.Stats) {
	c.prepareSeconds.WithLabelValues("reset").Observe(s.Prepare.Reset.Seconds())
	c.prepareSeconds.WithLabelValues("neighbors").Observe(s.Prepare.Neighbors.Seconds())
	if s.Config.RSR {
		c.prepareSeconds.WithLabelValues("rsr").Observe(s.Prepare.RSR.Seconds())
	}
	c.rects.Set(float64(s.Rects))
}

// RunFinished implements engine.Observer.
func (c *Collector) RunFinished(s engine.Stats) {
	algo := s.Config.Algorithm.String()
	c.runs.WithLabelValues(algo, s.Outcome.String()).Inc()
	c.runSeconds.WithLabelValues(algo).Observe(s.AlgoTime.Seconds())
	c.runExpanded.WithLabelValues(algo).Observe(float64(s.Expanded))
	if s.PathNodes > 0 {
		c.pathNodes.WithLabelValues(algo).Observe(float64(s.PathNodes))
	}
}

var _ engine.Observer = (*Collector)(nil)
