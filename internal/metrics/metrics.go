// Package metrics exports solver counters in Prometheus form.
//
// Metrics live on a private registry so several Recorders can coexist (one
// per test, one per process). The tiepath command writes the registry to a
// node-exporter textfile after solving.
package metrics

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/tiepath/tiepath"
)

const namespace = "tiepath"

// Outcome labels for SolvesTotal.
const (
	OutcomeSolved = "solved"
	OutcomeNoPath = "no_path"
	OutcomeError  = "error"
)

// Recorder holds every solver metric.
type Recorder struct {
	registry *prometheus.Registry

	// SolvesTotal counts Solve calls by outcome (solved, no_path, error).
	SolvesTotal *prometheus.CounterVec
	// StatesSettled counts states settled across all solves.
	StatesSettled prometheus.Counter
	// TiesCaptured counts frontier pops that extended a predecessor mask.
	TiesCaptured prometheus.Counter
	// FrontierPushes counts frontier pushes.
	FrontierPushes prometheus.Counter
	// OptimalTiles is the tile count of the last successful solve.
	OptimalTiles prometheus.Gauge
	// MinCost is the minimal cost of the last successful solve.
	MinCost prometheus.Gauge
	// SolveDuration observes wall time per solve.
	SolveDuration prometheus.Histogram
}

// NewRecorder creates a Recorder registered on a fresh registry.
func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		SolvesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "solves_total",
			Help:      "Total solves by outcome",
		}, []string{"outcome"}),
		StatesSettled: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "states_settled_total",
			Help:      "States settled by the frontier scheduler",
		}),
		TiesCaptured: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "ties_captured_total",
			Help:      "Equal-cost arrivals recorded in predecessor masks",
		}),
		FrontierPushes: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "frontier_pushes_total",
			Help:      "Entries pushed onto the frontier",
		}),
		OptimalTiles: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "optimal_tiles",
			Help:      "Distinct cells on any minimal-cost path in the last solve",
		}),
		MinCost: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "min_cost",
			Help:      "Minimal path cost in the last solve",
		}),
		SolveDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "solve_duration_seconds",
			Help:      "Wall time of one solve",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 10),
		}),
	}
	r.registry.MustRegister(
		r.SolvesTotal,
		r.StatesSettled,
		r.TiesCaptured,
		r.FrontierPushes,
		r.OptimalTiles,
		r.MinCost,
		r.SolveDuration,
	)

	return r
}

// Registry exposes the underlying registry (for tests and custom exporters).
func (r *Recorder) Registry() *prometheus.Registry { return r.registry }

// Observe records one solve outcome.
func (r *Recorder) Observe(res tiepath.Result, err error, elapsed time.Duration) {
	r.SolveDuration.Observe(elapsed.Seconds())
	switch {
	case err == nil:
		r.SolvesTotal.WithLabelValues(OutcomeSolved).Inc()
		r.StatesSettled.Add(float64(res.Stats.Settled))
		r.TiesCaptured.Add(float64(res.Stats.Ties))
		r.FrontierPushes.Add(float64(res.Stats.Pushed))
		r.OptimalTiles.Set(float64(res.Tiles))
		r.MinCost.Set(float64(res.MinCost))
	case errors.Is(err, tiepath.ErrNoPath):
		r.SolvesTotal.WithLabelValues(OutcomeNoPath).Inc()
	default:
		r.SolvesTotal.WithLabelValues(OutcomeError).Inc()
	}
}

// WriteTextfile writes every metric to path in the text exposition format.
func (r *Recorder) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, r.registry)
}
