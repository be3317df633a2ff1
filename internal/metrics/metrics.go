// Package metrics counts solve sessions with Prometheus collectors.
//
// The hashi command is short-lived, so the collectors are exported as a
// node_exporter text file instead of being served over HTTP.
package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/katalvlaran/hashi/solver"
)

// Result labels of hashi_solves_total.
const (
	ResultComplete   = "complete"
	ResultIncomplete = "incomplete"
	ResultError      = "error"
)

// Recorder holds the collectors of one process on their own registry.
// All methods are safe for concurrent use.
type Recorder struct {
	registry *prometheus.Registry

	solves   *prometheus.CounterVec
	passes   prometheus.Counter
	edges    prometheus.Counter
	closed   prometheus.Counter
	vetoed   prometheus.Counter
	joined   prometheus.Counter
	duration prometheus.Histogram
}

// NewRecorder registers the collectors on a fresh registry.
func NewRecorder() *Recorder {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Recorder{
		registry: reg,
		solves: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "hashi_solves_total",
			Help: "Total solve sessions by result",
		}, []string{"result"}),
		passes: factory.NewCounter(prometheus.CounterOpts{
			Name: "hashi_passes_total",
			Help: "Total propagation passes run",
		}),
		edges: factory.NewCounter(prometheus.CounterOpts{
			Name: "hashi_bridges_added_total",
			Help: "Total bridges placed by the solver",
		}),
		closed: factory.NewCounter(prometheus.CounterOpts{
			Name: "hashi_slots_closed_total",
			Help: "Total slots closed by the solver",
		}),
		vetoed: factory.NewCounter(prometheus.CounterOpts{
			Name: "hashi_links_vetoed_total",
			Help: "Total links closed because they would cut a cluster off",
		}),
		joined: factory.NewCounter(prometheus.CounterOpts{
			Name: "hashi_links_joined_total",
			Help: "Total bridges placed on the only exit of a cluster",
		}),
		duration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "hashi_solve_duration_seconds",
			Help:    "Solve duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.0001, 4, 10), // 0.1ms to ~26s
		}),
	}
}

// Registry exposes the registry for gathering.
func (r *Recorder) Registry() *prometheus.Registry { return r.registry }

// PassHook returns a solver pass hook feeding the per-pass counters.
func (r *Recorder) PassHook() func(solver.PassStats) {
	return func(s solver.PassStats) {
		r.passes.Inc()
		r.edges.Add(float64(s.EdgesAdded))
		r.closed.Add(float64(s.SlotsClosed))
		r.vetoed.Add(float64(s.Vetoed))
		r.joined.Add(float64(s.Joined))
	}
}

// ObserveSolve records the outcome of one session.
func (r *Recorder) ObserveSolve(rep solver.Report, err error, elapsed time.Duration) {
	result := ResultIncomplete
	switch {
	case err != nil:
		result = ResultError
	case rep.Complete:
		result = ResultComplete
	}
	r.solves.WithLabelValues(result).Inc()
	r.duration.Observe(elapsed.Seconds())
}

// WriteTextfile writes the current values in the text exposition format.
// The file is replaced atomically.
func (r *Recorder) WriteTextfile(filename string) error {
	if err := prometheus.WriteToTextfile(filename, r.registry); err != nil {
		return fmt.Errorf("metrics: write %s: %w", filename, err)
	}

	return nil
}
