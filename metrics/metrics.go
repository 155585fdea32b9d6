// Package metrics exposes Prometheus collectors for the planner: explored
// beliefs, value-iteration sweeps and simulated trials.
//
// Collectors live on a private registry owned by Metrics, so several
// planners in one process never collide on registration.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "floodpath"

// Recorder receives planner events. Implementations must be safe for
// concurrent use; simulated trials report from several goroutines.
type Recorder interface {
	// BeliefsExplored reports the size of a reachable belief set.
	BeliefsExplored(n int)
	// SolverSweep reports the max value change of one Bellman sweep.
	SolverSweep(delta float64)
	// SolverDone reports the end of a solve.
	SolverDone(iterations int, converged bool)
	// Trial reports one simulated episode.
	Trial(status string, steps int, cost float64)
}

// Nop discards every event.
type Nop struct{}

func (Nop) BeliefsExplored(int)        {}
func (Nop) SolverSweep(float64)        {}
func (Nop) SolverDone(int, bool)       {}
func (Nop) Trial(string, int, float64) {}

// Metrics is a Recorder backed by Prometheus collectors.
type Metrics struct {
	registry *prometheus.Registry

	beliefs    prometheus.Gauge
	sweeps     prometheus.Counter
	delta      prometheus.Gauge
	converged  prometheus.Gauge
	iterations prometheus.Histogram
	trials     *prometheus.CounterVec
	cost       prometheus.Histogram
	steps      prometheus.Histogram
}

// New registers all collectors on a fresh registry.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	f := promauto.With(reg)

	return &Metrics{
		registry: reg,
		beliefs: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "beliefs_explored",
			Help:      "Size of the last reachable belief set",
		}),
		sweeps: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "solver_sweeps_total",
			Help:      "Total Bellman sweeps performed",
		}),
		delta: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "solver_delta",
			Help:      "Max value change of the last sweep",
		}),
		converged: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "solver_converged",
			Help:      "1 if the last solve converged within epsilon, else 0",
		}),
		iterations: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "solver_iterations",
			Help:      "Sweeps needed per solve",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 10),
		}),
		trials: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "trials_total",
			Help:      "Simulated trials by terminal status",
		}, []string{"status"}),
		cost: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "trial_cost",
			Help:      "Realized cost per simulated trial",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 12),
		}),
		steps: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "trial_steps",
			Help:      "Attempts per simulated trial",
			Buckets:   prometheus.LinearBuckets(0, 2, 16),
		}),
	}
}

// Registry returns the registry holding all collectors.
func (m *Metrics) Registry() *prometheus.Registry { return m.registry }

// WriteTextfile writes the current state in the Prometheus text format,
// suitable for the node_exporter textfile collector.
func (m *Metrics) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, m.registry)
}

// BeliefsExplored implements Recorder.
func (m *Metrics) BeliefsExplored(n int) { m.beliefs.Set(float64(n)) }

// SolverSweep implements Recorder.
func (m *Metrics) SolverSweep(delta float64) {
	m.sweeps.Inc()
	m.delta.Set(delta)
}

// SolverDone implements Recorder.
func (m *Metrics) SolverDone(iterations int, converged bool) {
	m.iterations.Observe(float64(iterations))
	if converged {
		m.converged.Set(1)
	} else {
		m.converged.Set(0)
	}
}

// Trial implements Recorder.
func (m *Metrics) Trial(status string, steps int, cost float64) {
	m.trials.WithLabelValues(status).Inc()
	m.steps.Observe(float64(steps))
	m.cost.Observe(cost)
}
