package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// SolverMetricsCollector records plan solver search metrics
type SolverMetricsCollector struct {
	solveDuration   *prometheus.HistogramVec
	solvesTotal     *prometheus.CounterVec
	candidatesTotal prometheus.Counter
	backtracksTotal prometheus.Counter
}

// NewSolverMetricsCollector creates a new solver metrics collector
func NewSolverMetricsCollector() *SolverMetricsCollector {
	return &SolverMetricsCollector{
		// Solve duration histogram by outcome
		solveDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "solve_duration_seconds",
				Help:      "Production plan solve duration distribution",
				Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1.0, 5.0, 30.0},
			},
			[]string{"outcome"},
		),

		// Solve counter by target product and outcome
		solvesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "solves_total",
				Help:      "Total number of plan solves by target product and outcome",
			},
			[]string{"target", "outcome"},
		),

		// Candidate assignments tried during search
		candidatesTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "candidates_tried_total",
				Help:      "Total number of candidate planet assignments tried",
			},
		),

		// Backtrack steps taken during search
		backtracksTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "backtracks_total",
				Help:      "Total number of search backtrack steps",
			},
		),
	}
}

// Register registers all solver metrics with the Prometheus registry
func (c *SolverMetricsCollector) Register() error {
	if Registry == nil {
		return nil // Metrics not enabled
	}

	collectors := []prometheus.Collector{
		c.solveDuration,
		c.solvesTotal,
		c.candidatesTotal,
		c.backtracksTotal,
	}

	for _, collector := range collectors {
		if err := Registry.Register(collector); err != nil {
			return err
		}
	}

	return nil
}

// ObserveSolve records a completed solve with its outcome
func (c *SolverMetricsCollector) ObserveSolve(target string, outcome string, duration time.Duration) {
	c.solveDuration.WithLabelValues(outcome).Observe(duration.Seconds())
	c.solvesTotal.WithLabelValues(target, outcome).Inc()
}

// CandidateTried records one candidate assignment attempt
func (c *SolverMetricsCollector) CandidateTried() {
	c.candidatesTotal.Inc()
}

// Backtracked records one search backtrack step
func (c *SolverMetricsCollector) Backtracked() {
	c.backtracksTotal.Inc()
}
