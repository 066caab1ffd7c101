package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// QueryMetricsCollector handles query execution metrics
type QueryMetricsCollector struct {
	queryDuration *prometheus.HistogramVec
	queriesTotal  *prometheus.CounterVec
}

// NewQueryMetricsCollector creates a new query metrics collector
func NewQueryMetricsCollector() *QueryMetricsCollector {
	return &QueryMetricsCollector{
		// Query execution duration histogram
		queryDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "query_duration_seconds",
				Help:      "Query execution duration distribution",
				Buckets:   []float64{0.001, 0.01, 0.05, 0.1, 0.5, 1.0, 5.0, 30.0},
			},
			[]string{"query", "status"},
		),

		// Query execution counter
		queriesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "queries_total",
				Help:      "Total number of queries executed by type and status",
			},
			[]string{"query", "status"},
		),
	}
}

// Register registers all query metrics with the Prometheus registry
func (c *QueryMetricsCollector) Register() error {
	if Registry == nil {
		return nil // Metrics not enabled
	}

	collectors := []prometheus.Collector{
		c.queryDuration,
		c.queriesTotal,
	}

	for _, collector := range collectors {
		if err := Registry.Register(collector); err != nil {
			return err
		}
	}

	return nil
}

// RecordQueryExecution records a query execution with its duration and outcome
func (c *QueryMetricsCollector) RecordQueryExecution(query string, duration float64, success bool) {
	status := "success"
	if !success {
		status = "error"
	}

	c.queryDuration.WithLabelValues(query, status).Observe(duration)
	c.queriesTotal.WithLabelValues(query, status).Inc()
}
