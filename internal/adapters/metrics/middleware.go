package metrics

import (
	"context"
	"reflect"
	"strings"
	"time"

	"github.com/andrescamacho/pi-planner/internal/application/common"
)

// PrometheusMiddleware creates a mediator middleware that records query
// execution metrics: duration histogram plus success/failure counts.
//
// Query names are extracted via reflection and simplified to remove
// package prefixes, e.g. "*queries.SolvePlanQuery" becomes
// "SolvePlanQuery".
func PrometheusMiddleware(collector *QueryMetricsCollector) common.Middleware {
	return func(ctx context.Context, request common.Request, next common.HandlerFunc) (common.Response, error) {
		// Skip metrics if collector is nil (metrics disabled)
		if collector == nil {
			return next(ctx, request)
		}

		queryName := extractQueryName(request)

		start := time.Now()
		response, err := next(ctx, request)
		duration := time.Since(start).Seconds()

		collector.RecordQueryExecution(queryName, duration, err == nil)

		return response, err
	}
}

// extractQueryName extracts a clean type name from the request
func extractQueryName(request common.Request) string {
	if request == nil {
		return "unknown"
	}

	name := reflect.TypeOf(request).String()
	name = strings.TrimPrefix(name, "*")
	if idx := strings.LastIndex(name, "."); idx >= 0 {
		name = name[idx+1:]
	}
	return name
}
