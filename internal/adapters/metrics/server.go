package metrics

import (
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/andrescamacho/pi-planner/internal/infrastructure/config"
)

// StartServer exposes the registry over HTTP in a background goroutine.
// Returns the server so callers can shut it down; returns nil when
// metrics are disabled.
func StartServer(cfg *config.MetricsConfig) *http.Server {
	if !cfg.Enabled || Registry == nil {
		return nil
	}

	mux := http.NewServeMux()
	mux.Handle(cfg.Path, promhttp.HandlerFor(Registry, promhttp.HandlerOpts{}))

	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			fmt.Printf("metrics server error: %v\n", err)
		}
	}()

	return server
}
