package metrics

import (
	"context"
	"errors"
	"net/http"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/voltgrid/voltgrid/internal/config"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

var registerOnce sync.Once

var Module = fx.Module("metrics",
	fx.Provide(func() *prometheus.Registry {
		return prometheus.NewRegistry()
	}),
	fx.Invoke(Register),
)

// handler serves the engine registry together with the default gatherer,
// which carries the gorm pool collectors.
func handler(registry *prometheus.Registry) http.Handler {
	gatherers := prometheus.Gatherers{registry, prometheus.DefaultGatherer}
	return promhttp.HandlerFor(gatherers, promhttp.HandlerOpts{})
}

// Register wires the process-local recorder and exposes /metrics when enabled.
// Failures here are logged and never block the engines.
func Register(lc fx.Lifecycle, cfg config.Config, registry *prometheus.Registry, logger *zap.Logger) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if !cfg.MetricsEnabled {
		return
	}

	registerOnce.Do(func() {
		setRecorder(&recorder{metrics: newMetrics(registry)})
	})

	mux := http.NewServeMux()
	mux.Handle("/metrics", handler(registry))
	srv := &http.Server{Addr: cfg.MetricsAddr, Handler: mux}

	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go func() {
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					logger.Warn("metrics listener stopped", zap.Error(err))
				}
			}()
			logger.Info("metrics listener started", zap.String("addr", cfg.MetricsAddr))
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return srv.Shutdown(ctx)
		},
	})
}
