package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/culinary-server/internal/config"
	"github.com/MKhiriev/culinary-server/internal/logger"
	"github.com/MKhiriev/culinary-server/internal/metrics"
	"github.com/MKhiriev/culinary-server/internal/service"
	"github.com/prometheus/client_golang/prometheus"
)

type Handler struct {
	services *service.Services

	metrics        metrics.MetricsCollector
	metricsHandler http.Handler

	corsAllowedOrigins []string
	requestTimeout     time.Duration

	logger *logger.Logger
}

// NewHandler registers the HTTP metrics on registry and serves them back
// from it on /metrics.
func NewHandler(services *service.Services, cfg config.Server, registry *prometheus.Registry, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:           services,
		metrics:            metrics.NewCollector(registry),
		metricsHandler:     metrics.Handler(registry),
		corsAllowedOrigins: cfg.CORSAllowedOrigins,
		requestTimeout:     cfg.RequestTimeout,
		logger:             logger,
	}
}
