package handler

import (
	"github.com/MKhiriev/culinary-server/internal/config"
	"github.com/MKhiriev/culinary-server/internal/handler/http"
	"github.com/MKhiriev/culinary-server/internal/logger"
	"github.com/MKhiriev/culinary-server/internal/service"
	"github.com/prometheus/client_golang/prometheus"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, cfg config.Server, registry *prometheus.Registry, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if services == nil || registry == nil {
		return nil, errNoHandlersAreCreated
	}

	return &Handlers{
		HTTP: http.NewHandler(services, cfg, registry, logger),
	}, nil
}
