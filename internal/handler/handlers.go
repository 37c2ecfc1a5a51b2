package handler

import (
	"github.com/MKhiriev/connector-sync/internal/config"
	"github.com/MKhiriev/connector-sync/internal/handler/http"
	"github.com/MKhiriev/connector-sync/internal/logger"
	"github.com/MKhiriev/connector-sync/internal/metrics"
	"github.com/MKhiriev/connector-sync/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, m *metrics.Metrics, cfg *config.StructuredConfig, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.Server.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	return &Handlers{
		HTTP: http.NewHandler(services, m, cfg.App, logger),
	}, nil
}
