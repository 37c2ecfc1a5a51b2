package http

import (
	"github.com/MKhiriev/connector-sync/internal/config"
	"github.com/MKhiriev/connector-sync/internal/logger"
	"github.com/MKhiriev/connector-sync/internal/metrics"
	"github.com/MKhiriev/connector-sync/internal/service"
	"github.com/MKhiriev/connector-sync/internal/utils"
)

type Handler struct {
	services *service.Services
	metrics  *metrics.Metrics
	traceIDs *utils.UUIDGenerator

	// tokenSignKey enables bearer-token authentication of /api when set.
	tokenSignKey string
	tokenIssuer  string

	logger *logger.Logger
}

func NewHandler(services *service.Services, m *metrics.Metrics, cfg config.App, logger *logger.Logger) *Handler {
	logger.Info().Bool("auth", cfg.TokenSignKey != "").Msg("http handler created")
	return &Handler{
		services:     services,
		metrics:      m,
		traceIDs:     utils.NewUUIDGenerator(),
		tokenSignKey: cfg.TokenSignKey,
		tokenIssuer:  cfg.TokenIssuer,
		logger:       logger,
	}
}
