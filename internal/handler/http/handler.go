package http

import (
	"github.com/MKhiriev/go-market-keeper/internal/config"
	"github.com/MKhiriev/go-market-keeper/internal/logger"
	"github.com/MKhiriev/go-market-keeper/internal/service"
	"github.com/MKhiriev/go-market-keeper/internal/validators"
)

type Handler struct {
	services  *service.Services
	validator validators.Validator

	upload config.Upload
	server config.Server
	// development relaxes the security headers for plain-HTTP local runs.
	development bool

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg *config.StructuredConfig, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:    services,
		validator:   validators.NewRequestValidator(),
		upload:      cfg.Upload,
		server:      cfg.Server,
		development: !cfg.App.IsProduction(),
		logger:      logger,
	}
}
