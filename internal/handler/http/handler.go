package http

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/MKhiriev/lookup-gateway/internal/config"
	"github.com/MKhiriev/lookup-gateway/internal/logger"
	"github.com/MKhiriev/lookup-gateway/internal/service"
	"github.com/MKhiriev/lookup-gateway/internal/validators"
)

type Handler struct {
	services  *service.Services
	validator validators.Validator
	metrics   *httpMetrics

	// exposeBackendErrors appends raw backend error text to failure messages.
	exposeBackendErrors bool

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.App, logger *logger.Logger) *Handler {
	logger.Info().Bool("expose_backend_errors", cfg.ExposeBackendErrors).Msg("http handler created")
	return &Handler{
		services:            services,
		validator:           validators.NewLookupValidator(),
		metrics:             newHTTPMetrics(prometheus.NewRegistry()),
		exposeBackendErrors: cfg.ExposeBackendErrors,
		logger:              logger,
	}
}
