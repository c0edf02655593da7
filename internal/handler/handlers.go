package handler

import (
	"github.com/MKhiriev/habit-tracker/internal/config"
	"github.com/MKhiriev/habit-tracker/internal/handler/grpc"
	"github.com/MKhiriev/habit-tracker/internal/handler/http"
	"github.com/MKhiriev/habit-tracker/internal/logger"
	"github.com/MKhiriev/habit-tracker/internal/service"
)

// Handlers holds one handler per enabled transport. A nil field means the
// transport has no address configured.
type Handlers struct {
	HTTP *http.Handler
	GRPC *grpc.Handler
}

func NewHandlers(services *service.Services, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().
		Bool("http", cfg.HTTPAddress != "").
		Bool("grpc", cfg.GRPCAddress != "").
		Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(services, logger, http.WithRequestTimeout(cfg.RequestTimeout))
	}
	if cfg.GRPCAddress != "" {
		handlers.GRPC = grpc.NewHandler(services, logger)
	}

	if handlers.HTTP == nil && handlers.GRPC == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
