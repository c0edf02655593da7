package grpc

import (
	"context"
	"time"

	"github.com/MKhiriev/habit-tracker/internal/logger"
	"github.com/MKhiriev/habit-tracker/internal/service"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// DefaultHealthInterval is how often the storage is probed for the
// health service.
const DefaultHealthInterval = 10 * time.Second

// Handler is the root gRPC transport handler.
//
// It serves the standard grpc.health.v1.Health service. The reported status
// follows [service.HealthService.Check], which pings the user store.
type Handler struct {
	// services provides access to all application business operations.
	services *service.Services

	health *health.Server

	logger *logger.Logger
}

// NewHandler constructs a [Handler]. The health status starts as
// NOT_SERVING until the first check succeeds.
func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	h := &Handler{
		services: services,
		health:   health.NewServer(),
		logger:   logger,
	}
	h.health.SetServingStatus("", healthpb.HealthCheckResponse_NOT_SERVING)

	logger.Debug().Msg("gRPC handler created")
	return h
}

// Register attaches the handler's services to s.
func (h *Handler) Register(s *grpc.Server) {
	healthpb.RegisterHealthServer(s, h.health)
}

// RefreshHealth runs one storage check and publishes the result.
func (h *Handler) RefreshHealth(ctx context.Context) healthpb.HealthCheckResponse_ServingStatus {
	status := healthpb.HealthCheckResponse_SERVING
	if h.services != nil && h.services.HealthService != nil {
		if err := h.services.HealthService.Check(ctx); err != nil {
			h.logger.Err(err).Str("func", "grpc.RefreshHealth").Msg("health check failed")
			status = healthpb.HealthCheckResponse_NOT_SERVING
		}
	}

	h.health.SetServingStatus("", status)
	return status
}

// WatchHealth refreshes the health status every interval until ctx is done.
func (h *Handler) WatchHealth(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = DefaultHealthInterval
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	h.RefreshHealth(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			h.RefreshHealth(ctx)
		}
	}
}

// Shutdown marks every service NOT_SERVING so that watchers drain before
// the server stops.
func (h *Handler) Shutdown() {
	h.health.Shutdown()
}
