package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/habit-tracker/internal/logger"
)

// defaultHealthCheckTimeout bounds a single dependency probe.
const defaultHealthCheckTimeout = 2 * time.Second

type healthService struct {
	db      Pinger
	timeout time.Duration
	logger  *logger.Logger
}

// NewHealthService returns a HealthService probing db.
func NewHealthService(db Pinger, logger *logger.Logger) HealthService {
	return &healthService{
		db:      db,
		timeout: defaultHealthCheckTimeout,
		logger:  logger,
	}
}

// Check pings the database. Returns a wrapped ErrStorageUnavailable on failure.
func (s *healthService) Check(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	if err := s.db.Ping(ctx); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*healthService.Check").Msg("database ping failed")
		return fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
	}

	return nil
}
