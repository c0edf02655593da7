package service

import (
	"fmt"

	"github.com/MKhiriev/habit-tracker/internal/config"
	"github.com/MKhiriev/habit-tracker/internal/crypto"
	"github.com/MKhiriev/habit-tracker/internal/logger"
	"github.com/MKhiriev/habit-tracker/internal/store"
)

// Services groups every service the transports depend on.
type Services struct {
	AuthService    AuthService
	AppInfoService AppInfoService
	HealthService  HealthService
}

// NewServices builds the service layer. The password hasher and the token
// authority are constructed once here from cfg.App.
func NewServices(storages *store.Storages, db Pinger, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	hasher, err := crypto.NewPasswordHasher(cfg.App)
	if err != nil {
		return nil, fmt.Errorf("error creating password hasher: %w", err)
	}

	tokens, err := crypto.NewTokenAuthority(cfg.App)
	if err != nil {
		return nil, fmt.Errorf("error creating token authority: %w", err)
	}

	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	authService := NewAuthValidationService().Wrap(
		NewAuthService(storages.UserRepository, hasher, tokens, logger),
	)

	return &Services{
		AuthService:    authService,
		AppInfoService: appInfoService,
		HealthService:  NewHealthService(db, logger),
	}, nil
}
