package service

import (
	"context"

	"github.com/MKhiriev/habit-tracker/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// AuthService is the authentication core exposed to the transports.
type AuthService interface {
	// Register creates an account and returns an access token for it.
	// A taken email yields ErrEmailAlreadyRegistered.
	Register(ctx context.Context, credentials models.Credentials) (models.Token, error)

	// Login checks the credentials and returns a fresh access token.
	// An unknown email and a wrong password both yield ErrInvalidCredentials.
	Login(ctx context.Context, credentials models.Credentials) (models.Token, error)

	// AuthenticatedIdentity resolves a bearer token into the stored account.
	// Every rejection wraps ErrUnauthorized together with its reason.
	AuthenticatedIdentity(ctx context.Context, tokenString string) (models.User, error)
}

// AppInfoService exposes build metadata of the running server.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// HealthService reports whether the server can serve requests.
type HealthService interface {
	// Check returns nil when every dependency is reachable.
	Check(ctx context.Context) error
}

// Pinger is a dependency whose reachability can be probed.
type Pinger interface {
	Ping(ctx context.Context) error
}
