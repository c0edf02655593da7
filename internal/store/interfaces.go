package store

import (
	"context"

	"github.com/MKhiriev/habit-tracker/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository is the user store collaborator of the authentication
// service. Implementations must be safe for concurrent use.
type UserRepository interface {
	// CreateUser persists user and returns it with the server-assigned
	// UserID and CreatedAt. Returns ErrEmailAlreadyExists when the email is
	// taken.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByEmail returns the user with the given email or ErrNoUserWasFound.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)

	// FindUserByID returns the user with the given id or ErrNoUserWasFound.
	FindUserByID(ctx context.Context, userID string) (models.User, error)
}

// ErrorClassificator maps driver-specific errors onto [ErrorClassification].
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

// IDGenerator produces primary keys for new rows.
type IDGenerator interface {
	Generate() string
}
