package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/habit-tracker/internal/crypto"
	"github.com/MKhiriev/habit-tracker/internal/validators"
	"github.com/MKhiriev/habit-tracker/models"
)

// AuthServiceWrapper defines middleware composition for AuthService.
// Implementations wrap an existing AuthService to add behavior such as
// validating.
type AuthServiceWrapper interface {
	Wrap(AuthService) AuthService // returns a decorated AuthService applying additional behavior
}

// AuthValidationService is an AuthService decorator that rejects malformed
// input before it reaches the wrapped service.
type AuthValidationService struct {
	inner     AuthService
	validator validators.Validator
}

// NewAuthValidationService returns a wrapper validating credentials with
// [validators.CredentialsValidator].
func NewAuthValidationService() AuthServiceWrapper {
	return &AuthValidationService{
		validator: validators.NewCredentialsValidator(),
	}
}

// Register validates email, password and full name. The email domain is
// lowercased before the account is stored.
func (v *AuthValidationService) Register(ctx context.Context, credentials models.Credentials) (models.Token, error) {
	if err := v.validator.Validate(ctx, credentials); err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	credentials.Email = validators.NormalizeEmail(credentials.Email)

	return v.inner.Register(ctx, credentials)
}

// Login validates email and password. The full name is ignored and the
// email domain is lowercased as on Register.
func (v *AuthValidationService) Login(ctx context.Context, credentials models.Credentials) (models.Token, error) {
	if err := v.validator.Validate(ctx, credentials, validators.FieldEmail, validators.FieldPassword); err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	credentials.Email = validators.NormalizeEmail(credentials.Email)

	return v.inner.Login(ctx, credentials)
}

// AuthenticatedIdentity rejects blank tokens without touching the token authority.
func (v *AuthValidationService) AuthenticatedIdentity(ctx context.Context, tokenString string) (models.User, error) {
	if strings.TrimSpace(tokenString) == "" {
		return models.User{}, fmt.Errorf("%w: %w", ErrUnauthorized, crypto.ErrTokenMalformed)
	}

	return v.inner.AuthenticatedIdentity(ctx, tokenString)
}

// Wrap implements [AuthServiceWrapper].
func (v *AuthValidationService) Wrap(wrapped AuthService) AuthService {
	v.inner = wrapped
	return v
}
