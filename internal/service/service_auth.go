package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/MKhiriev/habit-tracker/internal/crypto"
	"github.com/MKhiriev/habit-tracker/internal/logger"
	"github.com/MKhiriev/habit-tracker/internal/store"
	"github.com/MKhiriev/habit-tracker/models"
	"github.com/google/uuid"
)

// authService is the concrete implementation of AuthService.
// It handles user registration, credential verification and identity
// resolution using a UserRepository for persistence, a PasswordHasher for
// credentials and a TokenAuthority for bearer tokens.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// hasher derives and checks bcrypt password hashes.
	hasher crypto.PasswordHasher

	// tokens issues and verifies access tokens.
	tokens crypto.TokenAuthority

	// dummyHash is verified against when the email is unknown, so that both
	// login failures cost one bcrypt comparison.
	dummyHash     string
	dummyHashOnce sync.Once

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given collaborators.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, hasher crypto.PasswordHasher, tokens crypto.TokenAuthority, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		hasher:         hasher,
		tokens:         tokens,
		logger:         logger,
	}
}

// Register creates a new user account and issues its first access token.
//
// Returns the token or:
//   - ErrInvalidDataProvided if Email or Password is empty or the password
//     cannot be hashed (see crypto.ErrEncoding).
//   - ErrEmailAlreadyRegistered if the email is taken.
//   - A wrapped storage or token error otherwise.
func (a *authService) Register(ctx context.Context, credentials models.Credentials) (models.Token, error) {
	log := logger.FromContext(ctx)

	if credentials.Email == "" || credentials.Password == "" {
		log.Error().Str("email", credentials.Email).Msg("invalid user data provided")
		return models.Token{}, ErrInvalidDataProvided
	}

	hash, err := a.hasher.Hash(credentials.Password)
	if err != nil {
		log.Err(err).Str("email", credentials.Email).Msg("password hashing failed")
		if errors.Is(err, crypto.ErrEncoding) {
			return models.Token{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
		}
		return models.Token{}, fmt.Errorf("password hashing failed: %w", err)
	}

	user, err := a.userRepository.CreateUser(ctx, models.User{
		Email:          credentials.Email,
		HashedPassword: hash,
		FullName:       credentials.FullName,
	})
	if err != nil {
		log.Err(err).Str("email", credentials.Email).Msg("user creation ended with error")
		if errors.Is(err, store.ErrEmailAlreadyExists) {
			return models.Token{}, fmt.Errorf("%w: %w", ErrEmailAlreadyRegistered, err)
		}
		return models.Token{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	log.Info().Str("user_id", user.UserID).Msg("user registered")

	return a.issueToken(ctx, user)
}

// Login authenticates an existing user and issues a fresh access token.
//
// Returns the token or:
//   - ErrInvalidDataProvided if Email or Password is empty.
//   - ErrInvalidCredentials if no account has the email or the password does
//     not match. Both cases are indistinguishable to the caller.
//   - A wrapped crypto.ErrInvalidHashFormat if the stored hash is corrupted.
func (a *authService) Login(ctx context.Context, credentials models.Credentials) (models.Token, error) {
	log := logger.FromContext(ctx)

	if credentials.Email == "" || credentials.Password == "" {
		log.Error().Str("email", credentials.Email).Msg("invalid user data provided")
		return models.Token{}, ErrInvalidDataProvided
	}

	user, err := a.userRepository.FindUserByEmail(ctx, credentials.Email)
	if errors.Is(err, store.ErrNoUserWasFound) {
		log.Info().Str("email", credentials.Email).Msg("login for unknown email")
		a.burnComparison(credentials.Password)
		return models.Token{}, ErrInvalidCredentials
	}
	if err != nil {
		log.Err(err).Str("email", credentials.Email).Msg("user search by email failed")
		return models.Token{}, fmt.Errorf("user search by email failed: %w", err)
	}

	ok, err := a.hasher.Verify(credentials.Password, user.HashedPassword)
	if err != nil {
		log.Err(err).Str("user_id", user.UserID).Msg("stored password hash is unusable")
		return models.Token{}, fmt.Errorf("password verification failed: %w", err)
	}
	if !ok {
		log.Info().Str("user_id", user.UserID).Msg("wrong password")
		return models.Token{}, ErrInvalidCredentials
	}

	return a.issueToken(ctx, user)
}

// AuthenticatedIdentity resolves tokenString into the stored user.
//
// The subject is read from "sub" and, when absent, from "user_id". Every
// rejection wraps ErrUnauthorized and the reason: a token verification error
// from package crypto, crypto.ErrMissingClaim or ErrIdentityNotFound.
// Storage failures are returned without ErrUnauthorized.
func (a *authService) AuthenticatedIdentity(ctx context.Context, tokenString string) (models.User, error) {
	log := logger.FromContext(ctx)

	claims, err := a.tokens.Verify(tokenString)
	if err != nil {
		log.Debug().Err(err).Msg("token rejected")
		return models.User{}, fmt.Errorf("%w: %w", ErrUnauthorized, err)
	}

	userID := claims.Subject()
	if userID == "" {
		userID = claims.UserID()
	}
	if userID == "" {
		log.Debug().Msg("token carries no subject")
		return models.User{}, fmt.Errorf("%w: %w", ErrUnauthorized, crypto.ErrMissingClaim)
	}

	// ids are UUIDs; anything else cannot name a stored identity
	if _, err = uuid.Parse(userID); err != nil {
		log.Debug().Str("user_id", userID).Msg("token subject is not a user id")
		return models.User{}, fmt.Errorf("%w: %w", ErrUnauthorized, ErrIdentityNotFound)
	}

	user, err := a.userRepository.FindUserByID(ctx, userID)
	if errors.Is(err, store.ErrNoUserWasFound) {
		log.Debug().Str("user_id", userID).Msg("token subject no longer exists")
		return models.User{}, fmt.Errorf("%w: %w", ErrUnauthorized, ErrIdentityNotFound)
	}
	if err != nil {
		log.Err(err).Str("user_id", userID).Msg("identity lookup failed")
		return models.User{}, fmt.Errorf("identity lookup failed: %w", err)
	}

	return user, nil
}

func (a *authService) issueToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := a.tokens.Issue(user.UserID, nil, 0)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("user_id", user.UserID).Msg("token issuance failed")
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// burnComparison runs one password comparison whose result is discarded.
func (a *authService) burnComparison(password string) {
	a.dummyHashOnce.Do(func() {
		hash, err := a.hasher.Hash("habit-tracker-dummy-password")
		if err != nil {
			a.logger.Err(err).Msg("dummy hash generation failed")
			return
		}
		a.dummyHash = hash
	})
	if a.dummyHash == "" {
		return
	}
	_, _ = a.hasher.Verify(password, a.dummyHash)
}
