package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/habit-tracker/internal/logger"
	"github.com/MKhiriev/habit-tracker/models"
)

// userRepository is the SQL implementation of [UserRepository].
// It handles account creation and lookup against the "users" table for every
// driver supported by [DB].
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
	ids    IDGenerator
	now    func() time.Time
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection. New users get UUIDv7 identifiers from ids.
func NewUserRepository(db *DB, ids IDGenerator, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		ids:    ids,
		logger: logger,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

// CreateUser persists a new user record and returns the fully populated
// [models.User] with server-assigned fields (UserID, CreatedAt).
// Timezone defaults to [models.DefaultTimezone]; new accounts are active.
//
// Error handling:
//   - unique index violation on email → [ErrEmailAlreadyExists].
//   - transient driver condition → [ErrDatabaseUnavailable].
//   - any other driver-level error → wrapped [ErrExecutingQuery].
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	user.UserID = r.ids.Generate()
	user.CreatedAt = r.now().Truncate(time.Microsecond)
	user.IsActive = true
	if user.Timezone == "" {
		user.Timezone = models.DefaultTimezone
	}

	query, args, err := buildInsertUserQuery(r.db.builder, user)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error building query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	// create user in db
	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error inserting user")

		switch r.db.errorClassificator.Classify(err) {
		case UniqueViolation:
			return models.User{}, ErrEmailAlreadyExists
		case Transient:
			return models.User{}, fmt.Errorf("%w: %w", ErrDatabaseUnavailable, err)
		default:
			return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
	}

	return user, nil
}

// FindUserByEmail retrieves the user record whose email matches exactly.
// Returns [ErrNoUserWasFound] when there is none.
func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	query, args, err := buildSelectUserByEmailQuery(r.db.builder, email)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*userRepository.FindUserByEmail").Msg("error building query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.findOne(ctx, "*userRepository.FindUserByEmail", query, args)
}

// FindUserByID retrieves the user record with the given identifier.
// Returns [ErrNoUserWasFound] when there is none.
func (r *userRepository) FindUserByID(ctx context.Context, userID string) (models.User, error) {
	query, args, err := buildSelectUserByIDQuery(r.db.builder, userID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*userRepository.FindUserByID").Msg("error building query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.findOne(ctx, "*userRepository.FindUserByID", query, args)
}

func (r *userRepository) findOne(ctx context.Context, funcName, query string, args []any) (models.User, error) {
	log := logger.FromContext(ctx)

	var (
		user     models.User
		fullName sql.NullString
	)
	err := r.db.QueryRowContext(ctx, query, args...).Scan(
		&user.UserID,
		&user.Email,
		&user.HashedPassword,
		&fullName,
		&user.Timezone,
		&user.CreatedAt,
		&user.IsActive,
	)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.User{}, ErrNoUserWasFound
	case err != nil && r.db.errorClassificator.Classify(err) == Transient:
		log.Err(err).Str("func", funcName).Msg("database unavailable")
		return models.User{}, fmt.Errorf("%w: %w", ErrDatabaseUnavailable, err)
	case err != nil:
		log.Err(err).Str("func", funcName).Msg("error scanning user")
		return models.User{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	user.FullName = fullName.String
	user.CreatedAt = user.CreatedAt.UTC()

	return user, nil
}
