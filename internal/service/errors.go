package service

import "errors"

var (
	ErrInvalidDataProvided    = errors.New("invalid data provided")
	ErrEmailAlreadyRegistered = errors.New("email already registered")
	ErrInvalidCredentials     = errors.New("invalid email or password")

	// ErrUnauthorized is the single outcome of every failed identity
	// resolution. The concrete reason is wrapped next to it for logging.
	ErrUnauthorized = errors.New("invalid or expired token")

	ErrIdentityNotFound = errors.New("identity not found")

	ErrTokenCreationFailed   = errors.New("token creation failed")
	ErrVersionIsNotSpecified = errors.New("app version is not specified")
	ErrStorageUnavailable    = errors.New("storage is unavailable")
)
