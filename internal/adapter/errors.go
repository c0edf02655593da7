package adapter

import "errors"

var (
	ErrBadRequest             = errors.New("bad request")
	ErrUnauthorized           = errors.New("client unauthorized")
	ErrNotFound               = errors.New("not found")
	ErrEmailAlreadyRegistered = errors.New("email already registered")
	ErrServiceUnavailable     = errors.New("service unavailable")
	ErrInternalServerError    = errors.New("internal server error")
	ErrEmptyToken             = errors.New("server returned an empty token")
	ErrInvalidAddress         = errors.New("invalid server address")
)
