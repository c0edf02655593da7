package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidEmail    = errors.New("value is not a valid email address")
	ErrEmailTooLong    = errors.New("email is too long")
	ErrEmptyPassword   = errors.New("password is required")
	ErrFullNameTooLong = errors.New("full name is too long")
	ErrInvalidTimezone = errors.New("unknown timezone")
	ErrTimezoneTooLong = errors.New("timezone is too long")
)
