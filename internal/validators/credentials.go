package validators

import (
	"context"
	"strings"
	"time"
	_ "time/tzdata"
	"unicode/utf8"

	"github.com/MKhiriev/habit-tracker/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	// FieldEmail targets the login email of an account.
	FieldEmail = "email"

	// FieldPassword targets the plaintext password.
	FieldPassword = "password"

	// FieldFullName targets the optional display name.
	FieldFullName = "full_name"

	// FieldTimezone targets the IANA timezone of an account.
	FieldTimezone = "timezone"
)

// Column widths of the users table.
const (
	maxEmailLength    = 255
	maxFullNameLength = 100
	maxTimezoneLength = 50
)

// CredentialsValidator validates [models.Credentials] and [models.User].
type CredentialsValidator struct{}

// NewCredentialsValidator returns a [Validator] for account input.
func NewCredentialsValidator() Validator {
	return &CredentialsValidator{}
}

// Validate implements [Validator]. Without fields, credentials are checked
// for email, password and full name, users for email, full name and timezone.
func (v *CredentialsValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Credentials:
		return v.validateCredentials(value, fields...)
	case *models.Credentials:
		return v.validateCredentials(*value, fields...)

	case models.User:
		return v.validateUser(value, fields...)
	case *models.User:
		return v.validateUser(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *CredentialsValidator) validateCredentials(c models.Credentials, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldPassword, FieldFullName}
	}

	for _, f := range fields {
		switch f {
		case FieldEmail:
			if err := validateEmail(c.Email); err != nil {
				return err
			}
		case FieldPassword:
			if c.Password == "" {
				return ErrEmptyPassword
			}
		case FieldFullName:
			if utf8.RuneCountInString(c.FullName) > maxFullNameLength {
				return ErrFullNameTooLong
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *CredentialsValidator) validateUser(u models.User, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldFullName, FieldTimezone}
	}

	for _, f := range fields {
		switch f {
		case FieldEmail:
			if err := validateEmail(u.Email); err != nil {
				return err
			}
		case FieldFullName:
			if utf8.RuneCountInString(u.FullName) > maxFullNameLength {
				return ErrFullNameTooLong
			}
		case FieldTimezone:
			if err := validateTimezone(u.Timezone); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateEmail accepts addresses with exactly one "@", a non-empty local
// part and a dotted domain, without whitespace.
func validateEmail(email string) error {
	if len(email) > maxEmailLength {
		return ErrEmailTooLong
	}
	if strings.ContainsAny(email, " \t\r\n") {
		return ErrInvalidEmail
	}

	local, domain, ok := strings.Cut(email, "@")
	if !ok || local == "" || domain == "" || strings.Contains(domain, "@") {
		return ErrInvalidEmail
	}

	labels := strings.Split(domain, ".")
	if len(labels) < 2 {
		return ErrInvalidEmail
	}
	for _, label := range labels {
		if label == "" {
			return ErrInvalidEmail
		}
	}

	return nil
}

// NormalizeEmail lowercases the domain part of email. The local part is
// kept as typed.
func NormalizeEmail(email string) string {
	at := strings.LastIndexByte(email, '@')
	if at < 0 {
		return email
	}
	return email[:at+1] + strings.ToLower(email[at+1:])
}

// validateTimezone accepts an empty value (the default is applied on
// persist) or a name known to the IANA database.
func validateTimezone(tz string) error {
	if tz == "" {
		return nil
	}
	if len(tz) > maxTimezoneLength {
		return ErrTimezoneTooLong
	}
	if _, err := time.LoadLocation(tz); err != nil {
		return ErrInvalidTimezone
	}
	return nil
}
