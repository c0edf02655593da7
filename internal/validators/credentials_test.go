// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"strings"
	"testing"

	"github.com/MKhiriev/habit-tracker/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validCredentials() models.Credentials {
	return models.Credentials{
		Email:    "a@x.com",
		Password: "Secret1!",
		FullName: "Alice",
	}
}

func TestCredentialsValidator_Credentials(t *testing.T) {
	v := NewCredentialsValidator()
	ctx := context.Background()

	tests := []struct {
		name    string
		modify  func(c *models.Credentials)
		fields  []string
		wantErr error
	}{
		{name: "valid", modify: func(c *models.Credentials) {}},
		{name: "empty full name is fine", modify: func(c *models.Credentials) { c.FullName = "" }},
		{name: "subdomain", modify: func(c *models.Credentials) { c.Email = "first.last@mail.example.org" }},
		{name: "empty email", modify: func(c *models.Credentials) { c.Email = "" }, wantErr: ErrInvalidEmail},
		{name: "no at sign", modify: func(c *models.Credentials) { c.Email = "a.x.com" }, wantErr: ErrInvalidEmail},
		{name: "two at signs", modify: func(c *models.Credentials) { c.Email = "a@b@x.com" }, wantErr: ErrInvalidEmail},
		{name: "empty local part", modify: func(c *models.Credentials) { c.Email = "@x.com" }, wantErr: ErrInvalidEmail},
		{name: "empty domain", modify: func(c *models.Credentials) { c.Email = "a@" }, wantErr: ErrInvalidEmail},
		{name: "undotted domain", modify: func(c *models.Credentials) { c.Email = "a@localhost" }, wantErr: ErrInvalidEmail},
		{name: "empty domain label", modify: func(c *models.Credentials) { c.Email = "a@x..com" }, wantErr: ErrInvalidEmail},
		{name: "whitespace", modify: func(c *models.Credentials) { c.Email = "a b@x.com" }, wantErr: ErrInvalidEmail},
		{name: "email too long", modify: func(c *models.Credentials) { c.Email = strings.Repeat("a", 250) + "@x.com" }, wantErr: ErrEmailTooLong},
		{name: "empty password", modify: func(c *models.Credentials) { c.Password = "" }, wantErr: ErrEmptyPassword},
		{name: "full name too long", modify: func(c *models.Credentials) { c.FullName = strings.Repeat("я", 101) }, wantErr: ErrFullNameTooLong},
		{
			name:   "field scoping skips password",
			modify: func(c *models.Credentials) { c.Password = "" },
			fields: []string{FieldEmail},
		},
		{
			name:    "unknown field",
			modify:  func(c *models.Credentials) {},
			fields:  []string{FieldTimezone},
			wantErr: ErrUnknownField,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := validCredentials()
			tt.modify(&c)

			err := v.Validate(ctx, c, tt.fields...)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)

			// pointer form behaves the same
			require.NoError(t, v.Validate(ctx, &c, tt.fields...))
		})
	}
}

func TestCredentialsValidator_User(t *testing.T) {
	v := NewCredentialsValidator()
	ctx := context.Background()

	tests := []struct {
		name    string
		user    models.User
		wantErr error
	}{
		{name: "default timezone", user: models.User{Email: "a@x.com"}},
		{name: "iana timezone", user: models.User{Email: "a@x.com", Timezone: "Europe/Riga"}},
		{name: "unknown timezone", user: models.User{Email: "a@x.com", Timezone: "Mars/Olympus"}, wantErr: ErrInvalidTimezone},
		{name: "timezone too long", user: models.User{Email: "a@x.com", Timezone: strings.Repeat("Z", 51)}, wantErr: ErrTimezoneTooLong},
		{name: "bad email", user: models.User{Email: "nope"}, wantErr: ErrInvalidEmail},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(ctx, &tt.user)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestCredentialsValidator_UnsupportedType(t *testing.T) {
	err := NewCredentialsValidator().Validate(context.Background(), 42)
	assert.ErrorIs(t, err, ErrUnsupportedType)
}

func TestNormalizeEmail(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "a@x.com", want: "a@x.com"},
		{in: "Alice@Example.COM", want: "Alice@example.com"},
		{in: "no-at-sign", want: "no-at-sign"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeEmail(tt.in))
		})
	}
}
