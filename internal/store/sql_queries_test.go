package store

import (
	"testing"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/habit-tracker/models"
	"github.com/stretchr/testify/require"
)

func Test_buildInsertUserQuery(t *testing.T) {
	user := models.User{
		UserID:         testUserID,
		Email:          "a@x.com",
		HashedPassword: "hash",
		FullName:       "Alice",
		Timezone:       "UTC",
		CreatedAt:      testNow,
		IsActive:       true,
	}

	tests := []struct {
		name      string
		builder   sq.StatementBuilderType
		wantQuery string
	}{
		{
			name:      "postgres placeholders",
			builder:   sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
			wantQuery: "INSERT INTO users (id,email,hashed_password,full_name,timezone,created_at,is_active) VALUES ($1,$2,$3,$4,$5,$6,$7)",
		},
		{
			name:      "sqlite placeholders",
			builder:   sq.StatementBuilder.PlaceholderFormat(sq.Question),
			wantQuery: "INSERT INTO users (id,email,hashed_password,full_name,timezone,created_at,is_active) VALUES (?,?,?,?,?,?,?)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := buildInsertUserQuery(tt.builder, user)
			require.NoError(t, err)
			require.Equal(t, tt.wantQuery, query)
			require.Equal(t, []any{testUserID, "a@x.com", "hash", "Alice", "UTC", testNow, true}, args)
		})
	}
}

func Test_buildInsertUserQuery_EmptyFullNameIsNull(t *testing.T) {
	_, args, err := buildInsertUserQuery(sq.StatementBuilder, models.User{})
	require.NoError(t, err)
	require.Len(t, args, len(userColumns))
	require.Nil(t, args[3])
}

func Test_buildSelectUserQueries(t *testing.T) {
	builder := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

	query, args, err := buildSelectUserByEmailQuery(builder, "a@x.com")
	require.NoError(t, err)
	require.Equal(t, "SELECT id, email, hashed_password, full_name, timezone, created_at, is_active FROM users WHERE email = $1 LIMIT 1", query)
	require.Equal(t, []any{"a@x.com"}, args)

	query, args, err = buildSelectUserByIDQuery(builder, testUserID)
	require.NoError(t, err)
	require.Equal(t, "SELECT id, email, hashed_password, full_name, timezone, created_at, is_active FROM users WHERE id = $1 LIMIT 1", query)
	require.Equal(t, []any{testUserID}, args)
}
