package store

import (
	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/habit-tracker/models"
)

var usersTable = models.User{}.TableName()

// userColumns lists the columns read by every user query, in scan order.
var userColumns = []string{
	"id",
	"email",
	"hashed_password",
	"full_name",
	"timezone",
	"created_at",
	"is_active",
}

func buildInsertUserQuery(builder sq.StatementBuilderType, user models.User) (string, []any, error) {
	var fullName any
	if user.FullName != "" {
		fullName = user.FullName
	}

	return builder.
		Insert(usersTable).
		Columns(userColumns...).
		Values(
			user.UserID,
			user.Email,
			user.HashedPassword,
			fullName,
			user.Timezone,
			user.CreatedAt,
			user.IsActive,
		).
		ToSql()
}

func buildSelectUserByEmailQuery(builder sq.StatementBuilderType, email string) (string, []any, error) {
	return builder.
		Select(userColumns...).
		From(usersTable).
		Where(sq.Eq{"email": email}).
		Limit(1).
		ToSql()
}

func buildSelectUserByIDQuery(builder sq.StatementBuilderType, userID string) (string, []any, error) {
	return builder.
		Select(userColumns...).
		From(usersTable).
		Where(sq.Eq{"id": userID}).
		Limit(1).
		ToSql()
}
