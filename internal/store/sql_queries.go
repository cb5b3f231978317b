package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/lookup-gateway/models"
)

// userColumns is the projection of every user lookup, in scan order.
var userColumns = []string{
	"user_id",
	"email_address",
	"created_at",
	"deleted",
	"settings",
}

// buildFindUserByIDQuery returns a single-row SELECT on the users table with
// the id bound as a parameter in the dialect's placeholder style.
func buildFindUserByIDQuery(dialect Dialect, userID int64) (string, []any, error) {
	return sq.Select(userColumns...).
		From(models.User{}.TableName()).
		Where(sq.Eq{"user_id": userID}).
		PlaceholderFormat(dialect.PlaceholderFormat()).
		ToSql()
}
