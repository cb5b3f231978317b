package models

// User is a read-only snapshot of a single row of the "users" table.
// Every nullable column maps to a pointer so that an absent value is
// serialized as JSON null instead of a zero value.
type User struct {
	// UserID is the primary key of the row.
	UserID int64 `json:"user_id"`

	// EmailAddress is the contact address of the user, if any.
	EmailAddress *string `json:"email_address"`

	// CreatedAt is the creation time as Unix seconds, if recorded.
	CreatedAt *int64 `json:"created_at"`

	// Deleted is the soft-delete flag stored as an integer (0 or 1).
	Deleted *int64 `json:"deleted"`

	// Settings holds the raw user settings blob as text.
	Settings *string `json:"settings"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// UserQuery is the validated input of a user lookup.
type UserQuery struct {
	UserID int64 `json:"user_id"`
}
