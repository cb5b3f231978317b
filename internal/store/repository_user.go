package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/lookup-gateway/internal/logger"
	"github.com/MKhiriev/lookup-gateway/models"
)

// userRepository is the database/sql implementation of [UserRepository].
// It works against PostgreSQL and SQLite alike; the dialect only changes the
// placeholder style and the error classifier.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// FindUserByID selects the row whose user_id equals userID.
//
// Error handling:
//   - [sql.ErrNoRows] → found == false, nil error.
//   - Query build failure → *StoreError{Kind: KindInternal} wrapping [ErrBuildingSQLQuery].
//   - Driver or scan failure → *StoreError classified by the dialect's
//     [ErrorClassificator], wrapping [ErrExecutingQuery].
func (r *userRepository) FindUserByID(ctx context.Context, userID int64) (models.User, bool, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildFindUserByIDQuery(r.db.dialect, userID)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.FindUserByID").Msg("error building query")
		return models.User{}, false, newStoreError(BackendUser, KindInternal, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err))
	}

	var (
		user               models.User
		email, settings    sql.NullString
		createdAt, deleted sql.NullInt64
	)
	err = r.db.QueryRowContext(ctx, query, args...).
		Scan(&user.UserID, &email, &createdAt, &deleted, &settings)
	if errors.Is(err, sql.ErrNoRows) {
		log.Debug().Str("func", "*userRepository.FindUserByID").Int64("user_id", userID).Msg("no user was found")
		return models.User{}, false, nil
	}
	if err != nil {
		log.Err(err).Str("func", "*userRepository.FindUserByID").Int64("user_id", userID).Msg("error querying user")
		return models.User{}, false, r.db.classify(fmt.Errorf("%w: %w", ErrExecutingQuery, err))
	}

	user.EmailAddress = nullableString(email)
	user.CreatedAt = nullableInt64(createdAt)
	user.Deleted = nullableInt64(deleted)
	user.Settings = nullableString(settings)

	return user, true, nil
}

func (r *userRepository) Ping(ctx context.Context) error {
	if err := r.db.PingContext(ctx); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*userRepository.Ping").Msg("database ping failed")
		return r.db.classify(err)
	}
	return nil
}

func nullableString(v sql.NullString) *string {
	if !v.Valid {
		return nil
	}
	return &v.String
}

func nullableInt64(v sql.NullInt64) *int64 {
	if !v.Valid {
		return nil
	}
	return &v.Int64
}
