package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/lookup-gateway/internal/config"
	"github.com/MKhiriev/lookup-gateway/internal/logger"
	"github.com/MKhiriev/lookup-gateway/migrations"
)

// Dialect is the database/sql driver name of a relational backend. The same
// name is used as the goose dialect.
type Dialect string

const (
	DialectPostgres Dialect = "pgx"
	DialectSQLite   Dialect = "sqlite3"
)

// PlaceholderFormat returns the bind-parameter style of the dialect.
func (d Dialect) PlaceholderFormat() sq.PlaceholderFormat {
	if d == DialectPostgres {
		return sq.Dollar
	}
	return sq.Question
}

// DB is a database/sql pool bound to one dialect. Every driver error that
// leaves the store is classified through errorClassificator.
type DB struct {
	*sql.DB
	dialect            Dialect
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// ResolveDSN picks the driver for a connection string and returns the DSN in
// the form that driver expects. postgres:// and postgresql:// URLs go to pgx;
// anything else is a SQLite database, with an optional "sqlite:" or
// "sqlite://" prefix stripped.
func ResolveDSN(dsn string) (Dialect, string) {
	switch {
	case strings.HasPrefix(dsn, "postgres://"), strings.HasPrefix(dsn, "postgresql://"):
		return DialectPostgres, dsn
	case strings.HasPrefix(dsn, "sqlite://"):
		return DialectSQLite, strings.TrimPrefix(dsn, "sqlite://")
	case strings.HasPrefix(dsn, "sqlite:"):
		return DialectSQLite, strings.TrimPrefix(dsn, "sqlite:")
	default:
		return DialectSQLite, dsn
	}
}

// NewDB opens a pool for cfg.DSN, pings it and, when cfg.Migrate is set,
// applies the embedded migrations.
func NewDB(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	dialect, dsn := ResolveDSN(cfg.DSN)

	var (
		db  *DB
		err error
	)
	switch dialect {
	case DialectPostgres:
		db, err = NewConnectPostgres(ctx, dsn, log)
	default:
		db, err = NewConnectSQLite(ctx, dsn, log)
	}
	if err != nil {
		return nil, err
	}

	if cfg.Migrate {
		if err = db.Migrate(); err != nil {
			log.Err(err).Str("func", "NewDB").Msg("error applying migrations")
			db.Close()
			return nil, fmt.Errorf("error applying migrations: %w", err)
		}
	}

	return db, nil
}

func (db *DB) Dialect() Dialect {
	return db.dialect
}

func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, string(db.dialect), db.logger)
}

// classify wraps err into a *StoreError for the user backend.
func (db *DB) classify(err error) *StoreError {
	if kind, ok := classifyCommon(err); ok {
		return newStoreError(BackendUser, kind, err)
	}
	kind := KindInternal
	if db.errorClassificator != nil {
		kind = db.errorClassificator.Classify(err)
	}
	return newStoreError(BackendUser, kind, err)
}
