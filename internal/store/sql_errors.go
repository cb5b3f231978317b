package store

import (
	"database/sql/driver"
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
)

// ErrorClassificator maps a dialect-specific driver error to an [ErrorKind].
type ErrorClassificator interface {
	Classify(err error) ErrorKind
}

// PostgresErrorClassifier implements [ErrorClassificator] for PostgreSQL.
// It inspects the pgconn error code returned by the pgx driver.
type PostgresErrorClassifier struct{}

// NewPostgresErrorClassifier constructs a [PostgresErrorClassifier] ready for use.
func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

// Classify implements [ErrorClassificator]. Errors that are neither a
// *pgconn.PgError nor a connection failure are [KindInternal].
func (c *PostgresErrorClassifier) Classify(err error) ErrorKind {
	if err == nil {
		return KindInternal
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return ClassifyPgError(pgErr)
	}

	var connectErr *pgconn.ConnectError
	if errors.As(err, &connectErr) || errors.Is(err, driver.ErrBadConn) {
		return KindUnavailable
	}

	return KindInternal
}

// ClassifyPgError maps a *pgconn.PgError to an [ErrorKind] based on the
// PostgreSQL error code.
// See https://www.postgresql.org/docs/current/errcodes-appendix.html
//
//   - Class 08, 53 and 57P01..57P03: [KindUnavailable]
//   - 57014 query_canceled: [KindTimeout]
//   - 42501 insufficient_privilege, class 28: [KindPermissionDenied]
//   - Class 22 and the rest of class 42: [KindQuery]
func ClassifyPgError(pgErr *pgconn.PgError) ErrorKind {
	switch pgErr.Code {
	case pgerrcode.QueryCanceled:
		return KindTimeout
	case pgerrcode.InsufficientPrivilege:
		return KindPermissionDenied
	case pgerrcode.AdminShutdown,
		pgerrcode.CrashShutdown,
		pgerrcode.CannotConnectNow:
		return KindUnavailable
	}

	if len(pgErr.Code) < 2 {
		return KindInternal
	}
	switch pgErr.Code[:2] {
	case "08", "53":
		return KindUnavailable
	case "28":
		return KindPermissionDenied
	case "22", "42":
		return KindQuery
	}

	return KindInternal
}

// SQLiteErrorClassifier implements [ErrorClassificator] for SQLite, using the
// primary result code of sqlite3.Error.
type SQLiteErrorClassifier struct{}

func NewSQLiteErrorClassifier() *SQLiteErrorClassifier {
	return &SQLiteErrorClassifier{}
}

func (c *SQLiteErrorClassifier) Classify(err error) ErrorKind {
	var sqliteErr sqlite3.Error
	if !errors.As(err, &sqliteErr) {
		return KindInternal
	}

	switch sqliteErr.Code {
	case sqlite3.ErrBusy, sqlite3.ErrLocked, sqlite3.ErrCantOpen, sqlite3.ErrIoErr, sqlite3.ErrNotADB, sqlite3.ErrCorrupt:
		return KindUnavailable
	case sqlite3.ErrPerm, sqlite3.ErrAuth, sqlite3.ErrReadonly:
		return KindPermissionDenied
	case sqlite3.ErrInterrupt:
		return KindTimeout
	case sqlite3.ErrError, sqlite3.ErrMismatch, sqlite3.ErrRange:
		return KindQuery
	}

	return KindInternal
}
