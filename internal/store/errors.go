package store

import (
	"context"
	"errors"
	"fmt"
	"net"
)

// Low-level database operation errors. They are wrapped inside a
// [StoreError] and can be matched with [errors.Is].
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing or scanning a SELECT
	// against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrUnsupportedBlobDriver is returned by [NewObjectStorage] for an
	// unknown driver name.
	ErrUnsupportedBlobDriver = errors.New("unsupported blob driver")
)

// Backend names the store a [StoreError] originates from.
type Backend string

const (
	BackendUser   Backend = "user"
	BackendObject Backend = "object"
)

// ErrorKind is the coarse category of a backend failure. It is the only part
// of a failure that is safe to show to API clients.
type ErrorKind int

const (
	// KindInternal is any failure that fits no other category.
	KindInternal ErrorKind = iota
	// KindNotFound means the requested object or bucket does not exist.
	KindNotFound
	// KindPermissionDenied means the backend refused the credentials.
	KindPermissionDenied
	// KindUnavailable covers connection loss and transport failures.
	KindUnavailable
	// KindTimeout means the operation hit its deadline.
	KindTimeout
	// KindQuery means the backend rejected the query itself
	// (syntax, missing table, type mismatch).
	KindQuery
	// KindCanceled means the caller went away before the backend answered.
	KindCanceled
)

func (k ErrorKind) String() string {
	switch k {
	case KindNotFound:
		return "not found"
	case KindPermissionDenied:
		return "permission denied"
	case KindUnavailable:
		return "unavailable"
	case KindTimeout:
		return "timeout"
	case KindQuery:
		return "query failed"
	case KindCanceled:
		return "canceled"
	default:
		return "internal error"
	}
}

// StoreError is the single failure type returned by repositories and object
// storages. Err keeps the raw backend error for logs.
type StoreError struct {
	Backend Backend
	Kind    ErrorKind
	Err     error
}

func newStoreError(backend Backend, kind ErrorKind, err error) *StoreError {
	return &StoreError{Backend: backend, Kind: kind, Err: err}
}

// Category returns the redacted, client-safe description of the failure,
// e.g. "object storage error: not found".
func (e *StoreError) Category() string {
	return fmt.Sprintf("%s storage error: %s", e.Backend, e.Kind)
}

func (e *StoreError) Error() string {
	if e.Err == nil {
		return e.Category()
	}
	return fmt.Sprintf("%s: %v", e.Category(), e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

// classifyCommon recognises failures that look the same for every backend.
func classifyCommon(err error) (ErrorKind, bool) {
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return KindTimeout, true
	case errors.Is(err, context.Canceled):
		return KindCanceled, true
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		if netErr.Timeout() {
			return KindTimeout, true
		}
		return KindUnavailable, true
	}

	return KindInternal, false
}
