package service

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/lookup-gateway/models"
)

// UserLookupService fetches user records by id.
type UserLookupService interface {
	// FetchUser returns the user with the given id. found is false, with a
	// nil error, when no such user exists. Backend failures wrap a
	// *store.StoreError.
	FetchUser(ctx context.Context, userID int64) (user models.User, found bool, err error)
}

// ObjectFetchService downloads objects from the blob store.
type ObjectFetchService interface {
	// FetchObject returns the raw bytes of bucket/key. A missing object is an
	// error like any other backend failure.
	FetchObject(ctx context.Context, bucket, key string) ([]byte, error)
}

// AppInfoService reports static build information.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// HealthService reports whether the backends can serve requests.
type HealthService interface {
	// CheckReadiness returns nil when the relational store answers a ping.
	CheckReadiness(ctx context.Context) error
}

// ObjectFetchServiceWrapper defines middleware composition for ObjectFetchService.
// Implementations wrap an existing ObjectFetchService to add behavior such as
// validating.
type ObjectFetchServiceWrapper interface {
	Wrap(ObjectFetchService) ObjectFetchService // returns a decorated ObjectFetchService applying additional behavior
}
