package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/lookup-gateway/models"
)

// UserRepository reads user rows from the relational store.
type UserRepository interface {
	// FindUserByID returns the row with the given id. found is false, with a
	// nil error, when no row matches. Failures are returned as *StoreError.
	FindUserByID(ctx context.Context, userID int64) (user models.User, found bool, err error)
	// Ping checks that the relational store is reachable.
	Ping(ctx context.Context) error
}

// ObjectStorage downloads whole objects from the blob store.
type ObjectStorage interface {
	// GetObject returns the full content of bucket/key. Every failure,
	// including a missing object, is returned as *StoreError.
	GetObject(ctx context.Context, bucket, key string) ([]byte, error)
}
