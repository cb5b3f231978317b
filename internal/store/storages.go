package store

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/MKhiriev/lookup-gateway/internal/config"
	"github.com/MKhiriev/lookup-gateway/internal/logger"
)

// Storages groups both backends of the gateway into a single value that is
// handed to the service layer. Close releases the database pool and any
// backend that holds open resources.
type Storages struct {
	// UserRepository reads user rows from PostgreSQL or SQLite.
	UserRepository UserRepository
	// ObjectStorage reads objects from the configured blob driver.
	ObjectStorage ObjectStorage

	closers []io.Closer
}

// NewStorages initialises the storage layer:
//  1. Opens the relational database named by cfg.DB.DSN and, when enabled,
//     applies migrations (see [NewDB]).
//  2. Builds the object storage selected by cfg.Blob.Driver (see [NewObjectStorage]).
//
// On failure everything opened so far is closed again.
func NewStorages(ctx context.Context, cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewDB(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("database connection error: %w", err)
	}

	objects, err := NewObjectStorage(ctx, cfg.Blob, logger)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("object storage error: %w", err)
	}

	storages := &Storages{
		UserRepository: NewUserRepository(db, logger),
		ObjectStorage:  objects,
		closers:        []io.Closer{db},
	}
	if closer, ok := objects.(io.Closer); ok {
		storages.closers = append(storages.closers, closer)
	}

	logger.Info().Str("db_dialect", string(db.Dialect())).Str("blob_driver", cfg.Blob.Driver).Msg("storages created")

	return storages, nil
}

// NewObjectStorage builds the blob backend named by cfg.Driver.
func NewObjectStorage(ctx context.Context, cfg config.Blob, logger *logger.Logger) (ObjectStorage, error) {
	switch cfg.Driver {
	case config.BlobDriverS3:
		return NewS3ObjectStorage(ctx, cfg, logger)
	case config.BlobDriverHTTP:
		return NewHTTPObjectStorage(cfg, logger)
	case config.BlobDriverFile:
		files, err := NewFileObjectStorage(cfg, logger)
		if err != nil {
			return nil, err
		}
		return files, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedBlobDriver, cfg.Driver)
	}
}

// Close releases every backend resource. It is safe to call on a nil value.
func (s *Storages) Close() error {
	if s == nil {
		return nil
	}
	var errs []error
	for _, closer := range s.closers {
		if err := closer.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
