package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/lookup-gateway/internal/logger"
	"github.com/MKhiriev/lookup-gateway/internal/store"
)

// objectFetchService is the default [ObjectFetchService]. It passes the
// request to the object storage once; retries, if any, belong to the
// storage client.
type objectFetchService struct {
	objectStorage store.ObjectStorage

	logger *logger.Logger
}

func NewObjectFetchService(objectStorage store.ObjectStorage, logger *logger.Logger) ObjectFetchService {
	logger.Debug().Msg("creating object fetch service")
	return &objectFetchService{
		objectStorage: objectStorage,
		logger:        logger,
	}
}

func (s *objectFetchService) FetchObject(ctx context.Context, bucket, key string) ([]byte, error) {
	log := logger.FromContext(ctx)

	data, err := s.objectStorage.GetObject(ctx, bucket, key)
	if err != nil {
		log.Err(err).Str("func", "*objectFetchService.FetchObject").Str("bucket", bucket).Str("object", key).Msg("error fetching object")
		return nil, fmt.Errorf("error fetching object %s/%s: %w", bucket, key, err)
	}

	log.Debug().Str("func", "*objectFetchService.FetchObject").Str("bucket", bucket).Str("object", key).Int("size", len(data)).Msg("object fetched")

	return data, nil
}
