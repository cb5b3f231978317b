package store

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/lookup-gateway/internal/config"
	"github.com/MKhiriev/lookup-gateway/internal/logger"
	"github.com/MKhiriev/lookup-gateway/internal/utils"
)

// httpObjectStorage downloads objects with plain GET requests against
// {endpoint}/{bucket}/{object}. It serves public buckets, for example
// https://storage.googleapis.com.
type httpObjectStorage struct {
	client *utils.HTTPClient
	logger *logger.Logger
}

// NewHTTPObjectStorage builds the resty client for cfg.Endpoint.
func NewHTTPObjectStorage(cfg config.Blob, log *logger.Logger) (ObjectStorage, error) {
	client, err := utils.NewHTTPClient(cfg.Endpoint, cfg.Timeout)
	if err != nil {
		log.Err(err).Str("func", "NewHTTPObjectStorage").Msg("error creating http client")
		return nil, fmt.Errorf("invalid blob endpoint: %w", err)
	}

	log.Info().Str("func", "NewHTTPObjectStorage").Str("endpoint", client.BaseURL).Msg("http object storage configured")

	return &httpObjectStorage{client: client, logger: log}, nil
}

func (h *httpObjectStorage) GetObject(ctx context.Context, bucket, key string) ([]byte, error) {
	log := logger.FromContext(ctx)

	resp, err := h.client.R().
		SetContext(ctx).
		SetRawPathParams(map[string]string{
			"bucket": url.PathEscape(bucket),
			"object": escapeObjectKey(key),
		}).
		Get("/{bucket}/{object}")
	if err != nil {
		log.Err(err).Str("func", "*httpObjectStorage.GetObject").Str("bucket", bucket).Str("object", key).Msg("error requesting object")
		kind, ok := classifyCommon(err)
		if !ok {
			kind = KindUnavailable
		}
		return nil, newStoreError(BackendObject, kind, err)
	}

	if resp.IsError() {
		err = fmt.Errorf("unexpected status %d: %s", resp.StatusCode(), strings.TrimSpace(resp.String()))
		log.Err(err).Str("func", "*httpObjectStorage.GetObject").Str("bucket", bucket).Str("object", key).Msg("object request failed")
		kind, _ := classifyHTTPStatus(resp.StatusCode())
		return nil, newStoreError(BackendObject, kind, err)
	}

	return resp.Body(), nil
}

// escapeObjectKey escapes every segment of key but keeps the separating
// slashes, so nested object names map to nested URL paths.
func escapeObjectKey(key string) string {
	segments := strings.Split(key, "/")
	for i, segment := range segments {
		segments[i] = url.PathEscape(segment)
	}
	return strings.Join(segments, "/")
}
