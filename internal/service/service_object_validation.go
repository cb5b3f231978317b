package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/lookup-gateway/internal/validators"
	"github.com/MKhiriev/lookup-gateway/models"
)

// ObjectFetchValidationService rejects empty bucket or object keys before
// the wrapped service is called.
type ObjectFetchValidationService struct {
	inner     ObjectFetchService
	validator validators.Validator
}

func NewObjectFetchValidationService() ObjectFetchServiceWrapper {
	return &ObjectFetchValidationService{
		validator: validators.NewLookupValidator(),
	}
}

func (v *ObjectFetchValidationService) Wrap(inner ObjectFetchService) ObjectFetchService {
	return &ObjectFetchValidationService{
		inner:     inner,
		validator: v.validator,
	}
}

func (v *ObjectFetchValidationService) FetchObject(ctx context.Context, bucket, key string) ([]byte, error) {
	query := models.StorageQuery{Bucket: bucket, Object: key}
	if err := v.validator.Validate(ctx, query); err != nil {
		return nil, fmt.Errorf("error during storage query validation: %w", err)
	}

	return v.inner.FetchObject(ctx, bucket, key)
}
