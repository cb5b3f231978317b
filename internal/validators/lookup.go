package validators

import (
	"context"

	"github.com/MKhiriev/lookup-gateway/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	// FieldBucket targets the bucket name of a storage query.
	FieldBucket = "bucket"

	// FieldObject targets the object key of a storage query.
	FieldObject = "object"
)

// LookupValidator implements the Validator interface for the two lookup
// queries: models.UserQuery and models.StorageQuery.
type LookupValidator struct {
}

// NewLookupValidator constructs a new LookupValidator
// and returns it as the Validator interface.
func NewLookupValidator() Validator {
	return &LookupValidator{}
}

// Validate dispatches on the dynamic type of obj. Both value and pointer
// forms are accepted. A UserQuery carries an already parsed int64 and has no
// further constraints; the backing store decides which ids exist.
func (v *LookupValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.UserQuery, *models.UserQuery:
		return nil

	case models.StorageQuery:
		return v.validateStorageQuery(ctx, value, fields...)
	case *models.StorageQuery:
		return v.validateStorageQuery(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

// validateStorageQuery checks that bucket and object are non-empty.
func (v *LookupValidator) validateStorageQuery(_ context.Context, query models.StorageQuery, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldBucket, FieldObject}
	}

	for _, f := range fields {
		switch f {
		case FieldBucket:
			if query.Bucket == "" {
				return ErrEmptyBucket
			}
		case FieldObject:
			if query.Object == "" {
				return ErrEmptyObjectKey
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
