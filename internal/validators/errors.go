package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrMissingUserID  = errors.New("user id is required")
	ErrInvalidUserID  = errors.New("user id must be an integer")
	ErrEmptyBucket    = errors.New("bucket is required")
	ErrEmptyObjectKey = errors.New("object key is required")
)

// IsValidationError reports whether err comes from this package.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrMissingUserID) ||
		errors.Is(err, ErrInvalidUserID) ||
		errors.Is(err, ErrEmptyBucket) ||
		errors.Is(err, ErrEmptyObjectKey) ||
		errors.Is(err, ErrUnsupportedType) ||
		errors.Is(err, ErrUnknownField)
}
