package validators

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/MKhiriev/lookup-gateway/models"
)

// Query parameter names accepted by the lookup endpoints. ParamUserIDAlias
// is the camelCase spelling also accepted for the user id.
const (
	ParamUserID      = "user_id"
	ParamUserIDAlias = "userId"
	ParamBucket      = "bucket"
	ParamObject      = "object"
)

// ParseUserQuery reads the user id from query. A missing or empty value is
// [ErrMissingUserID]; anything strconv.ParseInt rejects is [ErrInvalidUserID].
// Surrounding whitespace is not trimmed.
func ParseUserQuery(query url.Values) (models.UserQuery, error) {
	raw := query.Get(ParamUserID)
	if raw == "" {
		raw = query.Get(ParamUserIDAlias)
	}
	if raw == "" {
		return models.UserQuery{}, ErrMissingUserID
	}

	userID, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return models.UserQuery{}, fmt.Errorf("%w: %q", ErrInvalidUserID, truncate(raw, 32))
	}

	return models.UserQuery{UserID: userID}, nil
}

// ParseStorageQuery reads bucket and object from query and validates both
// with v.
func ParseStorageQuery(ctx context.Context, v Validator, query url.Values) (models.StorageQuery, error) {
	storageQuery := models.StorageQuery{
		Bucket: query.Get(ParamBucket),
		Object: query.Get(ParamObject),
	}

	if err := v.Validate(ctx, storageQuery); err != nil {
		return models.StorageQuery{}, err
	}

	return storageQuery, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return strings.ToValidUTF8(s[:n], "") + "..."
}
