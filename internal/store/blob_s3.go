package store

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"

	"github.com/MKhiriev/lookup-gateway/internal/config"
	"github.com/MKhiriev/lookup-gateway/internal/logger"
)

// s3ObjectStorage reads objects through the S3 API. It works with AWS S3 and
// with S3-compatible services such as MinIO or the GCS interoperability
// endpoint.
type s3ObjectStorage struct {
	client *s3.Client
	logger *logger.Logger
}

// NewS3ObjectStorage loads the AWS configuration and builds the S3 client.
// Static credentials are used when AccessKey or SecretKey is set; otherwise
// the default AWS credential chain applies.
func NewS3ObjectStorage(ctx context.Context, cfg config.Blob, log *logger.Logger) (ObjectStorage, error) {
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.Region),
	}
	if cfg.AccessKey != "" || cfg.SecretKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		log.Err(err).Str("func", "NewS3ObjectStorage").Msg("error loading aws config")
		return nil, fmt.Errorf("error loading aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
		o.UsePathStyle = cfg.UsePathStyle
		// S3-compatible services do not always return checksums
		o.ResponseChecksumValidation = aws.ResponseChecksumValidationWhenRequired
	})

	log.Info().Str("func", "NewS3ObjectStorage").Str("region", cfg.Region).Str("endpoint", cfg.Endpoint).Msg("s3 object storage configured")

	return newS3ObjectStorage(client, log), nil
}

func newS3ObjectStorage(client *s3.Client, log *logger.Logger) *s3ObjectStorage {
	return &s3ObjectStorage{client: client, logger: log}
}

func (s *s3ObjectStorage) GetObject(ctx context.Context, bucket, key string) ([]byte, error) {
	log := logger.FromContext(ctx)

	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		log.Err(err).Str("func", "*s3ObjectStorage.GetObject").Str("bucket", bucket).Str("object", key).Msg("error requesting object")
		return nil, newStoreError(BackendObject, classifyS3Error(err), err)
	}
	defer out.Body.Close()

	data, err := io.ReadAll(out.Body)
	if err != nil {
		log.Err(err).Str("func", "*s3ObjectStorage.GetObject").Str("bucket", bucket).Str("object", key).Msg("error reading object body")
		kind, ok := classifyCommon(err)
		if !ok {
			kind = KindUnavailable
		}
		return nil, newStoreError(BackendObject, kind, err)
	}

	return data, nil
}

func classifyS3Error(err error) ErrorKind {
	var (
		noSuchKey    *types.NoSuchKey
		noSuchBucket *types.NoSuchBucket
	)
	if errors.As(err, &noSuchKey) || errors.As(err, &noSuchBucket) {
		return KindNotFound
	}

	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.ErrorCode() {
		case "NotFound", "NoSuchKey", "NoSuchBucket":
			return KindNotFound
		case "AccessDenied", "Forbidden", "InvalidAccessKeyId", "SignatureDoesNotMatch", "ExpiredToken":
			return KindPermissionDenied
		case "SlowDown", "ServiceUnavailable", "InternalError":
			return KindUnavailable
		}
	}

	var withStatus interface{ HTTPStatusCode() int }
	if errors.As(err, &withStatus) {
		if kind, ok := classifyHTTPStatus(withStatus.HTTPStatusCode()); ok {
			return kind
		}
	}

	if kind, ok := classifyCommon(err); ok {
		return kind
	}

	return KindInternal
}

// classifyHTTPStatus maps an upstream error status to an [ErrorKind].
func classifyHTTPStatus(status int) (ErrorKind, bool) {
	switch {
	case status == http.StatusNotFound:
		return KindNotFound, true
	case status == http.StatusUnauthorized, status == http.StatusForbidden:
		return KindPermissionDenied, true
	case status == http.StatusRequestTimeout, status == http.StatusGatewayTimeout:
		return KindTimeout, true
	case status >= http.StatusInternalServerError:
		return KindUnavailable, true
	case status >= http.StatusBadRequest:
		return KindQuery, true
	}
	return KindInternal, false
}
