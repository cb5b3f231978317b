package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/MKhiriev/lookup-gateway/internal/config"
	"github.com/MKhiriev/lookup-gateway/internal/logger"
)

// FileObjectStorage serves objects from a local directory tree: bucket b,
// object k is the file BaseDir/b/k. Paths leaving BaseDir are refused.
type FileObjectStorage struct {
	root   *os.Root
	logger *logger.Logger
}

// NewFileObjectStorage opens cfg.BaseDir. The directory must exist.
func NewFileObjectStorage(cfg config.Blob, log *logger.Logger) (*FileObjectStorage, error) {
	root, err := os.OpenRoot(cfg.BaseDir)
	if err != nil {
		log.Err(err).Str("func", "NewFileObjectStorage").Str("base_dir", cfg.BaseDir).Msg("error opening base directory")
		return nil, fmt.Errorf("error opening blob base directory: %w", err)
	}

	log.Info().Str("func", "NewFileObjectStorage").Str("base_dir", cfg.BaseDir).Msg("file object storage configured")

	return &FileObjectStorage{root: root, logger: log}, nil
}

func (f *FileObjectStorage) GetObject(ctx context.Context, bucket, key string) ([]byte, error) {
	log := logger.FromContext(ctx)

	if err := ctx.Err(); err != nil {
		kind, _ := classifyCommon(err)
		return nil, newStoreError(BackendObject, kind, err)
	}

	name := filepath.Join(bucket, filepath.FromSlash(key))
	if !filepath.IsLocal(name) {
		err := fmt.Errorf("object path %q escapes base directory", name)
		log.Warn().Err(err).Str("func", "*FileObjectStorage.GetObject").Msg("refusing object path")
		return nil, newStoreError(BackendObject, KindPermissionDenied, err)
	}

	data, err := f.root.ReadFile(name)
	if err != nil {
		log.Err(err).Str("func", "*FileObjectStorage.GetObject").Str("bucket", bucket).Str("object", key).Msg("error reading object")
		return nil, newStoreError(BackendObject, classifyFileError(err), err)
	}

	return data, nil
}

func (f *FileObjectStorage) Close() error {
	return f.root.Close()
}

func classifyFileError(err error) ErrorKind {
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return KindNotFound
	case errors.Is(err, fs.ErrPermission):
		return KindPermissionDenied
	}
	return KindInternal
}
