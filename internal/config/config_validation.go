// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "fmt"

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or an error wrapping one of the
// ErrInvalid* sentinels otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Server.HTTPAddress == "" {
		return fmt.Errorf("%w: empty HTTP address", ErrInvalidServerConfigs)
	}

	if cfg.Storage.DB.DSN == "" {
		return fmt.Errorf("%w: empty database DSN", ErrInvalidStorageConfigs)
	}

	switch cfg.Storage.Blob.Driver {
	case BlobDriverS3:
	case BlobDriverHTTP:
		if cfg.Storage.Blob.Endpoint == "" {
			return fmt.Errorf("%w: http blob driver requires an endpoint", ErrInvalidStorageConfigs)
		}
	case BlobDriverFile:
		if cfg.Storage.Blob.BaseDir == "" {
			return fmt.Errorf("%w: file blob driver requires a base dir", ErrInvalidStorageConfigs)
		}
	default:
		return fmt.Errorf("%w: unknown blob driver %q", ErrInvalidStorageConfigs, cfg.Storage.Blob.Driver)
	}

	return nil
}
