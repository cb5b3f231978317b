// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// lookup gateway. It aggregates all sub-configurations and is populated by
// merging values from environment variables, command-line flags, and an
// optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env:       direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the version string and
	// the error disclosure policy.
	App App `envPrefix:"APP_"`

	// Storage holds configuration for both backends: the relational user
	// store and the blob store.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address and timeout settings for the HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Version is the semantic version string of the running application
	// (e.g. "1.2.3"). Exposed via the /version endpoint.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// LogLevel is the minimum zerolog level name ("debug", "info", ...).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`

	// ExposeBackendErrors switches failure envelopes from categorized
	// messages to categorized messages followed by the raw backend error.
	// Disabled by default.
	// Env: APP_EXPOSE_BACKEND_ERRORS
	ExposeBackendErrors bool `env:"EXPOSE_BACKEND_ERRORS"`
}

// Storage groups the configuration for all storage backends used by the
// application.
type Storage struct {
	// DB holds the relational database connection settings.
	DB DB `envPrefix:"DB_"`

	// Blob holds the object store settings.
	Blob Blob `envPrefix:"BLOB_"`
}

// DB holds connection settings for the relational database backend.
type DB struct {
	// DSN is the connection string. The scheme selects the driver:
	// "postgres://" and "postgresql://" use pgx, everything else
	// (including "sqlite:./local.db" and "file:...") uses SQLite.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`

	// Migrate applies the embedded schema migrations at startup.
	// Env: STORAGE_DB_MIGRATE
	Migrate bool `env:"MIGRATE"`
}

// Blob holds settings for the object store the gateway reads from.
type Blob struct {
	// Driver selects the backend: "s3", "http" or "file".
	// Env: STORAGE_BLOB_DRIVER
	Driver string `env:"DRIVER"`

	// Endpoint is the base URL of the backend. Optional for "s3" (AWS
	// default resolution is used when empty), required for "http".
	// Env: STORAGE_BLOB_ENDPOINT
	Endpoint string `env:"ENDPOINT"`

	// Region is the S3 signing region.
	// Env: STORAGE_BLOB_REGION
	Region string `env:"REGION"`

	// AccessKey and SecretKey are static S3 credentials. When both are empty
	// the default AWS credential chain is used.
	// Env: STORAGE_BLOB_ACCESS_KEY, STORAGE_BLOB_SECRET_KEY
	AccessKey string `env:"ACCESS_KEY"`
	SecretKey string `env:"SECRET_KEY"`

	// UsePathStyle forces path-style S3 addressing (MinIO, GCS interop).
	// Env: STORAGE_BLOB_USE_PATH_STYLE
	UsePathStyle bool `env:"USE_PATH_STYLE"`

	// BaseDir is the root directory of the "file" driver. Each bucket is a
	// sub-directory of BaseDir.
	// Env: STORAGE_BLOB_BASE_DIR
	BaseDir string `env:"BASE_DIR"`

	// Timeout bounds a single object download of the "http" driver.
	// Env: STORAGE_BLOB_TIMEOUT
	Timeout time.Duration `env:"TIMEOUT"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "127.0.0.1:8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds reading a request and writing its response
	// (e.g. "30s", "1m"). Zero means no limit.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// ShutdownTimeout bounds graceful shutdown of in-flight requests.
	// Env: SERVER_SHUTDOWN_TIMEOUT
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT"`
}

// Supported values of [Blob.Driver].
const (
	BlobDriverS3   = "s3"
	BlobDriverHTTP = "http"
	BlobDriverFile = "file"
)

// defaults returns the values used for fields left empty by every source.
func defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			Version:  "N/A",
			LogLevel: "info",
		},
		Storage: Storage{
			Blob: Blob{
				Driver:  BlobDriverS3,
				Region:  "us-east-1",
				Timeout: 30 * time.Second,
			},
		},
		Server: Server{
			ShutdownTimeout: 5 * time.Second,
		},
	}
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Fields still empty after merging receive their defaults.
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}
