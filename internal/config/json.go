package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] in the shape accepted by
// the JSON config file.
type StructuredJSONConfig struct {
	App struct {
		Version             string `json:"version"`
		LogLevel            string `json:"log_level"`
		ExposeBackendErrors bool   `json:"expose_backend_errors"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN     string `json:"dsn"`
			Migrate bool   `json:"migrate"`
		} `json:"db,omitempty"`

		Blob struct {
			Driver       string   `json:"driver"`
			Endpoint     string   `json:"endpoint"`
			Region       string   `json:"region"`
			AccessKey    string   `json:"access_key"`
			SecretKey    string   `json:"secret_key"`
			UsePathStyle bool     `json:"use_path_style"`
			BaseDir      string   `json:"base_dir"`
			Timeout      Duration `json:"timeout"`
		} `json:"blob,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress     string   `json:"http_address"`
		RequestTimeout  Duration `json:"request_timeout"`
		ShutdownTimeout Duration `json:"shutdown_timeout"`
	} `json:"server,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			Version:             jsonCfg.App.Version,
			LogLevel:            jsonCfg.App.LogLevel,
			ExposeBackendErrors: jsonCfg.App.ExposeBackendErrors,
		},
		Storage: Storage{
			DB: DB{
				DSN:     jsonCfg.Storage.DB.DSN,
				Migrate: jsonCfg.Storage.DB.Migrate,
			},
			Blob: Blob{
				Driver:       jsonCfg.Storage.Blob.Driver,
				Endpoint:     jsonCfg.Storage.Blob.Endpoint,
				Region:       jsonCfg.Storage.Blob.Region,
				AccessKey:    jsonCfg.Storage.Blob.AccessKey,
				SecretKey:    jsonCfg.Storage.Blob.SecretKey,
				UsePathStyle: jsonCfg.Storage.Blob.UsePathStyle,
				BaseDir:      jsonCfg.Storage.Blob.BaseDir,
				Timeout:      time.Duration(jsonCfg.Storage.Blob.Timeout),
			},
		},
		Server: Server{
			HTTPAddress:     jsonCfg.Server.HTTPAddress,
			RequestTimeout:  time.Duration(jsonCfg.Server.RequestTimeout),
			ShutdownTimeout: time.Duration(jsonCfg.Server.ShutdownTimeout),
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
