package config

import (
	"errors"
	"flag"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-d database DSN
//	-migrate apply schema migrations at startup
//	-c/-config json file path with configs
//	-blob-driver blob store driver (s3, http, file)
//	-blob-endpoint blob store endpoint URL
//	-blob-region blob store region
//	-blob-dir base directory of the file blob driver
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-expose-backend-errors include raw backend errors in failure responses
//	-log-level minimum log level (debug, info, warn, error)
func ParseFlags() *StructuredConfig {
	var serverAddress NetAddress
	var databaseDSN string
	var migrate bool
	var jsonConfigPath string
	var blobDriver string
	var blobEndpoint string
	var blobRegion string
	var blobDir string
	var requestTimeout time.Duration
	var exposeBackendErrors bool
	var logLevel string

	flag.Var(&serverAddress, "a", "Net address host:port")
	flag.StringVar(&databaseDSN, "d", "", "Database DSN")
	flag.BoolVar(&migrate, "migrate", false, "Apply schema migrations at startup")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.StringVar(&blobDriver, "blob-driver", "", "Blob store driver: s3, http or file")
	flag.StringVar(&blobEndpoint, "blob-endpoint", "", "Blob store endpoint URL")
	flag.StringVar(&blobRegion, "blob-region", "", "Blob store region")
	flag.StringVar(&blobDir, "blob-dir", "", "Base directory of the file blob driver")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flag.BoolVar(&exposeBackendErrors, "expose-backend-errors", false, "Include raw backend errors in failure responses")
	flag.StringVar(&logLevel, "log-level", "", "Minimum log level: debug, info, warn, error")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			ExposeBackendErrors: exposeBackendErrors,
			LogLevel:            logLevel,
		},
		Storage: Storage{
			DB: DB{
				DSN:     databaseDSN,
				Migrate: migrate,
			},
			Blob: Blob{
				Driver:   blobDriver,
				Endpoint: blobEndpoint,
				Region:   blobRegion,
				BaseDir:  blobDir,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		JSONFilePath: jsonConfigPath,
	}
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number is a positive integer up to 65535")
	}

	if host != "localhost" && host != "" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
