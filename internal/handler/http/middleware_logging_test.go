package http

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/lookup-gateway/internal/config"
	"github.com/MKhiriev/lookup-gateway/internal/logger"
	"github.com/MKhiriev/lookup-gateway/internal/store"
	"github.com/MKhiriev/lookup-gateway/models"
)

// accessEntry returns the single access log entry, recognised by its
// "status" field.
func accessEntry(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var found map[string]any
	for _, entry := range logEntries(t, buf) {
		if _, ok := entry["status"]; ok {
			require.Nil(t, found, "more than one access log entry")
			found = entry
		}
	}
	require.NotNil(t, found, "no access log entry")
	return found
}

// ---- Access log through the full router ----

func TestWithLogging_LookupRoutes(t *testing.T) {
	tests := []struct {
		name       string
		target     string
		setup      func(f *testServices)
		wantStatus int
		wantLevel  string
	}{
		{
			name:   "user found",
			target: "/users?user_id=10000",
			setup: func(f *testServices) {
				f.users.fetchFn = func(_ context.Context, id int64) (models.User, bool, error) {
					return models.User{UserID: id}, true, nil
				}
			},
			wantStatus: http.StatusOK,
			wantLevel:  "info",
		},
		{
			name:       "absent user is not an error",
			target:     "/users?user_id=424242",
			wantStatus: http.StatusOK,
			wantLevel:  "info",
		},
		{
			name:       "malformed user id",
			target:     "/users?user_id=abc",
			wantStatus: http.StatusBadRequest,
			wantLevel:  "warn",
		},
		{
			name:       "empty bucket",
			target:     "/storage?bucket=&object=x",
			wantStatus: http.StatusBadRequest,
			wantLevel:  "warn",
		},
		{
			name:   "object store failure",
			target: "/storage?bucket=b1&object=missing.txt",
			setup: func(f *testServices) {
				f.objects.fetchFn = func(_ context.Context, _, _ string) ([]byte, error) {
					return nil, &store.StoreError{Backend: store.BackendObject, Kind: store.KindNotFound}
				}
			},
			wantStatus: http.StatusInternalServerError,
			wantLevel:  "error",
		},
		{
			name:   "store not ready",
			target: "/health/ready",
			setup: func(f *testServices) {
				f.health.err = errors.New("ping failed")
			},
			wantStatus: http.StatusServiceUnavailable,
			wantLevel:  "error",
		},
		{
			name:       "unknown route",
			target:     "/accounts",
			wantStatus: http.StatusNotFound,
			wantLevel:  "warn",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			services, fakes := newTestServices()
			if tt.setup != nil {
				tt.setup(fakes)
			}
			h := NewHandler(services, config.App{}, &logger.Logger{Logger: zerolog.New(&buf)})

			rec := serve(h.Init(), http.MethodGet, tt.target)

			require.Equal(t, tt.wantStatus, rec.Code)

			entry := accessEntry(t, &buf)
			assert.Equal(t, tt.wantLevel, entry["level"])
			assert.Equal(t, float64(tt.wantStatus), entry["status"])
			assert.Equal(t, http.MethodGet, entry["method"])
			assert.Equal(t, tt.target, entry["uri"])
			assert.Equal(t, float64(rec.Body.Len()), entry["size"])
			assert.Contains(t, entry, "duration")
			assert.NotEmpty(t, entry[logger.TraceIDField])
		})
	}
}

// ---- Level follows status class ----

func TestAccessLogLevel(t *testing.T) {
	tests := []struct {
		status int
		want   zerolog.Level
	}{
		{http.StatusOK, zerolog.InfoLevel},
		{http.StatusNotModified, zerolog.InfoLevel},
		{http.StatusBadRequest, zerolog.WarnLevel},
		{http.StatusNotFound, zerolog.WarnLevel},
		{http.StatusInternalServerError, zerolog.ErrorLevel},
		{http.StatusServiceUnavailable, zerolog.ErrorLevel},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			assert.Equal(t, tt.want, accessLogLevel(tt.status))
		})
	}
}

// ---- A handler that writes nothing is logged as 200 ----

func TestWithLogging_NothingWrittenIsOK(t *testing.T) {
	var buf bytes.Buffer
	h := newBufferedHandler(&buf)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})
	handler := h.withTraceID(h.withLogging(next))

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/health/live", nil))

	entry := accessEntry(t, &buf)
	assert.Equal(t, float64(http.StatusOK), entry["status"])
	assert.Equal(t, float64(0), entry["size"])
	assert.Equal(t, "info", entry["level"])
}

// ---- Panics reach the recoverer ----

func TestWithLogging_PanicNotSuppressed(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("lookup panic")
	})

	assert.Panics(t, func() {
		newTestHandler().withLogging(next).
			ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/users?user_id=1", nil))
	}, "withLogging must leave recovery to middleware.Recoverer")
}

func TestInit_PanicIsRecoveredAs500(t *testing.T) {
	var buf bytes.Buffer
	services, fakes := newTestServices()
	fakes.users.fetchFn = func(_ context.Context, _ int64) (models.User, bool, error) {
		panic("driver bug")
	}
	h := NewHandler(services, config.App{}, &logger.Logger{Logger: zerolog.New(&buf)})

	rec := serve(h.Init(), http.MethodGet, "/users?user_id=1")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	entry := accessEntry(t, &buf)
	assert.Equal(t, "error", entry["level"])
}
