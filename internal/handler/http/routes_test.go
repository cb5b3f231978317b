package http

import (
	"bytes"
	"compress/gzip"
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/lookup-gateway/internal/config"
	"github.com/MKhiriev/lookup-gateway/internal/store"
	"github.com/MKhiriev/lookup-gateway/models"
)

func strPtr(s string) *string { return &s }
func i64Ptr(v int64) *int64 { return &v }

// ---- GET /users ----

func TestGetUser_Found(t *testing.T) {
	h, fakes := newTestHandlerWithServices(t, config.App{})
	fakes.users.fetchFn = func(_ context.Context, userID int64) (models.User, bool, error) {
		require.Equal(t, int64(10000), userID)
		return models.User{
			UserID:       10000,
			EmailAddress: strPtr("marc@example.com"),
			CreatedAt:    i64Ptr(0),
			Deleted:      i64Ptr(1),
			Settings:     strPtr(""),
		}, true, nil
	}

	rec := serve(h.Init(), http.MethodGet, "/users?user_id=10000")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.Equal(t, `{"user_id":10000,"email_address":"marc@example.com","created_at":0,"deleted":1,"settings":""}`, rec.Body.String())
}

func TestGetUser_CamelCaseParam(t *testing.T) {
	h, fakes := newTestHandlerWithServices(t, config.App{})
	var got int64
	fakes.users.fetchFn = func(_ context.Context, userID int64) (models.User, bool, error) {
		got = userID
		return models.User{}, false, nil
	}

	rec := serve(h.Init(), http.MethodGet, "/users?userId=77")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(77), got)
}

func TestGetUser_Absent(t *testing.T) {
	h, _ := newTestHandlerWithServices(t, config.App{})

	rec := serve(h.Init(), http.MethodGet, "/users?user_id=424242")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "null", rec.Body.String())
}

func TestGetUser_InvalidID(t *testing.T) {
	tests := []struct {
		name        string
		target      string
		wantMessage string
	}{
		{"missing", "/users", "user id is required"},
		{"empty", "/users?user_id=", "user id is required"},
		{"not a number", "/users?user_id=abc", "user id must be an integer"},
		{"overflow", "/users?user_id=99999999999999999999", "user id must be an integer"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, fakes := newTestHandlerWithServices(t, config.App{})

			rec := serve(h.Init(), http.MethodGet, tt.target)

			require.Equal(t, http.StatusBadRequest, rec.Code)
			assert.True(t, strings.HasPrefix(rec.Body.String(), `"`+tt.wantMessage), rec.Body.String())
			assert.Zero(t, fakes.users.calls, "backend must not be called")
		})
	}
}

func TestGetUser_BackendFailure(t *testing.T) {
	h, fakes := newTestHandlerWithServices(t, config.App{})
	fakes.users.fetchFn = func(_ context.Context, _ int64) (models.User, bool, error) {
		return models.User{}, false, &store.StoreError{
			Backend: store.BackendUser,
			Kind:    store.KindUnavailable,
			Err:     errors.New("dial tcp 10.0.0.5:5432: connection refused"),
		}
	}

	rec := serve(h.Init(), http.MethodGet, "/users?user_id=1")

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, `"user storage error: unavailable"`, rec.Body.String())
	assert.NotContains(t, rec.Body.String(), "10.0.0.5")
}

func TestGetUser_Idempotent(t *testing.T) {
	h, fakes := newTestHandlerWithServices(t, config.App{})
	fakes.users.fetchFn = func(_ context.Context, userID int64) (models.User, bool, error) {
		return models.User{UserID: userID, EmailAddress: strPtr("a@b.c")}, true, nil
	}
	router := h.Init()

	first := serve(router, http.MethodGet, "/users?user_id=5")
	second := serve(router, http.MethodGet, "/users?user_id=5")

	assert.Equal(t, first.Code, second.Code)
	assert.Equal(t, first.Body.String(), second.Body.String())
}

// ---- GET /storage ----

func TestGetObject_Success(t *testing.T) {
	h, fakes := newTestHandlerWithServices(t, config.App{})
	fakes.objects.fetchFn = func(_ context.Context, bucket, key string) ([]byte, error) {
		require.Equal(t, "b1", bucket)
		require.Equal(t, "dir/hello.txt", key)
		return []byte("hi"), nil
	}

	rec := serve(h.Init(), http.MethodGet, "/storage?bucket=b1&object=dir%2Fhello.txt")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"content":"hi"}`, rec.Body.String())
}

func TestGetObject_LossyDecoding(t *testing.T) {
	h, fakes := newTestHandlerWithServices(t, config.App{})
	fakes.objects.fetchFn = func(_ context.Context, _, _ string) ([]byte, error) {
		return []byte{0x66, 0x6f, 0xff, 0x6f}, nil
	}

	rec := serve(h.Init(), http.MethodGet, "/storage?bucket=b1&object=bin")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"content":"fo�o"}`, rec.Body.String())
}

func TestGetObject_EmptyParamsSkipBackend(t *testing.T) {
	tests := []struct {
		name        string
		target      string
		wantMessage string
	}{
		{"empty bucket", "/storage?bucket=&object=x", `"bucket is required"`},
		{"missing bucket", "/storage?object=x", `"bucket is required"`},
		{"empty object", "/storage?bucket=b1&object=", `"object key is required"`},
		{"nothing", "/storage", `"bucket is required"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, fakes := newTestHandlerWithServices(t, config.App{})

			rec := serve(h.Init(), http.MethodGet, tt.target)

			require.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, tt.wantMessage, rec.Body.String())
			assert.Zero(t, fakes.objects.calls, "backend must not be called")
		})
	}
}

func TestGetObject_NotFound(t *testing.T) {
	h, fakes := newTestHandlerWithServices(t, config.App{})
	fakes.objects.fetchFn = func(_ context.Context, _, _ string) ([]byte, error) {
		return nil, &store.StoreError{Backend: store.BackendObject, Kind: store.KindNotFound, Err: errors.New("NoSuchKey")}
	}

	rec := serve(h.Init(), http.MethodGet, "/storage?bucket=b1&object=missing.txt")

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, `"object storage error: not found"`, rec.Body.String())
}

func TestGetObject_ExposeBackendErrors(t *testing.T) {
	h, fakes := newTestHandlerWithServices(t, config.App{ExposeBackendErrors: true})
	fakes.objects.fetchFn = func(_ context.Context, _, _ string) ([]byte, error) {
		return nil, &store.StoreError{Backend: store.BackendObject, Kind: store.KindNotFound, Err: errors.New("NoSuchKey: gone")}
	}

	rec := serve(h.Init(), http.MethodGet, "/storage?bucket=b1&object=missing.txt")

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "object storage error: not found")
	assert.Contains(t, rec.Body.String(), "NoSuchKey: gone")
}

func TestGetObject_GzipNegotiated(t *testing.T) {
	h, fakes := newTestHandlerWithServices(t, config.App{})
	fakes.objects.fetchFn = func(_ context.Context, _, _ string) ([]byte, error) {
		return []byte(strings.Repeat("a", 2048)), nil
	}

	req := newGzipRequest("/storage?bucket=b1&object=big")
	rec := serveRequest(h.Init(), req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "gzip", rec.Header().Get("Content-Encoding"))
	assert.JSONEq(t, `{"content":"`+strings.Repeat("a", 2048)+`"}`, gunzip(t, rec.Body.Bytes()))
}

func newGzipRequest(target string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	req.Header.Set("Accept-Encoding", "gzip")
	return req
}

func serveRequest(h http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func gunzip(t *testing.T, data []byte) string {
	t.Helper()
	zr, err := gzip.NewReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer zr.Close()
	out, err := io.ReadAll(zr)
	require.NoError(t, err)
	return string(out)
}
