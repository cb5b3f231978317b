package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/lookup-gateway/internal/config"
	"github.com/MKhiriev/lookup-gateway/internal/logger"
	"github.com/MKhiriev/lookup-gateway/internal/service"
	"github.com/MKhiriev/lookup-gateway/models"
)

// ─────────────────────────────────────────────
// Fakes
// ─────────────────────────────────────────────

type fakeUserLookupService struct {
	calls   int
	fetchFn func(ctx context.Context, userID int64) (models.User, bool, error)
}

func (f *fakeUserLookupService) FetchUser(ctx context.Context, userID int64) (models.User, bool, error) {
	f.calls++
	if f.fetchFn != nil {
		return f.fetchFn(ctx, userID)
	}
	return models.User{}, false, nil
}

type fakeObjectFetchService struct {
	calls   int
	fetchFn func(ctx context.Context, bucket, key string) ([]byte, error)
}

func (f *fakeObjectFetchService) FetchObject(ctx context.Context, bucket, key string) ([]byte, error) {
	f.calls++
	if f.fetchFn != nil {
		return f.fetchFn(ctx, bucket, key)
	}
	return nil, nil
}

// mockAppInfoService implements service.AppInfoService for testing.
type mockAppInfoService struct {
	version string
}

func (m *mockAppInfoService) GetAppVersion(_ context.Context) string {
	return m.version
}

type fakeHealthService struct {
	err error
}

func (f *fakeHealthService) CheckReadiness(_ context.Context) error {
	return f.err
}

// testServices bundles the fakes so a test can program and inspect them.
type testServices struct {
	users   *fakeUserLookupService
	objects *fakeObjectFetchService
	health  *fakeHealthService
}

func newTestServices() (*service.Services, *testServices) {
	fakes := &testServices{
		users:   &fakeUserLookupService{},
		objects: &fakeObjectFetchService{},
		health:  &fakeHealthService{},
	}
	return &service.Services{
		UserLookupService:  fakes.users,
		ObjectFetchService: fakes.objects,
		AppInfoService:     &mockAppInfoService{version: "test-version"},
		HealthService:      fakes.health,
	}, fakes
}

func newTestHandlerWithServices(t *testing.T, cfg config.App) (*Handler, *testServices) {
	t.Helper()
	services, fakes := newTestServices()
	return NewHandler(services, cfg, logger.Nop()), fakes
}

func serve(h http.Handler, method, target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

// ─────────────────────────────────────────────
// NewHandler
// ─────────────────────────────────────────────

func TestNewHandler(t *testing.T) {
	services, _ := newTestServices()
	log := logger.Nop()

	h := NewHandler(services, config.App{ExposeBackendErrors: true}, log)

	require.NotNil(t, h)
	assert.Equal(t, services, h.services)
	assert.Equal(t, log, h.logger)
	assert.True(t, h.exposeBackendErrors)
	assert.NotNil(t, h.validator)
	assert.NotNil(t, h.metrics)
}

func TestNewHandler_IndependentInstances(t *testing.T) {
	services, _ := newTestServices()

	h1 := NewHandler(services, config.App{}, logger.Nop())
	h2 := NewHandler(services, config.App{}, logger.Nop())

	assert.NotSame(t, h1, h2)
	assert.NotSame(t, h1.metrics, h2.metrics)
}

// ─────────────────────────────────────────────
// Init: route registration
// ─────────────────────────────────────────────

func TestInit_RegistersAllRoutes(t *testing.T) {
	h, _ := newTestHandlerWithServices(t, config.App{})
	router := h.Init()

	for _, target := range []string{
		"/users?user_id=1",
		"/storage?bucket=b&object=o",
		"/version",
		"/health/live",
		"/health/ready",
		"/metrics",
	} {
		t.Run(target, func(t *testing.T) {
			rec := serve(router, http.MethodGet, target)
			assert.NotEqual(t, http.StatusNotFound, rec.Code, "route not found: %s", target)
			assert.NotEqual(t, http.StatusMethodNotAllowed, rec.Code)
		})
	}
}

func TestInit_UnknownRouteReturns404(t *testing.T) {
	h, _ := newTestHandlerWithServices(t, config.App{})

	rec := serve(h.Init(), http.MethodGet, "/api/nonexistent")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, `"not found"`, rec.Body.String())
}

func TestInit_WrongMethodReturns404(t *testing.T) {
	h, fakes := newTestHandlerWithServices(t, config.App{})

	rec := serve(h.Init(), http.MethodPost, "/users?user_id=1")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Zero(t, fakes.users.calls)
}

func TestInit_EchoesTraceID(t *testing.T) {
	h, _ := newTestHandlerWithServices(t, config.App{})

	req := httptest.NewRequest(http.MethodGet, "/health/live", nil)
	req.Header.Set(traceIDHeader, "trace-123")
	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)

	assert.Equal(t, "trace-123", rec.Header().Get(traceIDHeader))
}
