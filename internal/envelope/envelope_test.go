package envelope

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/lookup-gateway/models"
)

func strPtr(s string) *string { return &s }
func i64Ptr(v int64) *int64   { return &v }

func record(t *testing.T, env Envelope) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	_, err := Write(rec, env)
	require.NoError(t, err)
	return rec
}

func TestWrite_UserFound(t *testing.T) {
	user := models.User{
		UserID:       10000,
		EmailAddress: strPtr("marc@example.com"),
		CreatedAt:    i64Ptr(0),
		Deleted:      i64Ptr(1),
		Settings:     strPtr(""),
	}

	rec := record(t, NewUserResult(user, true))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.Equal(t, `{"user_id":10000,"email_address":"marc@example.com","created_at":0,"deleted":1,"settings":""}`, rec.Body.String())
}

func TestWrite_UserWithNullColumns(t *testing.T) {
	rec := record(t, NewUserResult(models.User{UserID: 3}, true))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"user_id":3,"email_address":null,"created_at":null,"deleted":null,"settings":null}`, rec.Body.String())
}

func TestWrite_UserAbsent(t *testing.T) {
	rec := record(t, NewUserResult(models.User{UserID: 99}, false))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "null", rec.Body.String())
}

func TestWrite_Object(t *testing.T) {
	rec := record(t, NewObjectResult([]byte("hi")))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"content":"hi"}`, rec.Body.String())
}

func TestWrite_ObjectInvalidUTF8(t *testing.T) {
	rec := record(t, NewObjectResult([]byte{0x66, 0x6f, 0xff, 0x6f}))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"content":"fo�o"}`, rec.Body.String())
}

func TestWrite_Failures(t *testing.T) {
	tests := []struct {
		name       string
		env        Envelope
		wantStatus int
		wantBody   string
	}{
		{"validation", NewValidationFailure("bucket is required"), http.StatusBadRequest, `"bucket is required"`},
		{"backend", NewBackendFailure("object storage error: not found"), http.StatusInternalServerError, `"object storage error: not found"`},
		{"zero value is backend", Failure{Message: "x"}, http.StatusInternalServerError, `"x"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := record(t, tt.env)
			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantBody, rec.Body.String())
		})
	}
}

// Every variant pairs with a fixed status: successes never carry an error
// status and failures never carry a success status.
func TestStatus_ConsistentWithVariant(t *testing.T) {
	variants := []Envelope{
		UserResult{},
		NewUserResult(models.User{UserID: 1}, true),
		NewObjectResult(nil),
		NewValidationFailure("v"),
		NewBackendFailure("b"),
	}

	for _, env := range variants {
		switch env.(type) {
		case Failure:
			assert.GreaterOrEqual(t, env.Status(), http.StatusBadRequest)
		case UserResult, ObjectResult:
			assert.Equal(t, http.StatusOK, env.Status())
		default:
			t.Fatalf("unexpected variant %T", env)
		}
	}
}
