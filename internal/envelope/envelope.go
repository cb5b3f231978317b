// Package envelope defines the single response shape of the lookup
// endpoints. An Envelope is exactly one of UserResult, ObjectResult or
// Failure, and each variant fixes its own HTTP status, so a failure can never
// be written with a success status.
package envelope

import (
	"net/http"

	"github.com/MKhiriev/lookup-gateway/internal/utils"
	"github.com/MKhiriev/lookup-gateway/models"
)

// Envelope is implemented only by the variants in this package.
type Envelope interface {
	// Status is the HTTP status that accompanies the variant.
	Status() int
	// Body is the value serialized as the JSON response body.
	Body() any

	envelope()
}

// UserResult carries the outcome of a user lookup. A nil User means no row
// matched and is serialized as JSON null with status 200.
type UserResult struct {
	User *models.User
}

// NewUserResult wraps a lookup outcome. When found is false user is ignored.
func NewUserResult(user models.User, found bool) UserResult {
	if !found {
		return UserResult{}
	}
	return UserResult{User: &user}
}

func (UserResult) Status() int { return http.StatusOK }

func (r UserResult) Body() any {
	if r.User == nil {
		return nil
	}
	return r.User
}

func (UserResult) envelope() {}

// ObjectResult carries a fetched object decoded as text.
type ObjectResult struct {
	Object models.FetchedObject
}

// NewObjectResult decodes raw with lossy UTF-8 substitution.
func NewObjectResult(raw []byte) ObjectResult {
	return ObjectResult{Object: models.NewFetchedObject(raw)}
}

func (ObjectResult) Status() int { return http.StatusOK }

func (r ObjectResult) Body() any { return r.Object }

func (ObjectResult) envelope() {}

// FailureKind separates client mistakes from backend failures.
type FailureKind int

const (
	// FailureBackend is a store or unexpected failure, status 500.
	FailureBackend FailureKind = iota
	// FailureValidation is a malformed or missing query parameter, status 400.
	FailureValidation
)

// Failure carries an error message. The body is the message as a JSON string.
type Failure struct {
	Kind    FailureKind
	Message string
}

func NewValidationFailure(message string) Failure {
	return Failure{Kind: FailureValidation, Message: message}
}

func NewBackendFailure(message string) Failure {
	return Failure{Kind: FailureBackend, Message: message}
}

func (f Failure) Status() int {
	if f.Kind == FailureValidation {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

func (f Failure) Body() any { return f.Message }

func (Failure) envelope() {}

// Write serializes env as JSON with its own status.
func Write(w http.ResponseWriter, env Envelope) (int, error) {
	return utils.WriteJSON(w, env.Body(), env.Status())
}
