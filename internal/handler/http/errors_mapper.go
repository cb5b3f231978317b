package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/lookup-gateway/internal/envelope"
	"github.com/MKhiriev/lookup-gateway/internal/logger"
	"github.com/MKhiriev/lookup-gateway/internal/store"
	"github.com/MKhiriev/lookup-gateway/internal/validators"
)

// internalErrorMessage is sent for failures that carry no store category.
const internalErrorMessage = "internal error"

// failureFromError converts any error reaching a handler into a failure
// envelope. Validation errors keep their own text. Store errors are reduced
// to "<backend> storage error: <kind>"; the raw backend text is kept
// only when exposeBackendErrors is set.
func (h *Handler) failureFromError(r *http.Request, err error) envelope.Failure {
	log := logger.FromRequest(r)

	if validators.IsValidationError(err) {
		log.Warn().Err(err).Str("uri", r.RequestURI).Msg("rejected malformed query")
		return envelope.NewValidationFailure(err.Error())
	}

	message := internalErrorMessage
	var storeErr *store.StoreError
	if errors.As(err, &storeErr) {
		message = storeErr.Category()
	}

	log.Error().Err(err).Str("uri", r.RequestURI).Str("client_message", message).Msg("lookup failed")

	if h.exposeBackendErrors {
		if storeErr != nil {
			message = storeErr.Error()
		} else {
			message = message + ": " + err.Error()
		}
	}

	return envelope.NewBackendFailure(message)
}
