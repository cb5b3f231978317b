package http

import (
	"net/http"

	"github.com/MKhiriev/lookup-gateway/internal/envelope"
	"github.com/MKhiriev/lookup-gateway/internal/logger"
	"github.com/MKhiriev/lookup-gateway/internal/validators"
)

// getUser handles GET /users?user_id={id}. An unknown id answers 200 with
// a JSON null body.
func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	query, err := validators.ParseUserQuery(r.URL.Query())
	if err != nil {
		h.writeEnvelope(w, r, h.failureFromError(r, err))
		return
	}

	user, found, err := h.services.UserLookupService.FetchUser(ctx, query.UserID)
	if err != nil {
		h.writeEnvelope(w, r, h.failureFromError(r, err))
		return
	}

	h.writeEnvelope(w, r, envelope.NewUserResult(user, found))
}

// getObject handles GET /storage?bucket={bucket}&object={key}. Empty
// parameters are rejected before the object store is contacted.
func (h *Handler) getObject(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	query, err := validators.ParseStorageQuery(ctx, h.validator, r.URL.Query())
	if err != nil {
		h.writeEnvelope(w, r, h.failureFromError(r, err))
		return
	}

	data, err := h.services.ObjectFetchService.FetchObject(ctx, query.Bucket, query.Object)
	if err != nil {
		h.writeEnvelope(w, r, h.failureFromError(r, err))
		return
	}

	h.writeEnvelope(w, r, envelope.NewObjectResult(data))
}

func (h *Handler) writeEnvelope(w http.ResponseWriter, r *http.Request, env envelope.Envelope) {
	if _, err := envelope.Write(w, env); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.writeEnvelope").Msg("error writing response")
	}
}
