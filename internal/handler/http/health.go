package http

import (
	"net/http"

	"github.com/MKhiriev/lookup-gateway/internal/logger"
	"github.com/MKhiriev/lookup-gateway/internal/utils"
)

const (
	healthStatusOK   = "ok"
	healthStatusFail = "fail"
)

type healthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

// healthLive answers 200 while the process is serving requests.
func (h *Handler) healthLive(w http.ResponseWriter, r *http.Request) {
	h.writeHealth(w, r, http.StatusOK, healthStatusOK)
}

// healthReady answers 200 when the user store answers a ping, 503 otherwise.
func (h *Handler) healthReady(w http.ResponseWriter, r *http.Request) {
	if err := h.services.HealthService.CheckReadiness(r.Context()); err != nil {
		h.writeHealth(w, r, http.StatusServiceUnavailable, healthStatusFail)
		return
	}
	h.writeHealth(w, r, http.StatusOK, healthStatusOK)
}

func (h *Handler) writeHealth(w http.ResponseWriter, r *http.Request, status int, healthStatus string) {
	resp := healthResponse{
		Status:  healthStatus,
		Version: h.services.AppInfoService.GetAppVersion(r.Context()),
	}
	if _, err := utils.WriteJSON(w, resp, status); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.writeHealth").Msg("error writing response")
	}
}
