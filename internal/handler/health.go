package handler

import (
	"net/http"

	"github.com/osse101/chestmenus/internal/logger"
)

// HealthResponse represents the response for health endpoints
type HealthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// HandleHealthz provides a basic liveness check
func HandleHealthz() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, HealthResponse{Status: StatusOK})
	}
}

// HandleReadyz reports ready once the first reload pass has completed.
func HandleReadyz(reloads ReloadService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if reloads.LastReport() == nil {
			logger.FromContext(r.Context()).Warn(LogMsgReloadNotReady)
			respondJSON(w, http.StatusServiceUnavailable, HealthResponse{
				Status:  StatusUnavailable,
				Message: ErrMsgNoReloadYet,
			})
			return
		}
		respondJSON(w, http.StatusOK, HealthResponse{Status: StatusOK})
	}
}
