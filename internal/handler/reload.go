package handler

import (
	"context"
	"net/http"

	"github.com/osse101/chestmenus/internal/logger"
	"github.com/osse101/chestmenus/internal/reload"
)

// ReloadService runs reload passes and remembers the last one.
type ReloadService interface {
	Reload(ctx context.Context) (*reload.Report, error)
	LastReport() *reload.Report
}

// ReloadHandler exposes the reload service.
type ReloadHandler struct {
	service ReloadService
}

// NewReloadHandler creates a new reload handler
func NewReloadHandler(service ReloadService) *ReloadHandler {
	return &ReloadHandler{service: service}
}

// HandleGetLastReload returns the report of the last successful reload.
// GET /api/v1/admin/reload
func (h *ReloadHandler) HandleGetLastReload(w http.ResponseWriter, r *http.Request) {
	report := h.service.LastReport()
	if report == nil {
		respondError(w, http.StatusNotFound, ErrMsgNoReloadYet)
		return
	}
	respondJSON(w, http.StatusOK, DataResponse{Data: report})
}

// HandleReload runs a reload pass and returns its report.
// POST /api/v1/admin/reload
func (h *ReloadHandler) HandleReload(w http.ResponseWriter, r *http.Request) {
	report, err := h.service.Reload(r.Context())
	if err != nil {
		logger.FromContext(r.Context()).Error(LogMsgReloadFailed, "error", err)
		respondError(w, http.StatusInternalServerError, ErrMsgReloadFailed)
		return
	}
	respondJSON(w, http.StatusOK, DataResponse{Message: MsgMenusReloaded, Data: report})
}
