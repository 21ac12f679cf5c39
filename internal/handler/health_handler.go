package handlers

import (
	"net/http"

	"go.uber.org/zap"
)

func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	status, err := h.HealthService.Check(r.Context())
	if err != nil || !status.Database {
		h.Logger.Warn("Health check failed", zap.Error(err))
		writeSuccess(w, HealthResponse{Status: "error", Database: "disconnected"}, http.StatusServiceUnavailable)
		return
	}

	tables := status.Tables
	writeSuccess(w, HealthResponse{Status: "ok", Database: "connected", Tables: &tables}, http.StatusOK)
}
