package handler

import (
	"net/http"

	"go.uber.org/zap"
)

// Ping проверяет доступность хранилища
func (h *Handler) Ping(w http.ResponseWriter, req *http.Request) {
	if err := h.pinger.Ping(req.Context()); err != nil {
		h.logger.Error("storage ping failed", zap.Error(err))
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
}
