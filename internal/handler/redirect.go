package handler

import (
	"errors"
	"net/http"

	"github.com/avc-dev/linkboard/internal/usecase"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// Redirect обрабатывает GET /l/{shortCode}: публичное разрешение короткого
// кода в постоянный редирект. Каждый запрос идет в хранилище, кеша нет.
func (h *Handler) Redirect(w http.ResponseWriter, req *http.Request) {
	shortCode := chi.URLParam(req, "shortCode")
	if shortCode == "" {
		h.writeError(w, http.StatusBadRequest, "Invalid short code")
		return
	}

	link, err := h.usecase.ResolveShortCode(req.Context(), shortCode)
	if err != nil {
		if errors.Is(err, usecase.ErrNotFound) {
			h.writeError(w, http.StatusNotFound, "Link not found")
			return
		}

		h.logger.Error("failed to resolve redirect",
			zap.String("short_code", shortCode),
			zap.Error(err),
		)
		h.writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	http.Redirect(w, req, link.OriginalURL, http.StatusMovedPermanently)
}
