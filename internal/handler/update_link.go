package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// UpdateLinkRequest представляет тело запроса обновления ссылки.
// ShortCode обязателен, в отличие от создания.
type UpdateLinkRequest struct {
	OriginalURL string `json:"originalUrl"`
	ShortCode   string `json:"shortCode"`
}

// UpdateLink обрабатывает PUT /api/links/{id}
func (h *Handler) UpdateLink(w http.ResponseWriter, req *http.Request) {
	userID, ok := h.getUserIDFromRequest(req)
	if !ok {
		h.writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	linkID, err := strconv.ParseInt(chi.URLParam(req, "id"), 10, 64)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, "Invalid link id")
		return
	}

	var request UpdateLinkRequest
	if err := json.NewDecoder(req.Body).Decode(&request); err != nil {
		h.logger.Warn("failed to decode update link request",
			zap.Error(err),
			zap.String("remote_addr", req.RemoteAddr),
		)
		h.writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	link, err := h.usecase.UpdateLink(req.Context(), userID, linkID, request.OriginalURL, request.ShortCode)
	if err != nil {
		h.handleLinkError(w, err, "edit")
		return
	}

	h.writeSuccess(w, http.StatusOK, link)
}
