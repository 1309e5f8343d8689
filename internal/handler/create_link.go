package handler

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"
)

// CreateLinkRequest представляет тело запроса создания ссылки.
// ShortCode опционален: пустое значение включает генерацию кода.
type CreateLinkRequest struct {
	OriginalURL string `json:"originalUrl"`
	ShortCode   string `json:"shortCode,omitempty"`
}

// CreateLink обрабатывает POST /api/links
func (h *Handler) CreateLink(w http.ResponseWriter, req *http.Request) {
	userID, ok := h.getUserIDFromRequest(req)
	if !ok {
		h.writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var request CreateLinkRequest
	if err := json.NewDecoder(req.Body).Decode(&request); err != nil {
		h.logger.Warn("failed to decode create link request",
			zap.Error(err),
			zap.String("remote_addr", req.RemoteAddr),
		)
		h.writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	link, err := h.usecase.CreateLink(req.Context(), userID, request.OriginalURL, request.ShortCode)
	if err != nil {
		h.handleLinkError(w, err, "create")
		return
	}

	h.writeSuccess(w, http.StatusCreated, link)
}
