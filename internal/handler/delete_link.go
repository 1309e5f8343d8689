package handler

import (
	"net/http"
	"strconv"

	"github.com/avc-dev/linkboard/internal/model"
	"github.com/go-chi/chi/v5"
)

// DeleteLink обрабатывает DELETE /api/links/{id}
func (h *Handler) DeleteLink(w http.ResponseWriter, req *http.Request) {
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

	if err := h.usecase.DeleteLink(req.Context(), userID, linkID); err != nil {
		h.handleLinkError(w, err, "delete")
		return
	}

	h.writeSuccess(w, http.StatusOK, &model.Link{ID: linkID})
}
