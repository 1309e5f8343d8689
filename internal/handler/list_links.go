package handler

import (
	"net/http"
	"time"
)

// LinkItem представляет ссылку в ответе списка, включая полный
// адрес редиректа, построенный от базового адреса сервиса
type LinkItem struct {
	ID          int64     `json:"id"`
	ShortCode   string    `json:"shortCode"`
	ShortURL    string    `json:"shortUrl"`
	OriginalURL string    `json:"originalUrl"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// ListLinks возвращает все ссылки аутентифицированного пользователя,
// недавно обновленные первыми
func (h *Handler) ListLinks(w http.ResponseWriter, req *http.Request) {
	userID, ok := h.getUserIDFromRequest(req)
	if !ok {
		h.writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	links, err := h.usecase.ListLinks(req.Context(), userID)
	if err != nil {
		h.handleLinkError(w, err, "list")
		return
	}

	items := make([]LinkItem, 0, len(links))
	for _, link := range links {
		items = append(items, LinkItem{
			ID:          link.ID,
			ShortCode:   link.ShortCode,
			ShortURL:    h.shortURL(link.ShortCode),
			OriginalURL: link.OriginalURL,
			CreatedAt:   link.CreatedAt,
			UpdatedAt:   link.UpdatedAt,
		})
	}

	h.writeJSON(w, http.StatusOK, items)
}
