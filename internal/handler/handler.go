package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/avc-dev/linkboard/internal/middleware"
	"github.com/avc-dev/linkboard/internal/model"
	"github.com/avc-dev/linkboard/internal/usecase"
	"go.uber.org/zap"
)

// LinkUsecase определяет операции бизнес-логики, нужные обработчикам
type LinkUsecase interface {
	ListLinks(ctx context.Context, userID string) ([]model.Link, error)
	CreateLink(ctx context.Context, userID string, originalURL string, shortCode string) (*model.Link, error)
	UpdateLink(ctx context.Context, userID string, linkID int64, originalURL string, shortCode string) (*model.Link, error)
	DeleteLink(ctx context.Context, userID string, linkID int64) error
	ResolveShortCode(ctx context.Context, shortCode string) (*model.Link, error)
}

// Pinger определяет проверку доступности хранилища
type Pinger interface {
	Ping(ctx context.Context) error
}

// Handler содержит HTTP обработчики приложения
type Handler struct {
	usecase LinkUsecase
	pinger  Pinger
	baseURL string
	logger  *zap.Logger
}

// New создает новый экземпляр Handler. baseURL — базовый адрес,
// от которого строятся полные короткие ссылки в ответах
func New(usecase LinkUsecase, pinger Pinger, baseURL string, logger *zap.Logger) *Handler {
	return &Handler{
		usecase: usecase,
		pinger:  pinger,
		baseURL: strings.TrimSuffix(baseURL, "/"),
		logger:  logger,
	}
}

// shortURL строит полный адрес редиректа для короткого кода
func (h *Handler) shortURL(shortCode string) string {
	return h.baseURL + "/l/" + shortCode
}

// LinkSummary представляет ссылку в успешном ответе мутаций
type LinkSummary struct {
	ID          int64  `json:"id"`
	ShortCode   string `json:"shortCode"`
	OriginalURL string `json:"originalUrl"`
}

// SuccessResponse представляет успешный результат мутации
type SuccessResponse struct {
	Success bool        `json:"success"`
	Link    LinkSummary `json:"link"`
}

// ErrorResponse представляет ошибку с опциональными сообщениями по полям
type ErrorResponse struct {
	Error   string              `json:"error"`
	Details map[string][]string `json:"details,omitempty"`
}

// getUserIDFromRequest извлекает user_id из контекста запроса
func (h *Handler) getUserIDFromRequest(r *http.Request) (string, bool) {
	return middleware.GetUserIDFromContext(r.Context())
}

// writeJSON сериализует ответ с указанным статусом
func (h *Handler) writeJSON(w http.ResponseWriter, statusCode int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Error("failed to encode response", zap.Error(err))
	}
}

// writeSuccess отправляет успешный результат мутации
func (h *Handler) writeSuccess(w http.ResponseWriter, statusCode int, link *model.Link) {
	h.writeJSON(w, statusCode, SuccessResponse{
		Success: true,
		Link: LinkSummary{
			ID:          link.ID,
			ShortCode:   link.ShortCode,
			OriginalURL: link.OriginalURL,
		},
	})
}

// writeError отправляет ошибку без деталей по полям
func (h *Handler) writeError(w http.ResponseWriter, statusCode int, message string) {
	h.writeJSON(w, statusCode, ErrorResponse{Error: message})
}

// handleLinkError переводит ошибки бизнес-логики в HTTP статус и сообщение.
// action подставляется в сообщение о запрете ("edit" или "delete").
func (h *Handler) handleLinkError(w http.ResponseWriter, err error, action string) {
	var validationErr *usecase.ValidationError
	if errors.As(err, &validationErr) {
		h.writeJSON(w, http.StatusBadRequest, ErrorResponse{
			Error:   "Invalid input",
			Details: validationErr.Fields,
		})
		return
	}

	switch {
	case errors.Is(err, usecase.ErrUnauthorized):
		h.writeError(w, http.StatusUnauthorized, "Unauthorized")
	case errors.Is(err, usecase.ErrForbidden):
		h.writeError(w, http.StatusForbidden, "You do not have permission to "+action+" this link.")
	case errors.Is(err, usecase.ErrNotFound):
		h.writeError(w, http.StatusNotFound, "Link not found.")
	case errors.Is(err, usecase.ErrDuplicateShortCode):
		h.writeError(w, http.StatusConflict, "This short code is already taken. Please choose another.")
	case errors.Is(err, usecase.ErrExhaustedRetries):
		h.writeError(w, http.StatusInternalServerError, "could not allocate a unique code")
	default:
		h.writeError(w, http.StatusInternalServerError, "Failed to "+action+" link. Please try again.")
	}
}
