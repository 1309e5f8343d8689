package middleware

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/avc-dev/linkboard/internal/service"
	"go.uber.org/zap"
)

// UserIDKey тип ключа для user_id в контексте
type UserIDKey string

const (
	// UserIDContextKey ключ контекста для user_id
	UserIDContextKey UserIDKey = "user_id"
)

// AuthMiddleware извлекает идентичность вызывающего из запроса и кладет
// непрозрачный user_id в контекст. Сама идентичность принадлежит внешнему
// провайдеру; здесь только проверяется подпись его токена.
type AuthMiddleware struct {
	authService   *service.AuthService
	issueSessions bool
	logger        *zap.Logger
}

// NewAuthMiddleware создает новый экземпляр AuthMiddleware.
// issueSessions включает dev-режим: запросу без валидного токена
// выдается новая сессия вместо отказа.
func NewAuthMiddleware(authService *service.AuthService, issueSessions bool, logger *zap.Logger) *AuthMiddleware {
	return &AuthMiddleware{
		authService:   authService,
		issueSessions: issueSessions,
		logger:        logger,
	}
}

// RequireAuth возвращает middleware, который отклоняет запросы
// без аутентифицированной идентичности со статусом 401
func (am *AuthMiddleware) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, ok := am.resolveIdentity(w, r)
		if !ok {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			if err := json.NewEncoder(w).Encode(map[string]string{"error": "Unauthorized"}); err != nil {
				am.logger.Error("failed to encode unauthorized response", zap.Error(err))
			}
			return
		}

		ctx := context.WithValue(r.Context(), UserIDContextKey, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// resolveIdentity извлекает user_id из запроса, при включенном dev-режиме
// выдавая новую сессию запросам без валидного токена
func (am *AuthMiddleware) resolveIdentity(w http.ResponseWriter, r *http.Request) (string, bool) {
	if userID, ok := am.authService.IdentityFromRequest(r); ok {
		return userID, true
	}

	if !am.issueSessions {
		return "", false
	}

	userID, err := am.authService.IssueSession(w)
	if err != nil {
		am.logger.Error("failed to issue dev session", zap.Error(err))
		return "", false
	}

	return userID, true
}

// GetUserIDFromContext извлекает user_id из контекста запроса
func GetUserIDFromContext(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(UserIDContextKey).(string)
	return userID, ok && userID != ""
}
