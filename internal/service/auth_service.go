package service

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	// AuthCookieName имя куки с токеном сессии
	AuthCookieName = "auth_token"

	tokenTTL = 24 * time.Hour
)

// AuthService проверяет токены внешнего провайдера идентичности.
// Ядро потребляет ровно один факт: непрозрачный user_id или его отсутствие.
type AuthService struct {
	jwtSecret []byte
}

// NewAuthService создает новый экземпляр AuthService
func NewAuthService(jwtSecret string) *AuthService {
	return &AuthService{
		jwtSecret: []byte(jwtSecret),
	}
}

// GenerateUserID генерирует уникальный идентификатор пользователя для dev-сессий
func (a *AuthService) GenerateUserID() string {
	return uuid.New().String()
}

// GenerateJWT создает JWT токен для пользователя
func (a *AuthService) GenerateJWT(userID string) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userID,
		"exp":     time.Now().Add(tokenTTL).Unix(),
		"iat":     time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(a.jwtSecret)
}

// ValidateJWT проверяет JWT токен и извлекает user_id
func (a *AuthService) ValidateJWT(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return a.jwtSecret, nil
	})
	if err != nil {
		return "", fmt.Errorf("failed to parse token: %w", err)
	}

	if claims, ok := token.Claims.(jwt.MapClaims); ok && token.Valid {
		if userID, ok := claims["user_id"].(string); ok && userID != "" {
			return userID, nil
		}
		return "", fmt.Errorf("user_id not found in token")
	}

	return "", fmt.Errorf("invalid token")
}

// IdentityFromRequest извлекает user_id из запроса: сначала заголовок
// Authorization (Bearer), затем кука сессии. Возвращает false если
// валидного токена нет — решение отклонить запрос принимает middleware.
func (a *AuthService) IdentityFromRequest(r *http.Request) (string, bool) {
	if header := r.Header.Get("Authorization"); header != "" {
		tokenString := strings.TrimPrefix(header, "Bearer ")
		if userID, err := a.ValidateJWT(tokenString); err == nil {
			return userID, true
		}
	}

	cookie, err := r.Cookie(AuthCookieName)
	if err != nil || cookie.Value == "" {
		return "", false
	}

	userID, err := a.ValidateJWT(cookie.Value)
	if err != nil {
		return "", false
	}

	return userID, true
}

// IssueSession создает нового пользователя и устанавливает куку сессии.
// Используется только в dev-режиме, когда внешний провайдер не настроен.
func (a *AuthService) IssueSession(w http.ResponseWriter) (string, error) {
	userID := a.GenerateUserID()

	token, err := a.GenerateJWT(userID)
	if err != nil {
		return "", fmt.Errorf("failed to generate JWT: %w", err)
	}

	http.SetCookie(w, &http.Cookie{
		Name:     AuthCookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(tokenTTL.Seconds()),
	})

	return userID, nil
}
