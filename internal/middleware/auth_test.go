package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/avc-dev/linkboard/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newIdentityProbe(gotUserID *string, gotOK *bool) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*gotUserID, *gotOK = GetUserIDFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})
}

func TestRequireAuth_ValidBearerToken(t *testing.T) {
	authService := service.NewAuthService("test-secret")
	am := NewAuthMiddleware(authService, false, zap.NewNop())

	token, err := authService.GenerateJWT("user-1")
	require.NoError(t, err)

	var gotUserID string
	var gotOK bool
	handler := am.RequireAuth(newIdentityProbe(&gotUserID, &gotOK))

	req := httptest.NewRequest(http.MethodGet, "/api/links", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, gotOK)
	assert.Equal(t, "user-1", gotUserID)
}

func TestRequireAuth_ValidCookie(t *testing.T) {
	authService := service.NewAuthService("test-secret")
	am := NewAuthMiddleware(authService, false, zap.NewNop())

	token, err := authService.GenerateJWT("user-2")
	require.NoError(t, err)

	var gotUserID string
	var gotOK bool
	handler := am.RequireAuth(newIdentityProbe(&gotUserID, &gotOK))

	req := httptest.NewRequest(http.MethodGet, "/api/links", nil)
	req.AddCookie(&http.Cookie{Name: service.AuthCookieName, Value: token})
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, gotOK)
	assert.Equal(t, "user-2", gotUserID)
}

func TestRequireAuth_RejectsWithoutToken(t *testing.T) {
	authService := service.NewAuthService("test-secret")
	am := NewAuthMiddleware(authService, false, zap.NewNop())

	handler := am.RequireAuth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not be called for unauthenticated request")
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/links", nil)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"error":"Unauthorized"}`, rec.Body.String())
}

func TestRequireAuth_RejectsInvalidToken(t *testing.T) {
	authService := service.NewAuthService("test-secret")
	otherService := service.NewAuthService("other-secret")
	am := NewAuthMiddleware(authService, false, zap.NewNop())

	// Токен подписан другим секретом
	token, err := otherService.GenerateJWT("user-1")
	require.NoError(t, err)

	handler := am.RequireAuth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not be called for forged token")
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/links", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireAuth_DevSessions(t *testing.T) {
	authService := service.NewAuthService("test-secret")
	am := NewAuthMiddleware(authService, true, zap.NewNop())

	var gotUserID string
	var gotOK bool
	handler := am.RequireAuth(newIdentityProbe(&gotUserID, &gotOK))

	req := httptest.NewRequest(http.MethodGet, "/api/links", nil)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	// В dev-режиме запросу без токена выдается новая сессия
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, gotOK)
	assert.NotEmpty(t, gotUserID)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, service.AuthCookieName, cookies[0].Name)

	// Выданная кука разрешается в тот же user_id
	userID, err := authService.ValidateJWT(cookies[0].Value)
	require.NoError(t, err)
	assert.Equal(t, gotUserID, userID)
}
