package handler

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"

	"github.com/avc-dev/linkboard/internal/middleware"
	"github.com/avc-dev/linkboard/internal/model"
	"github.com/go-chi/chi/v5"
)

const testBaseURL = "http://sho.rt"

// mockUsecase реализует LinkUsecase через подменяемые функции
type mockUsecase struct {
	ListLinksFunc        func(ctx context.Context, userID string) ([]model.Link, error)
	CreateLinkFunc       func(ctx context.Context, userID string, originalURL string, shortCode string) (*model.Link, error)
	UpdateLinkFunc       func(ctx context.Context, userID string, linkID int64, originalURL string, shortCode string) (*model.Link, error)
	DeleteLinkFunc       func(ctx context.Context, userID string, linkID int64) error
	ResolveShortCodeFunc func(ctx context.Context, shortCode string) (*model.Link, error)
}

func (m *mockUsecase) ListLinks(ctx context.Context, userID string) ([]model.Link, error) {
	return m.ListLinksFunc(ctx, userID)
}

func (m *mockUsecase) CreateLink(ctx context.Context, userID string, originalURL string, shortCode string) (*model.Link, error) {
	return m.CreateLinkFunc(ctx, userID, originalURL, shortCode)
}

func (m *mockUsecase) UpdateLink(ctx context.Context, userID string, linkID int64, originalURL string, shortCode string) (*model.Link, error) {
	return m.UpdateLinkFunc(ctx, userID, linkID, originalURL, shortCode)
}

func (m *mockUsecase) DeleteLink(ctx context.Context, userID string, linkID int64) error {
	return m.DeleteLinkFunc(ctx, userID, linkID)
}

func (m *mockUsecase) ResolveShortCode(ctx context.Context, shortCode string) (*model.Link, error) {
	return m.ResolveShortCodeFunc(ctx, shortCode)
}

type mockPinger struct {
	PingFunc func(ctx context.Context) error
}

func (m *mockPinger) Ping(ctx context.Context) error {
	return m.PingFunc(ctx)
}

// newTestRequest собирает запрос с chi-параметрами и user_id в контексте
func newTestRequest(method, target, userID string, body io.Reader, urlParams map[string]string) *http.Request {
	req := httptest.NewRequest(method, target, body)

	if userID != "" {
		req = req.WithContext(context.WithValue(req.Context(), middleware.UserIDContextKey, userID))
	}

	if len(urlParams) > 0 {
		rctx := chi.NewRouteContext()
		for key, value := range urlParams {
			rctx.URLParams.Add(key, value)
		}
		req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
	}

	return req
}

func jsonBody(s string) io.Reader {
	return strings.NewReader(s)
}
