package app

import (
	"github.com/avc-dev/linkboard/internal/config"
	"github.com/avc-dev/linkboard/internal/handler"
	"github.com/avc-dev/linkboard/internal/middleware"
	"github.com/avc-dev/linkboard/internal/service"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// newRouter создает и настраивает роутер приложения
func newRouter(h *handler.Handler, logger *zap.Logger, cfg *config.Config) *chi.Mux {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Gzip(logger))

	// Auth
	authService := service.NewAuthService(cfg.JWTSecret)
	authMiddleware := middleware.NewAuthMiddleware(authService, cfg.AuthDevSessions, logger)

	// Публичные маршруты
	r.Get("/ping", h.Ping)
	r.Get("/l/{shortCode}", h.Redirect)

	// Маршруты управления ссылками — требуют аутентификации
	r.Route("/api/links", func(r chi.Router) {
		r.Use(authMiddleware.RequireAuth)
		r.Get("/", h.ListLinks)
		r.Post("/", h.CreateLink)
		r.Put("/{id}", h.UpdateLink)
		r.Delete("/{id}", h.DeleteLink)
	})

	return r
}
