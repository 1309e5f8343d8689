package app

import (
	"context"

	"github.com/avc-dev/linkboard/internal/config"
	"github.com/avc-dev/linkboard/internal/config/db"
	"github.com/avc-dev/linkboard/internal/handler"
	"go.uber.org/zap"
)

// App представляет приложение linkboard
type App struct {
	config  *config.Config
	logger  *zap.Logger
	handler *handler.Handler
	dbPool  db.Database
}

// New создает новый экземпляр приложения
func New(ctx context.Context) (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger, err := zap.NewProduction()
	if err != nil {
		return nil, err
	}

	h, dbPool, err := initDependencies(ctx, cfg, logger)
	if err != nil {
		logger.Sync()
		return nil, err
	}

	return &App{
		config:  cfg,
		logger:  logger,
		handler: h,
		dbPool:  dbPool,
	}, nil
}

// Run запускает приложение
func Run() error {
	ctx := context.Background()

	app, err := New(ctx)
	if err != nil {
		return err
	}
	defer app.logger.Sync()
	defer app.Close()

	return app.start(ctx)
}

// Close освобождает ресурсы приложения
func (a *App) Close() {
	if a.dbPool != nil {
		a.dbPool.Close()
	}
}
