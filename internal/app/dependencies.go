package app

import (
	"context"
	"fmt"

	"github.com/avc-dev/linkboard/internal/config"
	"github.com/avc-dev/linkboard/internal/config/db"
	"github.com/avc-dev/linkboard/internal/handler"
	"github.com/avc-dev/linkboard/internal/migrations"
	"github.com/avc-dev/linkboard/internal/repository"
	"github.com/avc-dev/linkboard/internal/service"
	"github.com/avc-dev/linkboard/internal/store"
	"github.com/avc-dev/linkboard/internal/usecase"
	"go.uber.org/zap"
)

// initDependencies инициализирует все зависимости приложения
func initDependencies(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*handler.Handler, db.Database, error) {
	storage, dbPool, err := initStorage(ctx, cfg, logger)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize storage: %w", err)
	}

	repo := repository.New(storage)
	linkService := service.NewLinkService(repo, service.NewCodeGenerator(), cfg.CodeMaxAttempts)
	linkUsecase := usecase.NewLinkUsecase(repo, linkService, logger)
	h := handler.New(linkUsecase, repo, cfg.BaseURL.String(), logger)

	return h, dbPool, nil
}

// initStorage создает хранилище на основе конфигурации:
// PostgreSQL при заданном DSN, иначе хранилище в памяти
func initStorage(ctx context.Context, cfg *config.Config, logger *zap.Logger) (store.Store, db.Database, error) {
	if cfg.DatabaseDSN == "" {
		logger.Info("Using in-memory storage")
		return store.NewMemoryStore(), nil, nil
	}

	dbPool, err := db.NewConfig(cfg.DatabaseDSN).Connect(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	migrator := migrations.NewMigrator(dbPool.DB(), logger)
	if err := migrator.RunUp(); err != nil {
		dbPool.Close()
		return nil, nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	logger.Info("Using database storage")
	return store.NewDatabaseStore(dbPool.Pool), dbPool, nil
}
