package usecase

import (
	"context"

	"github.com/avc-dev/linkboard/internal/model"
	"go.uber.org/zap"
)

// LinkRepository определяет интерфейс хранилища ссылок
type LinkRepository interface {
	GetByID(ctx context.Context, id int64) (*model.Link, error)
	GetByShortCode(ctx context.Context, shortCode string) (*model.Link, error)
	ListByUserID(ctx context.Context, userID string) ([]model.Link, error)
	Update(ctx context.Context, id int64, userID string, originalURL string, shortCode string) (*model.Link, error)
	Delete(ctx context.Context, id int64, userID string) error
}

// LinkService определяет интерфейс сервиса выделения коротких кодов
type LinkService interface {
	CreateWithGeneratedCode(ctx context.Context, userID string, originalURL string) (*model.Link, error)
	CreateWithCode(ctx context.Context, userID string, originalURL string, shortCode string) (*model.Link, error)
}

// LinkUsecase содержит бизнес-логику работы со ссылками: валидацию входа,
// проверки владельца и перевод ошибок хранилища в категории для вызывающего.
// Идентичность вызывающего всегда приходит явным аргументом userID.
type LinkUsecase struct {
	repo    LinkRepository
	service LinkService
	logger  *zap.Logger
}

// NewLinkUsecase создает новый экземпляр LinkUsecase
func NewLinkUsecase(repo LinkRepository, service LinkService, logger *zap.Logger) *LinkUsecase {
	return &LinkUsecase{
		repo:    repo,
		service: service,
		logger:  logger,
	}
}
