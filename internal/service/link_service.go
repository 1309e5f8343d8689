package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/avc-dev/linkboard/internal/model"
	"github.com/avc-dev/linkboard/internal/store"
)

// LinkRepository определяет методы хранилища, нужные для выделения кодов
type LinkRepository interface {
	// Insert сохраняет новую ссылку; store.ErrDuplicateCode если код занят
	Insert(ctx context.Context, link *model.Link) error
}

// Generator определяет генератор коротких кодов
type Generator interface {
	GenerateCode() string
}

// LinkService выделяет короткие коды и создает ссылки.
// Коллизии разрешаются на уровне хранилища: сервис пытается вставить
// и перегенерирует код при нарушении уникальности.
type LinkService struct {
	repo        LinkRepository
	generator   Generator
	maxAttempts int
}

// NewLinkService создает новый экземпляр LinkService
func NewLinkService(repo LinkRepository, generator Generator, maxAttempts int) *LinkService {
	return &LinkService{
		repo:        repo,
		generator:   generator,
		maxAttempts: maxAttempts,
	}
}

// CreateWithGeneratedCode создает ссылку со сгенерированным кодом.
// На каждую попытку приходится одна вставка; занятый код приводит
// к перегенерации, всего не более maxAttempts вставок.
func (s *LinkService) CreateWithGeneratedCode(ctx context.Context, userID string, originalURL string) (*model.Link, error) {
	for attempt := 0; attempt < s.maxAttempts; attempt++ {
		link := &model.Link{
			UserID:      userID,
			ShortCode:   s.generator.GenerateCode(),
			OriginalURL: originalURL,
		}

		err := s.repo.Insert(ctx, link)
		if err == nil {
			return link, nil
		}

		if errors.Is(err, store.ErrDuplicateCode) {
			// Код занят, пробуем следующий
			continue
		}

		return nil, fmt.Errorf("failed to create link: %w", err)
	}

	return nil, fmt.Errorf("failed after %d attempts: %w", s.maxAttempts, ErrMaxRetriesExceeded)
}

// CreateWithCode создает ссылку с кодом, выбранным пользователем.
// Занятый код не перегенерируется — ошибка возвращается вызывающему,
// пользователь должен выбрать другой код.
func (s *LinkService) CreateWithCode(ctx context.Context, userID string, originalURL string, shortCode string) (*model.Link, error) {
	link := &model.Link{
		UserID:      userID,
		ShortCode:   shortCode,
		OriginalURL: originalURL,
	}

	if err := s.repo.Insert(ctx, link); err != nil {
		return nil, fmt.Errorf("failed to create link: %w", err)
	}

	return link, nil
}
