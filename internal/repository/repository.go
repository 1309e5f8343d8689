package repository

import (
	"context"
	"fmt"

	"github.com/avc-dev/linkboard/internal/model"
	"github.com/avc-dev/linkboard/internal/store"
)

// Repository оборачивает Store, добавляя контекст к ошибкам хранилища.
// Сентинельные ошибки store.ErrNotFound и store.ErrDuplicateCode
// сохраняются в цепочке и различимы через errors.Is.
type Repository struct {
	underlying store.Store
}

// New создает Repository поверх переданного хранилища
func New(underlying store.Store) *Repository {
	return &Repository{underlying: underlying}
}

// Insert сохраняет новую ссылку
func (r *Repository) Insert(ctx context.Context, link *model.Link) error {
	if err := r.underlying.Insert(ctx, link); err != nil {
		return fmt.Errorf("failed to insert link: %w", err)
	}

	return nil
}

// GetByID возвращает ссылку по первичному ключу
func (r *Repository) GetByID(ctx context.Context, id int64) (*model.Link, error) {
	link, err := r.underlying.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get link by id: %w", err)
	}

	return link, nil
}

// GetByShortCode возвращает ссылку по короткому коду
func (r *Repository) GetByShortCode(ctx context.Context, shortCode string) (*model.Link, error) {
	link, err := r.underlying.GetByShortCode(ctx, shortCode)
	if err != nil {
		return nil, fmt.Errorf("failed to get link by short code: %w", err)
	}

	return link, nil
}

// ListByUserID возвращает все ссылки пользователя
func (r *Repository) ListByUserID(ctx context.Context, userID string) ([]model.Link, error) {
	links, err := r.underlying.ListByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list links by user id: %w", err)
	}

	return links, nil
}

// Update обновляет ссылку условием WHERE id AND user_id
func (r *Repository) Update(ctx context.Context, id int64, userID string, originalURL string, shortCode string) (*model.Link, error) {
	link, err := r.underlying.Update(ctx, id, userID, originalURL, shortCode)
	if err != nil {
		return nil, fmt.Errorf("failed to update link: %w", err)
	}

	return link, nil
}

// Delete удаляет ссылку условием WHERE id AND user_id
func (r *Repository) Delete(ctx context.Context, id int64, userID string) error {
	if err := r.underlying.Delete(ctx, id, userID); err != nil {
		return fmt.Errorf("failed to delete link: %w", err)
	}

	return nil
}

// Ping проверяет доступность хранилища
func (r *Repository) Ping(ctx context.Context) error {
	if err := r.underlying.Ping(ctx); err != nil {
		return fmt.Errorf("failed to ping store: %w", err)
	}

	return nil
}
