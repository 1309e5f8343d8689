package store

import (
	"context"
	"errors"

	"github.com/avc-dev/linkboard/internal/model"
)

var (
	// ErrNotFound возвращается когда запись не существует
	ErrNotFound = errors.New("link not found")
	// ErrDuplicateCode возвращается при нарушении уникальности short_code
	ErrDuplicateCode = errors.New("short code already exists")
)

// Store определяет интерфейс хранилища ссылок.
// Идентификатор пользователя всегда передается явным аргументом,
// хранилище никогда не читает его из состояния запроса.
type Store interface {
	// Insert сохраняет новую ссылку и заполняет ID, CreatedAt и UpdatedAt.
	// Возвращает ErrDuplicateCode если short_code уже занят.
	Insert(ctx context.Context, link *model.Link) error

	// GetByID возвращает ссылку по первичному ключу
	GetByID(ctx context.Context, id int64) (*model.Link, error)

	// GetByShortCode возвращает ссылку по короткому коду (публичный поиск, без проверки владельца)
	GetByShortCode(ctx context.Context, shortCode string) (*model.Link, error)

	// ListByUserID возвращает все ссылки пользователя, отсортированные по updated_at DESC
	ListByUserID(ctx context.Context, userID string) ([]model.Link, error)

	// Update атомарно обновляет ссылку условием WHERE id AND user_id,
	// закрывая гонку между проверкой владельца и записью.
	// Пустой shortCode сохраняет текущий код. Обновляет updated_at.
	Update(ctx context.Context, id int64, userID string, originalURL string, shortCode string) (*model.Link, error)

	// Delete атомарно удаляет ссылку условием WHERE id AND user_id
	Delete(ctx context.Context, id int64, userID string) error

	// Ping проверяет доступность хранилища
	Ping(ctx context.Context) error
}
