package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/avc-dev/linkboard/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Код SQLSTATE нарушения уникального индекса в PostgreSQL.
const uniqueViolationCode = "23505"

// DatabaseStore реализует Store интерфейс для PostgreSQL
type DatabaseStore struct {
	pool *pgxpool.Pool
}

// NewDatabaseStore создает новый DatabaseStore
func NewDatabaseStore(pool *pgxpool.Pool) *DatabaseStore {
	return &DatabaseStore{pool: pool}
}

// isUniqueViolation проверяет, является ли ошибка нарушением уникального индекса short_code
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}

// Insert сохраняет новую ссылку. Уникальность short_code обеспечивает
// индекс short_code_idx — это единственный механизм сериализации конкурентных вставок.
func (ds *DatabaseStore) Insert(ctx context.Context, link *model.Link) error {
	query := `
		INSERT INTO links (user_id, short_code, original_url)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at
	`

	err := ds.pool.QueryRow(ctx, query, link.UserID, link.ShortCode, link.OriginalURL).
		Scan(&link.ID, &link.CreatedAt, &link.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("short code %s: %w", link.ShortCode, ErrDuplicateCode)
		}
		return fmt.Errorf("failed to insert link: %w", err)
	}

	return nil
}

// GetByID возвращает ссылку по первичному ключу
func (ds *DatabaseStore) GetByID(ctx context.Context, id int64) (*model.Link, error) {
	query := `
		SELECT id, user_id, short_code, original_url, created_at, updated_at
		FROM links
		WHERE id = $1
	`

	return ds.scanLink(ds.pool.QueryRow(ctx, query, id))
}

// GetByShortCode возвращает ссылку по короткому коду
func (ds *DatabaseStore) GetByShortCode(ctx context.Context, shortCode string) (*model.Link, error) {
	query := `
		SELECT id, user_id, short_code, original_url, created_at, updated_at
		FROM links
		WHERE short_code = $1
	`

	return ds.scanLink(ds.pool.QueryRow(ctx, query, shortCode))
}

// ListByUserID возвращает все ссылки пользователя, недавно обновленные первыми
func (ds *DatabaseStore) ListByUserID(ctx context.Context, userID string) ([]model.Link, error) {
	query := `
		SELECT id, user_id, short_code, original_url, created_at, updated_at
		FROM links
		WHERE user_id = $1
		ORDER BY updated_at DESC
	`

	rows, err := ds.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list links: %w", err)
	}
	defer rows.Close()

	links := make([]model.Link, 0)
	for rows.Next() {
		var link model.Link
		if err := rows.Scan(&link.ID, &link.UserID, &link.ShortCode, &link.OriginalURL, &link.CreatedAt, &link.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan link: %w", err)
		}
		links = append(links, link)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read links: %w", err)
	}

	return links, nil
}

// Update обновляет original_url и short_code (пустой код сохраняет текущий)
// одним условным UPDATE — проверка владельца входит в WHERE, поэтому между
// чтением и записью нет окна для гонки.
func (ds *DatabaseStore) Update(ctx context.Context, id int64, userID string, originalURL string, shortCode string) (*model.Link, error) {
	query := `
		UPDATE links
		SET original_url = $3,
		    short_code = COALESCE(NULLIF($4, ''), short_code),
		    updated_at = now()
		WHERE id = $1 AND user_id = $2
		RETURNING id, user_id, short_code, original_url, created_at, updated_at
	`

	link, err := ds.scanLink(ds.pool.QueryRow(ctx, query, id, userID, originalURL, shortCode))
	if err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("short code %s: %w", shortCode, ErrDuplicateCode)
		}
		return nil, err
	}

	return link, nil
}

// Delete удаляет ссылку одним условным DELETE, проверяя количество затронутых строк
func (ds *DatabaseStore) Delete(ctx context.Context, id int64, userID string) error {
	query := `
		DELETE FROM links
		WHERE id = $1 AND user_id = $2
	`

	tag, err := ds.pool.Exec(ctx, query, id, userID)
	if err != nil {
		return fmt.Errorf("failed to delete link: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("link %d: %w", id, ErrNotFound)
	}

	return nil
}

// Ping проверяет подключение к базе данных
func (ds *DatabaseStore) Ping(ctx context.Context) error {
	return ds.pool.Ping(ctx)
}

func (ds *DatabaseStore) scanLink(row pgx.Row) (*model.Link, error) {
	var link model.Link

	err := row.Scan(&link.ID, &link.UserID, &link.ShortCode, &link.OriginalURL, &link.CreatedAt, &link.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to read link: %w", err)
	}

	return &link, nil
}
