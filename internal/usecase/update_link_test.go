package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdateLink_Success(t *testing.T) {
	u, _ := newTestUsecase()
	ctx := context.Background()

	link := mustCreate(t, u, "user-1", "https://example.com", "old-code")

	updated, err := u.UpdateLink(ctx, "user-1", link.ID, "https://new.example.com", "new-code")

	require.NoError(t, err)
	assert.Equal(t, "https://new.example.com", updated.OriginalURL)
	assert.Equal(t, "new-code", updated.ShortCode)
	assert.False(t, updated.UpdatedAt.Before(link.UpdatedAt))

	// Старый код больше не разрешается
	_, err = u.ResolveShortCode(ctx, "old-code")
	assert.ErrorIs(t, err, ErrNotFound)

	resolved, err := u.ResolveShortCode(ctx, "new-code")
	require.NoError(t, err)
	assert.Equal(t, "https://new.example.com", resolved.OriginalURL)
}

func TestUpdateLink_Forbidden(t *testing.T) {
	u, _ := newTestUsecase()
	ctx := context.Background()

	link := mustCreate(t, u, "user-1", "https://example.com", "abc123")

	_, err := u.UpdateLink(ctx, "user-2", link.ID, "https://evil.example.com", "evil-1")

	assert.ErrorIs(t, err, ErrForbidden)

	// Ссылка не изменилась
	resolved, resolveErr := u.ResolveShortCode(ctx, "abc123")
	require.NoError(t, resolveErr)
	assert.Equal(t, "https://example.com", resolved.OriginalURL)
	assert.Equal(t, "abc123", resolved.ShortCode)
}

func TestUpdateLink_NotFound(t *testing.T) {
	u, _ := newTestUsecase()

	_, err := u.UpdateLink(context.Background(), "user-1", 9999, "https://example.com", "abc123")

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateLink_DuplicateCode(t *testing.T) {
	u, _ := newTestUsecase()
	ctx := context.Background()

	mustCreate(t, u, "user-1", "https://a.example.com", "taken1")
	link := mustCreate(t, u, "user-1", "https://b.example.com", "mine01")

	_, err := u.UpdateLink(ctx, "user-1", link.ID, "https://b.example.com", "taken1")

	assert.ErrorIs(t, err, ErrDuplicateShortCode)
}

func TestUpdateLink_Validation(t *testing.T) {
	u, tracking := newTestUsecase()

	// Код обязателен при обновлении
	_, err := u.UpdateLink(context.Background(), "user-1", 1, "https://example.com", "")

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Contains(t, validationErr.Fields, "shortCode")
	assert.Zero(t, tracking.calls)
}

func TestUpdateLink_Unauthorized(t *testing.T) {
	u, tracking := newTestUsecase()

	_, err := u.UpdateLink(context.Background(), "", 1, "https://example.com", "abc123")

	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.Zero(t, tracking.calls)
}
