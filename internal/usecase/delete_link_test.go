package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeleteLink_Success(t *testing.T) {
	u, _ := newTestUsecase()
	ctx := context.Background()

	link := mustCreate(t, u, "user-1", "https://example.com", "abc123")

	require.NoError(t, u.DeleteLink(ctx, "user-1", link.ID))

	// Код больше не разрешается, повторные операции дают NotFound
	_, err := u.ResolveShortCode(ctx, "abc123")
	assert.ErrorIs(t, err, ErrNotFound)

	assert.ErrorIs(t, u.DeleteLink(ctx, "user-1", link.ID), ErrNotFound)

	_, err = u.UpdateLink(ctx, "user-1", link.ID, "https://example.com", "abc123")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteLink_Forbidden(t *testing.T) {
	u, _ := newTestUsecase()
	ctx := context.Background()

	link := mustCreate(t, u, "user-1", "https://example.com", "abc123")

	assert.ErrorIs(t, u.DeleteLink(ctx, "user-2", link.ID), ErrForbidden)

	// Ссылка осталась на месте
	resolved, err := u.ResolveShortCode(ctx, "abc123")
	require.NoError(t, err)
	assert.Equal(t, link.ID, resolved.ID)
}

func TestDeleteLink_NotFound(t *testing.T) {
	u, _ := newTestUsecase()

	assert.ErrorIs(t, u.DeleteLink(context.Background(), "user-1", 9999), ErrNotFound)
}

func TestDeleteLink_Unauthorized(t *testing.T) {
	u, tracking := newTestUsecase()

	assert.ErrorIs(t, u.DeleteLink(context.Background(), "", 1), ErrUnauthorized)
	assert.Zero(t, tracking.calls)
}
