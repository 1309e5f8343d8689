package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListLinks_OnlyOwnLinks(t *testing.T) {
	u, _ := newTestUsecase()
	ctx := context.Background()

	mustCreate(t, u, "user-1", "https://a.example.com", "code-a")
	mustCreate(t, u, "user-1", "https://b.example.com", "code-b")
	mustCreate(t, u, "user-2", "https://c.example.com", "code-c")

	links, err := u.ListLinks(ctx, "user-1")

	require.NoError(t, err)
	require.Len(t, links, 2)
	for _, link := range links {
		assert.Equal(t, "user-1", link.UserID)
	}
}

func TestListLinks_OrderedByUpdatedAtDesc(t *testing.T) {
	u, _ := newTestUsecase()
	ctx := context.Background()

	first := mustCreate(t, u, "user-1", "https://a.example.com", "code-a")
	second := mustCreate(t, u, "user-1", "https://b.example.com", "code-b")

	// Обновление первой ссылки поднимает ее наверх
	_, err := u.UpdateLink(ctx, "user-1", first.ID, "https://a2.example.com", "code-a")
	require.NoError(t, err)

	links, err := u.ListLinks(ctx, "user-1")

	require.NoError(t, err)
	require.Len(t, links, 2)
	assert.Equal(t, first.ID, links[0].ID)
	assert.Equal(t, second.ID, links[1].ID)
}

func TestListLinks_Empty(t *testing.T) {
	u, _ := newTestUsecase()

	links, err := u.ListLinks(context.Background(), "user-1")

	require.NoError(t, err)
	assert.Empty(t, links)
}

func TestListLinks_Unauthorized(t *testing.T) {
	u, _ := newTestUsecase()

	_, err := u.ListLinks(context.Background(), "")

	assert.ErrorIs(t, err, ErrUnauthorized)
}
