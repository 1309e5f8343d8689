package usecase

import (
	"context"
	"testing"

	"github.com/avc-dev/linkboard/internal/model"
	"github.com/avc-dev/linkboard/internal/repository"
	"github.com/avc-dev/linkboard/internal/service"
	"github.com/avc-dev/linkboard/internal/store"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// trackingStore оборачивает хранилище, подсчитывая обращения —
// так проверяется, что валидация отсекает запрос до хранилища
type trackingStore struct {
	store.Store
	calls int
}

func (ts *trackingStore) Insert(ctx context.Context, link *model.Link) error {
	ts.calls++
	return ts.Store.Insert(ctx, link)
}

func (ts *trackingStore) GetByID(ctx context.Context, id int64) (*model.Link, error) {
	ts.calls++
	return ts.Store.GetByID(ctx, id)
}

func (ts *trackingStore) GetByShortCode(ctx context.Context, shortCode string) (*model.Link, error) {
	ts.calls++
	return ts.Store.GetByShortCode(ctx, shortCode)
}

func (ts *trackingStore) ListByUserID(ctx context.Context, userID string) ([]model.Link, error) {
	ts.calls++
	return ts.Store.ListByUserID(ctx, userID)
}

func (ts *trackingStore) Update(ctx context.Context, id int64, userID string, originalURL string, shortCode string) (*model.Link, error) {
	ts.calls++
	return ts.Store.Update(ctx, id, userID, originalURL, shortCode)
}

func (ts *trackingStore) Delete(ctx context.Context, id int64, userID string) error {
	ts.calls++
	return ts.Store.Delete(ctx, id, userID)
}

// newTestUsecase собирает юзкейс поверх хранилища в памяти
func newTestUsecase() (*LinkUsecase, *trackingStore) {
	tracking := &trackingStore{Store: store.NewMemoryStore()}
	repo := repository.New(tracking)
	linkService := service.NewLinkService(repo, service.NewCodeGenerator(), 10)

	return NewLinkUsecase(repo, linkService, zap.NewNop()), tracking
}

// mustCreate создает ссылку, останавливая тест при ошибке
func mustCreate(t *testing.T, u *LinkUsecase, userID, originalURL, shortCode string) *model.Link {
	t.Helper()

	link, err := u.CreateLink(context.Background(), userID, originalURL, shortCode)
	require.NoError(t, err)

	return link
}
