package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/avc-dev/linkboard/internal/model"
	"github.com/avc-dev/linkboard/internal/store"
	"go.uber.org/zap"
)

// ResolveShortCode возвращает ссылку по короткому коду.
// Коды публичны, проверка владельца не выполняется.
func (u *LinkUsecase) ResolveShortCode(ctx context.Context, shortCode string) (*model.Link, error) {
	link, err := u.repo.GetByShortCode(ctx, shortCode)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrNotFound
		}

		u.logger.Error("failed to resolve short code",
			zap.String("short_code", shortCode),
			zap.Error(err),
		)
		return nil, fmt.Errorf("%w: %w", ErrUnknown, err)
	}

	return link, nil
}
