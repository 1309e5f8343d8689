package usecase

import (
	"context"
	"fmt"

	"github.com/avc-dev/linkboard/internal/model"
	"go.uber.org/zap"
)

// ListLinks возвращает все ссылки пользователя, недавно обновленные первыми
func (u *LinkUsecase) ListLinks(ctx context.Context, userID string) ([]model.Link, error) {
	if userID == "" {
		return nil, ErrUnauthorized
	}

	links, err := u.repo.ListByUserID(ctx, userID)
	if err != nil {
		u.logger.Error("failed to list links",
			zap.String("user_id", userID),
			zap.Error(err),
		)
		return nil, fmt.Errorf("%w: %w", ErrUnknown, err)
	}

	return links, nil
}
