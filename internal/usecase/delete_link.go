package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/avc-dev/linkboard/internal/store"
	"go.uber.org/zap"
)

// DeleteLink удаляет ссылку linkID. Проверки существования и владельца
// те же, что и при обновлении; удаление условное (WHERE id AND user_id).
func (u *LinkUsecase) DeleteLink(ctx context.Context, userID string, linkID int64) error {
	if userID == "" {
		return ErrUnauthorized
	}

	if err := u.checkOwnership(ctx, userID, linkID); err != nil {
		return err
	}

	if err := u.repo.Delete(ctx, linkID, userID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrNotFound
		}

		u.logger.Error("failed to delete link",
			zap.Int64("link_id", linkID),
			zap.String("user_id", userID),
			zap.Error(err),
		)
		return fmt.Errorf("%w: %w", ErrUnknown, err)
	}

	return nil
}
