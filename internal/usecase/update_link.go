package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/avc-dev/linkboard/internal/model"
	"github.com/avc-dev/linkboard/internal/store"
	"go.uber.org/zap"
)

// UpdateLink заменяет originalURL и shortCode ссылки linkID.
// Код обязателен, в отличие от создания. Проверка существования и владельца
// выполняется до мутации; сама мутация условная (WHERE id AND user_id),
// поэтому конкурентное удаление между проверкой и записью дает ErrNotFound.
func (u *LinkUsecase) UpdateLink(ctx context.Context, userID string, linkID int64, originalURL string, shortCode string) (*model.Link, error) {
	if userID == "" {
		return nil, ErrUnauthorized
	}

	fields := make(map[string][]string)
	if messages := validateOriginalURL(originalURL); len(messages) > 0 {
		fields["originalUrl"] = messages
	}
	if messages := validateShortCode(shortCode); len(messages) > 0 {
		fields["shortCode"] = messages
	}
	if len(fields) > 0 {
		return nil, &ValidationError{Fields: fields}
	}

	if err := u.checkOwnership(ctx, userID, linkID); err != nil {
		return nil, err
	}

	link, err := u.repo.Update(ctx, linkID, userID, originalURL, shortCode)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrDuplicateCode):
			return nil, ErrDuplicateShortCode
		case errors.Is(err, store.ErrNotFound):
			return nil, ErrNotFound
		}

		u.logger.Error("failed to update link",
			zap.Int64("link_id", linkID),
			zap.String("user_id", userID),
			zap.Error(err),
		)
		return nil, fmt.Errorf("%w: %w", ErrUnknown, err)
	}

	return link, nil
}

// checkOwnership проверяет существование ссылки и принадлежность ее userID
func (u *LinkUsecase) checkOwnership(ctx context.Context, userID string, linkID int64) error {
	existing, err := u.repo.GetByID(ctx, linkID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrNotFound
		}

		u.logger.Error("failed to get link for ownership check",
			zap.Int64("link_id", linkID),
			zap.Error(err),
		)
		return fmt.Errorf("%w: %w", ErrUnknown, err)
	}

	if existing.UserID != userID {
		return ErrForbidden
	}

	return nil
}
