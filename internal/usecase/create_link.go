package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/avc-dev/linkboard/internal/model"
	"github.com/avc-dev/linkboard/internal/service"
	"github.com/avc-dev/linkboard/internal/store"
	"go.uber.org/zap"
)

// CreateLink создает новую ссылку для пользователя userID.
// Пустой shortCode означает автоматическую генерацию кода; выбранный
// пользователем код валидируется до обращения к хранилищу, а занятый код
// возвращается как ErrDuplicateShortCode без повторных попыток.
func (u *LinkUsecase) CreateLink(ctx context.Context, userID string, originalURL string, shortCode string) (*model.Link, error) {
	if userID == "" {
		return nil, ErrUnauthorized
	}

	// Код считается отсутствующим только если он пуст целиком;
	// код с пробелами внутри или по краям отклоняется валидацией
	generate := strings.TrimSpace(shortCode) == ""

	fields := make(map[string][]string)
	if messages := validateOriginalURL(originalURL); len(messages) > 0 {
		fields["originalUrl"] = messages
	}
	if !generate {
		if messages := validateShortCode(shortCode); len(messages) > 0 {
			fields["shortCode"] = messages
		}
	}
	if len(fields) > 0 {
		return nil, &ValidationError{Fields: fields}
	}

	if generate {
		link, err := u.service.CreateWithGeneratedCode(ctx, userID, originalURL)
		if err != nil {
			if errors.Is(err, service.ErrMaxRetriesExceeded) {
				u.logger.Error("exhausted short code generation attempts",
					zap.String("user_id", userID),
					zap.Error(err),
				)
				return nil, ErrExhaustedRetries
			}

			u.logger.Error("failed to create link with generated code",
				zap.String("user_id", userID),
				zap.Error(err),
			)
			return nil, fmt.Errorf("%w: %w", ErrUnknown, err)
		}

		return link, nil
	}

	link, err := u.service.CreateWithCode(ctx, userID, originalURL, shortCode)
	if err != nil {
		if errors.Is(err, store.ErrDuplicateCode) {
			return nil, ErrDuplicateShortCode
		}

		u.logger.Error("failed to create link",
			zap.String("user_id", userID),
			zap.String("short_code", shortCode),
			zap.Error(err),
		)
		return nil, fmt.Errorf("%w: %w", ErrUnknown, err)
	}

	return link, nil
}
