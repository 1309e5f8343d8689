package usecase

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUnauthorized возвращается при отсутствии аутентифицированной идентичности
	ErrUnauthorized = errors.New("unauthorized")
	// ErrForbidden возвращается когда вызывающий не владелец ссылки
	ErrForbidden = errors.New("forbidden")
	// ErrNotFound возвращается когда ссылка с таким id или кодом не существует
	ErrNotFound = errors.New("link not found")
	// ErrDuplicateShortCode возвращается когда выбранный пользователем код уже занят
	ErrDuplicateShortCode = errors.New("short code already taken")
	// ErrExhaustedRetries возвращается когда генерация не нашла свободный код
	// за отведенное количество попыток
	ErrExhaustedRetries = errors.New("could not allocate a unique code")
	// ErrUnknown возвращается при любой другой ошибке хранилища
	ErrUnknown = errors.New("storage failure")
)

// ValidationError несет структурные нарушения входных данных
// с сообщениями по каждому полю. Обнаруживается до обращения к хранилищу.
type ValidationError struct {
	Fields map[string][]string
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for field, messages := range e.Fields {
		parts = append(parts, fmt.Sprintf("%s: %s", field, strings.Join(messages, "; ")))
	}

	return "invalid input: " + strings.Join(parts, ", ")
}
