package service

import "errors"

var (
	// ErrMaxRetriesExceeded возвращается когда не удалось выделить уникальный код
	// за отведенное количество попыток вставки
	ErrMaxRetriesExceeded = errors.New("could not allocate a unique code")
)
