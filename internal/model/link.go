package model

import "time"

// Link представляет короткую ссылку, принадлежащую пользователю.
// UserID неизменяем после создания; ShortCode глобально уникален.
type Link struct {
	ID          int64     `json:"id"`
	UserID      string    `json:"-"`
	ShortCode   string    `json:"shortCode"`
	OriginalURL string    `json:"originalUrl"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
