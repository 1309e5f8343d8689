package store

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/avc-dev/linkboard/internal/model"
)

// MemoryStore реализует Store интерфейс в памяти.
// Используется в тестах и как dev-режим без настроенной базы данных.
type MemoryStore struct {
	links  map[int64]model.Link
	byCode map[string]int64
	nextID int64
	mutex  sync.Mutex
	now    func() time.Time
}

// NewMemoryStore создает новое пустое хранилище в памяти
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		links:  make(map[int64]model.Link),
		byCode: make(map[string]int64),
		nextID: 1,
		now:    time.Now,
	}
}

// Insert сохраняет новую ссылку, присваивая ей следующий идентификатор.
// Проверка занятости кода и вставка выполняются под одним мьютексом,
// воспроизводя атомарность уникального индекса базы данных.
func (ms *MemoryStore) Insert(_ context.Context, link *model.Link) error {
	ms.mutex.Lock()
	defer ms.mutex.Unlock()

	if _, exists := ms.byCode[link.ShortCode]; exists {
		return fmt.Errorf("short code %s: %w", link.ShortCode, ErrDuplicateCode)
	}

	now := ms.now()
	link.ID = ms.nextID
	link.CreatedAt = now
	link.UpdatedAt = now
	ms.nextID++

	ms.links[link.ID] = *link
	ms.byCode[link.ShortCode] = link.ID

	return nil
}

// GetByID возвращает ссылку по первичному ключу
func (ms *MemoryStore) GetByID(_ context.Context, id int64) (*model.Link, error) {
	ms.mutex.Lock()
	defer ms.mutex.Unlock()

	link, ok := ms.links[id]
	if !ok {
		return nil, ErrNotFound
	}

	return &link, nil
}

// GetByShortCode возвращает ссылку по короткому коду
func (ms *MemoryStore) GetByShortCode(_ context.Context, shortCode string) (*model.Link, error) {
	ms.mutex.Lock()
	defer ms.mutex.Unlock()

	id, ok := ms.byCode[shortCode]
	if !ok {
		return nil, ErrNotFound
	}

	link := ms.links[id]
	return &link, nil
}

// ListByUserID возвращает все ссылки пользователя, недавно обновленные первыми
func (ms *MemoryStore) ListByUserID(_ context.Context, userID string) ([]model.Link, error) {
	ms.mutex.Lock()
	defer ms.mutex.Unlock()

	links := make([]model.Link, 0)
	for _, link := range ms.links {
		if link.UserID == userID {
			links = append(links, link)
		}
	}

	sort.Slice(links, func(i, j int) bool {
		if links[i].UpdatedAt.Equal(links[j].UpdatedAt) {
			return links[i].ID > links[j].ID
		}
		return links[i].UpdatedAt.After(links[j].UpdatedAt)
	})

	return links, nil
}

// Update обновляет ссылку только если она принадлежит userID.
// Пустой shortCode сохраняет текущий код.
func (ms *MemoryStore) Update(_ context.Context, id int64, userID string, originalURL string, shortCode string) (*model.Link, error) {
	ms.mutex.Lock()
	defer ms.mutex.Unlock()

	link, ok := ms.links[id]
	if !ok || link.UserID != userID {
		return nil, ErrNotFound
	}

	if shortCode != "" && shortCode != link.ShortCode {
		if _, exists := ms.byCode[shortCode]; exists {
			return nil, fmt.Errorf("short code %s: %w", shortCode, ErrDuplicateCode)
		}
		delete(ms.byCode, link.ShortCode)
		ms.byCode[shortCode] = id
		link.ShortCode = shortCode
	}

	link.OriginalURL = originalURL
	link.UpdatedAt = ms.now()
	ms.links[id] = link

	return &link, nil
}

// Delete удаляет ссылку только если она принадлежит userID
func (ms *MemoryStore) Delete(_ context.Context, id int64, userID string) error {
	ms.mutex.Lock()
	defer ms.mutex.Unlock()

	link, ok := ms.links[id]
	if !ok || link.UserID != userID {
		return fmt.Errorf("link %d: %w", id, ErrNotFound)
	}

	delete(ms.byCode, link.ShortCode)
	delete(ms.links, id)

	return nil
}

// Ping всегда успешен для хранилища в памяти
func (ms *MemoryStore) Ping(_ context.Context) error {
	return nil
}
