package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"
)

type memoryItem struct {
	data      []byte
	expiresAt time.Time
}

// Memory — кэш в памяти процесса. Значения тоже хранятся в JSON, поэтому
// читатель всегда получает собственную копию.
type Memory struct {
	mu    sync.RWMutex
	items map[string]memoryItem
	now   func() time.Time
}

// NewMemory создаёт пустой кэш в памяти.
func NewMemory() *Memory {
	return &Memory{
		items: make(map[string]memoryItem),
		now:   time.Now,
	}
}

// Get читает значение по ключу в result.
func (m *Memory) Get(_ context.Context, key string, result any) (bool, error) {
	const op = "cache.Memory.Get"
	m.mu.RLock()
	item, ok := m.items[key]
	m.mu.RUnlock()
	if !ok {
		return false, nil
	}
	if !item.expiresAt.IsZero() && !m.now().Before(item.expiresAt) {
		m.mu.Lock()
		if cur, ok := m.items[key]; ok && cur.expiresAt.Equal(item.expiresAt) {
			delete(m.items, key)
		}
		m.mu.Unlock()
		return false, nil
	}
	if err := json.Unmarshal(item.data, result); err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}
	return true, nil
}

// Set сохраняет значение с временем жизни expiration (0 — без ограничения).
func (m *Memory) Set(_ context.Context, key string, value any, expiration time.Duration) error {
	const op = "cache.Memory.Set"
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	item := memoryItem{data: data}
	if expiration > 0 {
		item.expiresAt = m.now().Add(expiration)
	}
	m.mu.Lock()
	m.items[key] = item
	m.mu.Unlock()
	return nil
}

// Invalidate удаляет ключ.
func (m *Memory) Invalidate(_ context.Context, key string) error {
	m.mu.Lock()
	delete(m.items, key)
	m.mu.Unlock()
	return nil
}

// InvalidatePrefix удаляет все ключи с префиксом prefix.
func (m *Memory) InvalidatePrefix(_ context.Context, prefix string) error {
	m.mu.Lock()
	for k := range m.items {
		if strings.HasPrefix(k, prefix) {
			delete(m.items, k)
		}
	}
	m.mu.Unlock()
	return nil
}

// Len возвращает количество ключей, включая ещё не вычищенные просроченные.
func (m *Memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.items)
}
