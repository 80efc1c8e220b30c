// Package cachetest содержит кэш в памяти для тестов
package cachetest

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/m04kA/SMC-MarketplaceBFF/internal/infra/cache"
)

// Memory кэш в памяти, запоминающий инвалидированные префиксы
type Memory struct {
	mu          sync.Mutex
	values      map[string][]byte
	invalidated []string
}

// NewMemory создает пустой кэш
func NewMemory() *Memory {
	return &Memory{values: map[string][]byte{}}
}

func (m *Memory) Get(_ context.Context, key cache.Key) ([]byte, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	v, ok := m.values[key.String()]
	return v, ok, nil
}

func (m *Memory) Set(_ context.Context, key cache.Key, value []byte, _ time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.values[key.String()] = value
	return nil
}

func (m *Memory) Invalidate(_ context.Context, prefix cache.Key) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	p := prefix.String()
	for k := range m.values {
		if k == p || strings.HasPrefix(k, p+":") {
			delete(m.values, k)
		}
	}
	m.invalidated = append(m.invalidated, p)
	return nil
}

// Has проверяет, что значение по ключу закэшировано
func (m *Memory) Has(key cache.Key) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	_, ok := m.values[key.String()]
	return ok
}

// Invalidated возвращает инвалидированные префиксы в порядке вызовов
func (m *Memory) Invalidated() []string {
	m.mu.Lock()
	defer m.mu.Unlock()

	return append([]string(nil), m.invalidated...)
}
