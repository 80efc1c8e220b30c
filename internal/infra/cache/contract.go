package cache

import (
	"context"
	"time"
)

// Cache кэш результатов запросов к API
type Cache interface {
	Get(ctx context.Context, key Key) ([]byte, bool, error)
	Set(ctx context.Context, key Key, value []byte, ttl time.Duration) error
	Invalidate(ctx context.Context, prefix Key) error
}

// Metrics интерфейс сбора метрик кэша
type Metrics interface {
	ObserveCache(result string)
	ObserveInvalidation(root string)
}

// Logger интерфейс для логирования
type Logger interface {
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
