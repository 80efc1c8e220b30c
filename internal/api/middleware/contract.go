package middleware

import (
	"context"
	"time"

	"github.com/m04kA/SMC-MarketplaceBFF/internal/session"
)

// SessionManager восстанавливает сессию по ID
type SessionManager interface {
	Init(ctx context.Context, id string) (*session.Session, error)
}

// HTTPMetrics метрики HTTP запросов
type HTTPMetrics interface {
	ObserveHTTP(method, route string, status int, duration time.Duration)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
