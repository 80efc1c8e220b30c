package gateway

import (
	"context"
	"time"
)

// TokenSource источник bearer токена для исходящих запросов
type TokenSource interface {
	Token(ctx context.Context) (string, bool)
}

// Metrics интерфейс сбора метрик запросов к API
type Metrics interface {
	ObserveUpstream(method, endpoint, outcome string, duration time.Duration)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// StaticToken TokenSource с фиксированным токеном
type StaticToken string

// Token возвращает токен, если он не пустой
func (t StaticToken) Token(context.Context) (string, bool) {
	return string(t), t != ""
}
