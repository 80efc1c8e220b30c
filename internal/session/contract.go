package session

import (
	"context"
	"time"

	"github.com/m04kA/SMC-MarketplaceBFF/internal/domain"
	storage "github.com/m04kA/SMC-MarketplaceBFF/internal/infra/storage/session"
	"github.com/m04kA/SMC-MarketplaceBFF/internal/integrations/marketplace"
)

// Store хранилище токенов сессий
type Store interface {
	Save(ctx context.Context, record *storage.Record) error
	GetByID(ctx context.Context, id string, now time.Time) (*storage.Record, error)
	Delete(ctx context.Context, id string) error
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}

// AuthAPI методы аутентификации API маркетплейса
type AuthAPI interface {
	Login(ctx context.Context, req marketplace.LoginRequest) (*marketplace.AuthResult, error)
	Me(ctx context.Context) (*domain.User, error)
	Logout(ctx context.Context) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
