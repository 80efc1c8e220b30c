package account

import (
	"context"

	"github.com/m04kA/SMC-MarketplaceBFF/internal/domain"
	"github.com/m04kA/SMC-MarketplaceBFF/internal/integrations/marketplace"
)

// AuthAPI методы аутентификации
type AuthAPI interface {
	Register(ctx context.Context, req marketplace.RegisterRequest) (*marketplace.AuthResult, error)
	Me(ctx context.Context) (*domain.User, error)
}

// UserAPI методы профиля пользователя
type UserAPI interface {
	GetProfile(ctx context.Context) (*domain.User, error)
	UpdateProfile(ctx context.Context, req marketplace.UpdateProfileRequest) (*domain.User, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
