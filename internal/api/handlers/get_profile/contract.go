package get_profile

import (
	"context"

	"github.com/m04kA/SMC-MarketplaceBFF/internal/domain"
)

type AccountService interface {
	GetProfile(ctx context.Context) (*domain.User, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
