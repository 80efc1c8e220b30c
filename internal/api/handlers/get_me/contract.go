package get_me

import (
	"context"

	"github.com/m04kA/SMC-MarketplaceBFF/internal/domain"
)

type AccountService interface {
	Me(ctx context.Context) (*domain.User, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
