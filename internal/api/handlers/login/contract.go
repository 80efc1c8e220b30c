package login

import (
	"context"

	"github.com/m04kA/SMC-MarketplaceBFF/internal/session"
)

type SessionManager interface {
	Login(ctx context.Context, email, password string) (*session.Session, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
