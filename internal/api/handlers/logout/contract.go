package logout

import (
	"context"

	"github.com/m04kA/SMC-MarketplaceBFF/internal/session"
)

type SessionManager interface {
	Logout(ctx context.Context, s *session.Session) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
