package account

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-MarketplaceBFF/internal/integrations/gateway"
)

var (
	// ErrUnauthorized возвращается, когда сессия не аутентифицирована
	ErrUnauthorized = errors.New("authentication required")

	// ErrEmailTaken возвращается, когда email уже зарегистрирован
	ErrEmailTaken = errors.New("email already registered")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrUnavailable возвращается при сетевых ошибках и ошибках API
	ErrUnavailable = errors.New("service: marketplace api unavailable")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)

func mapError(op string, err error) error {
	switch {
	case errors.Is(err, gateway.ErrUnauthorized), errors.Is(err, gateway.ErrForbidden):
		return fmt.Errorf("%w: %s: %w", ErrUnauthorized, op, err)
	case errors.Is(err, gateway.ErrConflict):
		return fmt.Errorf("%w: %s: %w", ErrEmailTaken, op, err)
	case errors.Is(err, gateway.ErrBadRequest), errors.Is(err, gateway.ErrRejected), errors.Is(err, gateway.ErrNotFound):
		return fmt.Errorf("%w: %s: %w", ErrInvalidInput, op, err)
	case errors.Is(err, gateway.ErrTransport), errors.Is(err, gateway.ErrUpstream), errors.Is(err, gateway.ErrInvalidResponse):
		return fmt.Errorf("%w: %s: %w", ErrUnavailable, op, err)
	default:
		return fmt.Errorf("%w: %s: %w", ErrInternal, op, err)
	}
}
