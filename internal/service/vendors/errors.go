package vendors

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-MarketplaceBFF/internal/integrations/gateway"
)

var (
	// ErrVendorNotFound возвращается, когда вендор не найден
	ErrVendorNotFound = errors.New("vendor not found")

	// ErrUnauthorized возвращается, когда API не приняло токен сессии
	ErrUnauthorized = errors.New("authentication required")

	// ErrAccessDenied возвращается, когда у пользователя нет прав доступа
	ErrAccessDenied = errors.New("access denied")

	// ErrAlreadyRegistered возвращается при повторной регистрации вендора
	ErrAlreadyRegistered = errors.New("vendor already registered")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrUnavailable возвращается при сетевых ошибках и ошибках API
	ErrUnavailable = errors.New("service: marketplace api unavailable")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)

func mapError(op string, err error) error {
	switch {
	case errors.Is(err, gateway.ErrNotFound):
		return fmt.Errorf("%w: %s: %w", ErrVendorNotFound, op, err)
	case errors.Is(err, gateway.ErrUnauthorized):
		return fmt.Errorf("%w: %s: %w", ErrUnauthorized, op, err)
	case errors.Is(err, gateway.ErrForbidden):
		return fmt.Errorf("%w: %s: %w", ErrAccessDenied, op, err)
	case errors.Is(err, gateway.ErrConflict):
		return fmt.Errorf("%w: %s: %w", ErrAlreadyRegistered, op, err)
	case errors.Is(err, gateway.ErrBadRequest), errors.Is(err, gateway.ErrRejected):
		return fmt.Errorf("%w: %s: %w", ErrInvalidInput, op, err)
	case errors.Is(err, gateway.ErrTransport), errors.Is(err, gateway.ErrUpstream), errors.Is(err, gateway.ErrInvalidResponse):
		return fmt.Errorf("%w: %s: %w", ErrUnavailable, op, err)
	default:
		return fmt.Errorf("%w: %s: %w", ErrInternal, op, err)
	}
}
