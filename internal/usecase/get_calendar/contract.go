package get_calendar

import (
	"context"

	"github.com/m04kA/SMC-MarketplaceBFF/internal/domain"
)

// BookingService интерфейс сервиса бронирований
type BookingService interface {
	ListVendor(ctx context.Context, filter domain.BookingsFilter) (*domain.Paginated[domain.Booking], error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
