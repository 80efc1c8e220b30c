package get_dashboard_stats

import (
	"context"
	"time"

	"github.com/m04kA/SMC-MarketplaceBFF/internal/domain"
)

// BookingService интерфейс сервиса бронирований
type BookingService interface {
	ListVendor(ctx context.Context, filter domain.BookingsFilter) (*domain.Paginated[domain.Booking], error)
	ListAdmin(ctx context.Context, filter domain.BookingsFilter) (*domain.Paginated[domain.Booking], error)
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
