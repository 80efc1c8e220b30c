package check_availability

import (
	"context"
	"time"

	"github.com/m04kA/SMC-MarketplaceBFF/internal/domain"
)

// ListingService интерфейс сервиса объявлений
type ListingService interface {
	GetByID(ctx context.Context, id string) (*domain.Listing, error)
}

// BookingService интерфейс сервиса бронирований
type BookingService interface {
	ListByListing(ctx context.Context, listingID string) ([]domain.Booking, error)
	CheckAvailability(ctx context.Context, query domain.AvailabilityQuery) (*domain.AvailabilityResult, error)
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
