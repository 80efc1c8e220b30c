package bookings

import (
	"context"

	"github.com/m04kA/SMC-MarketplaceBFF/internal/domain"
	"github.com/m04kA/SMC-MarketplaceBFF/internal/integrations/marketplace"
)

// BookingAPI методы API бронирований
type BookingAPI interface {
	CheckAvailability(ctx context.Context, query domain.AvailabilityQuery) (*domain.AvailabilityResult, error)
	Create(ctx context.Context, req marketplace.CreateBookingRequest) (*domain.Booking, error)
	List(ctx context.Context, filter domain.BookingsFilter) (*domain.Paginated[domain.Booking], error)
	ListAdmin(ctx context.Context, filter domain.BookingsFilter) (*domain.Paginated[domain.Booking], error)
	ListVendor(ctx context.Context, filter domain.BookingsFilter) (*domain.Paginated[domain.Booking], error)
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	ListByListing(ctx context.Context, listingID string) ([]domain.Booking, error)
	Update(ctx context.Context, id string, req marketplace.UpdateBookingRequest) (*domain.Booking, error)
	Cancel(ctx context.Context, id string, req marketplace.CancelBookingRequest) (*domain.Booking, error)
	Delete(ctx context.Context, id string) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
