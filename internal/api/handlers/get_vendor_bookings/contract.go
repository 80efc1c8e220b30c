package get_vendor_bookings

import (
	"context"

	"github.com/m04kA/SMC-MarketplaceBFF/internal/domain"
)

type BookingService interface {
	ListVendor(ctx context.Context, filter domain.BookingsFilter) (*domain.Paginated[domain.Booking], error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
