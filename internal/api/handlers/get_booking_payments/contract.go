package get_booking_payments

import (
	"context"

	"github.com/m04kA/SMC-MarketplaceBFF/internal/domain"
)

type PaymentService interface {
	ListByBooking(ctx context.Context, bookingID string) ([]domain.Payment, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
