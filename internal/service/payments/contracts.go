package payments

import (
	"context"

	"github.com/m04kA/SMC-MarketplaceBFF/internal/domain"
	"github.com/m04kA/SMC-MarketplaceBFF/internal/integrations/marketplace"
)

// PaymentAPI методы API платежей
type PaymentAPI interface {
	Initiate(ctx context.Context, req marketplace.InitiatePaymentRequest) (*domain.Payment, error)
	Verify(ctx context.Context, reference string) (*domain.Payment, error)
	ListByBooking(ctx context.Context, bookingID string) ([]domain.Payment, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
