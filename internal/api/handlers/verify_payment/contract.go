package verify_payment

import (
	"context"

	"github.com/m04kA/SMC-MarketplaceBFF/internal/domain"
)

type PaymentService interface {
	Verify(ctx context.Context, reference string) (*domain.Payment, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
