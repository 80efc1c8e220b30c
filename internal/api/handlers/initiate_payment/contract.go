package initiate_payment

import (
	"context"

	"github.com/m04kA/SMC-MarketplaceBFF/internal/domain"
	"github.com/m04kA/SMC-MarketplaceBFF/internal/integrations/marketplace"
)

type PaymentService interface {
	Initiate(ctx context.Context, req marketplace.InitiatePaymentRequest) (*domain.Payment, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
