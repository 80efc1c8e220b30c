package register_vendor

import (
	"context"

	"github.com/m04kA/SMC-MarketplaceBFF/internal/domain"
	"github.com/m04kA/SMC-MarketplaceBFF/internal/integrations/marketplace"
)

type VendorService interface {
	Register(ctx context.Context, req marketplace.VendorRequest) (*domain.Vendor, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
