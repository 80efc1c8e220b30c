package get_vendor_profile

import (
	"context"

	"github.com/m04kA/SMC-MarketplaceBFF/internal/domain"
)

type VendorService interface {
	GetMe(ctx context.Context) (*domain.Vendor, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
