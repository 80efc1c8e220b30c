package get_vendor

import (
	"context"

	"github.com/m04kA/SMC-MarketplaceBFF/internal/domain"
)

type VendorService interface {
	GetByID(ctx context.Context, id string) (*domain.Vendor, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
