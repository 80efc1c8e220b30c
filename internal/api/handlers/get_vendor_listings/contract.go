package get_vendor_listings

import (
	"context"

	"github.com/m04kA/SMC-MarketplaceBFF/internal/domain"
)

type ListingService interface {
	ListMine(ctx context.Context) ([]domain.Listing, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
