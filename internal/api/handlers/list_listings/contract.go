package list_listings

import (
	"context"

	"github.com/m04kA/SMC-MarketplaceBFF/internal/domain"
)

type ListingService interface {
	List(ctx context.Context, filter domain.ListingsFilter) (*domain.Paginated[domain.Listing], error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
