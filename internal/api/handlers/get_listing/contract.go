package get_listing

import (
	"context"

	"github.com/m04kA/SMC-MarketplaceBFF/internal/domain"
)

type ListingService interface {
	GetByID(ctx context.Context, id string) (*domain.Listing, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
