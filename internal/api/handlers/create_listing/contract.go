package create_listing

import (
	"context"

	"github.com/m04kA/SMC-MarketplaceBFF/internal/domain"
	"github.com/m04kA/SMC-MarketplaceBFF/internal/integrations/marketplace"
)

type ListingService interface {
	Create(ctx context.Context, req marketplace.ListingRequest) (*domain.Listing, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
