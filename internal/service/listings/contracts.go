package listings

import (
	"context"

	"github.com/m04kA/SMC-MarketplaceBFF/internal/domain"
	"github.com/m04kA/SMC-MarketplaceBFF/internal/integrations/marketplace"
)

// ListingAPI методы API объявлений
type ListingAPI interface {
	List(ctx context.Context, filter domain.ListingsFilter) (*domain.Paginated[domain.Listing], error)
	GetByID(ctx context.Context, id string) (*domain.Listing, error)
	ListMine(ctx context.Context) ([]domain.Listing, error)
	Create(ctx context.Context, req marketplace.ListingRequest) (*domain.Listing, error)
	Update(ctx context.Context, id string, req marketplace.ListingRequest) (*domain.Listing, error)
	Delete(ctx context.Context, id string) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
