package vendors

import (
	"context"

	"github.com/m04kA/SMC-MarketplaceBFF/internal/domain"
	"github.com/m04kA/SMC-MarketplaceBFF/internal/integrations/marketplace"
)

// VendorAPI методы API вендоров
type VendorAPI interface {
	List(ctx context.Context, page, limit int) (*domain.Paginated[domain.Vendor], error)
	GetByID(ctx context.Context, id string) (*domain.Vendor, error)
	GetMe(ctx context.Context) (*domain.Vendor, error)
	Register(ctx context.Context, req marketplace.VendorRequest) (*domain.Vendor, error)
	UpdateMe(ctx context.Context, req marketplace.VendorRequest) (*domain.Vendor, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
