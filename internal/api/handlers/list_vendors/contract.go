package list_vendors

import (
	"context"

	"github.com/m04kA/SMC-MarketplaceBFF/internal/domain"
)

type VendorService interface {
	List(ctx context.Context, page, limit int) (*domain.Paginated[domain.Vendor], error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
