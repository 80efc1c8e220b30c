package get_dashboard_stats

import (
	"time"

	"github.com/m04kA/SMC-MarketplaceBFF/internal/domain"
)

// Scope чьи бронирования агрегируются
type Scope string

const (
	ScopeVendor Scope = "vendor"
	ScopeAdmin  Scope = "admin"
)

// Request модель запроса статистики
type Request struct {
	Scope Scope
}

// Response модель ответа
type Response struct {
	Stats         domain.StatsAggregate
	BookingsCount int
	AsOf          time.Time
}
