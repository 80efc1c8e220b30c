package get_dashboard_stats

import (
	"time"

	getDashboardStats "github.com/m04kA/SMC-MarketplaceBFF/internal/usecase/get_dashboard_stats"
)

// StatsResponse HTTP response model
type StatsResponse struct {
	TotalRevenue    float64 `json:"totalRevenue"`
	PendingRequests int     `json:"pendingRequests"`
	UpcomingEvents  int     `json:"upcomingEvents"`
	TotalBookings   int     `json:"totalBookings"`
	AsOf            string  `json:"asOf"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getDashboardStats.Response) *StatsResponse {
	return &StatsResponse{
		TotalRevenue:    resp.Stats.TotalRevenue,
		PendingRequests: resp.Stats.PendingRequests,
		UpcomingEvents:  resp.Stats.UpcomingEvents,
		TotalBookings:   resp.BookingsCount,
		AsOf:            resp.AsOf.UTC().Format(time.RFC3339),
	}
}
