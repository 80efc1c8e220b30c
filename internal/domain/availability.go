package domain

import (
	"time"

	"github.com/m04kA/SMC-MarketplaceBFF/pkg/types"
)

// AvailabilityQuery is a candidate window to test against the listing's bookings.
// A missing StartTime means the start of the day, a missing EndTime means its end.
type AvailabilityQuery struct {
	ListingID string            `json:"listingId"`
	Date      time.Time         `json:"date"`
	StartTime *types.TimeString `json:"startTime,omitempty"`
	EndTime   *types.TimeString `json:"endTime,omitempty"`
}

// AvailabilityResult is the outcome of an availability check
type AvailabilityResult struct {
	Available bool   `json:"available"`
	Message   string `json:"message,omitempty"`
}

// StatsAggregate holds dashboard figures derived from a booking collection
type StatsAggregate struct {
	TotalRevenue    float64 `json:"totalRevenue"`
	PendingRequests int     `json:"pendingRequests"`
	UpcomingEvents  int     `json:"upcomingEvents"`
}
