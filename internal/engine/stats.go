package engine

import (
	"math"
	"time"

	"github.com/m04kA/SMC-MarketplaceBFF/internal/domain"
)

// DeriveStats считает показатели дашборда по коллекции бронирований
//
// asOf - текущий момент, передаётся явно; функция не читает системные часы.
// Выручка суммируется в копейках (целых минорных единицах), поэтому результат не зависит от порядка бронирований.
func DeriveStats(bookings []domain.Booking, asOf time.Time) domain.StatsAggregate {
	horizon := asOf.Add(domain.UpcomingWindow)

	var (
		revenueMinor int64
		stats        domain.StatsAggregate
	)

	for i := range bookings {
		booking := &bookings[i]

		if booking.CountsTowardRevenue() {
			revenueMinor += toMinorUnits(booking.TotalAmount)
		}

		if booking.Status == domain.StatusPending {
			stats.PendingRequests++
		}

		// Отменённые бронирования тоже попадают в "ближайшие события"
		start := booking.StartsAt()
		if start.After(asOf) && start.Before(horizon) {
			stats.UpcomingEvents++
		}
	}

	stats.TotalRevenue = float64(revenueMinor) / 100
	return stats
}

func toMinorUnits(amount float64) int64 {
	return int64(math.Round(amount * 100))
}
