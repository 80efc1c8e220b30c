package bookings

import (
	"strconv"

	"github.com/m04kA/SMC-MarketplaceBFF/internal/domain"
	"github.com/m04kA/SMC-MarketplaceBFF/internal/infra/cache"
)

const (
	rootBookings = "bookings"
	rootListings = "listings"
)

// Ключи запросов бронирований
func listKey(scope, kind string, filter domain.BookingsFilter) cache.Key {
	status := "all"
	if filter.Status != nil {
		status = string(*filter.Status)
	}
	return cache.ScopedKey(scope, rootBookings, kind, strconv.Itoa(filter.Page), strconv.Itoa(filter.Limit), status)
}

func detailKey(scope, id string) cache.Key {
	return cache.ScopedKey(scope, rootBookings, "detail", id)
}
