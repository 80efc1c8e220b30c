package engine

import (
	"fmt"
	"strings"

	"github.com/m04kA/SMC-MarketplaceBFF/internal/domain"
)

// CheckAvailability решает, можно ли забронировать окно запроса
//
// Ошибка возвращается только для некорректного запроса (ErrInvalidInput, ErrInvalidTimeRange).
// Занятое окно и неактивное объявление - это ожидаемые исходы, они возвращаются как Available=false.
// Результат носит рекомендательный характер: окончательную проверку выполняет API при создании бронирования.
func CheckAvailability(
	listing *domain.Listing,
	query domain.AvailabilityQuery,
	existing []domain.Booking,
) (domain.AvailabilityResult, error) {
	if err := validateQuery(listing, query); err != nil {
		return domain.AvailabilityResult{}, err
	}

	candidate, err := candidateWindow(query)
	if err != nil {
		return domain.AvailabilityResult{}, err
	}

	if !listing.IsBookable() {
		return domain.AvailabilityResult{Available: false, Message: MsgListingNotBookable}, nil
	}

	for i := range existing {
		booking := &existing[i]

		// Отменённые бронирования и чужие объявления не блокируют окно
		if booking.IsCancelled() || booking.ListingID != query.ListingID {
			continue
		}

		if candidate.overlaps(bookingWindow(booking)) {
			return domain.AvailabilityResult{Available: false, Message: MsgWindowOverlaps}, nil
		}
	}

	return domain.AvailabilityResult{Available: true}, nil
}

// validateQuery проверяет входные данные запроса
func validateQuery(listing *domain.Listing, query domain.AvailabilityQuery) error {
	if strings.TrimSpace(query.ListingID) == "" {
		return fmt.Errorf("%w: listingId is required", ErrInvalidInput)
	}

	if query.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if listing == nil {
		return fmt.Errorf("%w: listing is required", ErrInvalidInput)
	}

	if listing.ID != query.ListingID {
		return fmt.Errorf("%w: listing %s does not match query listing %s", ErrInvalidInput, listing.ID, query.ListingID)
	}

	return nil
}
