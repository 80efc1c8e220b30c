package get_calendar

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-MarketplaceBFF/internal/domain"
)

// parseMonth разбирает месяц в формате YYYY-MM
func parseMonth(month *string) (*time.Time, error) {
	if month == nil || *month == "" {
		return nil, nil
	}

	start, err := time.Parse(domain.MonthFormat, *month)
	if err != nil {
		return nil, fmt.Errorf("%w: %q, expected YYYY-MM", ErrInvalidMonth, *month)
	}

	return &start, nil
}

// validateStatus проверяет фильтр по статусу
func validateStatus(status *domain.BookingStatus) error {
	if status != nil && !status.IsValid() {
		return fmt.Errorf("%w: unknown status %q", ErrInvalidStatus, *status)
	}
	return nil
}
