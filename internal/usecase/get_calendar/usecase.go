package get_calendar

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/m04kA/SMC-MarketplaceBFF/internal/domain"
	"github.com/m04kA/SMC-MarketplaceBFF/internal/engine"
	bookingsService "github.com/m04kA/SMC-MarketplaceBFF/internal/service/bookings"
)

const maxPages = 50

// UseCase use case календаря вендора
type UseCase struct {
	bookings BookingService
	logger   Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(bookings BookingService, logger Logger) *UseCase {
	return &UseCase{
		bookings: bookings,
		logger:   logger,
	}
}

// Execute строит записи календаря из бронирований вендора
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetCalendar: month=%v, status=%v", req.Month, req.Status)

	// 1. Валидация
	monthStart, err := parseMonth(req.Month)
	if err != nil {
		uc.logger.Warn("GetCalendar: validation failed: %v", err)
		return nil, err
	}
	if err := validateStatus(req.Status); err != nil {
		uc.logger.Warn("GetCalendar: validation failed: %v", err)
		return nil, err
	}

	// 2. Загружаем бронирования вендора
	bookings, err := uc.collect(ctx, req.Status)
	if err != nil {
		return nil, err
	}

	// 3. Фильтр по месяцу
	if monthStart != nil {
		bookings = inMonth(bookings, *monthStart)
	}

	// 4. Сортируем по началу события
	sort.SliceStable(bookings, func(i, j int) bool {
		return bookings[i].StartsAt().Before(bookings[j].StartsAt())
	})

	events := engine.MapBookingsToCalendar(bookings)

	uc.logger.Info("GetCalendar: %d events", len(events))
	return &Response{Events: events}, nil
}

// collect обходит страницы до пустой или неполной страницы
// Размер страницы берется по первой странице: API может урезать limit
func (uc *UseCase) collect(ctx context.Context, status *domain.BookingStatus) ([]domain.Booking, error) {
	all := make([]domain.Booking, 0, domain.MaxLimit)
	pageSize := 0

	for page := 1; page <= maxPages+1; page++ {
		result, err := uc.bookings.ListVendor(ctx, domain.BookingsFilter{Page: page, Limit: domain.MaxLimit, Status: status})
		if err != nil {
			if errors.Is(err, bookingsService.ErrAccessDenied) || errors.Is(err, bookingsService.ErrUnauthorized) {
				uc.logger.Warn("GetCalendar: access denied: %v", err)
				return nil, ErrAccessDenied
			}
			uc.logger.Error("GetCalendar: failed to load page %d: %v", page, err)
			return nil, fmt.Errorf("%w: failed to load bookings page %d: %w", ErrInternal, page, err)
		}

		if len(result.Data) == 0 {
			return all, nil
		}
		if page > maxPages {
			break
		}

		all = append(all, result.Data...)
		if page == 1 {
			pageSize = len(result.Data)
		}
		if len(result.Data) < pageSize {
			return all, nil
		}
	}

	// Календарь показывает первые maxPages страниц
	uc.logger.Warn("GetCalendar: bookings truncated at %d pages", maxPages)
	return all, nil
}

func inMonth(bookings []domain.Booking, monthStart time.Time) []domain.Booking {
	filtered := make([]domain.Booking, 0, len(bookings))
	for _, b := range bookings {
		day := b.Day()
		if day.Year() == monthStart.Year() && day.Month() == monthStart.Month() {
			filtered = append(filtered, b)
		}
	}
	return filtered
}
