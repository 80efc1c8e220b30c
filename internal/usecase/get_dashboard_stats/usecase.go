package get_dashboard_stats

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-MarketplaceBFF/internal/domain"
	"github.com/m04kA/SMC-MarketplaceBFF/internal/engine"
	bookingsService "github.com/m04kA/SMC-MarketplaceBFF/internal/service/bookings"
)

// maxPages ограничивает обход коллекции: 50 страниц по MaxLimit
const maxPages = 50

type listFunc func(ctx context.Context, filter domain.BookingsFilter) (*domain.Paginated[domain.Booking], error)

// UseCase use case для статистики дашборда
type UseCase struct {
	bookings     BookingService
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(bookings BookingService, logger Logger) *UseCase {
	return &UseCase{
		bookings:     bookings,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// WithTimeProvider подменяет источник времени
func (uc *UseCase) WithTimeProvider(tp TimeProvider) *UseCase {
	uc.timeProvider = tp
	return uc
}

// Execute собирает все бронирования области и считает по ним показатели
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetDashboardStats: scope=%s", req.Scope)

	// 1. Выбираем источник бронирований
	var list listFunc
	switch req.Scope {
	case ScopeVendor:
		list = uc.bookings.ListVendor
	case ScopeAdmin:
		list = uc.bookings.ListAdmin
	default:
		uc.logger.Warn("GetDashboardStats: unknown scope %q", req.Scope)
		return nil, fmt.Errorf("%w: %q", ErrInvalidScope, req.Scope)
	}

	// 2. Загружаем все страницы
	bookings, err := uc.collect(ctx, list)
	if err != nil {
		return nil, err
	}

	// 3. Считаем показатели на текущий момент
	asOf := uc.timeProvider.Now()
	stats := engine.DeriveStats(bookings, asOf)

	uc.logger.Info("GetDashboardStats: scope=%s bookings=%d revenue=%.2f pending=%d upcoming=%d",
		req.Scope, len(bookings), stats.TotalRevenue, stats.PendingRequests, stats.UpcomingEvents)

	return &Response{Stats: stats, BookingsCount: len(bookings), AsOf: asOf}, nil
}

// collect обходит страницы до пустой или неполной страницы
// Размер страницы берется по первой странице: API может урезать limit
func (uc *UseCase) collect(ctx context.Context, list listFunc) ([]domain.Booking, error) {
	all := make([]domain.Booking, 0, domain.MaxLimit)
	pageSize := 0

	// Страница maxPages+1 запрашивается только чтобы убедиться, что коллекция закончилась
	for page := 1; page <= maxPages+1; page++ {
		result, err := list(ctx, domain.BookingsFilter{Page: page, Limit: domain.MaxLimit})
		if err != nil {
			if errors.Is(err, bookingsService.ErrAccessDenied) || errors.Is(err, bookingsService.ErrUnauthorized) {
				uc.logger.Warn("GetDashboardStats: access denied: %v", err)
				return nil, ErrAccessDenied
			}
			uc.logger.Error("GetDashboardStats: failed to load page %d: %v", page, err)
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

	uc.logger.Error("GetDashboardStats: more than %d pages of bookings", maxPages)
	return nil, fmt.Errorf("%w: more than %d pages of %d bookings", ErrTooManyBookings, maxPages, pageSize)
}
