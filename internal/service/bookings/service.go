package bookings

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-MarketplaceBFF/internal/domain"
	"github.com/m04kA/SMC-MarketplaceBFF/internal/infra/cache"
	"github.com/m04kA/SMC-MarketplaceBFF/internal/integrations/marketplace"
	"github.com/m04kA/SMC-MarketplaceBFF/internal/session"
)

// Service сервис бронирований: кэширует запросы и инвалидирует их после изменений
type Service struct {
	api    BookingAPI
	cache  cache.Cache
	ttl    time.Duration
	logger Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(api BookingAPI, c cache.Cache, ttl time.Duration, logger Logger) *Service {
	return &Service{
		api:    api,
		cache:  c,
		ttl:    ttl,
		logger: logger,
	}
}

// CheckAvailability проверка доступности на стороне API (без кэша)
func (s *Service) CheckAvailability(ctx context.Context, query domain.AvailabilityQuery) (*domain.AvailabilityResult, error) {
	result, err := s.api.CheckAvailability(ctx, query)
	if err != nil {
		s.logger.Warn("CheckAvailability: api error for listing=%s: %v", query.ListingID, err)
		return nil, mapError("CheckAvailability", err)
	}
	return result, nil
}

// Create создает бронирование
// Инвалидирует все запросы бронирований и детали объявления
func (s *Service) Create(ctx context.Context, req marketplace.CreateBookingRequest) (*domain.Booking, error) {
	if strings.TrimSpace(req.ListingID) == "" || req.BookingDate.IsZero() {
		return nil, fmt.Errorf("%w: listingId and bookingDate are required", ErrInvalidInput)
	}

	booking, err := s.api.Create(ctx, req)
	if err != nil {
		s.logger.Warn("Create: api error for listing=%s: %v", req.ListingID, err)
		return nil, mapError("Create", err)
	}

	scope := session.ScopeFromContext(ctx)
	cache.InvalidateAll(ctx, s.cache, s.logger,
		cache.ScopedKey(scope, rootBookings),
		cache.ScopedKey(scope, rootListings, "detail", req.ListingID),
		cache.ScopedKey(cache.PublicScope, rootListings, "detail", req.ListingID),
	)

	s.logger.Info("Create: booking id=%s created for listing=%s", booking.ID, req.ListingID)
	return booking, nil
}

// List бронирования текущего пользователя
func (s *Service) List(ctx context.Context, filter domain.BookingsFilter) (*domain.Paginated[domain.Booking], error) {
	return s.list(ctx, "mine", filter, s.api.List)
}

// ListVendor бронирования объявлений текущего вендора
func (s *Service) ListVendor(ctx context.Context, filter domain.BookingsFilter) (*domain.Paginated[domain.Booking], error) {
	return s.list(ctx, "vendor", filter, s.api.ListVendor)
}

// ListAdmin все бронирования (для администратора)
func (s *Service) ListAdmin(ctx context.Context, filter domain.BookingsFilter) (*domain.Paginated[domain.Booking], error) {
	return s.list(ctx, "admin", filter, s.api.ListAdmin)
}

func (s *Service) list(
	ctx context.Context,
	kind string,
	filter domain.BookingsFilter,
	load func(ctx context.Context, filter domain.BookingsFilter) (*domain.Paginated[domain.Booking], error),
) (*domain.Paginated[domain.Booking], error) {
	filter = normalizeFilter(filter)
	if filter.Status != nil && !filter.Status.IsValid() {
		return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidInput, *filter.Status)
	}

	key := listKey(session.ScopeFromContext(ctx), kind, filter)
	page, err := cache.Fetch(ctx, s.cache, key, s.ttl, s.logger, func(ctx context.Context) (*domain.Paginated[domain.Booking], error) {
		return load(ctx, filter)
	})
	if err != nil {
		s.logger.Warn("List: failed to fetch %s bookings page=%d: %v", kind, filter.Page, err)
		return nil, mapError("List", err)
	}

	return page, nil
}

// GetByID получает бронирование по ID
func (s *Service) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	if strings.TrimSpace(id) == "" {
		return nil, fmt.Errorf("%w: booking id is required", ErrInvalidInput)
	}

	booking, err := cache.Fetch(ctx, s.cache, detailKey(session.ScopeFromContext(ctx), id), s.ttl, s.logger,
		func(ctx context.Context) (*domain.Booking, error) {
			return s.api.GetByID(ctx, id)
		})
	if err != nil {
		s.logger.Warn("GetByID: failed to fetch booking id=%s: %v", id, err)
		return nil, mapError("GetByID", err)
	}

	return booking, nil
}

// ListByListing получает бронирования объявления
// Не кэшируется: бронирования объявления меняются из чужих сессий, а результат идет в проверку доступности
func (s *Service) ListByListing(ctx context.Context, listingID string) ([]domain.Booking, error) {
	if strings.TrimSpace(listingID) == "" {
		return nil, fmt.Errorf("%w: listing id is required", ErrInvalidInput)
	}

	bookings, err := s.api.ListByListing(ctx, listingID)
	if err != nil {
		s.logger.Warn("ListByListing: failed to fetch bookings of listing=%s: %v", listingID, err)
		return nil, mapError("ListByListing", err)
	}

	return bookings, nil
}

// Update изменяет бронирование
func (s *Service) Update(ctx context.Context, id string, req marketplace.UpdateBookingRequest) (*domain.Booking, error) {
	booking, err := s.api.Update(ctx, id, req)
	if err != nil {
		s.logger.Warn("Update: api error for booking id=%s: %v", id, err)
		return nil, mapError("Update", err)
	}

	s.invalidate(ctx, booking)
	return booking, nil
}

// Cancel отменяет бронирование
// Уже отмененное или завершенное бронирование не отправляется в API
func (s *Service) Cancel(ctx context.Context, id string, reason *string) (*domain.Booking, error) {
	current, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !current.CanBeCancelled() {
		s.logger.Warn("Cancel: booking id=%s has status %s", id, current.Status)
		return nil, fmt.Errorf("%w: booking is %s", ErrCannotCancel, strings.ToLower(string(current.Status)))
	}

	booking, err := s.api.Cancel(ctx, id, marketplace.CancelBookingRequest{Reason: reason})
	if err != nil {
		s.logger.Warn("Cancel: api error for booking id=%s: %v", id, err)
		return nil, mapError("Cancel", err)
	}

	s.invalidate(ctx, current)
	s.logger.Info("Cancel: booking id=%s cancelled", id)
	return booking, nil
}

// Delete удаляет бронирование
// Бронирование загружается заранее, чтобы сбросить кэш его объявления и клиента
func (s *Service) Delete(ctx context.Context, id string) error {
	current, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.api.Delete(ctx, id); err != nil {
		s.logger.Warn("Delete: api error for booking id=%s: %v", id, err)
		return mapError("Delete", err)
	}

	s.invalidate(ctx, current)
	s.logger.Info("Delete: booking id=%s deleted", id)
	return nil
}

// invalidate сбрасывает запросы, которые затрагивает изменение бронирования:
// бронирования текущего пользователя и клиента, детали объявления в своей и публичной области
func (s *Service) invalidate(ctx context.Context, booking *domain.Booking) {
	scope := session.ScopeFromContext(ctx)
	prefixes := []cache.Key{cache.ScopedKey(scope, rootBookings)}
	if booking.CustomerID != "" && booking.CustomerID != scope {
		prefixes = append(prefixes, cache.ScopedKey(booking.CustomerID, rootBookings))
	}
	if booking.ListingID != "" {
		prefixes = append(prefixes,
			cache.ScopedKey(scope, rootListings, "detail", booking.ListingID),
			cache.ScopedKey(cache.PublicScope, rootListings, "detail", booking.ListingID),
		)
	}
	cache.InvalidateAll(ctx, s.cache, s.logger, prefixes...)
}

func normalizeFilter(filter domain.BookingsFilter) domain.BookingsFilter {
	if filter.Page < 1 {
		filter.Page = domain.DefaultPage
	}
	if filter.Limit < 1 {
		filter.Limit = domain.DefaultLimit
	}
	if filter.Limit > domain.MaxLimit {
		filter.Limit = domain.MaxLimit
	}
	return filter
}
