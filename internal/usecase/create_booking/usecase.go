package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-MarketplaceBFF/internal/domain"
	"github.com/m04kA/SMC-MarketplaceBFF/internal/engine"
	"github.com/m04kA/SMC-MarketplaceBFF/internal/integrations/marketplace"
	bookingsService "github.com/m04kA/SMC-MarketplaceBFF/internal/service/bookings"
	listingsService "github.com/m04kA/SMC-MarketplaceBFF/internal/service/listings"
)

// UseCase use case для создания бронирования
type UseCase struct {
	listings     ListingService
	bookings     BookingService
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(listings ListingService, bookings BookingService, logger Logger) *UseCase {
	return &UseCase{
		listings:     listings,
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

// Execute выполняет use case создания бронирования
// Локальная проверка доступности только отсекает заведомо занятое время,
// окончательное решение принимает API
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: listing=%s, date=%s, start=%v, end=%v, guests=%d",
		req.ListingID, req.Date.Format(domain.DateFormat), req.StartTime, req.EndTime, req.GuestCount)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	if err := validateDate(req.Date, uc.timeProvider.Now()); err != nil {
		uc.logger.Warn("CreateBooking: date validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем объявление
	listing, err := uc.listings.GetByID(ctx, req.ListingID)
	if err != nil {
		if errors.Is(err, listingsService.ErrListingNotFound) {
			uc.logger.Warn("CreateBooking: listing id=%s not found", req.ListingID)
			return nil, ErrListingNotFound
		}
		uc.logger.Error("CreateBooking: failed to get listing id=%s: %v", req.ListingID, err)
		return nil, fmt.Errorf("%w: failed to get listing: %w", ErrInternal, err)
	}

	// 3. Локальная проверка пересечений
	if err := uc.precheck(ctx, listing, req); err != nil {
		return nil, err
	}

	// 4. Создаем бронирование
	booking, err := uc.bookings.Create(ctx, marketplace.CreateBookingRequest{
		ListingID:   req.ListingID,
		BookingDate: req.Date,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		GuestCount:  req.GuestCount,
		Notes:       req.Notes,
	})
	if err != nil {
		return nil, uc.mapCreateError(req.ListingID, err)
	}

	uc.logger.Info("CreateBooking: booking id=%s created for listing=%s", booking.ID, req.ListingID)
	return &Response{Booking: booking}, nil
}

// precheck сверяет окно с известными бронированиями объявления
// Если бронирования объявления не видны пользователю, проверку выполнит API при создании
func (uc *UseCase) precheck(ctx context.Context, listing *domain.Listing, req *Request) error {
	query := domain.AvailabilityQuery{
		ListingID: req.ListingID,
		Date:      req.Date,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
	}

	var existing []domain.Booking
	if listing.IsBookable() {
		var err error
		existing, err = uc.bookings.ListByListing(ctx, req.ListingID)
		switch {
		case err == nil:
		case errors.Is(err, bookingsService.ErrUnauthorized), errors.Is(err, bookingsService.ErrAccessDenied):
			uc.logger.Info("CreateBooking: bookings of listing=%s are not visible, skipping local check", req.ListingID)
			existing = nil
		default:
			uc.logger.Error("CreateBooking: failed to get bookings of listing=%s: %v", req.ListingID, err)
			return fmt.Errorf("%w: failed to get bookings: %w", ErrInternal, err)
		}
	}

	result, err := engine.CheckAvailability(listing, query, existing)
	if err != nil {
		uc.logger.Warn("CreateBooking: invalid window: %v", err)
		if errors.Is(err, engine.ErrInvalidTimeRange) {
			return fmt.Errorf("%w: %v", ErrInvalidTimeRange, err)
		}
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if !result.Available {
		if !listing.IsBookable() {
			uc.logger.Warn("CreateBooking: listing id=%s is %s", listing.ID, listing.Status)
			return ErrListingNotBookable
		}
		uc.logger.Warn("CreateBooking: slot on %s is taken for listing=%s", req.Date.Format(domain.DateFormat), req.ListingID)
		return ErrSlotNotAvailable
	}

	return nil
}

func (uc *UseCase) mapCreateError(listingID string, err error) error {
	switch {
	case errors.Is(err, bookingsService.ErrConflict):
		uc.logger.Warn("CreateBooking: api reported conflict for listing=%s: %v", listingID, err)
		return fmt.Errorf("%w: %w", ErrSlotNotAvailable, err)
	case errors.Is(err, bookingsService.ErrUnauthorized):
		return ErrUnauthorized
	case errors.Is(err, bookingsService.ErrInvalidInput):
		uc.logger.Warn("CreateBooking: api rejected booking for listing=%s: %v", listingID, err)
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	default:
		uc.logger.Error("CreateBooking: failed to create booking for listing=%s: %v", listingID, err)
		return fmt.Errorf("%w: failed to create booking: %w", ErrInternal, err)
	}
}
