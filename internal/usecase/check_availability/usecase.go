package check_availability

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-MarketplaceBFF/internal/domain"
	"github.com/m04kA/SMC-MarketplaceBFF/internal/engine"
	bookingsService "github.com/m04kA/SMC-MarketplaceBFF/internal/service/bookings"
	listingsService "github.com/m04kA/SMC-MarketplaceBFF/internal/service/listings"
)

// UseCase use case проверки доступности окна для бронирования
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

// Execute выполняет проверку доступности
// Ответ носит рекомендательный характер и не резервирует окно
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CheckAvailability: listing=%s, date=%s, start=%v, end=%v",
		req.ListingID, req.Date.Format(domain.DateFormat), req.StartTime, req.EndTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CheckAvailability: validation failed: %v", err)
		return nil, err
	}

	if err := validateDate(req.Date, uc.timeProvider.Now()); err != nil {
		uc.logger.Warn("CheckAvailability: date validation failed: %v", err)
		return nil, err
	}

	query := domain.AvailabilityQuery{
		ListingID: req.ListingID,
		Date:      req.Date,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
	}

	// 2. Получаем объявление
	listing, err := uc.listings.GetByID(ctx, req.ListingID)
	if err != nil {
		if errors.Is(err, listingsService.ErrListingNotFound) {
			uc.logger.Warn("CheckAvailability: listing id=%s not found", req.ListingID)
			return nil, ErrListingNotFound
		}
		uc.logger.Error("CheckAvailability: failed to get listing id=%s: %v", req.ListingID, err)
		return nil, fmt.Errorf("%w: failed to get listing: %w", ErrInternal, err)
	}

	// 3. Неактивному объявлению бронирования не нужны, движок ответит "not bookable"
	var existing []domain.Booking
	if listing.IsBookable() {
		existing, err = uc.bookings.ListByListing(ctx, req.ListingID)
		if err != nil {
			// Бронирования объявления видны не всем, в этом случае решает API
			if errors.Is(err, bookingsService.ErrUnauthorized) || errors.Is(err, bookingsService.ErrAccessDenied) {
				uc.logger.Info("CheckAvailability: bookings of listing=%s are not visible, asking api", req.ListingID)
				return uc.checkOnServer(ctx, query)
			}
			uc.logger.Error("CheckAvailability: failed to get bookings of listing=%s: %v", req.ListingID, err)
			return nil, fmt.Errorf("%w: failed to get bookings: %w", ErrInternal, err)
		}
	}

	// 4. Локальная проверка
	result, err := engine.CheckAvailability(listing, query, existing)
	if err != nil {
		uc.logger.Warn("CheckAvailability: invalid query: %v", err)
		return nil, mapEngineError(err)
	}

	if !result.Available || !req.Confirm {
		uc.logger.Info("CheckAvailability: listing=%s available=%t (local)", req.ListingID, result.Available)
		return &Response{Available: result.Available, Message: result.Message, Source: SourceLocal}, nil
	}

	// 5. Свободное окно подтверждаем на стороне API, его ответ приоритетнее
	return uc.checkOnServer(ctx, query)
}

func (uc *UseCase) checkOnServer(ctx context.Context, query domain.AvailabilityQuery) (*Response, error) {
	result, err := uc.bookings.CheckAvailability(ctx, query)
	if err != nil {
		if errors.Is(err, bookingsService.ErrInvalidInput) {
			return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
		}
		uc.logger.Error("CheckAvailability: api check failed for listing=%s: %v", query.ListingID, err)
		return nil, fmt.Errorf("%w: api check failed: %w", ErrInternal, err)
	}

	uc.logger.Info("CheckAvailability: listing=%s available=%t (api)", query.ListingID, result.Available)
	return &Response{Available: result.Available, Message: result.Message, Source: SourceServer}, nil
}

func mapEngineError(err error) error {
	if errors.Is(err, engine.ErrInvalidTimeRange) {
		return fmt.Errorf("%w: %v", ErrInvalidTimeRange, err)
	}
	return fmt.Errorf("%w: %v", ErrInvalidInput, err)
}
