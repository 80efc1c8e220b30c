package payments

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/m04kA/SMC-MarketplaceBFF/internal/domain"
	"github.com/m04kA/SMC-MarketplaceBFF/internal/infra/cache"
	"github.com/m04kA/SMC-MarketplaceBFF/internal/integrations/marketplace"
	"github.com/m04kA/SMC-MarketplaceBFF/internal/session"
)

const (
	rootPayments = "payments"
	rootBookings = "bookings"
)

// Service сервис платежей
// Инициация и подтверждение платежа меняют статус оплаты бронирования,
// поэтому сбрасывают и платежи, и бронирования
type Service struct {
	api         PaymentAPI
	cache       cache.Cache
	ttl         time.Duration
	callbackURL string
	logger      Logger
}

// NewService создает новый экземпляр сервиса платежей
// callbackURL используется, если клиент не передал свой
func NewService(api PaymentAPI, c cache.Cache, ttl time.Duration, callbackURL string, logger Logger) *Service {
	return &Service{
		api:         api,
		cache:       c,
		ttl:         ttl,
		callbackURL: callbackURL,
		logger:      logger,
	}
}

// Initiate инициирует оплату бронирования
func (s *Service) Initiate(ctx context.Context, req marketplace.InitiatePaymentRequest) (*domain.Payment, error) {
	if strings.TrimSpace(req.BookingID) == "" {
		return nil, fmt.Errorf("%w: bookingId is required", ErrInvalidInput)
	}
	if req.Type == "" {
		req.Type = domain.PaymentFull
	}
	if req.Type != domain.PaymentDeposit && req.Type != domain.PaymentFull {
		return nil, fmt.Errorf("%w: unknown payment type %q", ErrInvalidInput, req.Type)
	}
	if req.CallbackURL == "" {
		req.CallbackURL = s.callbackURL
	}
	if req.CallbackURL != "" {
		if u, err := url.Parse(req.CallbackURL); err != nil || u.Scheme == "" || u.Host == "" {
			return nil, fmt.Errorf("%w: callbackUrl must be an absolute url", ErrInvalidInput)
		}
	}

	payment, err := s.api.Initiate(ctx, req)
	if err != nil {
		s.logger.Warn("Initiate: api error for booking id=%s: %v", req.BookingID, err)
		return nil, mapError("Initiate", err)
	}

	s.invalidate(ctx)
	s.logger.Info("Initiate: payment reference=%s initiated for booking id=%s", payment.Reference, req.BookingID)
	return payment, nil
}

// Verify подтверждает платеж по референсу провайдера
func (s *Service) Verify(ctx context.Context, reference string) (*domain.Payment, error) {
	if strings.TrimSpace(reference) == "" {
		return nil, fmt.Errorf("%w: reference is required", ErrInvalidInput)
	}

	payment, err := s.api.Verify(ctx, reference)
	if err != nil {
		s.logger.Warn("Verify: api error for reference=%s: %v", reference, err)
		return nil, mapError("Verify", err)
	}

	s.invalidate(ctx)
	s.logger.Info("Verify: payment reference=%s status=%s", reference, payment.Status)
	return payment, nil
}

// ListByBooking платежи по бронированию
func (s *Service) ListByBooking(ctx context.Context, bookingID string) ([]domain.Payment, error) {
	if strings.TrimSpace(bookingID) == "" {
		return nil, fmt.Errorf("%w: booking id is required", ErrInvalidInput)
	}

	key := cache.ScopedKey(session.ScopeFromContext(ctx), rootPayments, "booking", bookingID)
	list, err := cache.Fetch(ctx, s.cache, key, s.ttl, s.logger, func(ctx context.Context) ([]domain.Payment, error) {
		return s.api.ListByBooking(ctx, bookingID)
	})
	if err != nil {
		s.logger.Warn("ListByBooking: failed to fetch payments of booking id=%s: %v", bookingID, err)
		return nil, mapError("ListByBooking", err)
	}

	return list, nil
}

func (s *Service) invalidate(ctx context.Context) {
	scope := session.ScopeFromContext(ctx)
	cache.InvalidateAll(ctx, s.cache, s.logger,
		cache.ScopedKey(scope, rootPayments),
		cache.ScopedKey(scope, rootBookings),
	)
}
