package vendors

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/m04kA/SMC-MarketplaceBFF/internal/domain"
	"github.com/m04kA/SMC-MarketplaceBFF/internal/infra/cache"
	"github.com/m04kA/SMC-MarketplaceBFF/internal/integrations/marketplace"
	"github.com/m04kA/SMC-MarketplaceBFF/internal/session"
)

const (
	rootVendor  = "vendor"
	rootVendors = "vendors"
)

// Service сервис вендоров
type Service struct {
	api    VendorAPI
	cache  cache.Cache
	ttl    time.Duration
	logger Logger
}

// NewService создает новый экземпляр сервиса вендоров
func NewService(api VendorAPI, c cache.Cache, ttl time.Duration, logger Logger) *Service {
	return &Service{
		api:    api,
		cache:  c,
		ttl:    ttl,
		logger: logger,
	}
}

// List публичный список вендоров
func (s *Service) List(ctx context.Context, page, limit int) (*domain.Paginated[domain.Vendor], error) {
	if page < 1 {
		page = domain.DefaultPage
	}
	if limit < 1 || limit > domain.MaxLimit {
		limit = domain.DefaultLimit
	}

	key := cache.ScopedKey(cache.PublicScope, rootVendors, "page", strconv.Itoa(page), strconv.Itoa(limit))
	result, err := cache.Fetch(ctx, s.cache, key, s.ttl, s.logger, func(ctx context.Context) (*domain.Paginated[domain.Vendor], error) {
		return s.api.List(ctx, page, limit)
	})
	if err != nil {
		s.logger.Warn("List: failed to fetch vendors: %v", err)
		return nil, mapError("List", err)
	}

	return result, nil
}

// GetByID публичный профиль вендора
func (s *Service) GetByID(ctx context.Context, id string) (*domain.Vendor, error) {
	if strings.TrimSpace(id) == "" {
		return nil, fmt.Errorf("%w: vendor id is required", ErrInvalidInput)
	}

	vendor, err := cache.Fetch(ctx, s.cache, cache.ScopedKey(cache.PublicScope, rootVendors, "detail", id), s.ttl, s.logger,
		func(ctx context.Context) (*domain.Vendor, error) {
			return s.api.GetByID(ctx, id)
		})
	if err != nil {
		s.logger.Warn("GetByID: failed to fetch vendor id=%s: %v", id, err)
		return nil, mapError("GetByID", err)
	}

	return vendor, nil
}

// GetMe профиль вендора текущего пользователя
func (s *Service) GetMe(ctx context.Context) (*domain.Vendor, error) {
	vendor, err := cache.Fetch(ctx, s.cache, cache.ScopedKey(session.ScopeFromContext(ctx), rootVendor), s.ttl, s.logger, s.api.GetMe)
	if err != nil {
		s.logger.Warn("GetMe: failed to fetch vendor profile: %v", err)
		return nil, mapError("GetMe", err)
	}

	return vendor, nil
}

// Register регистрирует текущего пользователя как вендора
func (s *Service) Register(ctx context.Context, req marketplace.VendorRequest) (*domain.Vendor, error) {
	if req.BusinessName == nil || strings.TrimSpace(*req.BusinessName) == "" {
		return nil, fmt.Errorf("%w: businessName is required", ErrInvalidInput)
	}

	vendor, err := s.api.Register(ctx, req)
	if err != nil {
		s.logger.Warn("Register: api error: %v", err)
		return nil, mapError("Register", err)
	}

	s.invalidate(ctx, vendor.ID)
	s.logger.Info("Register: vendor id=%s registered", vendor.ID)
	return vendor, nil
}

// UpdateMe изменяет профиль вендора
func (s *Service) UpdateMe(ctx context.Context, req marketplace.VendorRequest) (*domain.Vendor, error) {
	vendor, err := s.api.UpdateMe(ctx, req)
	if err != nil {
		s.logger.Warn("UpdateMe: api error: %v", err)
		return nil, mapError("UpdateMe", err)
	}

	s.invalidate(ctx, vendor.ID)
	return vendor, nil
}

func (s *Service) invalidate(ctx context.Context, vendorID string) {
	cache.InvalidateAll(ctx, s.cache, s.logger,
		cache.ScopedKey(session.ScopeFromContext(ctx), rootVendor),
		cache.ScopedKey(cache.PublicScope, rootVendors, "detail", vendorID),
	)
}
