package listings

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

const rootListings = "listings"

// Service сервис объявлений
// Каталог и карточки объявлений кэшируются в публичной области, объявления вендора - в области пользователя
type Service struct {
	api    ListingAPI
	cache  cache.Cache
	ttl    time.Duration
	logger Logger
}

// NewService создает новый экземпляр сервиса объявлений
func NewService(api ListingAPI, c cache.Cache, ttl time.Duration, logger Logger) *Service {
	return &Service{
		api:    api,
		cache:  c,
		ttl:    ttl,
		logger: logger,
	}
}

// List каталог объявлений
func (s *Service) List(ctx context.Context, filter domain.ListingsFilter) (*domain.Paginated[domain.Listing], error) {
	filter = normalizeFilter(filter)
	listingType := ""
	if filter.Type != nil {
		listingType = string(*filter.Type)
	}

	key := cache.ScopedKey(cache.PublicScope, rootListings, "page",
		strconv.Itoa(filter.Page), strconv.Itoa(filter.Limit), listingType, filter.City, filter.Search)

	page, err := cache.Fetch(ctx, s.cache, key, s.ttl, s.logger, func(ctx context.Context) (*domain.Paginated[domain.Listing], error) {
		return s.api.List(ctx, filter)
	})
	if err != nil {
		s.logger.Warn("List: failed to fetch listings page=%d: %v", filter.Page, err)
		return nil, mapError("List", err)
	}

	return page, nil
}

// GetByID карточка объявления
func (s *Service) GetByID(ctx context.Context, id string) (*domain.Listing, error) {
	if strings.TrimSpace(id) == "" {
		return nil, fmt.Errorf("%w: listing id is required", ErrInvalidInput)
	}

	listing, err := cache.Fetch(ctx, s.cache, cache.ScopedKey(cache.PublicScope, rootListings, "detail", id), s.ttl, s.logger,
		func(ctx context.Context) (*domain.Listing, error) {
			return s.api.GetByID(ctx, id)
		})
	if err != nil {
		s.logger.Warn("GetByID: failed to fetch listing id=%s: %v", id, err)
		return nil, mapError("GetByID", err)
	}

	return listing, nil
}

// ListMine объявления текущего вендора
func (s *Service) ListMine(ctx context.Context) ([]domain.Listing, error) {
	key := cache.ScopedKey(session.ScopeFromContext(ctx), rootListings, "mine")

	listings, err := cache.Fetch(ctx, s.cache, key, s.ttl, s.logger, s.api.ListMine)
	if err != nil {
		s.logger.Warn("ListMine: failed to fetch vendor listings: %v", err)
		return nil, mapError("ListMine", err)
	}

	return listings, nil
}

// Create создает объявление
func (s *Service) Create(ctx context.Context, req marketplace.ListingRequest) (*domain.Listing, error) {
	if req.Title == nil || strings.TrimSpace(*req.Title) == "" {
		return nil, fmt.Errorf("%w: title is required", ErrInvalidInput)
	}
	if req.BasePrice != nil && *req.BasePrice < 0 {
		return nil, fmt.Errorf("%w: basePrice must not be negative", ErrInvalidInput)
	}

	listing, err := s.api.Create(ctx, req)
	if err != nil {
		s.logger.Warn("Create: api error: %v", err)
		return nil, mapError("Create", err)
	}

	s.invalidate(ctx)
	s.logger.Info("Create: listing id=%s created", listing.ID)
	return listing, nil
}

// Update изменяет объявление
func (s *Service) Update(ctx context.Context, id string, req marketplace.ListingRequest) (*domain.Listing, error) {
	if req.BasePrice != nil && *req.BasePrice < 0 {
		return nil, fmt.Errorf("%w: basePrice must not be negative", ErrInvalidInput)
	}

	listing, err := s.api.Update(ctx, id, req)
	if err != nil {
		s.logger.Warn("Update: api error for listing id=%s: %v", id, err)
		return nil, mapError("Update", err)
	}

	s.invalidate(ctx)
	return listing, nil
}

// Delete удаляет объявление
func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.api.Delete(ctx, id); err != nil {
		s.logger.Warn("Delete: api error for listing id=%s: %v", id, err)
		return mapError("Delete", err)
	}

	s.invalidate(ctx)
	return nil
}

func (s *Service) invalidate(ctx context.Context) {
	cache.InvalidateAll(ctx, s.cache, s.logger,
		cache.ScopedKey(session.ScopeFromContext(ctx), rootListings),
		cache.ScopedKey(cache.PublicScope, rootListings),
	)
}

func normalizeFilter(filter domain.ListingsFilter) domain.ListingsFilter {
	if filter.Page < 1 {
		filter.Page = domain.DefaultPage
	}
	if filter.Limit < 1 {
		filter.Limit = domain.DefaultLimit
	}
	if filter.Limit > domain.MaxLimit {
		filter.Limit = domain.MaxLimit
	}
	filter.City = strings.TrimSpace(filter.City)
	filter.Search = strings.TrimSpace(filter.Search)
	return filter
}
