package marketplace

import (
	"context"
	"net/http"

	"github.com/m04kA/SMC-MarketplaceBFF/internal/domain"
)

const listingsPath = "/listings"

// ListingAPI методы ресурса объявлений
type ListingAPI struct {
	client Doer
}

// NewListingAPI создает новый экземпляр ListingAPI
func NewListingAPI(client Doer) *ListingAPI {
	return &ListingAPI{client: client}
}

// List GET /listings
func (a *ListingAPI) List(ctx context.Context, filter domain.ListingsFilter) (*domain.Paginated[domain.Listing], error) {
	var page domain.Paginated[domain.Listing]
	if err := a.client.Do(ctx, http.MethodGet, listingsPath, listingsQuery(filter), nil, &page); err != nil {
		return nil, err
	}
	if page.Data == nil {
		page.Data = []domain.Listing{}
	}
	return &page, nil
}

// GetByID GET /listings/:id
func (a *ListingAPI) GetByID(ctx context.Context, id string) (*domain.Listing, error) {
	var listing domain.Listing
	if err := a.client.Do(ctx, http.MethodGet, listingsPath+segment(id), nil, nil, &listing); err != nil {
		return nil, err
	}
	return &listing, nil
}

// ListMine GET /listings/vendor - объявления текущего вендора
func (a *ListingAPI) ListMine(ctx context.Context) ([]domain.Listing, error) {
	var listings []domain.Listing
	if err := a.client.Do(ctx, http.MethodGet, listingsPath+"/vendor", nil, nil, &listings); err != nil {
		return nil, err
	}
	return listings, nil
}

// Create POST /listings
func (a *ListingAPI) Create(ctx context.Context, req ListingRequest) (*domain.Listing, error) {
	var listing domain.Listing
	if err := a.client.Do(ctx, http.MethodPost, listingsPath, nil, req, &listing); err != nil {
		return nil, err
	}
	return &listing, nil
}

// Update PATCH /listings/:id
func (a *ListingAPI) Update(ctx context.Context, id string, req ListingRequest) (*domain.Listing, error) {
	var listing domain.Listing
	if err := a.client.Do(ctx, http.MethodPatch, listingsPath+segment(id), nil, req, &listing); err != nil {
		return nil, err
	}
	return &listing, nil
}

// Delete DELETE /listings/:id
func (a *ListingAPI) Delete(ctx context.Context, id string) error {
	return a.client.Do(ctx, http.MethodDelete, listingsPath+segment(id), nil, nil, nil)
}
