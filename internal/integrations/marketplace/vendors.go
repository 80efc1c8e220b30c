package marketplace

import (
	"context"
	"net/http"

	"github.com/m04kA/SMC-MarketplaceBFF/internal/domain"
)

const vendorsPath = "/vendors"

// VendorAPI методы ресурса вендоров
type VendorAPI struct {
	client Doer
}

// NewVendorAPI создает новый экземпляр VendorAPI
func NewVendorAPI(client Doer) *VendorAPI {
	return &VendorAPI{client: client}
}

// List GET /vendors
func (a *VendorAPI) List(ctx context.Context, page, limit int) (*domain.Paginated[domain.Vendor], error) {
	var result domain.Paginated[domain.Vendor]
	if err := a.client.Do(ctx, http.MethodGet, vendorsPath, pageQuery(page, limit), nil, &result); err != nil {
		return nil, err
	}
	if result.Data == nil {
		result.Data = []domain.Vendor{}
	}
	return &result, nil
}

// GetByID GET /vendors/:id
func (a *VendorAPI) GetByID(ctx context.Context, id string) (*domain.Vendor, error) {
	var vendor domain.Vendor
	if err := a.client.Do(ctx, http.MethodGet, vendorsPath+segment(id), nil, nil, &vendor); err != nil {
		return nil, err
	}
	return &vendor, nil
}

// GetMe GET /vendors/me
func (a *VendorAPI) GetMe(ctx context.Context) (*domain.Vendor, error) {
	var vendor domain.Vendor
	if err := a.client.Do(ctx, http.MethodGet, vendorsPath+"/me", nil, nil, &vendor); err != nil {
		return nil, err
	}
	return &vendor, nil
}

// Register POST /vendors
func (a *VendorAPI) Register(ctx context.Context, req VendorRequest) (*domain.Vendor, error) {
	var vendor domain.Vendor
	if err := a.client.Do(ctx, http.MethodPost, vendorsPath, nil, req, &vendor); err != nil {
		return nil, err
	}
	return &vendor, nil
}

// UpdateMe PATCH /vendors/me
func (a *VendorAPI) UpdateMe(ctx context.Context, req VendorRequest) (*domain.Vendor, error) {
	var vendor domain.Vendor
	if err := a.client.Do(ctx, http.MethodPatch, vendorsPath+"/me", nil, req, &vendor); err != nil {
		return nil, err
	}
	return &vendor, nil
}
