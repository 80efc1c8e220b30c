package listings

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-MarketplaceBFF/internal/domain"
	"github.com/m04kA/SMC-MarketplaceBFF/internal/infra/cache/cachetest"
	"github.com/m04kA/SMC-MarketplaceBFF/internal/integrations/gateway"
	"github.com/m04kA/SMC-MarketplaceBFF/internal/integrations/marketplace"
	"github.com/m04kA/SMC-MarketplaceBFF/internal/session"
	"github.com/m04kA/SMC-MarketplaceBFF/pkg/ptr"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeAPI struct {
	calls   map[string]int
	filters []domain.ListingsFilter
	err     error
}

func (f *fakeAPI) List(_ context.Context, filter domain.ListingsFilter) (*domain.Paginated[domain.Listing], error) {
	f.calls["List"]++
	f.filters = append(f.filters, filter)
	return &domain.Paginated[domain.Listing]{Data: []domain.Listing{{ID: "L1"}}}, f.err
}

func (f *fakeAPI) GetByID(_ context.Context, id string) (*domain.Listing, error) {
	f.calls["GetByID"]++
	if f.err != nil {
		return nil, f.err
	}
	return &domain.Listing{ID: id, Status: domain.ListingActive}, nil
}

func (f *fakeAPI) ListMine(context.Context) ([]domain.Listing, error) {
	f.calls["ListMine"]++
	return []domain.Listing{{ID: "L1"}}, f.err
}

func (f *fakeAPI) Create(context.Context, marketplace.ListingRequest) (*domain.Listing, error) {
	f.calls["Create"]++
	return &domain.Listing{ID: "L2"}, f.err
}

func (f *fakeAPI) Update(_ context.Context, id string, _ marketplace.ListingRequest) (*domain.Listing, error) {
	f.calls["Update"]++
	return &domain.Listing{ID: id}, f.err
}

func (f *fakeAPI) Delete(context.Context, string) error {
	f.calls["Delete"]++
	return f.err
}

func vendorCtx() context.Context {
	return session.WithSession(context.Background(), &session.Session{
		User:  &domain.User{ID: "v1", Role: domain.RoleVendor},
		State: session.StateAuthenticated,
	})
}

func TestService_List_NormalizesAndCaches(t *testing.T) {
	api := &fakeAPI{calls: map[string]int{}}
	svc := NewService(api, cachetest.NewMemory(), time.Minute, nopLogger{})

	for i := 0; i < 2; i++ {
		_, err := svc.List(context.Background(), domain.ListingsFilter{Limit: 1000, City: " Lagos "})
		require.NoError(t, err)
	}

	assert.Equal(t, 1, api.calls["List"])
	assert.Equal(t, domain.ListingsFilter{Page: 1, Limit: domain.MaxLimit, City: "Lagos"}, api.filters[0])
}

func TestService_GetByID_SharedAcrossUsers(t *testing.T) {
	api := &fakeAPI{calls: map[string]int{}}
	svc := NewService(api, cachetest.NewMemory(), time.Minute, nopLogger{})

	_, err := svc.GetByID(vendorCtx(), "L1")
	require.NoError(t, err)
	_, err = svc.GetByID(context.Background(), "L1")
	require.NoError(t, err)

	assert.Equal(t, 1, api.calls["GetByID"])
}

func TestService_GetByID_NotFound(t *testing.T) {
	api := &fakeAPI{calls: map[string]int{}, err: gateway.NewAPIError(404, "Listing not found")}
	svc := NewService(api, cachetest.NewMemory(), time.Minute, nopLogger{})

	_, err := svc.GetByID(context.Background(), "nope")

	assert.ErrorIs(t, err, ErrListingNotFound)
}

func TestService_Update_InvalidatesBothScopes(t *testing.T) {
	api := &fakeAPI{calls: map[string]int{}}
	mem := cachetest.NewMemory()
	svc := NewService(api, mem, time.Minute, nopLogger{})

	_, err := svc.Update(vendorCtx(), "L1", marketplace.ListingRequest{Title: ptr.Ptr("New title")})
	require.NoError(t, err)

	assert.Equal(t, []string{"q:v1:listings", "q:public:listings"}, mem.Invalidated())
}

func TestService_Create_Validation(t *testing.T) {
	api := &fakeAPI{calls: map[string]int{}}
	svc := NewService(api, cachetest.NewMemory(), time.Minute, nopLogger{})

	_, err := svc.Create(vendorCtx(), marketplace.ListingRequest{})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Create(vendorCtx(), marketplace.ListingRequest{Title: ptr.Ptr("Hall"), BasePrice: ptr.Ptr(-1.0)})
	assert.ErrorIs(t, err, ErrInvalidInput)

	assert.Zero(t, api.calls["Create"])
}
