package get_dashboard_stats

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-MarketplaceBFF/internal/domain"
	"github.com/m04kA/SMC-MarketplaceBFF/internal/integrations/gateway"
	getDashboardStats "github.com/m04kA/SMC-MarketplaceBFF/internal/usecase/get_dashboard_stats"
	"github.com/m04kA/SMC-MarketplaceBFF/pkg/logger"
)

type fakeUseCase struct {
	scope getDashboardStats.Scope
	resp  *getDashboardStats.Response
	err   error
}

func (f *fakeUseCase) Execute(_ context.Context, req *getDashboardStats.Request) (*getDashboardStats.Response, error) {
	f.scope = req.Scope
	return f.resp, f.err
}

func TestHandle_PassesScope(t *testing.T) {
	uc := &fakeUseCase{resp: &getDashboardStats.Response{
		Stats:         domain.StatsAggregate{TotalRevenue: 1200.5, PendingRequests: 2, UpcomingEvents: 1},
		BookingsCount: 7,
		AsOf:          time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	}}
	rec := httptest.NewRecorder()

	NewHandler(uc, getDashboardStats.ScopeAdmin, logger.Nop()).
		Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/admin/dashboard/stats", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, getDashboardStats.ScopeAdmin, uc.scope)

	var env struct {
		Data StatsResponse `json:"data"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&env))
	assert.Equal(t, StatsResponse{
		TotalRevenue:    1200.5,
		PendingRequests: 2,
		UpcomingEvents:  1,
		TotalBookings:   7,
		AsOf:            "2026-01-01T00:00:00Z",
	}, env.Data)
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		err    error
		status int
	}{
		{err: getDashboardStats.ErrAccessDenied, status: http.StatusForbidden},
		{err: getDashboardStats.ErrTooManyBookings, status: http.StatusUnprocessableEntity},
		{err: getDashboardStats.ErrInternal, status: http.StatusInternalServerError},
		{err: fmt.Errorf("%w: page 2: %w", getDashboardStats.ErrInternal, gateway.ErrUpstream), status: http.StatusBadGateway},
	}

	for _, tt := range tests {
		rec := httptest.NewRecorder()
		NewHandler(&fakeUseCase{err: tt.err}, getDashboardStats.ScopeVendor, logger.Nop()).
			Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/vendor/dashboard/stats", nil))
		assert.Equal(t, tt.status, rec.Code, tt.err.Error())
	}
}
