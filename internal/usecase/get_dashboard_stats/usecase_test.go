package get_dashboard_stats

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-MarketplaceBFF/internal/domain"
	bookingsService "github.com/m04kA/SMC-MarketplaceBFF/internal/service/bookings"
	"github.com/m04kA/SMC-MarketplaceBFF/pkg/logger"
)

var now = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

type fixedTime struct{ t time.Time }

func (f fixedTime) Now() time.Time { return f.t }

// pagedBookings отдает коллекцию постранично, как API
type pagedBookings struct {
	vendor []domain.Booking
	admin  []domain.Booking
	err    error
	pages  []int
	// limitCap урезает limit, как делают некоторые API
	limitCap int
}

func (p *pagedBookings) page(all []domain.Booking, filter domain.BookingsFilter) (*domain.Paginated[domain.Booking], error) {
	p.pages = append(p.pages, filter.Page)
	if p.err != nil {
		return nil, p.err
	}
	if p.limitCap > 0 && filter.Limit > p.limitCap {
		filter.Limit = p.limitCap
	}
	from := (filter.Page - 1) * filter.Limit
	if from > len(all) {
		from = len(all)
	}
	to := from + filter.Limit
	if to > len(all) {
		to = len(all)
	}
	return &domain.Paginated[domain.Booking]{Data: all[from:to]}, nil
}

func (p *pagedBookings) ListVendor(_ context.Context, filter domain.BookingsFilter) (*domain.Paginated[domain.Booking], error) {
	return p.page(p.vendor, filter)
}

func (p *pagedBookings) ListAdmin(_ context.Context, filter domain.BookingsFilter) (*domain.Paginated[domain.Booking], error) {
	return p.page(p.admin, filter)
}

func booking(status domain.BookingStatus, amount float64, start time.Time) domain.Booking {
	return domain.Booking{ListingID: "L", BookingDate: start, StartDate: &start, Status: status, TotalAmount: amount}
}

func repeat(n int, b domain.Booking) []domain.Booking {
	out := make([]domain.Booking, n)
	for i := range out {
		out[i] = b
	}
	return out
}

func newUseCase(b *pagedBookings) *UseCase {
	return NewUseCase(b, logger.Nop()).WithTimeProvider(fixedTime{t: now})
}

func TestExecute_VendorScope(t *testing.T) {
	bookings := &pagedBookings{vendor: []domain.Booking{
		booking(domain.StatusConfirmed, 100, now.AddDate(0, -1, 0)),
		booking(domain.StatusPending, 50, now.Add(48*time.Hour)),
		booking(domain.StatusCancelled, 30, now.Add(24*time.Hour)),
	}}

	resp, err := newUseCase(bookings).Execute(context.Background(), &Request{Scope: ScopeVendor})

	require.NoError(t, err)
	assert.Equal(t, domain.StatsAggregate{TotalRevenue: 100, PendingRequests: 1, UpcomingEvents: 2}, resp.Stats)
	assert.Equal(t, 3, resp.BookingsCount)
	assert.Equal(t, now, resp.AsOf)
	assert.Equal(t, []int{1}, bookings.pages)
}

func TestExecute_AdminScopeWalksAllPages(t *testing.T) {
	past := now.AddDate(0, 0, -10)
	all := repeat(domain.MaxLimit*2+5, booking(domain.StatusCompleted, 1.5, past))
	bookings := &pagedBookings{admin: all}

	resp, err := newUseCase(bookings).Execute(context.Background(), &Request{Scope: ScopeAdmin})

	require.NoError(t, err)
	assert.Equal(t, len(all), resp.BookingsCount)
	assert.InDelta(t, 1.5*float64(len(all)), resp.Stats.TotalRevenue, 1e-9)
	assert.Equal(t, []int{1, 2, 3}, bookings.pages)
}

func TestExecute_ExactPageBoundaryRequestsOneMorePage(t *testing.T) {
	bookings := &pagedBookings{vendor: repeat(domain.MaxLimit, booking(domain.StatusPending, 1, now))}

	resp, err := newUseCase(bookings).Execute(context.Background(), &Request{Scope: ScopeVendor})

	require.NoError(t, err)
	assert.Equal(t, domain.MaxLimit, resp.Stats.PendingRequests)
	assert.Equal(t, []int{1, 2}, bookings.pages)
}

func TestExecute_UpstreamCapsPageSize(t *testing.T) {
	past := now.AddDate(0, 0, -10)
	bookings := &pagedBookings{
		vendor:   repeat(120, booking(domain.StatusConfirmed, 10, past)),
		limitCap: 50,
	}

	resp, err := newUseCase(bookings).Execute(context.Background(), &Request{Scope: ScopeVendor})

	require.NoError(t, err)
	assert.Equal(t, 120, resp.BookingsCount)
	assert.InDelta(t, 1200.0, resp.Stats.TotalRevenue, 1e-9)
	assert.Equal(t, []int{1, 2, 3}, bookings.pages)
}

func TestExecute_FullLastPageWithinLimit(t *testing.T) {
	bookings := &pagedBookings{vendor: repeat(domain.MaxLimit*maxPages, booking(domain.StatusPending, 1, now))}

	resp, err := newUseCase(bookings).Execute(context.Background(), &Request{Scope: ScopeVendor})

	require.NoError(t, err)
	assert.Equal(t, domain.MaxLimit*maxPages, resp.BookingsCount)
	assert.Len(t, bookings.pages, maxPages+1)
}

func TestExecute_Errors(t *testing.T) {
	tests := []struct {
		name     string
		scope    Scope
		bookings *pagedBookings
		wantErr  error
	}{
		{name: "unknown scope", scope: "customer", bookings: &pagedBookings{}, wantErr: ErrInvalidScope},
		{name: "forbidden", scope: ScopeAdmin, bookings: &pagedBookings{err: bookingsService.ErrAccessDenied}, wantErr: ErrAccessDenied},
		{name: "api down", scope: ScopeVendor, bookings: &pagedBookings{err: errors.New("boom")}, wantErr: ErrInternal},
		{
			name:     "unbounded collection",
			scope:    ScopeVendor,
			bookings: &pagedBookings{vendor: repeat(domain.MaxLimit*maxPages+1, booking(domain.StatusPending, 1, now))},
			wantErr:  ErrTooManyBookings,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := newUseCase(tt.bookings).Execute(context.Background(), &Request{Scope: tt.scope})
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
