package get_calendar

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-MarketplaceBFF/internal/domain"
	bookingsService "github.com/m04kA/SMC-MarketplaceBFF/internal/service/bookings"
	"github.com/m04kA/SMC-MarketplaceBFF/pkg/logger"
	"github.com/m04kA/SMC-MarketplaceBFF/pkg/ptr"
	"github.com/m04kA/SMC-MarketplaceBFF/pkg/types"
)

type fakeBookings struct {
	bookings []domain.Booking
	err      error
	filters  []domain.BookingsFilter
	limitCap int
}

func (f *fakeBookings) ListVendor(_ context.Context, filter domain.BookingsFilter) (*domain.Paginated[domain.Booking], error) {
	f.filters = append(f.filters, filter)
	if f.err != nil {
		return nil, f.err
	}

	limit := filter.Limit
	if f.limitCap > 0 && limit > f.limitCap {
		limit = f.limitCap
	}
	from := min((filter.Page-1)*limit, len(f.bookings))
	to := min(from+limit, len(f.bookings))
	return &domain.Paginated[domain.Booking]{Data: f.bookings[from:to]}, nil
}

func on(id string, day time.Time, start string, status domain.BookingStatus) domain.Booking {
	return domain.Booking{
		ID:          id,
		ListingID:   "L",
		BookingDate: day,
		StartTime:   ptr.Ptr(types.TimeString(start)),
		Status:      status,
		TotalAmount: 100,
	}
}

func TestExecute_SortedEvents(t *testing.T) {
	march := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	bookings := &fakeBookings{bookings: []domain.Booking{
		on("late", march, "18:00", domain.StatusConfirmed),
		on("early", march, "09:00", domain.StatusPending),
		on("prev-day", march.AddDate(0, 0, -1), "20:00", domain.StatusCancelled),
	}}

	resp, err := NewUseCase(bookings, logger.Nop()).Execute(context.Background(), &Request{})

	require.NoError(t, err)
	require.Len(t, resp.Events, 3)
	assert.Equal(t, "prev-day", resp.Events[0].ID)
	assert.Equal(t, "early", resp.Events[1].ID)
	assert.Equal(t, "late", resp.Events[2].ID)
	assert.Equal(t, domain.CalendarInquiry, resp.Events[0].Status)
	assert.Equal(t, domain.CalendarPending, resp.Events[1].Status)
	assert.Equal(t, "09:00", resp.Events[1].TimeRange)
}

func TestExecute_MonthFilter(t *testing.T) {
	bookings := &fakeBookings{bookings: []domain.Booking{
		on("feb", time.Date(2026, 2, 28, 0, 0, 0, 0, time.UTC), "10:00", domain.StatusConfirmed),
		on("mar", time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), "10:00", domain.StatusConfirmed),
		on("mar-2027", time.Date(2027, 3, 1, 0, 0, 0, 0, time.UTC), "10:00", domain.StatusConfirmed),
	}}

	resp, err := NewUseCase(bookings, logger.Nop()).Execute(context.Background(), &Request{Month: ptr.Ptr("2026-03")})

	require.NoError(t, err)
	require.Len(t, resp.Events, 1)
	assert.Equal(t, "mar", resp.Events[0].ID)
	assert.Equal(t, "2026-03-01", resp.Events[0].Date)
}

func TestExecute_UpstreamCapsPageSize(t *testing.T) {
	day := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	all := make([]domain.Booking, 25)
	for i := range all {
		all[i] = on(fmt.Sprintf("b%02d", i), day.AddDate(0, 0, i), "10:00", domain.StatusConfirmed)
	}
	bookings := &fakeBookings{bookings: all, limitCap: 10}

	resp, err := NewUseCase(bookings, logger.Nop()).Execute(context.Background(), &Request{})

	require.NoError(t, err)
	assert.Len(t, resp.Events, 25)
	assert.Len(t, bookings.filters, 3)
}

func TestExecute_StatusIsPassedToAPI(t *testing.T) {
	bookings := &fakeBookings{}
	status := domain.StatusConfirmed

	resp, err := NewUseCase(bookings, logger.Nop()).Execute(context.Background(), &Request{Status: &status})

	require.NoError(t, err)
	assert.NotNil(t, resp.Events)
	require.Len(t, bookings.filters, 1)
	assert.Equal(t, &status, bookings.filters[0].Status)
	assert.Equal(t, domain.MaxLimit, bookings.filters[0].Limit)
}

func TestExecute_Errors(t *testing.T) {
	bad := domain.BookingStatus("ARCHIVED")

	tests := []struct {
		name     string
		req      *Request
		bookings *fakeBookings
		wantErr  error
	}{
		{name: "bad month", req: &Request{Month: ptr.Ptr("03-2026")}, bookings: &fakeBookings{}, wantErr: ErrInvalidMonth},
		{name: "bad status", req: &Request{Status: &bad}, bookings: &fakeBookings{}, wantErr: ErrInvalidStatus},
		{name: "not a vendor", req: &Request{}, bookings: &fakeBookings{err: bookingsService.ErrAccessDenied}, wantErr: ErrAccessDenied},
		{name: "api down", req: &Request{}, bookings: &fakeBookings{err: errors.New("boom")}, wantErr: ErrInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewUseCase(tt.bookings, logger.Nop()).Execute(context.Background(), tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
