package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-MarketplaceBFF/internal/domain"
	"github.com/m04kA/SMC-MarketplaceBFF/pkg/ptr"
	"github.com/m04kA/SMC-MarketplaceBFF/pkg/types"
)

var eventDay = time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

func activeListing() *domain.Listing {
	return &domain.Listing{ID: "L", VendorID: "V", Status: domain.ListingActive}
}

func timedBooking(id string, status domain.BookingStatus, start, end string) domain.Booking {
	return domain.Booking{
		ID:          id,
		ListingID:   "L",
		BookingDate: eventDay,
		StartTime:   ptr.Ptr(types.TimeString(start)),
		EndTime:     ptr.Ptr(types.TimeString(end)),
		Status:      status,
	}
}

func query(start, end string) domain.AvailabilityQuery {
	q := domain.AvailabilityQuery{ListingID: "L", Date: eventDay}
	if start != "" {
		q.StartTime = ptr.Ptr(types.TimeString(start))
	}
	if end != "" {
		q.EndTime = ptr.Ptr(types.TimeString(end))
	}
	return q
}

func TestCheckAvailability_Scenario(t *testing.T) {
	existing := []domain.Booking{timedBooking("b1", domain.StatusConfirmed, "14:00", "18:00")}

	result, err := CheckAvailability(activeListing(), query("18:00", "20:00"), existing)
	require.NoError(t, err)
	assert.True(t, result.Available)

	result, err = CheckAvailability(activeListing(), query("17:00", "19:00"), existing)
	require.NoError(t, err)
	assert.False(t, result.Available)
	assert.Equal(t, MsgWindowOverlaps, result.Message)
}

func TestCheckAvailability_ExplicitMidnightEnd(t *testing.T) {
	existing := []domain.Booking{timedBooking("b1", domain.StatusConfirmed, "14:00", "18:00")}

	result, err := CheckAvailability(activeListing(), query("18:00", "24:00"), existing)
	require.NoError(t, err)
	assert.True(t, result.Available)

	result, err = CheckAvailability(activeListing(), query("17:00", "24:00"), existing)
	require.NoError(t, err)
	assert.False(t, result.Available)
}

func TestCheckAvailability_Overlaps(t *testing.T) {
	existing := []domain.Booking{
		timedBooking("b1", domain.StatusConfirmed, "10:00", "12:00"),
		timedBooking("b2", domain.StatusPending, "15:00", "16:30"),
	}

	tests := []struct {
		name      string
		start     string
		end       string
		available bool
	}{
		{name: "before first", start: "08:00", end: "10:00", available: true},
		{name: "between", start: "12:00", end: "15:00", available: true},
		{name: "after last", start: "16:30", end: "23:00", available: true},
		{name: "inside first", start: "10:30", end: "11:00", available: false},
		{name: "covers first", start: "09:00", end: "13:00", available: false},
		{name: "tail of second", start: "16:00", end: "17:00", available: false},
		{name: "open start hits first", start: "", end: "10:01", available: false},
		{name: "open end hits second", start: "16:29", end: "", available: false},
		{name: "full day", start: "", end: "", available: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := CheckAvailability(activeListing(), query(tt.start, tt.end), existing)
			require.NoError(t, err)
			assert.Equal(t, tt.available, result.Available)
		})
	}
}

func TestCheckAvailability_FullDayBookingBlocksWholeDay(t *testing.T) {
	existing := []domain.Booking{{ID: "b1", ListingID: "L", BookingDate: eventDay, Status: domain.StatusConfirmed}}

	result, err := CheckAvailability(activeListing(), query("23:00", "23:30"), existing)
	require.NoError(t, err)
	assert.False(t, result.Available)

	nextDay := query("00:00", "01:00")
	nextDay.Date = eventDay.AddDate(0, 0, 1)
	result, err = CheckAvailability(activeListing(), nextDay, existing)
	require.NoError(t, err)
	assert.True(t, result.Available)
}

func TestCheckAvailability_OtherDateDoesNotConflict(t *testing.T) {
	existing := []domain.Booking{timedBooking("b1", domain.StatusConfirmed, "14:00", "18:00")}
	q := query("14:00", "18:00")
	q.Date = eventDay.AddDate(0, 0, 2)

	result, err := CheckAvailability(activeListing(), q, existing)
	require.NoError(t, err)
	assert.True(t, result.Available)
}

func TestCheckAvailability_CancelledNeverBlocks(t *testing.T) {
	existing := []domain.Booking{timedBooking("b1", domain.StatusCancelled, "14:00", "18:00")}

	result, err := CheckAvailability(activeListing(), query("14:00", "18:00"), existing)
	require.NoError(t, err)
	assert.True(t, result.Available)
}

func TestCheckAvailability_OtherListingIgnored(t *testing.T) {
	other := timedBooking("b1", domain.StatusConfirmed, "14:00", "18:00")
	other.ListingID = "L2"

	result, err := CheckAvailability(activeListing(), query("14:00", "18:00"), []domain.Booking{other})
	require.NoError(t, err)
	assert.True(t, result.Available)
}

func TestCheckAvailability_InactiveListing(t *testing.T) {
	for _, status := range []domain.ListingStatus{domain.ListingInactive, domain.ListingPending} {
		listing := activeListing()
		listing.Status = status

		result, err := CheckAvailability(listing, query("08:00", "09:00"), nil)
		require.NoError(t, err)
		assert.False(t, result.Available)
		assert.Equal(t, MsgListingNotBookable, result.Message)
	}
}

func TestCheckAvailability_InvalidInput(t *testing.T) {
	tests := []struct {
		name    string
		listing *domain.Listing
		query   domain.AvailabilityQuery
		wantErr error
	}{
		{
			name:    "missing listing id",
			listing: activeListing(),
			query:   domain.AvailabilityQuery{Date: eventDay},
			wantErr: ErrInvalidInput,
		},
		{
			name:    "missing date",
			listing: activeListing(),
			query:   domain.AvailabilityQuery{ListingID: "L"},
			wantErr: ErrInvalidInput,
		},
		{
			name:    "nil listing",
			listing: nil,
			query:   query("10:00", "11:00"),
			wantErr: ErrInvalidInput,
		},
		{
			name:    "listing mismatch",
			listing: &domain.Listing{ID: "other", Status: domain.ListingActive},
			query:   query("10:00", "11:00"),
			wantErr: ErrInvalidInput,
		},
		{
			name:    "malformed time",
			listing: activeListing(),
			query:   query("10:00", "25:00"),
			wantErr: ErrInvalidInput,
		},
		{
			name:    "start after end",
			listing: activeListing(),
			query:   query("12:00", "11:00"),
			wantErr: ErrInvalidTimeRange,
		},
		{
			name:    "empty range",
			listing: activeListing(),
			query:   query("12:00", "12:00"),
			wantErr: ErrInvalidTimeRange,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := CheckAvailability(tt.listing, tt.query, nil)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestCheckAvailability_InvalidInputOnInactiveListingIsStillAnError(t *testing.T) {
	listing := activeListing()
	listing.Status = domain.ListingInactive

	_, err := CheckAvailability(listing, query("12:00", "11:00"), nil)
	assert.ErrorIs(t, err, ErrInvalidTimeRange)
}
