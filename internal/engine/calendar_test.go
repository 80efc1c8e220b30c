package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-MarketplaceBFF/internal/domain"
	"github.com/m04kA/SMC-MarketplaceBFF/pkg/ptr"
	"github.com/m04kA/SMC-MarketplaceBFF/pkg/types"
)

func TestMapBookingToCalendarEvent_PaidAmount(t *testing.T) {
	tests := []struct {
		name        string
		fullPaid    bool
		depositPaid bool
		want        float64
	}{
		{name: "full payment wins", fullPaid: true, depositPaid: true, want: 500},
		{name: "deposit only", fullPaid: false, depositPaid: true, want: 100},
		{name: "nothing paid", fullPaid: false, depositPaid: false, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := domain.Booking{
				ID:              "b1",
				BookingDate:     eventDay,
				Status:          domain.StatusConfirmed,
				TotalAmount:     500,
				DepositAmount:   ptr.Ptr(100.0),
				DepositPaid:     tt.depositPaid,
				FullPaymentPaid: tt.fullPaid,
			}
			assert.Equal(t, tt.want, MapBookingToCalendarEvent(b).PaidAmount)
		})
	}
}

func TestMapBookingToCalendarEvent_StatusMapping(t *testing.T) {
	tests := []struct {
		status domain.BookingStatus
		want   domain.CalendarStatus
	}{
		{status: domain.StatusConfirmed, want: domain.CalendarConfirmed},
		{status: domain.StatusPending, want: domain.CalendarPending},
		{status: domain.StatusCancelled, want: domain.CalendarInquiry},
		{status: domain.StatusCompleted, want: domain.CalendarInquiry},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			event := MapBookingToCalendarEvent(domain.Booking{BookingDate: eventDay, Status: tt.status})
			assert.Equal(t, tt.want, event.Status)
		})
	}
}

func TestMapBookingToCalendarEvent_FullShape(t *testing.T) {
	b := timedBooking("b1", domain.StatusPending, "14:00", "18:30")
	b.TotalAmount = 1200
	b.Listing = &domain.ListingSummary{ID: "L", Title: "Rooftop Hall", Type: domain.ListingVenue, City: "Lagos"}
	b.Customer = &domain.UserSummary{ID: "c1", Name: "Ada Obi"}

	event := MapBookingToCalendarEvent(b)

	assert.Equal(t, domain.CalendarEvent{
		ID:         "b1",
		Title:      "Rooftop Hall",
		Date:       "2026-03-01",
		TimeRange:  "14:00 - 18:30",
		Location:   "Lagos",
		Type:       "venue",
		Status:     domain.CalendarPending,
		ClientName: "Ada Obi",
		TotalCost:  1200,
		PaidAmount: 0,
	}, event)
}

func TestMapBookingToCalendarEvent_Fallbacks(t *testing.T) {
	start := time.Date(2026, 3, 1, 9, 5, 0, 0, time.UTC)
	b := domain.Booking{ID: "b2", StartDate: &start, Status: domain.StatusConfirmed}

	event := MapBookingToCalendarEvent(b)

	assert.Equal(t, domain.FallbackTitle, event.Title)
	assert.Equal(t, domain.FallbackLocation, event.Location)
	assert.Equal(t, domain.FallbackClientName, event.ClientName)
	assert.Equal(t, domain.FallbackEventType, event.Type)
	assert.Equal(t, "09:05", event.TimeRange)
	assert.Equal(t, "2026-03-01", event.Date)
}

func TestMapBookingToCalendarEvent_EmptyNamesFallBack(t *testing.T) {
	b := domain.Booking{
		BookingDate: eventDay,
		StartTime:   ptr.Ptr(types.TimeString("10:00")),
		Listing:     &domain.ListingSummary{},
		Customer:    &domain.UserSummary{},
	}

	event := MapBookingToCalendarEvent(b)

	assert.Equal(t, domain.FallbackTitle, event.Title)
	assert.Equal(t, domain.FallbackClientName, event.ClientName)
	assert.Equal(t, "10:00", event.TimeRange)
}

func TestMapBookingsToCalendar(t *testing.T) {
	events := MapBookingsToCalendar([]domain.Booking{
		timedBooking("a", domain.StatusConfirmed, "10:00", "11:00"),
		timedBooking("b", domain.StatusPending, "12:00", "13:00"),
	})

	assert.Len(t, events, 2)
	assert.Equal(t, "a", events[0].ID)
	assert.Equal(t, "b", events[1].ID)
	assert.NotNil(t, MapBookingsToCalendar(nil))
}
