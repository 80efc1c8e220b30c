package domain

import (
	"time"

	"github.com/m04kA/SMC-MarketplaceBFF/pkg/types"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "PENDING"
	StatusConfirmed BookingStatus = "CONFIRMED"
	StatusCancelled BookingStatus = "CANCELLED"
	StatusCompleted BookingStatus = "COMPLETED"
)

// IsValid returns true for the statuses the marketplace API knows about
func (s BookingStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted:
		return true
	}
	return false
}

// Booking represents a reservation of a listing as returned by the marketplace API
type Booking struct {
	ID         string `json:"id"`
	ListingID  string `json:"listingId"`
	CustomerID string `json:"customerId,omitempty"`
	VendorID   string `json:"vendorId,omitempty"`

	// BookingDate is the calendar day of the event. StartTime/EndTime are on this day.
	BookingDate time.Time         `json:"bookingDate"`
	StartDate   *time.Time        `json:"startDate,omitempty"`
	EndDate     *time.Time        `json:"endDate,omitempty"`
	StartTime   *types.TimeString `json:"startTime,omitempty"`
	EndTime     *types.TimeString `json:"endTime,omitempty"`

	Status          BookingStatus `json:"status"`
	TotalAmount     float64       `json:"totalAmount"`
	DepositAmount   *float64      `json:"depositAmount,omitempty"`
	DepositPaid     bool          `json:"depositPaid"`
	FullPaymentPaid bool          `json:"fullPaymentPaid"`
	Currency        string        `json:"currency"`
	GuestCount      int           `json:"guestCount,omitempty"`
	Notes           *string       `json:"notes,omitempty"`

	Listing  *ListingSummary `json:"listing,omitempty"`
	Customer *UserSummary    `json:"customer,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// IsCancelled returns true if the booking has been cancelled
func (b *Booking) IsCancelled() bool {
	return b.Status == StatusCancelled
}

// CountsTowardRevenue returns true for bookings whose amount is earned revenue
func (b *Booking) CountsTowardRevenue() bool {
	return b.Status == StatusConfirmed || b.Status == StatusCompleted
}

// CanBeCancelled returns true if a cancel request makes sense for the booking
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// Day returns the calendar day of the booking
func (b *Booking) Day() time.Time {
	day := b.BookingDate
	if day.IsZero() && b.StartDate != nil {
		day = *b.StartDate
	}
	y, m, d := day.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, day.Location())
}

// StartsAt returns the instant the booking starts.
// An explicit StartTime on the booking day wins over StartDate.
func (b *Booking) StartsAt() time.Time {
	if b.StartTime != nil {
		if at, err := b.StartTime.On(b.Day()); err == nil {
			return at
		}
	}
	if b.StartDate != nil {
		return *b.StartDate
	}
	return b.Day()
}

// EndsAt returns the instant the booking ends and false when the booking has no end
func (b *Booking) EndsAt() (time.Time, bool) {
	if b.EndTime != nil {
		if at, err := b.EndTime.On(b.Day()); err == nil {
			return at, true
		}
	}
	if b.EndDate != nil {
		return *b.EndDate, true
	}
	return time.Time{}, false
}

// BookingsFilter параметры выборки бронирований из API
type BookingsFilter struct {
	Page   int
	Limit  int
	Status *BookingStatus
}
