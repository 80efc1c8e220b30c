package create_booking

import (
	"github.com/m04kA/SMC-MarketplaceBFF/internal/api/handlers"
	createBooking "github.com/m04kA/SMC-MarketplaceBFF/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	ListingID   string  `json:"listingId"`
	BookingDate string  `json:"bookingDate"`         // "2026-03-01"
	StartTime   *string `json:"startTime,omitempty"` // "14:00"
	EndTime     *string `json:"endTime,omitempty"`   // "18:00"
	GuestCount  int     `json:"guestCount,omitempty"`
	Notes       *string `json:"notes,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case (с парсингом даты и времени)
func (r *CreateBookingRequest) ToUseCaseRequest() (*createBooking.Request, error) {
	bookingDate, err := handlers.ParseDate("bookingDate", r.BookingDate)
	if err != nil {
		return nil, err
	}
	start, err := handlers.ParseTime("startTime", r.StartTime)
	if err != nil {
		return nil, err
	}
	end, err := handlers.ParseEndTime("endTime", r.EndTime)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		ListingID:  r.ListingID,
		Date:       bookingDate,
		StartTime:  start,
		EndTime:    end,
		GuestCount: r.GuestCount,
		Notes:      r.Notes,
	}, nil
}
