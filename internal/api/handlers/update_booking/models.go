package update_booking

import (
	"github.com/m04kA/SMC-MarketplaceBFF/internal/api/handlers"
	"github.com/m04kA/SMC-MarketplaceBFF/internal/integrations/marketplace"
)

// UpdateBookingRequest HTTP request model, передаются только изменяемые поля
type UpdateBookingRequest struct {
	BookingDate *string `json:"bookingDate,omitempty"`
	StartTime   *string `json:"startTime,omitempty"`
	EndTime     *string `json:"endTime,omitempty"`
	GuestCount  *int    `json:"guestCount,omitempty"`
	Notes       *string `json:"notes,omitempty"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *UpdateBookingRequest) ToServiceRequest() (marketplace.UpdateBookingRequest, error) {
	req := marketplace.UpdateBookingRequest{
		GuestCount: r.GuestCount,
		Notes:      r.Notes,
	}

	if r.BookingDate != nil {
		date, err := handlers.ParseDate("bookingDate", *r.BookingDate)
		if err != nil {
			return req, err
		}
		req.BookingDate = &date
	}

	var err error
	if req.StartTime, err = handlers.ParseTime("startTime", r.StartTime); err != nil {
		return req, err
	}
	if req.EndTime, err = handlers.ParseEndTime("endTime", r.EndTime); err != nil {
		return req, err
	}

	return req, nil
}
