package check_availability

import (
	"github.com/m04kA/SMC-MarketplaceBFF/internal/api/handlers"
	checkAvailability "github.com/m04kA/SMC-MarketplaceBFF/internal/usecase/check_availability"
)

// CheckAvailabilityRequest HTTP request model
type CheckAvailabilityRequest struct {
	ListingID string  `json:"listingId"`
	Date      string  `json:"date"`                // "2026-03-01"
	StartTime *string `json:"startTime,omitempty"` // "14:00"
	EndTime   *string `json:"endTime,omitempty"`   // "18:00"
	Confirm   bool    `json:"confirm,omitempty"`
}

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	Available bool   `json:"available"`
	Message   string `json:"message,omitempty"`
	Source    string `json:"source"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CheckAvailabilityRequest) ToUseCaseRequest() (*checkAvailability.Request, error) {
	date, err := handlers.ParseDate("date", r.Date)
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

	return &checkAvailability.Request{
		ListingID: r.ListingID,
		Date:      date,
		StartTime: start,
		EndTime:   end,
		Confirm:   r.Confirm,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *checkAvailability.Response) *AvailabilityResponse {
	return &AvailabilityResponse{
		Available: resp.Available,
		Message:   resp.Message,
		Source:    string(resp.Source),
	}
}
