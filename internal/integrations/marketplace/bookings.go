package marketplace

import (
	"context"
	"net/http"

	"github.com/m04kA/SMC-MarketplaceBFF/internal/domain"
)

const bookingsPath = "/bookings"

// BookingAPI методы ресурса бронирований
type BookingAPI struct {
	client Doer
}

// NewBookingAPI создает новый экземпляр BookingAPI
func NewBookingAPI(client Doer) *BookingAPI {
	return &BookingAPI{client: client}
}

// CheckAvailability POST /bookings/check-availability
func (a *BookingAPI) CheckAvailability(ctx context.Context, query domain.AvailabilityQuery) (*domain.AvailabilityResult, error) {
	var result domain.AvailabilityResult
	if err := a.client.Do(ctx, http.MethodPost, bookingsPath+"/check-availability", nil, query, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Create POST /bookings
func (a *BookingAPI) Create(ctx context.Context, req CreateBookingRequest) (*domain.Booking, error) {
	var booking domain.Booking
	if err := a.client.Do(ctx, http.MethodPost, bookingsPath, nil, req, &booking); err != nil {
		return nil, err
	}
	return &booking, nil
}

// List GET /bookings - бронирования текущего пользователя
func (a *BookingAPI) List(ctx context.Context, filter domain.BookingsFilter) (*domain.Paginated[domain.Booking], error) {
	return a.list(ctx, bookingsPath, filter)
}

// ListAdmin GET /admin/bookings
func (a *BookingAPI) ListAdmin(ctx context.Context, filter domain.BookingsFilter) (*domain.Paginated[domain.Booking], error) {
	return a.list(ctx, "/admin/bookings", filter)
}

// ListVendor GET /bookings/vendor
func (a *BookingAPI) ListVendor(ctx context.Context, filter domain.BookingsFilter) (*domain.Paginated[domain.Booking], error) {
	return a.list(ctx, bookingsPath+"/vendor", filter)
}

func (a *BookingAPI) list(ctx context.Context, path string, filter domain.BookingsFilter) (*domain.Paginated[domain.Booking], error) {
	var page domain.Paginated[domain.Booking]
	if err := a.client.Do(ctx, http.MethodGet, path, bookingsQuery(filter), nil, &page); err != nil {
		return nil, err
	}
	if page.Data == nil {
		page.Data = []domain.Booking{}
	}
	return &page, nil
}

// GetByID GET /bookings/:id
func (a *BookingAPI) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	var booking domain.Booking
	if err := a.client.Do(ctx, http.MethodGet, bookingsPath+segment(id), nil, nil, &booking); err != nil {
		return nil, err
	}
	return &booking, nil
}

// ListByListing GET /bookings/listing/:id
func (a *BookingAPI) ListByListing(ctx context.Context, listingID string) ([]domain.Booking, error) {
	var bookings []domain.Booking
	if err := a.client.Do(ctx, http.MethodGet, bookingsPath+"/listing"+segment(listingID), nil, nil, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

// Update PATCH /bookings/:id
func (a *BookingAPI) Update(ctx context.Context, id string, req UpdateBookingRequest) (*domain.Booking, error) {
	var booking domain.Booking
	if err := a.client.Do(ctx, http.MethodPatch, bookingsPath+segment(id), nil, req, &booking); err != nil {
		return nil, err
	}
	return &booking, nil
}

// Cancel PATCH /bookings/:id/cancel
func (a *BookingAPI) Cancel(ctx context.Context, id string, req CancelBookingRequest) (*domain.Booking, error) {
	var booking domain.Booking
	if err := a.client.Do(ctx, http.MethodPatch, bookingsPath+segment(id)+"/cancel", nil, req, &booking); err != nil {
		return nil, err
	}
	return &booking, nil
}

// Delete DELETE /bookings/:id
func (a *BookingAPI) Delete(ctx context.Context, id string) error {
	return a.client.Do(ctx, http.MethodDelete, bookingsPath+segment(id), nil, nil, nil)
}
