package marketplace

import (
	"time"

	"github.com/m04kA/SMC-MarketplaceBFF/internal/domain"
	"github.com/m04kA/SMC-MarketplaceBFF/pkg/types"
)

// CreateBookingRequest тело POST /bookings
type CreateBookingRequest struct {
	ListingID   string            `json:"listingId"`
	BookingDate time.Time         `json:"bookingDate"`
	StartTime   *types.TimeString `json:"startTime,omitempty"`
	EndTime     *types.TimeString `json:"endTime,omitempty"`
	GuestCount  int               `json:"guestCount,omitempty"`
	Notes       *string           `json:"notes,omitempty"`
}

// UpdateBookingRequest тело PATCH /bookings/:id
type UpdateBookingRequest struct {
	BookingDate *time.Time        `json:"bookingDate,omitempty"`
	StartTime   *types.TimeString `json:"startTime,omitempty"`
	EndTime     *types.TimeString `json:"endTime,omitempty"`
	GuestCount  *int              `json:"guestCount,omitempty"`
	Notes       *string           `json:"notes,omitempty"`
}

// CancelBookingRequest тело PATCH /bookings/:id/cancel
type CancelBookingRequest struct {
	Reason *string `json:"reason,omitempty"`
}

// ListingRequest тело POST /listings и PATCH /listings/:id
// При обновлении передаются только заполненные поля
type ListingRequest struct {
	Title       *string               `json:"title,omitempty"`
	Description *string               `json:"description,omitempty"`
	Type        *domain.ListingType   `json:"type,omitempty"`
	Category    *string               `json:"category,omitempty"`
	City        *string               `json:"city,omitempty"`
	Address     *string               `json:"address,omitempty"`
	BasePrice   *float64              `json:"basePrice,omitempty"`
	Currency    *string               `json:"currency,omitempty"`
	Capacity    *int                  `json:"capacity,omitempty"`
	Images      []string              `json:"images,omitempty"`
	Status      *domain.ListingStatus `json:"status,omitempty"`
}

// VendorRequest тело POST /vendors и PATCH /vendors/me
type VendorRequest struct {
	BusinessName *string `json:"businessName,omitempty"`
	Description  *string `json:"description,omitempty"`
	Phone        *string `json:"phone,omitempty"`
	City         *string `json:"city,omitempty"`
}

// InitiatePaymentRequest тело POST /payments/initiate
type InitiatePaymentRequest struct {
	BookingID   string             `json:"bookingId"`
	Type        domain.PaymentType `json:"type"`
	CallbackURL string             `json:"callbackUrl,omitempty"`
}

// LoginRequest тело POST /auth/login
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterRequest тело POST /auth/register
type RegisterRequest struct {
	Email     string      `json:"email"`
	Password  string      `json:"password"`
	FirstName string      `json:"firstName"`
	LastName  string      `json:"lastName"`
	Phone     string      `json:"phone,omitempty"`
	Role      domain.Role `json:"role,omitempty"`
}

// AuthResult ответ /auth/login и /auth/register
type AuthResult struct {
	Token string      `json:"token"`
	User  domain.User `json:"user"`
}

// UpdateProfileRequest тело PATCH /users/me
type UpdateProfileRequest struct {
	FirstName *string `json:"firstName,omitempty"`
	LastName  *string `json:"lastName,omitempty"`
	Phone     *string `json:"phone,omitempty"`
}
