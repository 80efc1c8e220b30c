package domain

import "time"

// PaymentStatus represents the state of a payment attempt
type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "PENDING"
	PaymentSuccess  PaymentStatus = "SUCCESS"
	PaymentFailed   PaymentStatus = "FAILED"
	PaymentRefunded PaymentStatus = "REFUNDED"
)

// PaymentType distinguishes a deposit from the full payment
type PaymentType string

const (
	PaymentDeposit PaymentType = "DEPOSIT"
	PaymentFull    PaymentType = "FULL"
)

// Payment represents a payment against a booking
type Payment struct {
	ID               string        `json:"id"`
	BookingID        string        `json:"bookingId"`
	Amount           float64       `json:"amount"`
	Currency         string        `json:"currency"`
	Type             PaymentType   `json:"type"`
	Status           PaymentStatus `json:"status"`
	Reference        string        `json:"reference"`
	AuthorizationURL string        `json:"authorizationUrl,omitempty"`
	PaidAt           *time.Time    `json:"paidAt,omitempty"`
	CreatedAt        time.Time     `json:"createdAt"`
}
