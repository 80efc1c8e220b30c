package domain

import "time"

// VendorStatus represents the verification status of a vendor account
type VendorStatus string

const (
	VendorPending  VendorStatus = "PENDING"
	VendorVerified VendorStatus = "VERIFIED"
	VendorRejected VendorStatus = "REJECTED"
)

// Vendor represents a service-provider account that owns listings
type Vendor struct {
	ID           string       `json:"id"`
	UserID       string       `json:"userId"`
	BusinessName string       `json:"businessName"`
	Description  string       `json:"description,omitempty"`
	Phone        string       `json:"phone,omitempty"`
	City         string       `json:"city,omitempty"`
	Status       VendorStatus `json:"status"`
	CreatedAt    time.Time    `json:"createdAt"`
	UpdatedAt    time.Time    `json:"updatedAt"`
}

// VendorSummary is the vendor shape embedded into listings
type VendorSummary struct {
	ID           string `json:"id"`
	BusinessName string `json:"businessName"`
}
