package domain

import "time"

// ListingStatus represents the moderation status of a listing
type ListingStatus string

const (
	ListingActive   ListingStatus = "ACTIVE"
	ListingInactive ListingStatus = "INACTIVE"
	ListingPending  ListingStatus = "PENDING"
)

// ListingType distinguishes venues from event services
type ListingType string

const (
	ListingVenue   ListingType = "VENUE"
	ListingService ListingType = "SERVICE"
)

// Listing represents a bookable venue or service offered by a vendor
type Listing struct {
	ID          string         `json:"id"`
	VendorID    string         `json:"vendorId"`
	Vendor      *VendorSummary `json:"vendor,omitempty"`
	Title       string         `json:"title"`
	Description string         `json:"description,omitempty"`
	Type        ListingType    `json:"type"`
	Category    string         `json:"category,omitempty"`
	City        string         `json:"city,omitempty"`
	Address     string         `json:"address,omitempty"`
	BasePrice   float64        `json:"basePrice"`
	Currency    string         `json:"currency"`
	Capacity    int            `json:"capacity,omitempty"`
	Images      []string       `json:"images,omitempty"`
	Status      ListingStatus  `json:"status"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
}

// IsBookable returns true if the listing accepts bookings
func (l *Listing) IsBookable() bool {
	return l.Status == ListingActive
}

// ListingSummary is the listing shape embedded into bookings
type ListingSummary struct {
	ID    string      `json:"id"`
	Title string      `json:"title"`
	Type  ListingType `json:"type,omitempty"`
	City  string      `json:"city,omitempty"`
}

// ListingsFilter параметры каталога объявлений
type ListingsFilter struct {
	Page   int
	Limit  int
	Type   *ListingType
	City   string
	Search string
}
