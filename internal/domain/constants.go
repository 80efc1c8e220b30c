package domain

import "time"

// Default pagination values
const (
	DefaultPage  = 1
	DefaultLimit = 20
	MaxLimit     = 100
)

// UpcomingWindow is the horizon of the "upcoming events" dashboard figure
const UpcomingWindow = 7 * 24 * time.Hour

// Display fallbacks for calendar entries
const (
	FallbackClientName = "Guest"
	FallbackTitle      = "Event Booking"
	FallbackLocation   = "Unknown"
	FallbackEventType  = "booking"
)

// Time format constants
const (
	TimeFormat  = "15:04"      // HH:MM
	DateFormat  = "2006-01-02" // YYYY-MM-DD
	MonthFormat = "2006-01"    // YYYY-MM
)

// ActiveStatuses statuses that occupy a listing's time
var ActiveStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
	StatusCompleted,
}
