package domain

// CalendarStatus is the display status of a calendar entry
type CalendarStatus string

const (
	CalendarConfirmed CalendarStatus = "confirmed"
	CalendarPending   CalendarStatus = "pending"
	CalendarInquiry   CalendarStatus = "inquiry"
)

// CalendarEvent is a display-ready calendar entry built from a booking
type CalendarEvent struct {
	ID         string         `json:"id"`
	Title      string         `json:"title"`
	Date       string         `json:"date"`
	TimeRange  string         `json:"time"`
	Location   string         `json:"location"`
	Type       string         `json:"type"`
	Status     CalendarStatus `json:"status"`
	ClientName string         `json:"clientName"`
	TotalCost  float64        `json:"totalCost"`
	PaidAmount float64        `json:"paidAmount"`
}
