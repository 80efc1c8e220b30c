package engine

import (
	"strings"

	"github.com/m04kA/SMC-MarketplaceBFF/internal/domain"
)

// MapBookingToCalendarEvent приводит бронирование к записи календаря
func MapBookingToCalendarEvent(b domain.Booking) domain.CalendarEvent {
	event := domain.CalendarEvent{
		ID:         b.ID,
		Title:      domain.FallbackTitle,
		Date:       b.Day().Format(domain.DateFormat),
		TimeRange:  timeRangeLabel(&b),
		Location:   domain.FallbackLocation,
		Type:       domain.FallbackEventType,
		Status:     calendarStatus(b.Status),
		ClientName: domain.FallbackClientName,
		TotalCost:  b.TotalAmount,
		PaidAmount: paidAmount(&b),
	}

	if b.Listing != nil {
		if b.Listing.Title != "" {
			event.Title = b.Listing.Title
		}
		if b.Listing.City != "" {
			event.Location = b.Listing.City
		}
		if b.Listing.Type != "" {
			event.Type = strings.ToLower(string(b.Listing.Type))
		}
	}

	if b.Customer != nil && b.Customer.Name != "" {
		event.ClientName = b.Customer.Name
	}

	return event
}

// MapBookingsToCalendar приводит коллекцию бронирований к записям календаря
func MapBookingsToCalendar(bookings []domain.Booking) []domain.CalendarEvent {
	events := make([]domain.CalendarEvent, 0, len(bookings))
	for _, b := range bookings {
		events = append(events, MapBookingToCalendarEvent(b))
	}
	return events
}

// calendarStatus сворачивает CANCELLED и COMPLETED в inquiry, как это делает текущий фронтенд
// TODO: развести cancelled/completed в отдельные статусы после согласования с продуктом
func calendarStatus(status domain.BookingStatus) domain.CalendarStatus {
	switch status {
	case domain.StatusConfirmed:
		return domain.CalendarConfirmed
	case domain.StatusPending:
		return domain.CalendarPending
	default:
		return domain.CalendarInquiry
	}
}

// paidAmount: полная оплата важнее депозита
func paidAmount(b *domain.Booking) float64 {
	switch {
	case b.FullPaymentPaid:
		return b.TotalAmount
	case b.DepositPaid && b.DepositAmount != nil:
		return *b.DepositAmount
	default:
		return 0
	}
}

func timeRangeLabel(b *domain.Booking) string {
	start := formatClock(b.StartsAt())
	if end, ok := b.EndsAt(); ok {
		return start + " - " + formatClock(end)
	}
	return start
}
