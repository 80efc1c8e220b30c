package get_calendar

import "github.com/m04kA/SMC-MarketplaceBFF/internal/domain"

// Request модель запроса календаря
type Request struct {
	Month  *string               // Месяц YYYY-MM, nil - все бронирования
	Status *domain.BookingStatus // Фильтр по статусу бронирования
}

// Response модель ответа
type Response struct {
	Events []domain.CalendarEvent
}
