package create_booking

import (
	"time"

	"github.com/m04kA/SMC-MarketplaceBFF/internal/domain"
	"github.com/m04kA/SMC-MarketplaceBFF/pkg/types"
)

// Request модель запроса создания бронирования
type Request struct {
	ListingID  string            // ID объявления
	Date       time.Time         // Дата события (без времени)
	StartTime  *types.TimeString // Начало, nil - с начала дня
	EndTime    *types.TimeString // Конец, nil - до конца дня
	GuestCount int               // Количество гостей
	Notes      *string           // Пожелания клиента
}

// Response модель ответа
type Response struct {
	Booking *domain.Booking
}
