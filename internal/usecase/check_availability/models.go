package check_availability

import (
	"time"

	"github.com/m04kA/SMC-MarketplaceBFF/pkg/types"
)

// Source откуда получен ответ о доступности
type Source string

const (
	SourceLocal  Source = "local"
	SourceServer Source = "server"
)

// Request модель запроса проверки доступности
type Request struct {
	ListingID string            // ID объявления
	Date      time.Time         // Дата события (без времени)
	StartTime *types.TimeString // Начало окна, nil - с начала дня
	EndTime   *types.TimeString // Конец окна, nil - до конца дня
	Confirm   bool              // Подтвердить свободное окно проверкой на стороне API
}

// Response модель ответа
type Response struct {
	Available bool
	Message   string
	Source    Source
}
