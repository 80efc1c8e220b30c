package engine

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-MarketplaceBFF/internal/domain"
	"github.com/m04kA/SMC-MarketplaceBFF/pkg/types"
)

// window полуоткрытый интервал [start, end)
type window struct {
	start time.Time
	end   time.Time
}

// overlaps проверяет пересечение интервалов
// Граничащие интервалы (один заканчивается ровно там, где начинается другой) НЕ пересекаются
func (w window) overlaps(other window) bool {
	return w.start.Before(other.end) && other.start.Before(w.end)
}

// candidateWindow строит окно запроса на календарную дату
// Отсутствующее начало - 00:00, отсутствующий конец - 24:00
func candidateWindow(q domain.AvailabilityQuery) (window, error) {
	day := startOfDay(q.Date)
	w := window{start: day, end: day.AddDate(0, 0, 1)}

	if q.StartTime != nil {
		start, err := q.StartTime.On(day)
		if err != nil {
			return window{}, fmt.Errorf("%w: startTime: %v", ErrInvalidInput, err)
		}
		w.start = start
	}

	if q.EndTime != nil {
		end, err := q.EndTime.On(day)
		if err != nil {
			return window{}, fmt.Errorf("%w: endTime: %v", ErrInvalidInput, err)
		}
		w.end = end
	}

	if !w.start.Before(w.end) {
		return window{}, fmt.Errorf("%w: start %s is not before end %s",
			ErrInvalidTimeRange, w.start.Format(domain.TimeFormat), w.end.Format(domain.TimeFormat))
	}

	return w, nil
}

// bookingWindow строит окно существующего бронирования
// Бронирование без конца занимает день до полуночи; некорректный конец обрезается до конца дня начала
func bookingWindow(b *domain.Booking) window {
	start := b.StartsAt()
	dayEnd := startOfDay(start).AddDate(0, 0, 1)

	end, ok := b.EndsAt()
	if !ok || !end.After(start) {
		end = dayEnd
	}

	return window{start: start, end: end}
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// formatClock форматирует время как HH:MM
func formatClock(t time.Time) string {
	return types.NewTimeString(t).String()
}
