package engine

import "errors"

var (
	// ErrInvalidInput возвращается при некорректном запросе проверки доступности
	ErrInvalidInput = errors.New("engine: invalid input")

	// ErrInvalidTimeRange возвращается, когда начало окна не раньше его конца
	ErrInvalidTimeRange = errors.New("engine: invalid time range")
)

// Сообщения результата проверки доступности
const (
	MsgListingNotBookable = "listing not bookable"
	MsgWindowOverlaps     = "requested time overlaps an existing booking"
)
