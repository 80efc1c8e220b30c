package get_dashboard_stats

import "errors"

var (
	// ErrInvalidScope возвращается при неизвестной области статистики
	ErrInvalidScope = errors.New("get_dashboard_stats: invalid scope")

	// ErrAccessDenied возвращается, когда API не выдает бронирования для этой области
	ErrAccessDenied = errors.New("get_dashboard_stats: access denied")

	// ErrTooManyBookings возвращается, когда коллекция не помещается в лимит страниц
	ErrTooManyBookings = errors.New("get_dashboard_stats: too many bookings")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_dashboard_stats: internal error")
)
