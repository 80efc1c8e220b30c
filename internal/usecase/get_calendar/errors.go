package get_calendar

import "errors"

var (
	// ErrInvalidMonth возвращается при месяце не в формате YYYY-MM
	ErrInvalidMonth = errors.New("get_calendar: invalid month")

	// ErrInvalidStatus возвращается при неизвестном статусе бронирования
	ErrInvalidStatus = errors.New("get_calendar: invalid status")

	// ErrAccessDenied возвращается, когда пользователь не является вендором
	ErrAccessDenied = errors.New("get_calendar: access denied")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_calendar: internal error")
)
