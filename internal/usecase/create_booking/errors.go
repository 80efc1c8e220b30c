package create_booking

import "errors"

var (
	// ErrListingNotFound возвращается, когда объявление не найдено
	ErrListingNotFound = errors.New("create_booking: listing not found")

	// ErrListingNotBookable возвращается, когда объявление не принимает бронирования
	ErrListingNotBookable = errors.New("create_booking: listing is not bookable")

	// ErrInvalidDate возвращается при некорректной дате бронирования
	ErrInvalidDate = errors.New("create_booking: invalid booking date")

	// ErrInvalidTimeRange возвращается, когда начало окна не раньше его конца
	ErrInvalidTimeRange = errors.New("create_booking: invalid time range")

	// ErrSlotNotAvailable возвращается, когда выбранное время уже занято
	ErrSlotNotAvailable = errors.New("create_booking: slot is not available")

	// ErrUnauthorized возвращается, когда для бронирования нужна авторизация
	ErrUnauthorized = errors.New("create_booking: authentication required")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
