package session

import "errors"

var (
	// ErrInvalidCredentials возвращается при неверном логине или пароле
	ErrInvalidCredentials = errors.New("session: invalid credentials")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("session: invalid input data")

	// ErrUnavailable возвращается, когда API маркетплейса недоступно
	ErrUnavailable = errors.New("session: marketplace api unavailable")

	// ErrInternal возвращается при внутренних ошибках
	ErrInternal = errors.New("session: internal error")
)
