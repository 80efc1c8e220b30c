package gateway

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrTransport возвращается при сетевых ошибках и таймаутах
	ErrTransport = errors.New("gateway: transport error")

	// ErrInvalidResponse возвращается, когда ответ не соответствует формату конверта
	ErrInvalidResponse = errors.New("gateway: invalid response")

	// ErrRejected возвращается, когда API ответило status=false
	ErrRejected = errors.New("gateway: request rejected")

	// ErrBadRequest возвращается при 400/422
	ErrBadRequest = errors.New("gateway: bad request")

	// ErrUnauthorized возвращается при 401
	ErrUnauthorized = errors.New("gateway: unauthorized")

	// ErrForbidden возвращается при 403
	ErrForbidden = errors.New("gateway: forbidden")

	// ErrNotFound возвращается при 404
	ErrNotFound = errors.New("gateway: not found")

	// ErrConflict возвращается при 409
	ErrConflict = errors.New("gateway: conflict")

	// ErrUpstream возвращается при 5xx и прочих неожиданных статусах
	ErrUpstream = errors.New("gateway: upstream error")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("gateway: internal error")
)

// APIError ошибка, полученная от API, с кодом ответа и сообщением из конверта
type APIError struct {
	StatusCode int
	Message    string
	kind       error
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("%v (status %d)", e.kind, e.StatusCode)
	}
	return fmt.Sprintf("%v (status %d): %s", e.kind, e.StatusCode, e.Message)
}

// Unwrap позволяет использовать errors.Is с sentinel ошибками пакета
func (e *APIError) Unwrap() error {
	return e.kind
}

// NewAPIError сопоставляет HTTP статус с sentinel ошибкой
func NewAPIError(statusCode int, message string) *APIError {
	var kind error
	switch {
	case statusCode == http.StatusBadRequest, statusCode == http.StatusUnprocessableEntity:
		kind = ErrBadRequest
	case statusCode == http.StatusUnauthorized:
		kind = ErrUnauthorized
	case statusCode == http.StatusForbidden:
		kind = ErrForbidden
	case statusCode == http.StatusNotFound:
		kind = ErrNotFound
	case statusCode == http.StatusConflict:
		kind = ErrConflict
	case statusCode >= 200 && statusCode < 300:
		kind = ErrRejected
	default:
		kind = ErrUpstream
	}
	return &APIError{StatusCode: statusCode, Message: message, kind: kind}
}

// MessageOf возвращает сообщение API из цепочки ошибок, если оно есть
func MessageOf(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	return ""
}
