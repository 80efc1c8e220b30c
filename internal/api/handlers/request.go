package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/m04kA/SMC-MarketplaceBFF/internal/domain"
	"github.com/m04kA/SMC-MarketplaceBFF/internal/integrations/gateway"
	"github.com/m04kA/SMC-MarketplaceBFF/pkg/types"
)

const maxRequestBody = 1 << 20

// ErrInvalidParam возвращается при некорректном параметре запроса
var ErrInvalidParam = errors.New("invalid parameter")

// DecodeJSON декодирует тело запроса
// Пустое тело считается пустым объектом
func DecodeJSON(r *http.Request, v interface{}) error {
	if r.Body == nil {
		return nil
	}
	err := json.NewDecoder(io.LimitReader(r.Body, maxRequestBody)).Decode(v)
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

// ParseDate разбирает дату в формате YYYY-MM-DD
func ParseDate(field, value string) (time.Time, error) {
	date, err := time.Parse(domain.DateFormat, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %s must be YYYY-MM-DD", ErrInvalidParam, field)
	}
	return date, nil
}

// ParseTime разбирает необязательное время HH:MM
func ParseTime(field string, value *string) (*types.TimeString, error) {
	if value == nil || *value == "" {
		return nil, nil
	}
	t, err := types.NewTimeStringFromString(*value)
	if err != nil {
		return nil, fmt.Errorf("%w: %s must be HH:MM", ErrInvalidParam, field)
	}
	return &t, nil
}

// ParseEndTime парсит *string в *TimeString для конца интервала, "24:00" допустимо
func ParseEndTime(field string, value *string) (*types.TimeString, error) {
	if value == nil || *value == "" {
		return nil, nil
	}
	t, err := types.NewEndTimeStringFromString(*value)
	if err != nil {
		return nil, fmt.Errorf("%w: %s must be HH:MM or 24:00", ErrInvalidParam, field)
	}
	return &t, nil
}

// ParseBookingsFilter читает page, limit и status из query параметров
func ParseBookingsFilter(q url.Values) (domain.BookingsFilter, error) {
	page, limit, err := ParsePage(q)
	if err != nil {
		return domain.BookingsFilter{}, err
	}

	filter := domain.BookingsFilter{Page: page, Limit: limit}
	if raw := q.Get("status"); raw != "" {
		status := domain.BookingStatus(raw)
		if !status.IsValid() {
			return domain.BookingsFilter{}, fmt.Errorf("%w: unknown status %q", ErrInvalidParam, raw)
		}
		filter.Status = &status
	}

	return filter, nil
}

// ParsePage читает page и limit. Отсутствующие значения равны нулю, сервис подставит значения по умолчанию
func ParsePage(q url.Values) (page, limit int, err error) {
	if page, err = intParam(q, "page"); err != nil {
		return 0, 0, err
	}
	if limit, err = intParam(q, "limit"); err != nil {
		return 0, 0, err
	}
	return page, limit, nil
}

// UpstreamMessage сообщение API маркетплейса из цепочки ошибок или fallback
func UpstreamMessage(err error, fallback string) string {
	if msg := gateway.MessageOf(err); msg != "" {
		return msg
	}
	return fallback
}

func intParam(q url.Values, name string) (int, error) {
	raw := q.Get(name)
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		return 0, fmt.Errorf("%w: %s must be a non-negative integer", ErrInvalidParam, name)
	}
	return v, nil
}
