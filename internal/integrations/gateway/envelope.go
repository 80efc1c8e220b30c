package gateway

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Envelope единый формат ответа API
type Envelope struct {
	Status    bool            `json:"status"`
	Message   string          `json:"message"`
	Data      json.RawMessage `json:"data"`
	Version   string          `json:"version,omitempty"`
	Timestamp string          `json:"timestamp,omitempty"`
}

// rawEnvelope используется для строгой проверки наличия поля status
type rawEnvelope struct {
	Status    *bool           `json:"status"`
	Message   string          `json:"message"`
	Data      json.RawMessage `json:"data"`
	Version   string          `json:"version"`
	Timestamp string          `json:"timestamp"`
}

// DecodeEnvelope разбирает тело ответа
// Тело без поля status или не являющееся JSON объектом считается некорректным
func DecodeEnvelope(body []byte) (*Envelope, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return nil, fmt.Errorf("%w: body is not a JSON object", ErrInvalidResponse)
	}

	var raw rawEnvelope
	if err := json.Unmarshal(trimmed, &raw); err != nil {
		return nil, fmt.Errorf("%w: failed to decode envelope: %v", ErrInvalidResponse, err)
	}

	if raw.Status == nil {
		return nil, fmt.Errorf("%w: envelope has no status", ErrInvalidResponse)
	}

	return &Envelope{
		Status:    *raw.Status,
		Message:   raw.Message,
		Data:      raw.Data,
		Version:   raw.Version,
		Timestamp: raw.Timestamp,
	}, nil
}

// Unwrap декодирует data в out
// out == nil означает, что данные вызывающему не нужны
func (e *Envelope) Unwrap(out any) error {
	if out == nil {
		return nil
	}

	if len(e.Data) == 0 || bytes.Equal(bytes.TrimSpace(e.Data), []byte("null")) {
		return fmt.Errorf("%w: envelope has no data", ErrInvalidResponse)
	}

	if err := json.Unmarshal(e.Data, out); err != nil {
		return fmt.Errorf("%w: failed to decode data: %v", ErrInvalidResponse, err)
	}

	return nil
}
