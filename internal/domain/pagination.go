package domain

import "encoding/json"

// Paginated is the shape of paginated API responses. Meta is passed through untouched.
type Paginated[T any] struct {
	Data []T            `json:"data"`
	Meta json.RawMessage `json:"meta,omitempty"`
}
