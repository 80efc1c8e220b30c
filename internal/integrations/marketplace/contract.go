package marketplace

import (
	"context"
	"net/url"
)

// Doer исполнитель запросов к API маркетплейса (gateway.Client)
type Doer interface {
	Do(ctx context.Context, method, path string, query url.Values, body, out any) error
}
