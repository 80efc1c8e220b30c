package cache

import (
	"context"
	"encoding/json"
	"time"
)

// Fetch возвращает значение из кэша или загружает его через load и сохраняет
// Ошибки кэша логируются и не прерывают запрос, ошибки load возвращаются как есть
func Fetch[T any](ctx context.Context, c Cache, key Key, ttl time.Duration, log Logger, load func(ctx context.Context) (T, error)) (T, error) {
	raw, ok, err := c.Get(ctx, key)
	if err != nil {
		log.Warn("Cache: failed to read %s: %v", key, err)
	}

	if ok {
		var cached T
		if err := json.Unmarshal(raw, &cached); err == nil {
			return cached, nil
		}
		log.Warn("Cache: dropping undecodable value %s", key)
	}

	value, err := load(ctx)
	if err != nil {
		return value, err
	}

	payload, err := json.Marshal(value)
	if err != nil {
		log.Warn("Cache: failed to encode %s: %v", key, err)
		return value, nil
	}

	if err := c.Set(ctx, key, payload, ttl); err != nil {
		log.Warn("Cache: failed to write %s: %v", key, err)
	}

	return value, nil
}

// InvalidateAll инвалидирует набор префиксов, ошибки логируются
func InvalidateAll(ctx context.Context, c Cache, log Logger, prefixes ...Key) {
	for _, prefix := range prefixes {
		if err := c.Invalidate(ctx, prefix); err != nil {
			log.Error("Cache: failed to invalidate %s: %v", prefix, err)
		}
	}
}
