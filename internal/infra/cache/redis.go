package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	resultHit   = "hit"
	resultMiss  = "miss"
	resultError = "error"
)

// Redis кэш на redis
// Значения хранятся под q:<scope>:<parts...>, а для каждого корня ведется множество
// qidx:<scope>:<root> с ключами значений, по которому выполняется инвалидация по префиксу
type Redis struct {
	client  *redis.Client
	metrics Metrics
}

// NewRedis создает новый экземпляр кэша
func NewRedis(client *redis.Client, metrics Metrics) *Redis {
	return &Redis{
		client:  client,
		metrics: metrics,
	}
}

// Get возвращает значение и признак попадания
func (c *Redis) Get(ctx context.Context, key Key) ([]byte, bool, error) {
	if len(key.Parts) == 0 {
		return nil, false, ErrInvalidKey
	}

	value, err := c.client.Get(ctx, key.String()).Bytes()
	if errors.Is(err, redis.Nil) {
		c.observe(resultMiss)
		return nil, false, nil
	}
	if err != nil {
		c.observe(resultError)
		return nil, false, fmt.Errorf("%w: get %s: %v", ErrCache, key, err)
	}

	c.observe(resultHit)
	return value, true, nil
}

// Set сохраняет значение и регистрирует ключ в индексе корня
func (c *Redis) Set(ctx context.Context, key Key, value []byte, ttl time.Duration) error {
	if len(key.Parts) == 0 {
		return ErrInvalidKey
	}

	if err := c.client.Set(ctx, key.String(), value, ttl).Err(); err != nil {
		return fmt.Errorf("%w: set %s: %v", ErrCache, key, err)
	}

	index := key.indexKey()
	if err := c.client.SAdd(ctx, index, key.String()).Err(); err != nil {
		return fmt.Errorf("%w: index %s: %v", ErrCache, index, err)
	}

	// Индекс живет не меньше последнего записанного значения
	if ttl > 0 {
		if err := c.client.Expire(ctx, index, ttl).Err(); err != nil {
			return fmt.Errorf("%w: expire %s: %v", ErrCache, index, err)
		}
	}

	return nil
}

// Invalidate удаляет все значения, ключи которых начинаются с prefix
func (c *Redis) Invalidate(ctx context.Context, prefix Key) error {
	if len(prefix.Parts) == 0 {
		return ErrInvalidKey
	}

	index := prefix.indexKey()
	members, err := c.client.SMembers(ctx, index).Result()
	if err != nil {
		return fmt.Errorf("%w: members %s: %v", ErrCache, index, err)
	}

	matched := make([]string, 0, len(members))
	for _, member := range members {
		if matchesPrefix(member, prefix) {
			matched = append(matched, member)
		}
	}

	if c.metrics != nil {
		c.metrics.ObserveInvalidation(prefix.Root())
	}

	if len(matched) == 0 {
		return nil
	}

	if err := c.client.Del(ctx, matched...).Err(); err != nil {
		return fmt.Errorf("%w: del: %v", ErrCache, err)
	}

	removed := make([]interface{}, len(matched))
	for i, member := range matched {
		removed[i] = member
	}
	if err := c.client.SRem(ctx, index, removed...).Err(); err != nil {
		return fmt.Errorf("%w: srem %s: %v", ErrCache, index, err)
	}

	return nil
}

func (c *Redis) observe(result string) {
	if c.metrics != nil {
		c.metrics.ObserveCache(result)
	}
}
