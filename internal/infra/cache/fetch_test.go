package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

// memoryCache кэш в памяти для тестов
type memoryCache struct {
	values map[string][]byte
	getErr error
}

func newMemoryCache() *memoryCache {
	return &memoryCache{values: map[string][]byte{}}
}

func (m *memoryCache) Get(_ context.Context, key Key) ([]byte, bool, error) {
	if m.getErr != nil {
		return nil, false, m.getErr
	}
	v, ok := m.values[key.String()]
	return v, ok, nil
}

func (m *memoryCache) Set(_ context.Context, key Key, value []byte, _ time.Duration) error {
	m.values[key.String()] = value
	return nil
}

func (m *memoryCache) Invalidate(_ context.Context, prefix Key) error {
	for k := range m.values {
		if matchesPrefix(k, prefix) {
			delete(m.values, k)
		}
	}
	return nil
}

type item struct {
	ID string `json:"id"`
}

func TestFetch_LoadsOnceThenHits(t *testing.T) {
	c := newMemoryCache()
	key := NewKey("listings", "detail", "L1")
	calls := 0
	load := func(context.Context) (item, error) {
		calls++
		return item{ID: "L1"}, nil
	}

	first, err := Fetch(context.Background(), c, key, time.Minute, nopLogger{}, load)
	require.NoError(t, err)
	second, err := Fetch(context.Background(), c, key, time.Minute, nopLogger{}, load)
	require.NoError(t, err)

	assert.Equal(t, item{ID: "L1"}, first)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, calls)
}

func TestFetch_InvalidationForcesReload(t *testing.T) {
	c := newMemoryCache()
	key := NewKey("bookings", "vendor").Scoped("u1")
	calls := 0
	load := func(context.Context) ([]item, error) {
		calls++
		return []item{{ID: "b1"}}, nil
	}

	_, err := Fetch(context.Background(), c, key, time.Minute, nopLogger{}, load)
	require.NoError(t, err)
	InvalidateAll(context.Background(), c, nopLogger{}, NewKey("bookings").Scoped("u1"))
	_, err = Fetch(context.Background(), c, key, time.Minute, nopLogger{}, load)
	require.NoError(t, err)

	assert.Equal(t, 2, calls)
}

func TestFetch_CacheErrorFallsBackToLoad(t *testing.T) {
	c := newMemoryCache()
	c.getErr = errors.New("redis down")

	value, err := Fetch(context.Background(), c, NewKey("user"), time.Minute, nopLogger{}, func(context.Context) (item, error) {
		return item{ID: "u1"}, nil
	})

	require.NoError(t, err)
	assert.Equal(t, "u1", value.ID)
}

func TestFetch_UndecodableValueIsMiss(t *testing.T) {
	c := newMemoryCache()
	key := NewKey("user")
	c.values[key.String()] = []byte("not-json")

	value, err := Fetch(context.Background(), c, key, time.Minute, nopLogger{}, func(context.Context) (item, error) {
		return item{ID: "u1"}, nil
	})

	require.NoError(t, err)
	assert.Equal(t, "u1", value.ID)
	assert.JSONEq(t, `{"id":"u1"}`, string(c.values[key.String()]))
}

func TestFetch_LoadErrorNotCached(t *testing.T) {
	c := newMemoryCache()
	loadErr := errors.New("upstream")

	_, err := Fetch(context.Background(), c, NewKey("user"), time.Minute, nopLogger{}, func(context.Context) (item, error) {
		return item{}, loadErr
	})

	assert.ErrorIs(t, err, loadErr)
	assert.Empty(t, c.values)
}

func TestNoop(t *testing.T) {
	c := NewNoop()
	require.NoError(t, c.Set(context.Background(), NewKey("user"), []byte("{}"), time.Minute))

	_, ok, err := c.Get(context.Background(), NewKey("user"))
	require.NoError(t, err)
	assert.False(t, ok)
	assert.NoError(t, c.Invalidate(context.Background(), NewKey("user")))
}
