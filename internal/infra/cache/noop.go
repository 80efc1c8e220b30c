package cache

import (
	"context"
	"time"
)

// Noop кэш, который ничего не хранит. Используется, когда redis выключен
type Noop struct{}

// NewNoop создает новый экземпляр Noop
func NewNoop() Noop {
	return Noop{}
}

func (Noop) Get(context.Context, Key) ([]byte, bool, error) {
	return nil, false, nil
}

func (Noop) Set(context.Context, Key, []byte, time.Duration) error {
	return nil
}

func (Noop) Invalidate(context.Context, Key) error {
	return nil
}
