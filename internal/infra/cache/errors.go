package cache

import "errors"

var (
	// ErrCache возвращается при ошибках хранилища кэша
	ErrCache = errors.New("cache: storage error")

	// ErrInvalidKey возвращается для ключа без частей
	ErrInvalidKey = errors.New("cache: invalid key")
)
