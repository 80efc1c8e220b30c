package cache

import "strings"

const (
	// PublicScope область ключей, не зависящих от пользователя
	PublicScope = "public"

	valuePrefix = "q"
	indexPrefix = "qidx"
	separator   = ":"
)

// Key ключ запроса, например {"bookings","vendor","page","1"}
// Первая часть ключа является корнем, по которому строится индекс для инвалидации
type Key struct {
	Scope string
	Parts []string
}

// NewKey создает ключ в публичной области
func NewKey(parts ...string) Key {
	return Key{Scope: PublicScope, Parts: parts}
}

// Scoped возвращает копию ключа в области пользователя
func (k Key) Scoped(scope string) Key {
	if scope == "" {
		scope = PublicScope
	}
	parts := make([]string, len(k.Parts))
	copy(parts, k.Parts)
	return Key{Scope: scope, Parts: parts}
}

// With возвращает ключ, дополненный частями
func (k Key) With(parts ...string) Key {
	joined := make([]string, 0, len(k.Parts)+len(parts))
	joined = append(joined, k.Parts...)
	joined = append(joined, parts...)
	return Key{Scope: k.Scope, Parts: joined}
}

// Root возвращает корень ключа
func (k Key) Root() string {
	if len(k.Parts) == 0 {
		return ""
	}
	return k.Parts[0]
}

// String возвращает ключ redis для значения
func (k Key) String() string {
	return valuePrefix + separator + k.Scope + separator + strings.Join(k.Parts, separator)
}

func (k Key) indexKey() string {
	return indexPrefix + separator + k.Scope + separator + k.Root()
}

// HasPrefix проверяет, что ключ начинается с prefix (по частям, в той же области)
func (k Key) HasPrefix(prefix Key) bool {
	if k.Scope != prefix.Scope || len(prefix.Parts) > len(k.Parts) {
		return false
	}
	for i, part := range prefix.Parts {
		if k.Parts[i] != part {
			return false
		}
	}
	return true
}

func matchesPrefix(member string, prefix Key) bool {
	p := prefix.String()
	return member == p || strings.HasPrefix(member, p+separator)
}

// ScopedKey создает ключ в области scope
func ScopedKey(scope string, parts ...string) Key {
	return NewKey(parts...).Scoped(scope)
}
