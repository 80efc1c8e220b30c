package session

import "context"

type contextKey struct{}

// WithSession кладет сессию в контекст
func WithSession(ctx context.Context, s *Session) context.Context {
	return context.WithValue(ctx, contextKey{}, s)
}

// FromContext достает сессию из контекста
func FromContext(ctx context.Context) (*Session, bool) {
	s, ok := ctx.Value(contextKey{}).(*Session)
	return s, ok && s != nil
}

// ScopeFromContext возвращает область ключей кэша для сессии из контекста
func ScopeFromContext(ctx context.Context) string {
	s, ok := FromContext(ctx)
	if !ok {
		return Anonymous().Scope()
	}
	return s.Scope()
}

// ContextTokens источник токена для gateway.Client, читающий сессию из контекста запроса
type ContextTokens struct{}

// Token возвращает токен текущей сессии
func (ContextTokens) Token(ctx context.Context) (string, bool) {
	s, ok := FromContext(ctx)
	if !ok || s.Token == "" {
		return "", false
	}
	return s.Token, true
}
