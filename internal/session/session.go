package session

import (
	"time"

	"github.com/m04kA/SMC-MarketplaceBFF/internal/domain"
	"github.com/m04kA/SMC-MarketplaceBFF/internal/infra/cache"
)

// State состояние сессии
type State string

const (
	StateAnonymous     State = "anonymous"
	StateAuthenticated State = "authenticated"
)

// Session контекст сессии пользователя
// Передается через context.Context в клиент API и слой сервисов
type Session struct {
	ID        string
	Token     string
	User      *domain.User
	State     State
	CreatedAt time.Time
	ExpiresAt time.Time
}

// Anonymous возвращает сессию без пользователя
func Anonymous() *Session {
	return &Session{State: StateAnonymous}
}

// IsAuthenticated возвращает true, если токен загружен и пользователь получен
func (s *Session) IsAuthenticated() bool {
	return s != nil && s.State == StateAuthenticated && s.User != nil
}

// UserID возвращает ID пользователя или пустую строку
func (s *Session) UserID() string {
	if !s.IsAuthenticated() {
		return ""
	}
	return s.User.ID
}

// Scope возвращает область ключей кэша для сессии
func (s *Session) Scope() string {
	if id := s.UserID(); id != "" {
		return id
	}
	return cache.PublicScope
}
