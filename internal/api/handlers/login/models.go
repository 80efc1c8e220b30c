package login

import (
	"time"

	"github.com/m04kA/SMC-MarketplaceBFF/internal/domain"
	"github.com/m04kA/SMC-MarketplaceBFF/internal/session"
)

// LoginRequest HTTP request model
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse HTTP response model
// Токен API клиенту не отдается, он хранится только в сессии BFF
type LoginResponse struct {
	SessionID string       `json:"sessionId"`
	ExpiresAt string       `json:"expiresAt"`
	User      *domain.User `json:"user"`
}

// FromSession конвертирует сессию в HTTP response
func FromSession(s *session.Session) *LoginResponse {
	return &LoginResponse{
		SessionID: s.ID,
		ExpiresAt: s.ExpiresAt.UTC().Format(time.RFC3339),
		User:      s.User,
	}
}
