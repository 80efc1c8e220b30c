package marketplace

import (
	"context"
	"net/http"

	"github.com/m04kA/SMC-MarketplaceBFF/internal/domain"
)

const authPath = "/auth"

// AuthAPI методы аутентификации
type AuthAPI struct {
	client Doer
}

// NewAuthAPI создает новый экземпляр AuthAPI
func NewAuthAPI(client Doer) *AuthAPI {
	return &AuthAPI{client: client}
}

// Login POST /auth/login
func (a *AuthAPI) Login(ctx context.Context, req LoginRequest) (*AuthResult, error) {
	var result AuthResult
	if err := a.client.Do(ctx, http.MethodPost, authPath+"/login", nil, req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Register POST /auth/register
func (a *AuthAPI) Register(ctx context.Context, req RegisterRequest) (*AuthResult, error) {
	var result AuthResult
	if err := a.client.Do(ctx, http.MethodPost, authPath+"/register", nil, req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Me GET /auth/me
func (a *AuthAPI) Me(ctx context.Context) (*domain.User, error) {
	var user domain.User
	if err := a.client.Do(ctx, http.MethodGet, authPath+"/me", nil, nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Logout POST /auth/logout
func (a *AuthAPI) Logout(ctx context.Context) error {
	return a.client.Do(ctx, http.MethodPost, authPath+"/logout", nil, nil, nil)
}
