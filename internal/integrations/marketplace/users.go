package marketplace

import (
	"context"
	"net/http"

	"github.com/m04kA/SMC-MarketplaceBFF/internal/domain"
)

// UserAPI методы профиля пользователя
type UserAPI struct {
	client Doer
}

// NewUserAPI создает новый экземпляр UserAPI
func NewUserAPI(client Doer) *UserAPI {
	return &UserAPI{client: client}
}

// GetProfile GET /users/me
func (a *UserAPI) GetProfile(ctx context.Context) (*domain.User, error) {
	var user domain.User
	if err := a.client.Do(ctx, http.MethodGet, "/users/me", nil, nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateProfile PATCH /users/me
func (a *UserAPI) UpdateProfile(ctx context.Context, req UpdateProfileRequest) (*domain.User, error) {
	var user domain.User
	if err := a.client.Do(ctx, http.MethodPatch, "/users/me", nil, req, &user); err != nil {
		return nil, err
	}
	return &user, nil
}
