package account

import (
	"context"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/m04kA/SMC-MarketplaceBFF/internal/domain"
	"github.com/m04kA/SMC-MarketplaceBFF/internal/infra/cache"
	"github.com/m04kA/SMC-MarketplaceBFF/internal/integrations/marketplace"
	"github.com/m04kA/SMC-MarketplaceBFF/internal/session"
)

const (
	rootUser       = "user"
	minPasswordLen = 8
)

// Service сервис учетной записи пользователя
type Service struct {
	auth   AuthAPI
	users  UserAPI
	cache  cache.Cache
	ttl    time.Duration
	logger Logger
}

// NewService создает новый экземпляр сервиса учетной записи
func NewService(auth AuthAPI, users UserAPI, c cache.Cache, ttl time.Duration, logger Logger) *Service {
	return &Service{
		auth:   auth,
		users:  users,
		cache:  c,
		ttl:    ttl,
		logger: logger,
	}
}

// Register регистрирует новый аккаунт
// Сессия не создается: после регистрации клиент выполняет вход
func (s *Service) Register(ctx context.Context, req marketplace.RegisterRequest) (*domain.User, error) {
	req.Email = strings.TrimSpace(req.Email)
	if _, err := mail.ParseAddress(req.Email); err != nil {
		return nil, fmt.Errorf("%w: invalid email", ErrInvalidInput)
	}
	if len(req.Password) < minPasswordLen {
		return nil, fmt.Errorf("%w: password must be at least %d characters", ErrInvalidInput, minPasswordLen)
	}
	if req.Role == domain.RoleAdmin {
		return nil, fmt.Errorf("%w: admin accounts cannot be self-registered", ErrInvalidInput)
	}

	result, err := s.auth.Register(session.WithSession(ctx, session.Anonymous()), req)
	if err != nil {
		s.logger.Warn("Register: api error for %s: %v", req.Email, err)
		return nil, mapError("Register", err)
	}

	s.logger.Info("Register: user id=%s registered", result.User.ID)
	return &result.User, nil
}

// Me текущий пользователь
func (s *Service) Me(ctx context.Context) (*domain.User, error) {
	sess, ok := session.FromContext(ctx)
	if !ok || !sess.IsAuthenticated() {
		return nil, ErrUnauthorized
	}

	user, err := cache.Fetch(ctx, s.cache, session.UserKey.Scoped(sess.Scope()), s.ttl, s.logger, s.auth.Me)
	if err != nil {
		s.logger.Warn("Me: failed to fetch user id=%s: %v", sess.UserID(), err)
		return nil, mapError("Me", err)
	}

	return user, nil
}

// GetProfile профиль текущего пользователя
func (s *Service) GetProfile(ctx context.Context) (*domain.User, error) {
	key := session.UserKey.Scoped(session.ScopeFromContext(ctx)).With("profile")

	user, err := cache.Fetch(ctx, s.cache, key, s.ttl, s.logger, s.users.GetProfile)
	if err != nil {
		s.logger.Warn("GetProfile: failed to fetch profile: %v", err)
		return nil, mapError("GetProfile", err)
	}

	return user, nil
}

// UpdateProfile изменяет профиль текущего пользователя
func (s *Service) UpdateProfile(ctx context.Context, req marketplace.UpdateProfileRequest) (*domain.User, error) {
	if req.FirstName != nil && strings.TrimSpace(*req.FirstName) == "" {
		return nil, fmt.Errorf("%w: firstName must not be empty", ErrInvalidInput)
	}
	if req.LastName != nil && strings.TrimSpace(*req.LastName) == "" {
		return nil, fmt.Errorf("%w: lastName must not be empty", ErrInvalidInput)
	}

	user, err := s.users.UpdateProfile(ctx, req)
	if err != nil {
		s.logger.Warn("UpdateProfile: api error: %v", err)
		return nil, mapError("UpdateProfile", err)
	}

	cache.InvalidateAll(ctx, s.cache, s.logger, cache.ScopedKey(session.ScopeFromContext(ctx), rootUser))
	return user, nil
}
