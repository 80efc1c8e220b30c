package session

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-MarketplaceBFF/internal/domain"
	"github.com/m04kA/SMC-MarketplaceBFF/internal/infra/cache"
	storage "github.com/m04kA/SMC-MarketplaceBFF/internal/infra/storage/session"
	"github.com/m04kA/SMC-MarketplaceBFF/internal/integrations/gateway"
	"github.com/m04kA/SMC-MarketplaceBFF/internal/integrations/marketplace"
)

// UserKey ключ кэша текущего пользователя
var UserKey = cache.NewKey("user")

// Manager управляет жизненным циклом сессии:
// init (загрузка токена) -> authenticated (токен есть, пользователь получен) -> teardown (logout)
type Manager struct {
	store        Store
	auth         AuthAPI
	cache        cache.Cache
	ttl          time.Duration
	userTTL      time.Duration
	timeProvider TimeProvider
	logger       Logger
}

// NewManager создает новый менеджер сессий
func NewManager(store Store, auth AuthAPI, c cache.Cache, ttl, userTTL time.Duration, logger Logger) *Manager {
	return &Manager{
		store:        store,
		auth:         auth,
		cache:        c,
		ttl:          ttl,
		userTTL:      userTTL,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// WithTimeProvider подменяет источник времени
func (m *Manager) WithTimeProvider(tp TimeProvider) *Manager {
	m.timeProvider = tp
	return m
}

// Init восстанавливает сессию по ID
// Неизвестная, истекшая или отозванная сессия превращается в анонимную
func (m *Manager) Init(ctx context.Context, id string) (*Session, error) {
	if id == "" {
		return Anonymous(), nil
	}

	now := m.timeProvider.Now()

	record, err := m.store.GetByID(ctx, id, now)
	if err != nil {
		if errors.Is(err, storage.ErrSessionNotFound) {
			return Anonymous(), nil
		}
		m.logger.Error("Session: failed to load session id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: failed to load session: %v", ErrInternal, err)
	}

	if exp, ok := tokenExpiry(record.Token); ok && !exp.After(now) {
		m.logger.Info("Session: token of session id=%s expired at %s", id, exp.Format(time.RFC3339))
		m.teardown(ctx, record.ID, record.UserID)
		return Anonymous(), nil
	}

	s := &Session{
		ID:        record.ID,
		Token:     record.Token,
		State:     StateAnonymous,
		CreatedAt: record.CreatedAt,
		ExpiresAt: record.ExpiresAt,
	}

	scope := record.UserID
	if scope == "" {
		scope = record.ID
	}

	user, err := cache.Fetch(WithSession(ctx, s), m.cache, UserKey.Scoped(scope), m.userTTL, m.logger, m.fetchUser)
	if err != nil {
		if errors.Is(err, gateway.ErrUnauthorized) {
			m.logger.Info("Session: token of session id=%s rejected by api", id)
			m.teardown(ctx, record.ID, record.UserID)
			return Anonymous(), nil
		}
		m.logger.Error("Session: failed to fetch user for session id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: failed to fetch user: %v", ErrUnavailable, err)
	}

	s.User = user
	s.State = StateAuthenticated
	return s, nil
}

// Login выполняет вход и создает новую сессию
func (m *Manager) Login(ctx context.Context, email, password string) (*Session, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return nil, fmt.Errorf("%w: email and password are required", ErrInvalidInput)
	}

	// Вход выполняется без токена предыдущей сессии
	result, err := m.auth.Login(WithSession(ctx, Anonymous()), marketplace.LoginRequest{Email: email, Password: password})
	if err != nil {
		if errors.Is(err, gateway.ErrUnauthorized) || errors.Is(err, gateway.ErrBadRequest) || errors.Is(err, gateway.ErrRejected) {
			m.logger.Warn("Session: login rejected for %s: %v", email, err)
			return nil, ErrInvalidCredentials
		}
		m.logger.Error("Session: login failed for %s: %v", email, err)
		return nil, fmt.Errorf("%w: login failed: %v", ErrUnavailable, err)
	}

	if result.Token == "" {
		return nil, fmt.Errorf("%w: api returned empty token", ErrUnavailable)
	}

	now := m.timeProvider.Now()
	expiresAt := now.Add(m.ttl)
	if exp, ok := tokenExpiry(result.Token); ok && exp.Before(expiresAt) {
		expiresAt = exp
	}

	user := result.User
	record := &storage.Record{
		ID:        uuid.NewString(),
		Token:     result.Token,
		UserID:    user.ID,
		CreatedAt: now,
		ExpiresAt: expiresAt,
	}

	if err := m.store.Save(ctx, record); err != nil {
		m.logger.Error("Session: failed to save session for user id=%s: %v", user.ID, err)
		return nil, fmt.Errorf("%w: failed to save session: %v", ErrInternal, err)
	}

	cache.InvalidateAll(ctx, m.cache, m.logger, UserKey.Scoped(user.ID))

	m.logger.Info("Session: user id=%s logged in, session id=%s", user.ID, record.ID)

	return &Session{
		ID:        record.ID,
		Token:     record.Token,
		User:      &user,
		State:     StateAuthenticated,
		CreatedAt: record.CreatedAt,
		ExpiresAt: record.ExpiresAt,
	}, nil
}

// Logout завершает сессию
// Ошибка API при выходе не мешает удалить сессию локально
func (m *Manager) Logout(ctx context.Context, s *Session) error {
	if s == nil || s.ID == "" {
		return nil
	}

	if err := m.auth.Logout(WithSession(ctx, s)); err != nil {
		m.logger.Warn("Session: api logout failed for session id=%s: %v", s.ID, err)
	}

	if err := m.store.Delete(ctx, s.ID); err != nil {
		m.logger.Error("Session: failed to delete session id=%s: %v", s.ID, err)
		return fmt.Errorf("%w: failed to delete session: %v", ErrInternal, err)
	}

	cache.InvalidateAll(ctx, m.cache, m.logger, UserKey.Scoped(s.Scope()))

	m.logger.Info("Session: session id=%s logged out", s.ID)
	return nil
}

// Cleanup удаляет истекшие сессии
func (m *Manager) Cleanup(ctx context.Context) (int64, error) {
	removed, err := m.store.DeleteExpired(ctx, m.timeProvider.Now())
	if err != nil {
		return 0, fmt.Errorf("%w: failed to delete expired sessions: %v", ErrInternal, err)
	}
	return removed, nil
}

func (m *Manager) fetchUser(ctx context.Context) (*domain.User, error) {
	return m.auth.Me(ctx)
}

func (m *Manager) teardown(ctx context.Context, id, userID string) {
	if err := m.store.Delete(ctx, id); err != nil {
		m.logger.Warn("Session: failed to delete session id=%s: %v", id, err)
	}
	if userID != "" {
		cache.InvalidateAll(ctx, m.cache, m.logger, UserKey.Scoped(userID))
	}
}
