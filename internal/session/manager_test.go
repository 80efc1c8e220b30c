package session_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-MarketplaceBFF/internal/domain"
	"github.com/m04kA/SMC-MarketplaceBFF/internal/infra/cache"
	storage "github.com/m04kA/SMC-MarketplaceBFF/internal/infra/storage/session"
	"github.com/m04kA/SMC-MarketplaceBFF/internal/integrations/gateway"
	"github.com/m04kA/SMC-MarketplaceBFF/internal/integrations/marketplace"
	"github.com/m04kA/SMC-MarketplaceBFF/internal/session"
	"github.com/m04kA/SMC-MarketplaceBFF/internal/session/mocks"
)

var now = time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)

type fixedTime struct{ t time.Time }

func (f fixedTime) Now() time.Time { return f.t }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func signedToken(t *testing.T, exp time.Time) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "u1",
		ExpiresAt: jwt.NewNumericDate(exp),
	}).SignedString([]byte("test-key"))
	require.NoError(t, err)
	return token
}

func newManager(store *mocks.Store, auth *mocks.AuthAPI) *session.Manager {
	return session.NewManager(store, auth, cache.NewNoop(), 24*time.Hour, time.Minute, nopLogger{}).
		WithTimeProvider(fixedTime{t: now})
}

func tokenOf(ctx context.Context) string {
	token, _ := session.ContextTokens{}.Token(ctx)
	return token
}

func TestManager_Init_EmptyIDIsAnonymous(t *testing.T) {
	m := newManager(mocks.NewStore(t), mocks.NewAuthAPI(t))

	s, err := m.Init(context.Background(), "")

	require.NoError(t, err)
	assert.Equal(t, session.StateAnonymous, s.State)
	assert.False(t, s.IsAuthenticated())
	assert.Equal(t, cache.PublicScope, s.Scope())
}

func TestManager_Init_UnknownSession(t *testing.T) {
	store := mocks.NewStore(t)
	store.On("GetByID", mock.Anything, "missing", now).Return(nil, storage.ErrSessionNotFound)

	s, err := newManager(store, mocks.NewAuthAPI(t)).Init(context.Background(), "missing")

	require.NoError(t, err)
	assert.Equal(t, session.StateAnonymous, s.State)
}

func TestManager_Init_Authenticated(t *testing.T) {
	store := mocks.NewStore(t)
	auth := mocks.NewAuthAPI(t)
	token := signedToken(t, now.Add(time.Hour))

	store.On("GetByID", mock.Anything, "s1", now).Return(&storage.Record{
		ID: "s1", Token: token, UserID: "u1", CreatedAt: now.Add(-time.Hour), ExpiresAt: now.Add(time.Hour),
	}, nil)
	auth.On("Me", mock.MatchedBy(func(ctx context.Context) bool { return tokenOf(ctx) == token })).
		Return(&domain.User{ID: "u1", Role: domain.RoleVendor}, nil)

	s, err := newManager(store, auth).Init(context.Background(), "s1")

	require.NoError(t, err)
	assert.True(t, s.IsAuthenticated())
	assert.Equal(t, "u1", s.UserID())
	assert.Equal(t, "u1", s.Scope())
	assert.Equal(t, token, s.Token)
}

func TestManager_Init_ExpiredTokenTearsDown(t *testing.T) {
	store := mocks.NewStore(t)
	store.On("GetByID", mock.Anything, "s1", now).Return(&storage.Record{
		ID: "s1", Token: signedToken(t, now.Add(-time.Minute)), UserID: "u1", ExpiresAt: now.Add(time.Hour),
	}, nil)
	store.On("Delete", mock.Anything, "s1").Return(nil)

	s, err := newManager(store, mocks.NewAuthAPI(t)).Init(context.Background(), "s1")

	require.NoError(t, err)
	assert.False(t, s.IsAuthenticated())
}

func TestManager_Init_RevokedTokenTearsDown(t *testing.T) {
	store := mocks.NewStore(t)
	auth := mocks.NewAuthAPI(t)
	store.On("GetByID", mock.Anything, "s1", now).Return(&storage.Record{ID: "s1", Token: "opaque", UserID: "u1"}, nil)
	store.On("Delete", mock.Anything, "s1").Return(nil)
	auth.On("Me", mock.Anything).Return(nil, gateway.NewAPIError(401, ""))

	s, err := newManager(store, auth).Init(context.Background(), "s1")

	require.NoError(t, err)
	assert.False(t, s.IsAuthenticated())
}

func TestManager_Init_UpstreamFailure(t *testing.T) {
	store := mocks.NewStore(t)
	auth := mocks.NewAuthAPI(t)
	store.On("GetByID", mock.Anything, "s1", now).Return(&storage.Record{ID: "s1", Token: "opaque", UserID: "u1"}, nil)
	auth.On("Me", mock.Anything).Return(nil, gateway.ErrTransport)

	_, err := newManager(store, auth).Init(context.Background(), "s1")

	assert.ErrorIs(t, err, session.ErrUnavailable)
}

func TestManager_Login(t *testing.T) {
	store := mocks.NewStore(t)
	auth := mocks.NewAuthAPI(t)
	token := signedToken(t, now.Add(2*time.Hour))

	auth.On("Login", mock.MatchedBy(func(ctx context.Context) bool { return tokenOf(ctx) == "" }),
		marketplace.LoginRequest{Email: "ada@example.com", Password: "secret"}).
		Return(&marketplace.AuthResult{Token: token, User: domain.User{ID: "u1", Role: domain.RoleCustomer}}, nil)
	store.On("Save", mock.Anything, mock.MatchedBy(func(r *storage.Record) bool {
		return r.ID != "" && r.Token == token && r.UserID == "u1" && r.ExpiresAt.Equal(now.Add(2*time.Hour))
	})).Return(nil)

	s, err := newManager(store, auth).Login(session.WithSession(context.Background(), &session.Session{Token: "stale"}), " ada@example.com ", "secret")

	require.NoError(t, err)
	assert.True(t, s.IsAuthenticated())
	assert.NotEmpty(t, s.ID)
	assert.True(t, now.Add(2*time.Hour).Equal(s.ExpiresAt))
}

func TestManager_Login_InvalidCredentials(t *testing.T) {
	auth := mocks.NewAuthAPI(t)
	auth.On("Login", mock.Anything, mock.Anything).Return(nil, gateway.NewAPIError(401, "Invalid credentials"))

	_, err := newManager(mocks.NewStore(t), auth).Login(context.Background(), "ada@example.com", "wrong")

	assert.ErrorIs(t, err, session.ErrInvalidCredentials)
}

func TestManager_Login_MissingInput(t *testing.T) {
	_, err := newManager(mocks.NewStore(t), mocks.NewAuthAPI(t)).Login(context.Background(), "", "secret")

	assert.ErrorIs(t, err, session.ErrInvalidInput)
}

func TestManager_Logout_ApiFailureStillDeletes(t *testing.T) {
	store := mocks.NewStore(t)
	auth := mocks.NewAuthAPI(t)
	s := &session.Session{ID: "s1", Token: "tkn", User: &domain.User{ID: "u1"}, State: session.StateAuthenticated}

	auth.On("Logout", mock.MatchedBy(func(ctx context.Context) bool { return tokenOf(ctx) == "tkn" })).Return(errors.New("timeout"))
	store.On("Delete", mock.Anything, "s1").Return(nil)

	require.NoError(t, newManager(store, auth).Logout(context.Background(), s))
}

func TestManager_Cleanup(t *testing.T) {
	store := mocks.NewStore(t)
	store.On("DeleteExpired", mock.Anything, now).Return(int64(3), nil)

	removed, err := newManager(store, mocks.NewAuthAPI(t)).Cleanup(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(3), removed)
}

func TestContextTokens(t *testing.T) {
	_, ok := session.ContextTokens{}.Token(context.Background())
	assert.False(t, ok)

	ctx := session.WithSession(context.Background(), &session.Session{Token: "abc"})
	token, ok := session.ContextTokens{}.Token(ctx)
	assert.True(t, ok)
	assert.Equal(t, "abc", token)
	assert.Equal(t, cache.PublicScope, session.ScopeFromContext(ctx))
}
