package payments

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-MarketplaceBFF/internal/domain"
	"github.com/m04kA/SMC-MarketplaceBFF/internal/infra/cache/cachetest"
	"github.com/m04kA/SMC-MarketplaceBFF/internal/integrations/gateway"
	"github.com/m04kA/SMC-MarketplaceBFF/internal/integrations/marketplace"
	"github.com/m04kA/SMC-MarketplaceBFF/internal/session"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeAPI struct {
	initiated []marketplace.InitiatePaymentRequest
	err       error
}

func (f *fakeAPI) Initiate(_ context.Context, req marketplace.InitiatePaymentRequest) (*domain.Payment, error) {
	f.initiated = append(f.initiated, req)
	if f.err != nil {
		return nil, f.err
	}
	return &domain.Payment{ID: "p1", BookingID: req.BookingID, Type: req.Type, Status: domain.PaymentPending, Reference: "ref-1"}, nil
}

func (f *fakeAPI) Verify(_ context.Context, reference string) (*domain.Payment, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &domain.Payment{ID: "p1", Reference: reference, Status: domain.PaymentSuccess}, nil
}

func (f *fakeAPI) ListByBooking(context.Context, string) ([]domain.Payment, error) {
	return []domain.Payment{{ID: "p1"}}, f.err
}

func customerCtx() context.Context {
	return session.WithSession(context.Background(), &session.Session{
		User:  &domain.User{ID: "c1", Role: domain.RoleCustomer},
		State: session.StateAuthenticated,
	})
}

func TestService_Initiate_DefaultsAndInvalidates(t *testing.T) {
	api := &fakeAPI{}
	mem := cachetest.NewMemory()
	svc := NewService(api, mem, time.Minute, "https://app.example.com/payments/callback", nopLogger{})

	payment, err := svc.Initiate(customerCtx(), marketplace.InitiatePaymentRequest{BookingID: "b1"})

	require.NoError(t, err)
	assert.Equal(t, "ref-1", payment.Reference)
	require.Len(t, api.initiated, 1)
	assert.Equal(t, domain.PaymentFull, api.initiated[0].Type)
	assert.Equal(t, "https://app.example.com/payments/callback", api.initiated[0].CallbackURL)
	assert.Equal(t, []string{"q:c1:payments", "q:c1:bookings"}, mem.Invalidated())
}

func TestService_Initiate_Validation(t *testing.T) {
	tests := []struct {
		name string
		req  marketplace.InitiatePaymentRequest
	}{
		{name: "missing booking", req: marketplace.InitiatePaymentRequest{}},
		{name: "unknown type", req: marketplace.InitiatePaymentRequest{BookingID: "b1", Type: "PARTIAL"}},
		{name: "relative callback", req: marketplace.InitiatePaymentRequest{BookingID: "b1", CallbackURL: "/done"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := &fakeAPI{}
			svc := NewService(api, cachetest.NewMemory(), time.Minute, "", nopLogger{})

			_, err := svc.Initiate(customerCtx(), tt.req)

			assert.ErrorIs(t, err, ErrInvalidInput)
			assert.Empty(t, api.initiated)
		})
	}
}

func TestService_Verify(t *testing.T) {
	mem := cachetest.NewMemory()
	svc := NewService(&fakeAPI{}, mem, time.Minute, "", nopLogger{})

	payment, err := svc.Verify(customerCtx(), "ref-1")

	require.NoError(t, err)
	assert.Equal(t, domain.PaymentSuccess, payment.Status)
	assert.Len(t, mem.Invalidated(), 2)
}

func TestService_Verify_AlreadyPaid(t *testing.T) {
	svc := NewService(&fakeAPI{err: gateway.NewAPIError(409, "already verified")}, cachetest.NewMemory(), time.Minute, "", nopLogger{})

	_, err := svc.Verify(customerCtx(), "ref-1")

	assert.ErrorIs(t, err, ErrAlreadyPaid)
}
