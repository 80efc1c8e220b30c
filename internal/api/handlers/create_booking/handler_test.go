package create_booking

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-MarketplaceBFF/internal/api/handlers"
	"github.com/m04kA/SMC-MarketplaceBFF/internal/domain"
	"github.com/m04kA/SMC-MarketplaceBFF/internal/integrations/gateway"
	createBooking "github.com/m04kA/SMC-MarketplaceBFF/internal/usecase/create_booking"
	"github.com/m04kA/SMC-MarketplaceBFF/pkg/logger"
)

type fakeUseCase struct {
	got  *createBooking.Request
	resp *createBooking.Response
	err  error
}

func (f *fakeUseCase) Execute(_ context.Context, req *createBooking.Request) (*createBooking.Response, error) {
	f.got = req
	return f.resp, f.err
}

func serve(uc *fakeUseCase, body string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	NewHandler(uc, logger.Nop()).Handle(rec, httptest.NewRequest(http.MethodPost, "/api/v1/bookings", strings.NewReader(body)))
	return rec
}

func TestHandle_Created(t *testing.T) {
	uc := &fakeUseCase{resp: &createBooking.Response{Booking: &domain.Booking{ID: "b1", Status: domain.StatusPending}}}

	rec := serve(uc, `{"listingId":"L1","bookingDate":"2026-03-01","startTime":"14:00","endTime":"18:00","guestCount":50}`)

	assert.Equal(t, http.StatusCreated, rec.Code)
	require.NotNil(t, uc.got)
	assert.Equal(t, "L1", uc.got.ListingID)
	assert.Equal(t, "14:00", uc.got.StartTime.String())
	assert.Equal(t, "18:00", uc.got.EndTime.String())
	assert.Equal(t, 50, uc.got.GuestCount)

	var env struct {
		Status bool           `json:"status"`
		Data   domain.Booking `json:"data"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&env))
	assert.True(t, env.Status)
	assert.Equal(t, "b1", env.Data.ID)
}

func TestHandle_ParseErrors(t *testing.T) {
	for _, body := range []string{
		`{"listingId":`,
		`{"listingId":"L1","bookingDate":"March 1"}`,
		`{"listingId":"L1","bookingDate":"2026-03-01","startTime":"2pm"}`,
	} {
		uc := &fakeUseCase{}
		rec := serve(uc, body)
		assert.Equal(t, http.StatusBadRequest, rec.Code, body)
		assert.Nil(t, uc.got)
	}
}

func TestHandle_ErrorMapping(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		status  int
		message string
	}{
		{name: "local conflict", err: createBooking.ErrSlotNotAvailable, status: http.StatusConflict, message: msgSlotNotAvailable},
		{
			name:    "server conflict keeps api message",
			err:     fmt.Errorf("%w: %w", createBooking.ErrSlotNotAvailable, gateway.NewAPIError(http.StatusConflict, "already booked")),
			status:  http.StatusConflict,
			message: "already booked",
		},
		{name: "listing missing", err: createBooking.ErrListingNotFound, status: http.StatusNotFound, message: msgListingNotFound},
		{name: "not bookable", err: createBooking.ErrListingNotBookable, status: http.StatusBadRequest, message: msgListingNotBookable},
		{name: "past date", err: createBooking.ErrInvalidDate, status: http.StatusBadRequest, message: msgInvalidBookingDate},
		{name: "bad range", err: createBooking.ErrInvalidTimeRange, status: http.StatusBadRequest, message: msgInvalidTimeRange},
		{name: "anonymous", err: createBooking.ErrUnauthorized, status: http.StatusUnauthorized},
		{name: "local failure", err: createBooking.ErrInternal, status: http.StatusInternalServerError},
		{
			name:   "api down",
			err:    fmt.Errorf("%w: failed to create booking: %w", createBooking.ErrInternal, gateway.ErrTransport),
			status: http.StatusBadGateway,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(&fakeUseCase{err: tt.err}, `{"listingId":"L1","bookingDate":"2026-03-01"}`)

			assert.Equal(t, tt.status, rec.Code)
			var env handlers.Envelope
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&env))
			assert.False(t, env.Status)
			if tt.message != "" {
				assert.Equal(t, tt.message, env.Message)
			}
		})
	}
}
