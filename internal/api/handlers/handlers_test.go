package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-MarketplaceBFF/internal/domain"
	"github.com/m04kA/SMC-MarketplaceBFF/internal/integrations/gateway"
	"github.com/m04kA/SMC-MarketplaceBFF/pkg/ptr"
	"github.com/m04kA/SMC-MarketplaceBFF/pkg/types"
)

func TestRespondJSON_Envelope(t *testing.T) {
	rec := httptest.NewRecorder()

	RespondJSON(rec, http.StatusCreated, map[string]string{"id": "b1"})

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var env map[string]interface{}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&env))
	assert.Equal(t, true, env["status"])
	assert.Equal(t, APIVersion, env["version"])
	assert.Equal(t, map[string]interface{}{"id": "b1"}, env["data"])
	_, err := time.Parse(time.RFC3339, env["timestamp"].(string))
	assert.NoError(t, err)
}

func TestRespondError_Envelope(t *testing.T) {
	rec := httptest.NewRecorder()

	RespondConflict(rec, "slot taken")

	var env Envelope
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&env))
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.False(t, env.Status)
	assert.Equal(t, "slot taken", env.Message)
	assert.Nil(t, env.Data)
}

func TestRespondFailure(t *testing.T) {
	tests := []struct {
		err    error
		status int
	}{
		{err: fmt.Errorf("load: %w", gateway.ErrTransport), status: http.StatusBadGateway},
		{err: fmt.Errorf("load: %w", gateway.NewAPIError(http.StatusInternalServerError, "")), status: http.StatusBadGateway},
		{err: fmt.Errorf("load: %w", gateway.ErrInvalidResponse), status: http.StatusBadGateway},
		{err: fmt.Errorf("encode: %w", gateway.ErrInternal), status: http.StatusInternalServerError},
		{err: fmt.Errorf("boom"), status: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		rec := httptest.NewRecorder()
		RespondFailure(rec, tt.err)
		assert.Equal(t, tt.status, rec.Code, tt.err.Error())
	}
}

func TestDecodeJSON(t *testing.T) {
	var v struct {
		A string `json:"a"`
	}

	require.NoError(t, DecodeJSON(httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"a":"x"}`)), &v))
	assert.Equal(t, "x", v.A)

	require.NoError(t, DecodeJSON(httptest.NewRequest(http.MethodPost, "/", http.NoBody), &v))
	assert.Error(t, DecodeJSON(httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"a":`)), &v))
}

func TestParseDateAndTime(t *testing.T) {
	date, err := ParseDate("date", "2026-03-01")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), date)

	_, err = ParseDate("date", "01.03.2026")
	assert.ErrorIs(t, err, ErrInvalidParam)

	tm, err := ParseTime("startTime", ptr.Ptr("09:30"))
	require.NoError(t, err)
	assert.Equal(t, "09:30", tm.String())

	tm, err = ParseTime("startTime", nil)
	require.NoError(t, err)
	assert.Nil(t, tm)

	_, err = ParseTime("startTime", ptr.Ptr("9h"))
	assert.ErrorIs(t, err, ErrInvalidParam)

	_, err = ParseTime("startTime", ptr.Ptr("24:00"))
	assert.ErrorIs(t, err, ErrInvalidParam)

	tm, err = ParseEndTime("endTime", ptr.Ptr("24:00"))
	require.NoError(t, err)
	assert.Equal(t, types.EndOfDay, *tm)

	_, err = ParseEndTime("endTime", ptr.Ptr("25:00"))
	assert.ErrorIs(t, err, ErrInvalidParam)
}

func TestParseBookingsFilter(t *testing.T) {
	filter, err := ParseBookingsFilter(url.Values{"page": {"2"}, "limit": {"50"}, "status": {"PENDING"}})
	require.NoError(t, err)
	assert.Equal(t, 2, filter.Page)
	assert.Equal(t, 50, filter.Limit)
	require.NotNil(t, filter.Status)
	assert.Equal(t, domain.StatusPending, *filter.Status)

	filter, err = ParseBookingsFilter(url.Values{})
	require.NoError(t, err)
	assert.Equal(t, domain.BookingsFilter{}, filter)

	_, err = ParseBookingsFilter(url.Values{"page": {"-1"}})
	assert.ErrorIs(t, err, ErrInvalidParam)

	_, err = ParseBookingsFilter(url.Values{"status": {"pending"}})
	assert.ErrorIs(t, err, ErrInvalidParam)
}

func TestUpstreamMessage(t *testing.T) {
	err := fmt.Errorf("service: %w", gateway.NewAPIError(http.StatusConflict, "listing is booked on that day"))

	assert.Equal(t, "listing is booked on that day", UpstreamMessage(err, "fallback"))
	assert.Equal(t, "fallback", UpstreamMessage(fmt.Errorf("plain"), "fallback"))
}

func TestSessionCookie(t *testing.T) {
	cookie := SessionCookie{Name: "sid", Secure: true}
	expires := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	rec := httptest.NewRecorder()
	cookie.Set(rec, "s1", expires)
	set := rec.Result().Cookies()
	require.Len(t, set, 1)
	assert.Equal(t, "sid", set[0].Name)
	assert.Equal(t, "s1", set[0].Value)
	assert.True(t, set[0].HttpOnly)
	assert.True(t, set[0].Secure)

	rec = httptest.NewRecorder()
	cookie.Clear(rec)
	cleared := rec.Result().Cookies()
	require.Len(t, cleared, 1)
	assert.Equal(t, "", cleared[0].Value)
	assert.True(t, cleared[0].MaxAge < 0)
}
