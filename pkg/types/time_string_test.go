package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimeString_Validate(t *testing.T) {
	tests := []struct {
		name    string
		value   TimeString
		wantErr bool
	}{
		{name: "valid", value: "14:30"},
		{name: "midnight", value: "00:00"},
		{name: "last minute", value: "23:59"},
		{name: "no leading zero", value: "9:30", wantErr: true},
		{name: "hour out of range", value: "24:00", wantErr: true},
		{name: "garbage", value: "noon!", wantErr: true},
		{name: "empty", value: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.value.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidTimeString)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestTimeString_Minutes(t *testing.T) {
	m, err := TimeString("14:05").Minutes()
	require.NoError(t, err)
	assert.Equal(t, 14*60+5, m)
}

func TestTimeString_AddMinutes(t *testing.T) {
	ts, err := TimeString("10:45").AddMinutes(30)
	require.NoError(t, err)
	assert.Equal(t, TimeString("11:15"), ts)

	_, err = TimeString("23:45").AddMinutes(30)
	assert.ErrorIs(t, err, ErrTimeOverflow)
}

func TestTimeString_Compare(t *testing.T) {
	assert.True(t, TimeString("09:00").IsBefore("10:00"))
	assert.False(t, TimeString("10:00").IsBefore("10:00"))
	assert.True(t, TimeString("18:00").IsAfter("17:59"))
	assert.False(t, TimeString("bad").IsAfter("10:00"))
}

func TestTimeString_On(t *testing.T) {
	date := time.Date(2026, 3, 1, 23, 10, 0, 0, time.UTC)
	at, err := TimeString("14:00").On(date)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 3, 1, 14, 0, 0, 0, time.UTC), at)
}

func TestEndOfDay(t *testing.T) {
	end, err := NewEndTimeStringFromString("24:00")
	require.NoError(t, err)
	assert.Equal(t, EndOfDay, end)

	m, err := end.Minutes()
	require.NoError(t, err)
	assert.Equal(t, MinutesPerDay, m)
	assert.True(t, TimeString("20:00").IsBefore(end))

	at, err := end.On(time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC), at)

	_, err = NewTimeStringFromString("24:00")
	assert.ErrorIs(t, err, ErrInvalidTimeString)
	_, err = NewEndTimeStringFromString("24:30")
	assert.ErrorIs(t, err, ErrInvalidTimeString)
}

func TestNewTimeString(t *testing.T) {
	assert.Equal(t, TimeString("07:05"), NewTimeString(time.Date(2026, 1, 1, 7, 5, 59, 0, time.UTC)))
}
