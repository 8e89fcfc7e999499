package types

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimeOfDay(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    TimeOfDay
		wantErr bool
	}{
		{name: "morning", input: "08:00", want: 480},
		{name: "with minutes", input: "10:30", want: 630},
		{name: "last minute", input: "23:59", want: 1439},
		{name: "midnight", input: "00:00", want: 0},
		{name: "not padded", input: "9:00", wantErr: true},
		{name: "hour out of range", input: "24:00", wantErr: true},
		{name: "garbage", input: "ab:cd", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseTimeOfDay(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.input, got.String())
		})
	}
}

func TestTimeOfDay_AddMinutes(t *testing.T) {
	start := MustTimeOfDay("09:00")

	end, err := start.AddMinutes(90)
	require.NoError(t, err)
	assert.Equal(t, "10:30", end.String())
	assert.True(t, start.IsBefore(end))
	assert.True(t, end.IsAfter(start))
	assert.Equal(t, 90, end.Sub(start))

	_, err = MustTimeOfDay("23:30").AddMinutes(30)
	assert.ErrorIs(t, err, ErrOutOfRange)

	_, err = MustTimeOfDay("00:10").AddMinutes(-20)
	assert.ErrorIs(t, err, ErrOutOfRange)
}

func TestTimeOfDay_JSON(t *testing.T) {
	type payload struct {
		Start TimeOfDay `json:"start"`
	}

	data, err := json.Marshal(payload{Start: MustTimeOfDay("07:05")})
	require.NoError(t, err)
	assert.JSONEq(t, `{"start":"07:05"}`, string(data))

	var decoded payload
	require.NoError(t, json.Unmarshal([]byte(`{"start":"18:45"}`), &decoded))
	assert.Equal(t, 18*60+45, decoded.Start.Minutes())

	err = json.Unmarshal([]byte(`{"start":"6pm"}`), &decoded)
	assert.ErrorIs(t, err, ErrInvalidFormat)
}

func TestFromTime(t *testing.T) {
	now := time.Date(2026, 10, 17, 14, 7, 33, 0, time.UTC)
	assert.Equal(t, "14:07", FromTime(now).String())
}
