package validate

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"symposiumbot/internal/models"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Time
		wantErr bool
	}{
		{name: "valid", input: "2026-03-15", want: time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)},
		{name: "surrounding spaces", input: "  2026-03-15 ", want: time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)},
		{name: "wrong layout", input: "15.03.2026", wantErr: true},
		{name: "not a date", input: "tomorrow", wantErr: true},
		{name: "impossible day", input: "2026-02-30", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDate(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				require.ErrorIs(t, err, models.ErrValidation)
				return
			}
			require.NoError(t, err)
			require.True(t, got.Equal(tt.want))
		})
	}
}

func TestParseEndDate(t *testing.T) {
	start := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)

	end, err := ParseEndDate("2026-03-17", start)
	require.NoError(t, err)
	require.True(t, end.After(start))

	same, err := ParseEndDate("2026-03-15", start)
	require.NoError(t, err)
	require.True(t, same.Equal(start))

	_, err = ParseEndDate("2026-03-14", start)
	require.ErrorIs(t, err, models.ErrValidation)
}

func TestParseTimeRange(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "already normalized", input: "08:00 - 09:30", want: "08:00 - 09:30"},
		{name: "no spaces", input: "8:0-9:5", want: "08:00 - 09:05"},
		{name: "extra whitespace", input: "  9:15  -  17:45 ", want: "09:15 - 17:45"},
		{name: "start after end", input: "09:00 - 08:00", wantErr: true},
		{name: "start equals end", input: "10:00 - 10:00", wantErr: true},
		{name: "missing dash", input: "08:00 09:00", wantErr: true},
		{name: "hour out of range", input: "24:00 - 25:00", wantErr: true},
		{name: "minute out of range", input: "08:61 - 09:00", wantErr: true},
		{name: "garbage", input: "morning", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseTimeRange(tt.input)
			if tt.wantErr {
				require.ErrorIs(t, err, models.ErrValidation)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestOptional(t *testing.T) {
	v, err := Optional("-")
	require.NoError(t, err)
	require.Nil(t, v)

	v, err = Optional(" - ")
	require.NoError(t, err)
	require.Nil(t, v)

	v, err = Optional("Room 4B")
	require.NoError(t, err)
	require.NotNil(t, v)
	require.Equal(t, "Room 4B", *v)

	_, err = Optional("   ")
	require.ErrorIs(t, err, models.ErrValidation)
}

func TestRequired(t *testing.T) {
	got, err := Required("  Keynote ")
	require.NoError(t, err)
	require.Equal(t, "Keynote", got)

	_, err = Required("  ")
	require.ErrorIs(t, err, models.ErrValidation)
}
