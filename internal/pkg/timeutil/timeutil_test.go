package timeutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateOf(t *testing.T) {
	instant := time.Date(2026, 3, 2, 14, 35, 27, 123, time.UTC)
	date := DateOf(instant)

	assert.Equal(t, time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC), date)
}

func TestMinuteOfDay(t *testing.T) {
	tests := []struct {
		name     string
		instant  time.Time
		expected int
	}{
		{"midnight", time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC), 0},
		{"eight sharp", time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC), 480},
		{"seconds discarded", time.Date(2026, 3, 2, 8, 0, 59, 0, time.UTC), 480},
		{"end of day", time.Date(2026, 3, 2, 23, 59, 0, 0, time.UTC), 1439},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, MinuteOfDay(tt.instant))
		})
	}
}

func TestWeekday(t *testing.T) {
	// 2026-03-01 is a Sunday.
	assert.Equal(t, 0, Weekday(time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)))
	assert.Equal(t, 1, Weekday(time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)))
	assert.Equal(t, 6, Weekday(time.Date(2026, 3, 7, 12, 0, 0, 0, time.UTC)))
}

func TestParseClock(t *testing.T) {
	tests := []struct {
		input    string
		expected int
		wantErr  bool
	}{
		{"00:00", 0, false},
		{"08:00", 480, false},
		{"08:15", 495, false},
		{"23:59", 1439, false},
		{"24:00", 0, true},
		{"08:60", 0, true},
		{"8am", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseClock(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestFormatClock(t *testing.T) {
	assert.Equal(t, "00:00", FormatClock(0))
	assert.Equal(t, "08:05", FormatClock(485))
	assert.Equal(t, "23:59", FormatClock(1439))
}

func TestClockOf(t *testing.T) {
	assert.Equal(t, "08:07", ClockOf(time.Date(2026, 3, 2, 8, 7, 45, 0, time.UTC)))
}

func TestSameMonth(t *testing.T) {
	instant := time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)
	assert.True(t, SameMonth(instant, 3, 2026))
	assert.False(t, SameMonth(instant, 2, 2026))
	assert.False(t, SameMonth(instant, 3, 2025))
}
