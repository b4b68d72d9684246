package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeClock(t *testing.T) {
	got, err := NormalizeClock("09:05")
	require.NoError(t, err)
	assert.Equal(t, "09:05", got)

	_, err = NormalizeClock("25:00")
	assert.Error(t, err)

	_, err = NormalizeClock("9am")
	assert.Error(t, err)
}

func TestClockAMPM(t *testing.T) {
	assert.Equal(t, "09:00 AM", ClockAMPM("09:00"))
	assert.Equal(t, "01:30 PM", ClockAMPM("13:30"))
	assert.Equal(t, "12:00 AM", ClockAMPM("00:00"))
	// invalid input passes through for display
	assert.Equal(t, "whenever", ClockAMPM("whenever"))
}

func TestParseDate(t *testing.T) {
	got, err := ParseDate("2026-09-07")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, time.September, 7, 0, 0, 0, 0, time.UTC), got)

	_, err = ParseDate("07/09/2026")
	assert.Error(t, err)
}

func TestFormatDate(t *testing.T) {
	d := time.Date(2026, time.September, 7, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "September 07, 2026", FormatDate(d))
}
