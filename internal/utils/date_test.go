package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate_CalendarDate(t *testing.T) {
	date, err := ParseDate("2025-07-24")

	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 7, 24, 0, 0, 0, 0, time.UTC), date)
}

func TestParseDate_TimestampDiscardsTimeOfDay(t *testing.T) {
	date, err := ParseDate("2025-07-24T18:34:56Z")

	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 7, 24, 0, 0, 0, 0, time.UTC), date)
}

func TestParseDate_Invalid(t *testing.T) {
	_, err := ParseDate("not-a-date")
	assert.ErrorIs(t, err, ErrInvalidDate)

	_, err = ParseDate("")
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestNormalizeDate(t *testing.T) {
	in := time.Date(2025, 7, 24, 23, 59, 59, 0, time.UTC)
	assert.Equal(t, time.Date(2025, 7, 24, 0, 0, 0, 0, time.UTC), NormalizeDate(in))
}

func TestRandomAccentColor(t *testing.T) {
	for i := 0; i < 50; i++ {
		assert.True(t, ValidHexColor(RandomAccentColor()))
	}
}
