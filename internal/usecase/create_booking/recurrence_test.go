package create_booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandSeries_NilEndReturnsSingleInstant(t *testing.T) {
	start := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

	instants := expandSeries(start, nil)

	require.Len(t, instants, 1)
	assert.Equal(t, start, instants[0])
}

func TestExpandSeries_InclusiveDaySteps(t *testing.T) {
	start := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	end := time.Date(2025, 6, 3, 10, 0, 0, 0, time.UTC)

	instants := expandSeries(start, &end)

	require.Len(t, instants, 3)
	assert.Equal(t, time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC), instants[0])
	assert.Equal(t, time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC), instants[1])
	assert.Equal(t, time.Date(2025, 6, 3, 10, 0, 0, 0, time.UTC), instants[2])
}

func TestExpandSeries_EndBetweenDaysIsNotIncluded(t *testing.T) {
	start := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	end := time.Date(2025, 6, 3, 9, 59, 59, 0, time.UTC)

	instants := expandSeries(start, &end)

	// 3 июня 10:00 уже позже конца серии
	require.Len(t, instants, 2)
	assert.Equal(t, time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC), instants[1])
}

func TestExpandSeries_PreservesClockTimeAcrossDSTChange(t *testing.T) {
	loc, err := time.LoadLocation("Europe/Berlin")
	require.NoError(t, err)

	// Переход на летнее время в Берлине: ночь 29/30 марта 2025
	start := time.Date(2025, 3, 29, 10, 0, 0, 0, loc)
	end := time.Date(2025, 3, 31, 10, 0, 0, 0, loc)

	instants := expandSeries(start, &end)

	require.Len(t, instants, 3)
	for _, instant := range instants {
		assert.Equal(t, 10, instant.Hour())
	}
}
