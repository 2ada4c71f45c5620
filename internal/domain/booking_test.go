package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBooking_IsInFuture(t *testing.T) {
	now := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

	future := Booking{StartDatetime: now.Add(time.Minute)}
	past := Booking{StartDatetime: now.Add(-time.Minute)}
	exact := Booking{StartDatetime: now}

	assert.True(t, future.IsInFuture(now))
	assert.False(t, past.IsInFuture(now))
	assert.False(t, exact.IsInFuture(now))
}
