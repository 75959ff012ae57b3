package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSameDay(t *testing.T) {
	base := time.Date(2024, 6, 10, 15, 30, 0, 0, time.Local)

	assert.True(t, SameDay(base, base.Add(2*time.Hour)))
	assert.True(t, SameDay(base, time.Date(2024, 6, 10, 0, 0, 1, 0, time.Local)))
	assert.False(t, SameDay(base, base.AddDate(0, 0, 1)))
	assert.False(t, SameDay(base, base.AddDate(0, 0, -1)))
	assert.False(t, SameDay(base, base.AddDate(1, 0, 0)))
}

func TestDayBounds(t *testing.T) {
	at := time.Date(2024, 6, 10, 15, 30, 45, 0, time.Local)

	start, end := DayBounds(at)
	assert.Equal(t, time.Date(2024, 6, 10, 0, 0, 0, 0, time.Local), start)
	assert.Equal(t, time.Date(2024, 6, 11, 0, 0, 0, 0, time.Local), end)
	assert.True(t, SameDay(start, at))
	assert.False(t, SameDay(end, at))
}

func TestPartialError(t *testing.T) {
	cause := assert.AnError
	err := &PartialError{
		Completed: []string{"inventory decremented", "order recorded"},
		Cause:     cause,
	}

	assert.Contains(t, err.Error(), "inventory decremented")
	assert.ErrorIs(t, err, cause)
}
