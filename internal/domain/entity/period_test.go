package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPreviousMonth(t *testing.T) {
	now := time.Date(2026, time.August, 15, 10, 30, 0, 0, time.UTC)
	p := PreviousMonth(now)

	assert.Equal(t, PeriodPreviousMonth, p.Name)
	assert.Equal(t, time.Date(2026, time.July, 1, 0, 0, 0, 0, time.UTC), p.Start)
	assert.Equal(t, time.Date(2026, time.August, 1, 0, 0, 0, 0, time.UTC), p.End)
	assert.Equal(t, "July 2026", p.Label())
	assert.Equal(t, "2026-07-01 to 2026-07-31", p.DateRange())
}

func TestPreviousMonthAcrossYearBoundary(t *testing.T) {
	now := time.Date(2026, time.January, 2, 0, 0, 0, 0, time.UTC)
	p := PreviousMonth(now)

	assert.Equal(t, time.Date(2025, time.December, 1, 0, 0, 0, 0, time.UTC), p.Start)
	assert.Equal(t, time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC), p.End)
	assert.Equal(t, "December 2025", p.Label())
}

func TestCurrentMonth(t *testing.T) {
	now := time.Date(2026, time.February, 10, 0, 0, 0, 0, time.UTC)
	p := CurrentMonth(now)

	assert.Equal(t, PeriodCurrentMonth, p.Name)
	assert.Equal(t, time.Date(2026, time.February, 1, 0, 0, 0, 0, time.UTC), p.Start)
	assert.Equal(t, time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC), p.End)
	assert.Equal(t, "2026-02-01 to 2026-02-28", p.DateRange())
}

func TestPeriodContains(t *testing.T) {
	p := PreviousMonth(time.Date(2026, time.August, 15, 0, 0, 0, 0, time.UTC))

	assert.True(t, p.Contains(time.Date(2026, time.July, 1, 0, 0, 0, 0, time.UTC)))
	assert.True(t, p.Contains(time.Date(2026, time.July, 31, 23, 59, 59, 0, time.UTC)))
	assert.False(t, p.Contains(time.Date(2026, time.June, 30, 0, 0, 0, 0, time.UTC)))
	assert.False(t, p.Contains(time.Date(2026, time.August, 1, 0, 0, 0, 0, time.UTC)))
}
