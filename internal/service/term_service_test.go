package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/mohan0265/mydurhamlaw-api/internal/models"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestTermResolveMichaelmasWeekOne(t *testing.T) {
	svc := NewTermService(nil)
	tw := svc.Resolve(date(2025, time.October, 7))
	assert.Equal(t, models.TermMichaelmas, tw.Term)
	assert.Equal(t, 1, tw.Week)
}

func TestTermResolveWeekClampsAtTen(t *testing.T) {
	svc := NewTermService(nil)
	// 20 December is raw week 11; the resolver saturates at the week count.
	tw := svc.Resolve(date(2025, time.December, 20))
	assert.Equal(t, models.TermMichaelmas, tw.Term)
	assert.Equal(t, 10, tw.Week)
}

func TestTermResolveStartDateIsWeekOne(t *testing.T) {
	svc := NewTermService(nil)
	tw := svc.Resolve(date(2026, time.January, 12))
	assert.Equal(t, models.TermEpiphany, tw.Term)
	assert.Equal(t, 1, tw.Week)
}

func TestTermResolveEpiphanyMidTerm(t *testing.T) {
	svc := NewTermService(nil)
	tw := svc.Resolve(date(2026, time.February, 2))
	assert.Equal(t, models.TermEpiphany, tw.Term)
	assert.Equal(t, 4, tw.Week)
}

func TestTermResolveEasterWindow(t *testing.T) {
	svc := NewTermService(nil)
	tw := svc.Resolve(date(2026, time.May, 4))
	assert.Equal(t, models.TermEaster, tw.Term)
	assert.Equal(t, 2, tw.Week)
}

func TestTermResolveEasterClampsAtEight(t *testing.T) {
	svc := NewTermService(nil)
	tw := svc.Resolve(date(2026, time.September, 1))
	assert.Equal(t, models.TermEaster, tw.Term)
	assert.Equal(t, 8, tw.Week)
}

// Dates before the Epiphany boundary fall through to Easter with a clamped
// week. Legacy behaviour, kept on purpose.
func TestTermResolveJanuaryFallsThroughToEaster(t *testing.T) {
	svc := NewTermService(nil)
	tw := svc.Resolve(date(2026, time.January, 5))
	assert.Equal(t, models.TermEaster, tw.Term)
	assert.Equal(t, 1, tw.Week)
}

func TestTermResolveEarlySeptemberClassifiesAsEaster(t *testing.T) {
	svc := NewTermService(nil)
	tw := svc.Resolve(date(2026, time.September, 3))
	assert.Equal(t, models.TermEaster, tw.Term)
}

func TestTermResolveBoundariesRollWithTheYear(t *testing.T) {
	svc := NewTermService(nil)
	for _, year := range []int{2024, 2025, 2026, 2027} {
		tw := svc.Resolve(date(year, time.October, 6))
		assert.Equal(t, models.TermMichaelmas, tw.Term, "year %d", year)
		assert.Equal(t, 1, tw.Week, "year %d", year)
	}
}

func TestTermResolveDeepIntoTermStaysAtWeekCount(t *testing.T) {
	svc := NewTermService(nil)
	for _, tc := range []struct {
		day  time.Time
		term models.TermName
	}{
		{date(2025, time.December, 31), models.TermMichaelmas},
		{date(2026, time.April, 20), models.TermEpiphany},
		{date(2026, time.August, 31), models.TermEaster},
	} {
		tw := svc.Resolve(tc.day)
		assert.Equal(t, tc.term, tw.Term)
		assert.LessOrEqual(t, tw.Week, tw.Term.WeekCount())
		assert.GreaterOrEqual(t, tw.Week, 1)
	}
}
