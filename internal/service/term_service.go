package service

import (
	"time"

	"go.uber.org/zap"

	"github.com/mohan0265/mydurhamlaw-api/internal/models"
)

// Term boundary anchors within a calendar year. The boundaries are rebuilt
// from the clock's year on every call, so they roll forward each January
// without any cached state.
const (
	michaelmasMonth = time.October
	michaelmasDay   = 6
	epiphanyMonth   = time.January
	epiphanyDay     = 12
	easterMonth     = time.April
	easterDay       = 27
)

// TermService resolves a wall-clock date to a teaching term and week.
type TermService struct {
	logger *zap.Logger
}

// NewTermService constructs a term service instance.
func NewTermService(logger *zap.Logger) *TermService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TermService{logger: logger}
}

// Resolve maps a date to its term and week-of-term. Dates on or after the
// Michaelmas boundary are Michaelmas; dates inside the Epiphany window are
// Epiphany; everything else falls through to Easter. That fallback also
// captures dates before 12 January and the long vacation, a quirk kept for
// compatibility with the legacy behaviour. The week number saturates at the
// term's week count and never drops below 1, so the function is total.
func (s *TermService) Resolve(now time.Time) models.TermWeek {
	year := now.Year()
	michaelmas := time.Date(year, michaelmasMonth, michaelmasDay, 0, 0, 0, 0, now.Location())
	epiphany := time.Date(year, epiphanyMonth, epiphanyDay, 0, 0, 0, 0, now.Location())
	easter := time.Date(year, easterMonth, easterDay, 0, 0, 0, 0, now.Location())

	var term models.TermName
	var start time.Time
	switch {
	case !now.Before(michaelmas):
		term, start = models.TermMichaelmas, michaelmas
	case !now.Before(epiphany) && now.Before(easter):
		term, start = models.TermEpiphany, epiphany
	default:
		term, start = models.TermEaster, easter
	}

	week := int(now.Sub(start)/(24*time.Hour))/7 + 1
	if max := term.WeekCount(); week > max {
		week = max
	}
	if week < 1 {
		week = 1
	}

	return models.TermWeek{Term: term, Week: week}
}
