package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"go.uber.org/zap"

	"github.com/mohan0265/mydurhamlaw-api/internal/curriculum"
	"github.com/mohan0265/mydurhamlaw-api/internal/models"
	appErrors "github.com/mohan0265/mydurhamlaw-api/pkg/errors"
)

// termOrder fixes the iteration and display order of terms in an overview.
var termOrder = []models.TermName{models.TermMichaelmas, models.TermEpiphany, models.TermEaster}

// termMonthProgress is the per-term progress heuristic, keyed by calendar
// month. In-term months carry a fixed figure, months after the term's range
// read 100, everything else 0. The table is a deliberate coarse
// approximation and is not derived from real task completion or from the
// actual term dates; keep it a visible, swappable lookup.
var termMonthProgress = map[models.TermName]map[time.Month]int{
	models.TermMichaelmas: {
		time.January: 100, time.February: 100, time.March: 100,
		time.April: 100, time.May: 100, time.June: 100,
		time.October: 75, time.November: 75, time.December: 75,
	},
	models.TermEpiphany: {
		time.January: 60, time.February: 60, time.March: 60,
		time.April: 100, time.May: 100, time.June: 100,
	},
	models.TermEaster: {
		time.April: 30, time.May: 30, time.June: 30,
		time.July: 100, time.August: 100, time.September: 100,
	},
}

// overallMonthProgress is a second, independent heuristic for the
// whole-year figure. It is intentionally not the average of the three term
// percentages; the two tables evolved separately upstream and the
// discrepancy is preserved.
var overallMonthProgress = map[time.Month]int{
	time.October: 25, time.November: 25, time.December: 25,
	time.January: 60, time.February: 60, time.March: 60,
	time.April: 85, time.May: 85, time.June: 85,
	time.July: 15, time.August: 15, time.September: 15,
}

const (
	upcomingModuleLimit = 3
	upcomingWeekLimit   = 2
	upcomingEventCap    = 5
)

// OverviewService derives multi-year progress views from the static
// curriculum catalog and the clock. All derivations are pure; the only
// state is the optional response cache, keyed by (year group, date) so a
// midnight or term-boundary rollover can never serve yesterday's answer.
type OverviewService struct {
	catalog  *curriculum.Catalog
	terms    *TermService
	cache    *CacheService
	logger   *zap.Logger
	cacheTTL time.Duration
	now      func() time.Time
}

// NewOverviewService constructs an overview service.
func NewOverviewService(catalog *curriculum.Catalog, terms *TermService, cache *CacheService, logger *zap.Logger, cacheTTL time.Duration) *OverviewService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if terms == nil {
		terms = NewTermService(logger)
	}
	return &OverviewService{
		catalog:  catalog,
		terms:    terms,
		cache:    cache,
		logger:   logger,
		cacheTTL: cacheTTL,
		now:      time.Now,
	}
}

// MultiYear builds the overview for every year of study, marking the
// caller's current year from their profile year group. The second return
// value reports cache utilisation.
func (s *OverviewService) MultiYear(ctx context.Context, yearGroup string, now time.Time) (*models.MultiYearData, bool, error) {
	currentKey := models.YearKey(strings.ToLower(strings.TrimSpace(yearGroup)))
	currentIndex := currentKey.Index()
	if currentIndex < 0 {
		return nil, false, appErrors.Clone(appErrors.ErrProfileIncomplete, fmt.Sprintf("unrecognised year group %q", yearGroup))
	}

	cacheKey := fmt.Sprintf("overview:multi:%s:%s", currentKey, now.Format("2006-01-02"))
	if s.cache.Enabled() {
		var cached models.MultiYearData
		if hit, err := s.cache.Get(ctx, cacheKey, &cached); err == nil && hit {
			return &cached, true, nil
		}
	}

	data := &models.MultiYearData{CurrentYearKey: currentKey}
	for i, plan := range s.catalog.Plans() {
		data.Years = append(data.Years, s.BuildYearOverview(plan, i, currentIndex, now))
	}

	if s.cache.Enabled() {
		if err := s.cache.Set(ctx, cacheKey, data, s.cacheTTL); err != nil {
			s.logger.Warn("failed to cache multi-year overview", zap.Error(err))
		}
	}
	return data, false, nil
}

// Year builds the overview for a single year of study.
func (s *OverviewService) Year(yearKey models.YearKey, yearGroup string, now time.Time) (*models.YearOverview, error) {
	plan, ok := s.catalog.Plan(yearKey)
	if !ok {
		return nil, appErrors.Clone(appErrors.ErrUnknownYear, fmt.Sprintf("no plan for year %q", yearKey))
	}
	currentIndex := models.YearKey(strings.ToLower(strings.TrimSpace(yearGroup))).Index()
	if currentIndex < 0 {
		return nil, appErrors.Clone(appErrors.ErrProfileIncomplete, fmt.Sprintf("unrecognised year group %q", yearGroup))
	}
	overview := s.BuildYearOverview(plan, yearKey.Index(), currentIndex, now)
	return &overview, nil
}

// BuildYearOverview derives the full view of one year of study. The
// computation is a pure function of its arguments; calling it twice with
// the same inputs yields identical output.
func (s *OverviewService) BuildYearOverview(plan models.AcademicYearPlan, yearIndex, currentYearIndex int, now time.Time) models.YearOverview {
	overview := models.YearOverview{
		YearKey: plan.YearKey,
		Label:   plan.Label,
	}

	for _, term := range termOrder {
		span := plan.TermDates[term]
		overview.Terms = append(overview.Terms, models.TermSummary{
			Name:     term,
			Start:    span.Start,
			End:      span.End,
			Modules:  modulesForTerm(plan.Modules, term),
			Progress: termProgress(term, yearIndex, currentYearIndex, now.Month()),
		})
	}

	overview.OverallProgress = overallProgress(yearIndex, currentYearIndex, now.Month())
	overview.NextDeadline = nextDeadline(plan, now)
	return overview
}

// UpcomingEvents generates the placeholder lecture feed for the current
// term: the first modules of the plan get a fixed 10:00-11:00 slot on the
// first week dates, capped at five events. This mirrors the legacy demo
// generator and deliberately does not read a real timetable.
func (s *OverviewService) UpcomingEvents(yearGroup string, now time.Time) ([]models.CalendarEvent, error) {
	key := models.YearKey(strings.ToLower(strings.TrimSpace(yearGroup)))
	plan, ok := s.catalog.Plan(key)
	if !ok {
		return nil, appErrors.Clone(appErrors.ErrProfileIncomplete, fmt.Sprintf("unrecognised year group %q", yearGroup))
	}

	span, ok := plan.TermDates[s.terms.Resolve(now).Term]
	if !ok {
		span = plan.TermDates[models.TermMichaelmas]
	}

	events := make([]models.CalendarEvent, 0, upcomingEventCap)
	for m, module := range plan.Modules {
		if m >= upcomingModuleLimit {
			break
		}
		for w := 0; w < upcomingWeekLimit && w < len(span.Weeks); w++ {
			if len(events) >= upcomingEventCap {
				return events, nil
			}
			events = append(events, models.CalendarEvent{
				ID:     fmt.Sprintf("lec-%s-%d", module.Code, w+1),
				Date:   span.Weeks[w],
				Start:  "10:00",
				End:    "11:00",
				Title:  module.Title + " lecture",
				Kind:   models.EventLecture,
				Module: module.Code,
			})
		}
	}
	return events, nil
}

// Clock overrides the service clock; tests use it to pin "now".
func (s *OverviewService) Clock(now func() time.Time) {
	if now != nil {
		s.now = now
	}
}

// Now returns the service's current time.
func (s *OverviewService) Now() time.Time {
	return s.now()
}

// modulesForTerm selects modules delivered in the term. A compound
// "TermA+TermB" delivery places the module in both term lists; modules are
// not deduplicated across terms.
func modulesForTerm(modules []models.Module, term models.TermName) []models.Module {
	out := make([]models.Module, 0, len(modules))
	for _, module := range modules {
		for _, part := range strings.Split(module.Delivery, "+") {
			if models.TermName(strings.TrimSpace(part)) == term {
				out = append(out, module)
				break
			}
		}
	}
	return out
}

// termProgress applies the month-table heuristic for one term, forcing
// completed years to 100 and future years to 0.
func termProgress(term models.TermName, yearIndex, currentYearIndex int, month time.Month) int {
	switch {
	case yearIndex < currentYearIndex:
		return 100
	case yearIndex > currentYearIndex:
		return 0
	}
	return clampPercent(termMonthProgress[term][month])
}

func overallProgress(yearIndex, currentYearIndex int, month time.Month) int {
	switch {
	case yearIndex < currentYearIndex:
		return 100
	case yearIndex > currentYearIndex:
		return 0
	}
	return clampPercent(overallMonthProgress[month])
}

func clampPercent(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

// nextDeadline returns the first assessment in plan iteration order whose
// due string sorts after today. Selection is by iteration order, not by
// minimum date: a later module with an earlier deadline will not displace
// an earlier match. That reproduces the upstream behaviour and is pinned by
// tests; do not "fix" it without a product decision.
func nextDeadline(plan models.AcademicYearPlan, now time.Time) *models.DeadlineSummary {
	today := now.Format("2006-01-02")
	for _, module := range plan.Modules {
		for _, assessment := range module.Assessments {
			due := assessment.Due
			if due == "" && assessment.Window != nil {
				due = assessment.Window.Start
			}
			if due == "" || due <= today {
				continue
			}
			summary := &models.DeadlineSummary{
				ModuleCode:  module.Code,
				ModuleTitle: module.Title,
				Type:        assessment.Type,
				Due:         due,
			}
			if ts, err := time.Parse("2006-01-02", due); err == nil {
				summary.DueIn = humanize.RelTime(now, ts, "ago", "from now")
			}
			return summary
		}
	}
	return nil
}
