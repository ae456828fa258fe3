package service

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mohan0265/mydurhamlaw-api/internal/curriculum"
	"github.com/mohan0265/mydurhamlaw-api/internal/models"
)

func newOverviewService() *OverviewService {
	return NewOverviewService(curriculum.Load(), NewTermService(nil), nil, nil, 0)
}

func planWithDeadlines() models.AcademicYearPlan {
	return models.AcademicYearPlan{
		YearKey: models.YearOne,
		Label:   "Year 1",
		TermDates: map[models.TermName]models.TermSpan{
			models.TermMichaelmas: {Start: "2025-10-06", End: "2025-12-12", Weeks: []string{"2025-10-06", "2025-10-13"}},
			models.TermEpiphany:   {Start: "2026-01-12", End: "2026-03-20", Weeks: []string{"2026-01-12", "2026-01-19"}},
			models.TermEaster:     {Start: "2026-04-27", End: "2026-06-26", Weeks: []string{"2026-04-27", "2026-05-04"}},
		},
		Modules: []models.Module{
			{
				Code: "MOD-A", Title: "Module A", Delivery: "Michaelmas",
				Assessments: []models.Assessment{{Type: models.AssessmentEssay, Weight: 100, Due: "2026-03-01"}},
			},
			{
				Code: "MOD-B", Title: "Module B", Delivery: "Epiphany",
				Assessments: []models.Assessment{{Type: models.AssessmentCoursework, Weight: 100, Due: "2026-01-15"}},
			},
		},
	}
}

func TestNextDeadlineFollowsIterationOrderNotMinimumDate(t *testing.T) {
	svc := newOverviewService()
	now := date(2026, time.January, 1)

	overview := svc.BuildYearOverview(planWithDeadlines(), 1, 1, now)

	// MOD-B's 15 January deadline is earlier, but MOD-A comes first in plan
	// order. The first future match wins; pinned legacy behaviour.
	require.NotNil(t, overview.NextDeadline)
	assert.Equal(t, "MOD-A", overview.NextDeadline.ModuleCode)
	assert.Equal(t, "2026-03-01", overview.NextDeadline.Due)
}

func TestNextDeadlineUsesExamWindowStart(t *testing.T) {
	svc := newOverviewService()
	plan := planWithDeadlines()
	plan.Modules[0].Assessments = []models.Assessment{
		{Type: models.AssessmentExam, Weight: 100, Window: &models.AssessmentWindow{Start: "2026-05-11", End: "2026-05-29"}},
	}

	overview := svc.BuildYearOverview(plan, 1, 1, date(2026, time.May, 1))
	require.NotNil(t, overview.NextDeadline)
	assert.Equal(t, "2026-05-11", overview.NextDeadline.Due)
	assert.Equal(t, models.AssessmentExam, overview.NextDeadline.Type)
}

func TestNextDeadlineEmptyPlan(t *testing.T) {
	svc := newOverviewService()
	plan := planWithDeadlines()
	plan.Modules = nil

	overview := svc.BuildYearOverview(plan, 1, 1, date(2026, time.January, 1))
	assert.Nil(t, overview.NextDeadline)
}

func TestCompletedYearsReadOneHundred(t *testing.T) {
	svc := newOverviewService()
	catalog := curriculum.Load()
	plan, _ := catalog.Plan(models.YearFoundation)

	overview := svc.BuildYearOverview(plan, 0, 2, date(2025, time.November, 10))
	assert.Equal(t, 100, overview.OverallProgress)
	for _, term := range overview.Terms {
		assert.Equal(t, 100, term.Progress)
	}
}

func TestFutureYearsReadZero(t *testing.T) {
	svc := newOverviewService()
	catalog := curriculum.Load()
	plan, _ := catalog.Plan(models.YearThree)

	overview := svc.BuildYearOverview(plan, 3, 1, date(2025, time.November, 10))
	assert.Equal(t, 0, overview.OverallProgress)
	for _, term := range overview.Terms {
		assert.Equal(t, 0, term.Progress)
	}
}

func TestCurrentYearUsesMonthTables(t *testing.T) {
	svc := newOverviewService()
	catalog := curriculum.Load()
	plan, _ := catalog.Plan(models.YearOne)

	// November: Michaelmas in range, other terms untouched; overall from
	// its own table, not an average.
	overview := svc.BuildYearOverview(plan, 1, 1, date(2025, time.November, 10))
	assert.Equal(t, 75, overview.Terms[0].Progress)
	assert.Equal(t, 0, overview.Terms[1].Progress)
	assert.Equal(t, 0, overview.Terms[2].Progress)
	assert.Equal(t, 25, overview.OverallProgress)

	// February: Michaelmas complete, Epiphany in range.
	overview = svc.BuildYearOverview(plan, 1, 1, date(2026, time.February, 10))
	assert.Equal(t, 100, overview.Terms[0].Progress)
	assert.Equal(t, 60, overview.Terms[1].Progress)
	assert.Equal(t, 0, overview.Terms[2].Progress)
	assert.Equal(t, 60, overview.OverallProgress)

	// May: exams season, Easter in range.
	overview = svc.BuildYearOverview(plan, 1, 1, date(2026, time.May, 10))
	assert.Equal(t, 30, overview.Terms[2].Progress)
	assert.Equal(t, 85, overview.OverallProgress)
}

func TestCompoundDeliveryAppearsInBothTerms(t *testing.T) {
	svc := newOverviewService()
	catalog := curriculum.Load()
	plan, _ := catalog.Plan(models.YearOne)

	overview := svc.BuildYearOverview(plan, 1, 1, date(2025, time.November, 10))
	codes := func(term models.TermSummary) []string {
		out := make([]string, 0, len(term.Modules))
		for _, m := range term.Modules {
			out = append(out, m.Code)
		}
		return out
	}

	// Tort Law is delivered Michaelmas+Epiphany and must appear in both.
	assert.Contains(t, codes(overview.Terms[0]), "LAW1051")
	assert.Contains(t, codes(overview.Terms[1]), "LAW1051")
	assert.NotContains(t, codes(overview.Terms[2]), "LAW1051")
}

func TestBuildYearOverviewIsIdempotent(t *testing.T) {
	svc := newOverviewService()
	catalog := curriculum.Load()
	plan, _ := catalog.Plan(models.YearTwo)
	now := date(2026, time.February, 3)

	first, err := json.Marshal(svc.BuildYearOverview(plan, 2, 2, now))
	require.NoError(t, err)
	second, err := json.Marshal(svc.BuildYearOverview(plan, 2, 2, now))
	require.NoError(t, err)
	assert.Equal(t, string(first), string(second))
}

func TestMultiYearMarksCurrentYear(t *testing.T) {
	svc := newOverviewService()

	data, hit, err := svc.MultiYear(context.Background(), "year2", date(2025, time.November, 10))
	require.NoError(t, err)
	assert.False(t, hit)
	assert.Equal(t, models.YearTwo, data.CurrentYearKey)
	require.Len(t, data.Years, 4)
	assert.Equal(t, 100, data.Years[0].OverallProgress)
	assert.Equal(t, 100, data.Years[1].OverallProgress)
	assert.Equal(t, 25, data.Years[2].OverallProgress)
	assert.Equal(t, 0, data.Years[3].OverallProgress)
}

func TestMultiYearRejectsUnknownYearGroup(t *testing.T) {
	svc := newOverviewService()
	_, _, err := svc.MultiYear(context.Background(), "postgrad", date(2025, time.November, 10))
	assert.Error(t, err)
}

func TestUpcomingEventsCapAndShape(t *testing.T) {
	svc := newOverviewService()

	events, err := svc.UpcomingEvents("year1", date(2025, time.October, 20))
	require.NoError(t, err)
	require.Len(t, events, 5)
	for _, ev := range events {
		assert.Equal(t, models.EventLecture, ev.Kind)
		assert.Equal(t, "10:00", ev.Start)
		assert.Equal(t, "11:00", ev.End)
	}
	// First two modules contribute two lectures each on the first two
	// week dates; the third is truncated by the cap.
	assert.Equal(t, "2025-10-06", events[0].Date)
	assert.Equal(t, "2025-10-13", events[1].Date)
	assert.Equal(t, events[0].Module, events[1].Module)
	assert.NotEqual(t, events[1].Module, events[2].Module)
}

func TestUpcomingEventsUsesResolvedTermWeeks(t *testing.T) {
	svc := newOverviewService()

	// Early September resolves to Easter; the plan has Easter dates so the
	// events land on Easter week Mondays.
	events, err := svc.UpcomingEvents("year1", date(2026, time.September, 3))
	require.NoError(t, err)
	require.NotEmpty(t, events)
	assert.Equal(t, "2026-04-27", events[0].Date)
}
