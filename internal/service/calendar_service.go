package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/mohan0265/mydurhamlaw-api/internal/curriculum"
	"github.com/mohan0265/mydurhamlaw-api/internal/models"
	appErrors "github.com/mohan0265/mydurhamlaw-api/pkg/errors"
)

// inlineEventLimit caps how many events render inside a day cell before the
// remainder collapses behind the "+N more" affordance.
const inlineEventLimit = 3

type personalEventLister interface {
	ListByUserRange(ctx context.Context, userID, from, to string) ([]models.PersonalEvent, error)
}

// CalendarService merges curriculum deadlines with personal events and
// shapes them into the month grid consumed by the client.
type CalendarService struct {
	events  personalEventLister
	catalog *curriculum.Catalog
	logger  *zap.Logger
}

// NewCalendarService constructs the service.
func NewCalendarService(events personalEventLister, catalog *curriculum.Catalog, logger *zap.Logger) *CalendarService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CalendarService{events: events, catalog: catalog, logger: logger}
}

// MonthEvents returns the merged event list for the month: curriculum
// deadlines and exams first, then the user's own events. Each call rebuilds
// the slice from scratch; nothing is mutated in place.
func (s *CalendarService) MonthEvents(ctx context.Context, userID string, yearKey models.YearKey, year int, month time.Month) ([]models.CalendarEvent, error) {
	plan, ok := s.catalog.Plan(yearKey)
	if !ok {
		return nil, appErrors.Clone(appErrors.ErrUnknownYear, fmt.Sprintf("no plan for year %q", yearKey))
	}

	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)
	from, to := first.Format("2006-01-02"), last.Format("2006-01-02")

	events := curriculumEvents(plan, from, to)

	if s.events != nil && userID != "" {
		personal, err := s.events.ListByUserRange(ctx, userID, from, to)
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load personal events")
		}
		for _, ev := range personal {
			events = append(events, toCalendarEvent(ev))
		}
	}

	return events, nil
}

// MonthGrid builds the display grid for the month.
func (s *CalendarService) MonthGrid(ctx context.Context, userID string, yearKey models.YearKey, year int, month time.Month) ([]models.DayCell, error) {
	events, err := s.MonthEvents(ctx, userID, yearKey, year, month)
	if err != nil {
		return nil, err
	}
	return BuildMonthGrid(events, year, month), nil
}

// BuildMonthGrid lays the events out over the target month padded to whole
// Monday-start weeks. Within a day, events keep the order supplied by the
// caller; no sorting happens here. Events dated outside the target month
// never render, so the leading and trailing filler cells stay empty.
func BuildMonthGrid(events []models.CalendarEvent, year int, month time.Month) []models.DayCell {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)

	gridStart := first.AddDate(0, 0, -mondayOffset(first))
	gridEnd := last.AddDate(0, 0, 6-mondayOffset(last))

	byDate := make(map[string][]models.CalendarEvent)
	for _, ev := range events {
		byDate[ev.Date] = append(byDate[ev.Date], ev)
	}

	var cells []models.DayCell
	for day := gridStart; !day.After(gridEnd); day = day.AddDate(0, 0, 1) {
		cell := models.DayCell{
			Date:    day.Format("2006-01-02"),
			Day:     day.Day(),
			InMonth: day.Month() == month && day.Year() == year,
		}
		if cell.InMonth {
			fillCell(&cell, byDate[cell.Date])
		}
		cells = append(cells, cell)
	}
	return cells
}

func fillCell(cell *models.DayCell, dayEvents []models.CalendarEvent) {
	for _, ev := range dayEvents {
		switch ev.Kind {
		case models.EventExam:
			cell.HasExam = true
		case models.EventDeadline:
			cell.HasDeadline = true
		case models.EventLecture:
			cell.HasLecture = true
		}
	}
	if len(dayEvents) <= inlineEventLimit {
		cell.Events = dayEvents
		return
	}
	cell.Events = dayEvents[:inlineEventLimit]
	cell.Overflow = dayEvents[inlineEventLimit:]
	cell.OverflowCount = len(dayEvents) - inlineEventLimit
}

// mondayOffset is the number of days since the most recent Monday.
func mondayOffset(day time.Time) int {
	return (int(day.Weekday()) + 6) % 7
}

// curriculumEvents derives deadline and exam events for the [from, to] day
// window from a year plan's assessments.
func curriculumEvents(plan models.AcademicYearPlan, from, to string) []models.CalendarEvent {
	var events []models.CalendarEvent
	for _, module := range plan.Modules {
		for i, assessment := range module.Assessments {
			switch {
			case assessment.Due != "":
				if assessment.Due < from || assessment.Due > to {
					continue
				}
				events = append(events, models.CalendarEvent{
					ID:      fmt.Sprintf("due-%s-%d", module.Code, i+1),
					Date:    assessment.Due,
					Title:   fmt.Sprintf("%s %s due", module.Title, strings.ToLower(string(assessment.Type))),
					Kind:    models.EventDeadline,
					Module:  module.Code,
					Details: fmt.Sprintf("Weight %d%%", assessment.Weight),
				})
			case assessment.Window != nil:
				if assessment.Window.Start < from || assessment.Window.Start > to {
					continue
				}
				events = append(events, models.CalendarEvent{
					ID:      fmt.Sprintf("exam-%s-%d", module.Code, i+1),
					Date:    assessment.Window.Start,
					Title:   module.Title + " exam window opens",
					Kind:    models.EventExam,
					Module:  module.Code,
					Details: fmt.Sprintf("Window %s to %s", assessment.Window.Start, assessment.Window.End),
				})
			}
		}
	}
	return events
}

func toCalendarEvent(ev models.PersonalEvent) models.CalendarEvent {
	out := models.CalendarEvent{
		ID:    ev.ID,
		Date:  ev.EventDate,
		Title: ev.Title,
		Kind:  ev.Kind,
	}
	if ev.StartTime != nil {
		out.Start = *ev.StartTime
	}
	if ev.EndTime != nil {
		out.End = *ev.EndTime
	}
	if ev.ModuleCode != nil {
		out.Module = *ev.ModuleCode
	}
	if ev.Details != nil {
		out.Details = *ev.Details
	}
	return out
}
