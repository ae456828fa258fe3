package export

import (
	"fmt"
	"time"

	ics "github.com/arran4/golang-ical"

	"github.com/mohan0265/mydurhamlaw-api/internal/models"
)

// ICSExporter renders calendar events into an iCalendar feed.
type ICSExporter struct {
	calendarName string
}

// NewICSExporter constructs an ICS exporter with the given calendar name.
func NewICSExporter(calendarName string) *ICSExporter {
	if calendarName == "" {
		calendarName = "MyDurhamLaw"
	}
	return &ICSExporter{calendarName: calendarName}
}

// Render serialises the events as an iCalendar document. Events without
// times become all-day entries.
func (e *ICSExporter) Render(events []models.CalendarEvent) ([]byte, error) {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//MyDurhamLaw//Study Calendar//EN")
	cal.SetName(e.calendarName)
	cal.SetXWRCalName(e.calendarName)

	stamp := time.Now().UTC()
	for _, event := range events {
		day, err := time.Parse("2006-01-02", event.Date)
		if err != nil {
			return nil, fmt.Errorf("event %s: bad date %q: %w", event.ID, event.Date, err)
		}

		ve := cal.AddEvent(event.ID + "@mydurhamlaw")
		ve.SetDtStampTime(stamp)
		ve.SetSummary(event.Title)
		if event.Details != "" {
			ve.SetDescription(event.Details)
		}
		if event.Module != "" {
			ve.SetLocation(event.Module)
		}

		start, allDay := day, true
		if event.Start != "" {
			if t, err := time.Parse("15:04", event.Start); err == nil {
				start = day.Add(time.Duration(t.Hour())*time.Hour + time.Duration(t.Minute())*time.Minute)
				allDay = false
			}
		}

		if allDay {
			ve.SetAllDayStartAt(day)
			ve.SetAllDayEndAt(day.AddDate(0, 0, 1))
			continue
		}

		ve.SetStartAt(start)
		end := start.Add(time.Hour)
		if event.End != "" {
			if t, err := time.Parse("15:04", event.End); err == nil {
				end = day.Add(time.Duration(t.Hour())*time.Hour + time.Duration(t.Minute())*time.Minute)
			}
		}
		ve.SetEndAt(end)
	}

	return []byte(cal.Serialize()), nil
}
