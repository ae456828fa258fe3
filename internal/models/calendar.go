package models

// EventKind classifies calendar entries for display and indicators.
type EventKind string

const (
	EventLecture  EventKind = "lecture"
	EventSeminar  EventKind = "seminar"
	EventDeadline EventKind = "deadline"
	EventExam     EventKind = "exam"
	EventTask     EventKind = "task"
	EventAllDay   EventKind = "all-day"
)

// CalendarEvent is the view-model handed to the month grid. Date is an ISO
// day string; Start and End are optional HH:MM times. Events are rebuilt on
// every request and never mutated in place.
type CalendarEvent struct {
	ID      string    `json:"id"`
	Date    string    `json:"date"`
	Start   string    `json:"start,omitempty"`
	End     string    `json:"end,omitempty"`
	Title   string    `json:"title"`
	Kind    EventKind `json:"kind"`
	Module  string    `json:"module,omitempty"`
	Details string    `json:"details,omitempty"`
}

// DayCell is one cell of the rendered month grid. Events holds at most the
// first three entries for the day; the rest move to Overflow.
type DayCell struct {
	Date          string          `json:"date"`
	Day           int             `json:"day"`
	InMonth       bool            `json:"in_month"`
	Events        []CalendarEvent `json:"events"`
	Overflow      []CalendarEvent `json:"overflow,omitempty"`
	OverflowCount int             `json:"overflow_count"`
	HasExam       bool            `json:"has_exam"`
	HasDeadline   bool            `json:"has_deadline"`
	HasLecture    bool            `json:"has_lecture"`
}
