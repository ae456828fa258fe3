package models

import "time"

// PersonalEvent is a user-created calendar entry persisted in Postgres.
// EventDate is the ISO day the event falls on; times are optional HH:MM.
type PersonalEvent struct {
	ID         string    `db:"id" json:"id"`
	UserID     string    `db:"user_id" json:"user_id"`
	Title      string    `db:"title" json:"title"`
	EventDate  string    `db:"event_date" json:"event_date"`
	StartTime  *string   `db:"start_time" json:"start_time,omitempty"`
	EndTime    *string   `db:"end_time" json:"end_time,omitempty"`
	Kind       EventKind `db:"kind" json:"kind"`
	ModuleCode *string   `db:"module_code" json:"module_code,omitempty"`
	Details    *string   `db:"details" json:"details,omitempty"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
	UpdatedAt  time.Time `db:"updated_at" json:"updated_at"`
}

// PersonalEventFilter narrows event listings to a date window.
type PersonalEventFilter struct {
	From     string
	To       string
	Kind     EventKind
	Page     int
	PageSize int
}
