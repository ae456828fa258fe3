package dto

import "github.com/mohan0265/mydurhamlaw-api/internal/models"

// CreateEventRequest payload for adding a personal calendar entry.
type CreateEventRequest struct {
	Title      string           `json:"title" validate:"required,max=200"`
	EventDate  string           `json:"event_date" validate:"required,datetime=2006-01-02"`
	StartTime  *string          `json:"start_time,omitempty" validate:"omitempty,datetime=15:04"`
	EndTime    *string          `json:"end_time,omitempty" validate:"omitempty,datetime=15:04"`
	Kind       models.EventKind `json:"kind" validate:"required,oneof=lecture seminar deadline exam task all-day"`
	ModuleCode *string          `json:"module_code,omitempty" validate:"omitempty,max=20"`
	Details    *string          `json:"details,omitempty" validate:"omitempty,max=2000"`
}

// UpdateEventRequest payload for editing a personal calendar entry.
// All fields are required because updates replace the row wholesale.
type UpdateEventRequest struct {
	Title      string           `json:"title" validate:"required,max=200"`
	EventDate  string           `json:"event_date" validate:"required,datetime=2006-01-02"`
	StartTime  *string          `json:"start_time,omitempty" validate:"omitempty,datetime=15:04"`
	EndTime    *string          `json:"end_time,omitempty" validate:"omitempty,datetime=15:04"`
	Kind       models.EventKind `json:"kind" validate:"required,oneof=lecture seminar deadline exam task all-day"`
	ModuleCode *string          `json:"module_code,omitempty" validate:"omitempty,max=20"`
	Details    *string          `json:"details,omitempty" validate:"omitempty,max=2000"`
}

// EventListQuery mirrors the supported listing filters.
type EventListQuery struct {
	From     string `form:"from" validate:"omitempty,datetime=2006-01-02"`
	To       string `form:"to" validate:"omitempty,datetime=2006-01-02"`
	Kind     string `form:"kind" validate:"omitempty,oneof=lecture seminar deadline exam task all-day"`
	Page     int    `form:"page"`
	PageSize int    `form:"page_size"`
}
