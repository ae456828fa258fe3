package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/mohan0265/mydurhamlaw-api/internal/models"
)

const eventColumns = "id, user_id, title, event_date, start_time, end_time, kind, module_code, details, created_at, updated_at"

// EventRepository handles persistence for personal calendar events.
type EventRepository struct {
	db *sqlx.DB
}

// NewEventRepository instantiates an event repository.
func NewEventRepository(db *sqlx.DB) *EventRepository {
	return &EventRepository{db: db}
}

// List returns a user's events matching the filter, oldest first.
func (r *EventRepository) List(ctx context.Context, userID string, filter models.PersonalEventFilter) ([]models.PersonalEvent, int, error) {
	base := "FROM personal_events WHERE user_id = $1"
	args := []interface{}{userID}

	var conditions []string
	if filter.From != "" {
		conditions = append(conditions, fmt.Sprintf("event_date >= $%d", len(args)+1))
		args = append(args, filter.From)
	}
	if filter.To != "" {
		conditions = append(conditions, fmt.Sprintf("event_date <= $%d", len(args)+1))
		args = append(args, filter.To)
	}
	if filter.Kind != "" {
		conditions = append(conditions, fmt.Sprintf("kind = $%d", len(args)+1))
		args = append(args, filter.Kind)
	}
	if len(conditions) > 0 {
		base += " AND " + strings.Join(conditions, " AND ")
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}
	size := filter.PageSize
	if size <= 0 || size > 200 {
		size = 50
	}
	offset := (page - 1) * size

	query := fmt.Sprintf("SELECT %s %s ORDER BY event_date ASC, created_at ASC LIMIT %d OFFSET %d", eventColumns, base, size, offset)

	var events []models.PersonalEvent
	if err := r.db.SelectContext(ctx, &events, query, args...); err != nil {
		return nil, 0, fmt.Errorf("list events: %w", err)
	}

	countQuery := fmt.Sprintf("SELECT COUNT(*) %s", base)
	var total int
	if err := r.db.GetContext(ctx, &total, countQuery, args...); err != nil {
		return nil, 0, fmt.Errorf("count events: %w", err)
	}

	return events, total, nil
}

// ListByUserRange returns all of a user's events in the [from, to] window.
func (r *EventRepository) ListByUserRange(ctx context.Context, userID, from, to string) ([]models.PersonalEvent, error) {
	query := fmt.Sprintf("SELECT %s FROM personal_events WHERE user_id = $1 AND event_date >= $2 AND event_date <= $3 ORDER BY event_date ASC, created_at ASC", eventColumns)
	var events []models.PersonalEvent
	if err := r.db.SelectContext(ctx, &events, query, userID, from, to); err != nil {
		return nil, fmt.Errorf("list events by range: %w", err)
	}
	return events, nil
}

// FindByID loads an event by identifier.
func (r *EventRepository) FindByID(ctx context.Context, id string) (*models.PersonalEvent, error) {
	query := fmt.Sprintf("SELECT %s FROM personal_events WHERE id = $1", eventColumns)
	var event models.PersonalEvent
	if err := r.db.GetContext(ctx, &event, query, id); err != nil {
		return nil, err
	}
	return &event, nil
}

// Create inserts a new event, assigning its identifier and timestamps.
func (r *EventRepository) Create(ctx context.Context, event *models.PersonalEvent) error {
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	event.CreatedAt = now
	event.UpdatedAt = now

	const query = `INSERT INTO personal_events (id, user_id, title, event_date, start_time, end_time, kind, module_code, details, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	if _, err := r.db.ExecContext(ctx, query,
		event.ID, event.UserID, event.Title, event.EventDate, event.StartTime, event.EndTime,
		event.Kind, event.ModuleCode, event.Details, event.CreatedAt, event.UpdatedAt,
	); err != nil {
		return fmt.Errorf("create event: %w", err)
	}
	return nil
}

// Update rewrites an event's mutable fields.
func (r *EventRepository) Update(ctx context.Context, event *models.PersonalEvent) error {
	event.UpdatedAt = time.Now().UTC()

	const query = `UPDATE personal_events SET title = $1, event_date = $2, start_time = $3, end_time = $4, kind = $5, module_code = $6, details = $7, updated_at = $8 WHERE id = $9`
	res, err := r.db.ExecContext(ctx, query,
		event.Title, event.EventDate, event.StartTime, event.EndTime, event.Kind,
		event.ModuleCode, event.Details, event.UpdatedAt, event.ID,
	)
	if err != nil {
		return fmt.Errorf("update event: %w", err)
	}
	if rows, err := res.RowsAffected(); err == nil && rows == 0 {
		return fmt.Errorf("update event %s: no rows affected", event.ID)
	}
	return nil
}

// Delete removes an event.
func (r *EventRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM personal_events WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("delete event: %w", err)
	}
	if rows, err := res.RowsAffected(); err == nil && rows == 0 {
		return fmt.Errorf("delete event %s: no rows affected", id)
	}
	return nil
}
