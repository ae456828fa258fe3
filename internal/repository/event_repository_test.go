package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mohan0265/mydurhamlaw-api/internal/models"
)

func newRepoMock(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	return sqlx.NewDb(db, "sqlmock"), mock, func() { db.Close() }
}

func eventRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "user_id", "title", "event_date", "start_time", "end_time", "kind", "module_code", "details", "created_at", "updated_at"})
}

func TestEventRepositoryListByUserRange(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewEventRepository(db)

	rows := eventRows().
		AddRow("ev-1", "user-1", "Mooting practice", "2026-02-10", nil, nil, "task", nil, nil, time.Now(), time.Now()).
		AddRow("ev-2", "user-1", "Tort revision", "2026-02-12", "09:00", "10:00", "task", "LAW1051", nil, time.Now(), time.Now())

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, user_id, title, event_date, start_time, end_time, kind, module_code, details, created_at, updated_at FROM personal_events WHERE user_id = $1 AND event_date >= $2 AND event_date <= $3 ORDER BY event_date ASC, created_at ASC")).
		WithArgs("user-1", "2026-02-01", "2026-02-28").
		WillReturnRows(rows)

	events, err := repo.ListByUserRange(context.Background(), "user-1", "2026-02-01", "2026-02-28")
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, "Mooting practice", events[0].Title)
	require.NotNil(t, events[1].StartTime)
	assert.Equal(t, "09:00", *events[1].StartTime)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEventRepositoryListAppliesFilters(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewEventRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("FROM personal_events WHERE user_id = $1 AND event_date >= $2 AND kind = $3")).
		WithArgs("user-1", "2026-01-01", "deadline").
		WillReturnRows(eventRows())
	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM personal_events WHERE user_id = $1 AND event_date >= $2 AND kind = $3")).
		WithArgs("user-1", "2026-01-01", "deadline").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	events, total, err := repo.List(context.Background(), "user-1", models.PersonalEventFilter{
		From: "2026-01-01",
		Kind: models.EventDeadline,
	})
	require.NoError(t, err)
	assert.Empty(t, events)
	assert.Zero(t, total)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEventRepositoryCreateAssignsID(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewEventRepository(db)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO personal_events")).
		WithArgs(sqlmock.AnyArg(), "user-1", "Land Law seminar prep", "2026-03-02", nil, nil, "task", nil, nil, sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))

	event := &models.PersonalEvent{
		UserID:    "user-1",
		Title:     "Land Law seminar prep",
		EventDate: "2026-03-02",
		Kind:      models.EventTask,
	}
	require.NoError(t, repo.Create(context.Background(), event))
	assert.NotEmpty(t, event.ID)
	assert.False(t, event.CreatedAt.IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEventRepositoryUpdateNoRows(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewEventRepository(db)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE personal_events SET")).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Update(context.Background(), &models.PersonalEvent{ID: "missing", Kind: models.EventTask})
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEventRepositoryDelete(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewEventRepository(db)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM personal_events WHERE id = $1")).
		WithArgs("ev-1").
		WillReturnResult(sqlmock.NewResult(1, 1))

	require.NoError(t, repo.Delete(context.Background(), "ev-1"))
	assert.NoError(t, mock.ExpectationsWereMet())
}
