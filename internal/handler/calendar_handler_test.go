package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mohan0265/mydurhamlaw-api/internal/models"
)

type fakeCalendarSrv struct {
	cells  []models.DayCell
	events []models.CalendarEvent
	err    error
	last   struct {
		year  int
		month time.Month
	}
}

func (f *fakeCalendarSrv) MonthGrid(_ context.Context, _ string, _ models.YearKey, year int, month time.Month) ([]models.DayCell, error) {
	f.last.year = year
	f.last.month = month
	return f.cells, f.err
}

func (f *fakeCalendarSrv) MonthEvents(_ context.Context, _ string, _ models.YearKey, year int, month time.Month) ([]models.CalendarEvent, error) {
	f.last.year = year
	f.last.month = month
	return f.events, f.err
}

func TestMonthGridUsesQueryParams(t *testing.T) {
	gin.SetMode(gin.TestMode)
	srv := &fakeCalendarSrv{cells: []models.DayCell{{Date: "2026-01-26", Day: 26}}}
	handler := NewCalendarHandler(srv, &fakeProfileSrv{key: models.YearOne}, "MyDurhamLaw")

	rec := httptest.NewRecorder()
	c := authedContext(t, rec, http.MethodGet, "/calendar/month?year=2026&month=2")

	handler.MonthGrid(c)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 2026, srv.last.year)
	assert.Equal(t, time.February, srv.last.month)

	var envelope responseEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.Equal(t, float64(2), envelope.Data["month"])
}

func TestMonthGridRejectsBadMonth(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewCalendarHandler(&fakeCalendarSrv{}, &fakeProfileSrv{key: models.YearOne}, "")

	rec := httptest.NewRecorder()
	c := authedContext(t, rec, http.MethodGet, "/calendar/month?month=13")

	handler.MonthGrid(c)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestMonthGridDefaultsToCurrentMonth(t *testing.T) {
	gin.SetMode(gin.TestMode)
	srv := &fakeCalendarSrv{}
	handler := NewCalendarHandler(srv, &fakeProfileSrv{key: models.YearOne}, "")
	handler.clock = func() time.Time { return time.Date(2026, time.May, 4, 12, 0, 0, 0, time.UTC) }

	rec := httptest.NewRecorder()
	c := authedContext(t, rec, http.MethodGet, "/calendar/month")

	handler.MonthGrid(c)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 2026, srv.last.year)
	assert.Equal(t, time.May, srv.last.month)
}

func TestExportICSReturnsCalendarFeed(t *testing.T) {
	gin.SetMode(gin.TestMode)
	srv := &fakeCalendarSrv{events: []models.CalendarEvent{
		{ID: "due-LAW1071-0", Date: "2026-01-12", Title: "EU Law essay due", Kind: models.EventDeadline},
	}}
	handler := NewCalendarHandler(srv, &fakeProfileSrv{key: models.YearOne}, "MyDurhamLaw")

	rec := httptest.NewRecorder()
	c := authedContext(t, rec, http.MethodGet, "/calendar/export.ics?year=2026&month=1")

	handler.ExportICS(c)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/calendar", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Body.String(), "BEGIN:VCALENDAR")
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "calendar-2026-1.ics")
}

func TestExportICSRequiresAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewCalendarHandler(&fakeCalendarSrv{}, &fakeProfileSrv{}, "")

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/calendar/export.ics", nil)

	handler.ExportICS(c)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
