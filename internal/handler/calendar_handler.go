package handler

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mohan0265/mydurhamlaw-api/internal/models"
	appErrors "github.com/mohan0265/mydurhamlaw-api/pkg/errors"
	"github.com/mohan0265/mydurhamlaw-api/pkg/export"
	"github.com/mohan0265/mydurhamlaw-api/pkg/response"
)

type calendarService interface {
	MonthGrid(ctx context.Context, userID string, yearKey models.YearKey, year int, month time.Month) ([]models.DayCell, error)
	MonthEvents(ctx context.Context, userID string, yearKey models.YearKey, year int, month time.Month) ([]models.CalendarEvent, error)
}

// CalendarHandler serves the month grid and calendar feed endpoints.
type CalendarHandler struct {
	calendar calendarService
	profiles yearGroupResolver
	ics      *export.ICSExporter
	clock    func() time.Time
}

// NewCalendarHandler constructs the handler.
func NewCalendarHandler(calendar calendarService, profiles yearGroupResolver, calendarName string) *CalendarHandler {
	return &CalendarHandler{
		calendar: calendar,
		profiles: profiles,
		ics:      export.NewICSExporter(calendarName),
		clock:    time.Now,
	}
}

// MonthGrid godoc
// @Summary Month grid of curriculum and personal events
// @Tags Calendar
// @Produce json
// @Param year query int false "Year (defaults to current)"
// @Param month query int false "Month 1-12 (defaults to current)"
// @Success 200 {object} response.Envelope
// @Router /calendar/month [get]
func (h *CalendarHandler) MonthGrid(c *gin.Context) {
	claims := claimsFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}
	yearKey, err := h.profiles.YearGroup(c.Request.Context(), claims.UserID)
	if err != nil {
		response.Error(c, err)
		return
	}

	year, month, ok := h.resolveMonth(c)
	if !ok {
		return
	}

	cells, err := h.calendar.MonthGrid(c.Request.Context(), claims.UserID, yearKey, year, month)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, gin.H{
		"year":  year,
		"month": int(month),
		"cells": cells,
	}, nil)
}

// ExportICS godoc
// @Summary Month events as an iCalendar feed
// @Tags Calendar
// @Produce text/calendar
// @Param year query int false "Year (defaults to current)"
// @Param month query int false "Month 1-12 (defaults to current)"
// @Success 200 {file} binary
// @Router /calendar/export.ics [get]
func (h *CalendarHandler) ExportICS(c *gin.Context) {
	claims := claimsFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}
	yearKey, err := h.profiles.YearGroup(c.Request.Context(), claims.UserID)
	if err != nil {
		response.Error(c, err)
		return
	}

	year, month, ok := h.resolveMonth(c)
	if !ok {
		return
	}

	events, err := h.calendar.MonthEvents(c.Request.Context(), claims.UserID, yearKey, year, month)
	if err != nil {
		response.Error(c, err)
		return
	}
	data, err := h.ics.Render(events)
	if err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render calendar feed"))
		return
	}
	name := export.Filename("ics", "calendar", strconv.Itoa(year), strconv.Itoa(int(month)))
	c.Header("Content-Disposition", `attachment; filename="`+name+`"`)
	c.Data(http.StatusOK, "text/calendar", data)
}

func (h *CalendarHandler) resolveMonth(c *gin.Context) (int, time.Month, bool) {
	now := h.clock()
	year := now.Year()
	month := now.Month()

	if raw := c.Query("year"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 2000 || parsed > 2100 {
			response.Error(c, appErrors.Clone(appErrors.ErrValidation, "year must be a four digit year"))
			return 0, 0, false
		}
		year = parsed
	}
	if raw := c.Query("month"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 || parsed > 12 {
			response.Error(c, appErrors.Clone(appErrors.ErrValidation, "month must be between 1 and 12"))
			return 0, 0, false
		}
		month = time.Month(parsed)
	}
	return year, month, true
}
