package handler

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mohan0265/mydurhamlaw-api/internal/models"
	appErrors "github.com/mohan0265/mydurhamlaw-api/pkg/errors"
	"github.com/mohan0265/mydurhamlaw-api/pkg/export"
	"github.com/mohan0265/mydurhamlaw-api/pkg/response"
)

type overviewService interface {
	MultiYear(ctx context.Context, yearGroup string, now time.Time) (*models.MultiYearData, bool, error)
	Year(yearKey models.YearKey, yearGroup string, now time.Time) (*models.YearOverview, error)
	UpcomingEvents(yearGroup string, now time.Time) ([]models.CalendarEvent, error)
	Now() time.Time
}

type termResolver interface {
	Resolve(now time.Time) models.TermWeek
}

type yearGroupResolver interface {
	YearGroup(ctx context.Context, userID string) (models.YearKey, error)
}

type planLookup interface {
	Plan(key models.YearKey) (models.AcademicYearPlan, bool)
}

// AcademicHandler serves term resolution and year overview endpoints.
type AcademicHandler struct {
	overview overviewService
	terms    termResolver
	profiles yearGroupResolver
	plans    planLookup
	csv      *export.CSVExporter
	pdf      *export.PDFExporter
}

// NewAcademicHandler constructs the handler.
func NewAcademicHandler(overview overviewService, terms termResolver, profiles yearGroupResolver, plans planLookup) *AcademicHandler {
	return &AcademicHandler{
		overview: overview,
		terms:    terms,
		profiles: profiles,
		plans:    plans,
		csv:      export.NewCSVExporter(),
		pdf:      export.NewPDFExporter(),
	}
}

// CurrentTerm godoc
// @Summary Resolve the teaching term and week for a date
// @Tags Academic
// @Produce json
// @Param date query string false "Date (YYYY-MM-DD). Defaults to today"
// @Success 200 {object} response.Envelope
// @Router /academic/current-term [get]
func (h *AcademicHandler) CurrentTerm(c *gin.Context) {
	now, ok := h.resolveDate(c)
	if !ok {
		return
	}
	response.JSON(c, http.StatusOK, h.terms.Resolve(now), nil)
}

// MultiYear godoc
// @Summary Progress overview across all years of study
// @Tags Academic
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /academic/years/multi-year [get]
func (h *AcademicHandler) MultiYear(c *gin.Context) {
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

	start := time.Now()
	data, cacheHit, err := h.overview.MultiYear(c.Request.Context(), string(yearKey), h.overview.Now())
	if err != nil {
		response.Error(c, err)
		return
	}
	meta := map[string]interface{}{
		"cache_hit":          cacheHit,
		"processing_time_ms": time.Since(start).Milliseconds(),
	}
	response.JSON(c, http.StatusOK, data, nil, meta)
}

// Year godoc
// @Summary Overview for one year of study
// @Tags Academic
// @Produce json
// @Param yearKey path string true "Year key (foundation, year1, year2, year3)"
// @Success 200 {object} response.Envelope
// @Router /academic/years/{yearKey} [get]
func (h *AcademicHandler) Year(c *gin.Context) {
	claims := claimsFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}
	yearGroup, err := h.profiles.YearGroup(c.Request.Context(), claims.UserID)
	if err != nil {
		response.Error(c, err)
		return
	}

	yearKey := models.YearKey(c.Param("yearKey"))
	overview, err := h.overview.Year(yearKey, string(yearGroup), h.overview.Now())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, overview, nil)
}

// UpcomingEvents godoc
// @Summary Upcoming synthetic lecture slots for the caller's year
// @Tags Academic
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /academic/upcoming-events [get]
func (h *AcademicHandler) UpcomingEvents(c *gin.Context) {
	claims := claimsFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}
	yearGroup, err := h.profiles.YearGroup(c.Request.Context(), claims.UserID)
	if err != nil {
		response.Error(c, err)
		return
	}

	events, err := h.overview.UpcomingEvents(string(yearGroup), h.overview.Now())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, events, nil)
}

// ExportYear godoc
// @Summary Export a year overview as CSV or PDF
// @Tags Academic
// @Produce octet-stream
// @Param yearKey path string true "Year key"
// @Param format query string false "csv or pdf (default csv)"
// @Success 200 {file} binary
// @Router /academic/years/{yearKey}/export [get]
func (h *AcademicHandler) ExportYear(c *gin.Context) {
	claims := claimsFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}
	yearGroup, err := h.profiles.YearGroup(c.Request.Context(), claims.UserID)
	if err != nil {
		response.Error(c, err)
		return
	}

	yearKey := models.YearKey(c.Param("yearKey"))
	overview, err := h.overview.Year(yearKey, string(yearGroup), h.overview.Now())
	if err != nil {
		response.Error(c, err)
		return
	}
	plan, ok := h.plans.Plan(yearKey)
	if !ok {
		response.Error(c, appErrors.ErrUnknownYear)
		return
	}

	format := strings.ToLower(strings.TrimSpace(c.DefaultQuery("format", "csv")))
	switch format {
	case "csv":
		data, err := h.csv.Render(export.YearOverviewDataset(*overview))
		if err != nil {
			response.Error(c, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render csv"))
			return
		}
		name := export.Filename("csv", string(yearKey), "overview")
		c.Header("Content-Disposition", `attachment; filename="`+name+`"`)
		c.Data(http.StatusOK, "text/csv", data)
	case "pdf":
		data, err := h.pdf.Render(export.YearOverviewDataset(*overview), plan.Label, "Modules and term progress")
		if err != nil {
			response.Error(c, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render pdf"))
			return
		}
		name := export.Filename("pdf", string(yearKey), "overview")
		c.Header("Content-Disposition", `attachment; filename="`+name+`"`)
		c.Data(http.StatusOK, "application/pdf", data)
	default:
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "format must be csv or pdf"))
	}
}

func (h *AcademicHandler) resolveDate(c *gin.Context) (time.Time, bool) {
	dateStr := strings.TrimSpace(c.Query("date"))
	if dateStr == "" {
		return h.overview.Now(), true
	}
	parsed, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "invalid date format, expected YYYY-MM-DD"))
		return time.Time{}, false
	}
	return parsed, true
}
