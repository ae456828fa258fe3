package export

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mohan0265/mydurhamlaw-api/internal/models"
)

func TestCSVRender(t *testing.T) {
	out, err := NewCSVExporter().Render(Dataset{
		Headers: []string{"Module", "Due"},
		Rows: []map[string]string{
			{"Module": "LAW1071", "Due": "2026-01-12"},
			{"Module": "LAW1101"},
		},
	})
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(out)), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "Module,Due", lines[0])
	assert.Equal(t, "LAW1101,", lines[2])
}

func TestCSVRequiresHeaders(t *testing.T) {
	_, err := NewCSVExporter().Render(Dataset{})
	assert.Error(t, err)
}

func TestYearOverviewDatasetOneRowPerModule(t *testing.T) {
	overview := models.YearOverview{
		Terms: []models.TermSummary{
			{
				Name:     models.TermMichaelmas,
				Progress: 75,
				Modules: []models.Module{
					{Code: "LAW1051", Title: "Tort Law", Credits: 20, Delivery: "Michaelmas + Epiphany"},
					{Code: "LAW1101", Title: "Legal Method", Credits: 20, Delivery: "Michaelmas"},
				},
			},
		},
	}
	ds := YearOverviewDataset(overview)
	require.Len(t, ds.Rows, 2)
	assert.Equal(t, "LAW1051", ds.Rows[0]["Module"])
	assert.Equal(t, "75", ds.Rows[0]["Progress %"])
}

func TestDeadlinesDatasetUsesWindowStart(t *testing.T) {
	plan := models.AcademicYearPlan{
		Modules: []models.Module{
			{
				Code:  "LAW1051",
				Title: "Tort Law",
				Assessments: []models.Assessment{
					{Type: models.AssessmentExam, Weight: 80, Window: &models.AssessmentWindow{Start: "2026-05-11", End: "2026-05-29"}},
					{Type: models.AssessmentCoursework, Weight: 20},
				},
			},
		},
	}
	ds := DeadlinesDataset(plan)
	require.Len(t, ds.Rows, 1)
	assert.Equal(t, "2026-05-11", ds.Rows[0]["Due"])
}

func TestICSRenderTimedAndAllDay(t *testing.T) {
	out, err := NewICSExporter("MyDurhamLaw").Render([]models.CalendarEvent{
		{ID: "lec-LAW1051-1", Date: "2026-02-02", Start: "10:00", End: "11:00", Title: "Tort Law lecture", Module: "LAW1051"},
		{ID: "due-LAW1071-0", Date: "2026-01-12", Title: "EU Law essay due", Kind: models.EventDeadline},
	})
	require.NoError(t, err)
	text := string(out)
	assert.Contains(t, text, "BEGIN:VCALENDAR")
	assert.Contains(t, text, "SUMMARY:Tort Law lecture")
	assert.Contains(t, text, "UID:due-LAW1071-0@mydurhamlaw")
	assert.Contains(t, text, "VALUE=DATE")
}

func TestICSRenderRejectsBadDate(t *testing.T) {
	_, err := NewICSExporter("").Render([]models.CalendarEvent{{ID: "x", Date: "12/01/2026", Title: "bad"}})
	assert.Error(t, err)
}

func TestFilename(t *testing.T) {
	assert.Equal(t, "year1-overview.csv", Filename("csv", "Year1", "Overview"))
}
