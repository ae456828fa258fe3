package export

import (
	"fmt"
	"strings"

	"github.com/mohan0265/mydurhamlaw-api/internal/models"
)

// YearOverviewDataset flattens a year overview into one row per module,
// repeating the term columns so the table stays readable in CSV and PDF.
func YearOverviewDataset(overview models.YearOverview) Dataset {
	headers := []string{"Term", "Module", "Title", "Credits", "Delivery", "Progress %"}
	var rows []map[string]string
	for _, term := range overview.Terms {
		for _, module := range term.Modules {
			rows = append(rows, map[string]string{
				"Term":       string(term.Name),
				"Module":     module.Code,
				"Title":      module.Title,
				"Credits":    fmt.Sprintf("%d", module.Credits),
				"Delivery":   module.Delivery,
				"Progress %": fmt.Sprintf("%d", term.Progress),
			})
		}
	}
	return Dataset{Headers: headers, Rows: rows}
}

// DeadlinesDataset lists every dated assessment in the plan, in module
// order. Exam windows contribute their start date.
func DeadlinesDataset(plan models.AcademicYearPlan) Dataset {
	headers := []string{"Module", "Title", "Type", "Weight %", "Due"}
	var rows []map[string]string
	for _, module := range plan.Modules {
		for _, assessment := range module.Assessments {
			due := assessment.Due
			if due == "" && assessment.Window != nil {
				due = assessment.Window.Start
			}
			if due == "" {
				continue
			}
			rows = append(rows, map[string]string{
				"Module":   module.Code,
				"Title":    module.Title,
				"Type":     string(assessment.Type),
				"Weight %": fmt.Sprintf("%d", assessment.Weight),
				"Due":      due,
			})
		}
	}
	return Dataset{Headers: headers, Rows: rows}
}

// Filename builds a safe attachment name from parts.
func Filename(ext string, parts ...string) string {
	joined := strings.Join(parts, "-")
	joined = strings.ReplaceAll(strings.ToLower(joined), " ", "-")
	return joined + "." + ext
}
