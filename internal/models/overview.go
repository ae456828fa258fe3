package models

// TermSummary is the per-term slice of a year overview.
type TermSummary struct {
	Name     TermName `json:"name"`
	Start    string   `json:"start"`
	End      string   `json:"end"`
	Modules  []Module `json:"modules"`
	Progress int      `json:"progress_percentage"`
}

// DeadlineSummary describes the next assessment falling due.
type DeadlineSummary struct {
	ModuleCode  string         `json:"module_code"`
	ModuleTitle string         `json:"module_title"`
	Type        AssessmentType `json:"type"`
	Due         string         `json:"due"`
	DueIn       string         `json:"due_in,omitempty"`
}

// YearOverview is the derived view of one year of study. It is recomputed
// per request from the static plan and the clock; nothing here is stored.
type YearOverview struct {
	YearKey         YearKey          `json:"year_key"`
	Label           string           `json:"label"`
	Terms           []TermSummary    `json:"terms"`
	OverallProgress int              `json:"overall_progress"`
	NextDeadline    *DeadlineSummary `json:"next_deadline,omitempty"`
}

// MultiYearData aggregates overviews for the whole programme.
type MultiYearData struct {
	CurrentYearKey YearKey        `json:"current_year_key"`
	Years          []YearOverview `json:"years"`
}
