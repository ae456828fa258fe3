package models

// AssessmentType classifies how a module is assessed.
type AssessmentType string

const (
	AssessmentExam       AssessmentType = "Exam"
	AssessmentCoursework AssessmentType = "Coursework"
	AssessmentEssay      AssessmentType = "Essay"
	AssessmentOral       AssessmentType = "Oral"
)

// AssessmentWindow is the sitting period for a timetabled exam.
type AssessmentWindow struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// Assessment is one weighted component of a module's mark. Coursework
// carries a single due date; exams carry a sitting window instead. Dates are
// ISO day strings so they compare lexicographically.
type Assessment struct {
	Type   AssessmentType    `json:"type"`
	Weight int               `json:"weight"`
	Due    string            `json:"due,omitempty"`
	Window *AssessmentWindow `json:"window,omitempty"`
}

// Module is a curriculum unit owned by exactly one year plan. Delivery names
// the term the module runs in, or a "TermA+TermB" compound when it spans two.
type Module struct {
	Code        string       `json:"code"`
	Title       string       `json:"title"`
	Credits     int          `json:"credits"`
	Delivery    string       `json:"delivery"`
	Assessments []Assessment `json:"assessments"`
	Notes       string       `json:"notes,omitempty"`
}

// TermSpan holds the dates of a single term within a year plan, including
// the Monday of each teaching week.
type TermSpan struct {
	Start string   `json:"start"`
	End   string   `json:"end"`
	Weeks []string `json:"weeks"`
}

// AcademicYearPlan is one year of study's curriculum. Plans are static
// configuration constructed once at startup and never mutated.
type AcademicYearPlan struct {
	YearKey   YearKey               `json:"year_key"`
	Label     string                `json:"label"`
	TermDates map[TermName]TermSpan `json:"term_dates"`
	Modules   []Module              `json:"modules"`
}
