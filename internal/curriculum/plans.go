package curriculum

import "github.com/mohan0265/mydurhamlaw-api/internal/models"

// Academic year 2025/26 term dates. The resolver derives its own boundaries
// from the clock; these spans drive week dates, deadlines and the grid.
const (
	michaelmasStart = "2025-10-06"
	michaelmasEnd   = "2025-12-12"
	epiphanyStart   = "2026-01-12"
	epiphanyEnd     = "2026-03-20"
	easterStart     = "2026-04-27"
	easterEnd       = "2026-06-26"
)

func standardTermDates() map[models.TermName]models.TermSpan {
	return map[models.TermName]models.TermSpan{
		models.TermMichaelmas: termSpan(michaelmasStart, michaelmasEnd, 10),
		models.TermEpiphany:   termSpan(epiphanyStart, epiphanyEnd, 10),
		models.TermEaster:     termSpan(easterStart, easterEnd, 8),
	}
}

func examWindow() *models.AssessmentWindow {
	return &models.AssessmentWindow{Start: "2026-05-11", End: "2026-05-29"}
}

func buildPlans() map[models.YearKey]models.AcademicYearPlan {
	return map[models.YearKey]models.AcademicYearPlan{
		models.YearFoundation: {
			YearKey:   models.YearFoundation,
			Label:     "Foundation",
			TermDates: standardTermDates(),
			Modules: []models.Module{
				{
					Code: "FND1011", Title: "Introduction to Legal Study", Credits: 20,
					Delivery: "Michaelmas",
					Assessments: []models.Assessment{
						{Type: models.AssessmentEssay, Weight: 40, Due: "2025-12-08"},
						{Type: models.AssessmentCoursework, Weight: 60, Due: "2026-01-19"},
					},
				},
				{
					Code: "FND1021", Title: "Academic Writing and Reasoning", Credits: 20,
					Delivery: "Michaelmas+Epiphany",
					Assessments: []models.Assessment{
						{Type: models.AssessmentCoursework, Weight: 50, Due: "2026-03-02"},
						{Type: models.AssessmentEssay, Weight: 50, Due: "2026-05-04"},
					},
				},
				{
					Code: "FND1031", Title: "The English Legal System", Credits: 20,
					Delivery: "Epiphany",
					Assessments: []models.Assessment{
						{Type: models.AssessmentExam, Weight: 100, Window: examWindow()},
					},
				},
				{
					Code: "FND1041", Title: "Contemporary Legal Issues", Credits: 20,
					Delivery: "Easter",
					Assessments: []models.Assessment{
						{Type: models.AssessmentOral, Weight: 30, Due: "2026-06-01"},
						{Type: models.AssessmentEssay, Weight: 70, Due: "2026-06-15"},
					},
				},
			},
		},
		models.YearOne: {
			YearKey:   models.YearOne,
			Label:     "Year 1",
			TermDates: standardTermDates(),
			Modules: []models.Module{
				{
					Code: "LAW1051", Title: "Tort Law", Credits: 20,
					Delivery: "Michaelmas+Epiphany",
					Assessments: []models.Assessment{
						{Type: models.AssessmentCoursework, Weight: 25, Due: "2026-01-26"},
						{Type: models.AssessmentExam, Weight: 75, Window: examWindow()},
					},
				},
				{
					Code: "LAW1061", Title: "Contract Law", Credits: 20,
					Delivery: "Michaelmas+Epiphany",
					Assessments: []models.Assessment{
						{Type: models.AssessmentExam, Weight: 100, Window: examWindow()},
					},
				},
				{
					Code: "LAW1071", Title: "European Union Constitutional Law", Credits: 20,
					Delivery: "Michaelmas",
					Assessments: []models.Assessment{
						{Type: models.AssessmentEssay, Weight: 100, Due: "2026-01-12"},
					},
				},
				{
					Code: "LAW1081", Title: "UK Constitutional Law", Credits: 20,
					Delivery: "Epiphany",
					Assessments: []models.Assessment{
						{Type: models.AssessmentExam, Weight: 100, Window: examWindow()},
					},
				},
				{
					Code: "LAW1091", Title: "Criminal Law", Credits: 20,
					Delivery: "Epiphany+Easter",
					Assessments: []models.Assessment{
						{Type: models.AssessmentCoursework, Weight: 30, Due: "2026-03-09"},
						{Type: models.AssessmentExam, Weight: 70, Window: examWindow()},
					},
				},
				{
					Code: "LAW1101", Title: "Introduction to English Law and Legal Method", Credits: 20,
					Delivery: "Michaelmas",
					Assessments: []models.Assessment{
						{Type: models.AssessmentCoursework, Weight: 100, Due: "2025-12-15"},
					},
					Notes: "Compulsory skills module",
				},
			},
		},
		models.YearTwo: {
			YearKey:   models.YearTwo,
			Label:     "Year 2",
			TermDates: standardTermDates(),
			Modules: []models.Module{
				{
					Code: "LAW2011", Title: "Land Law", Credits: 20,
					Delivery: "Michaelmas+Epiphany",
					Assessments: []models.Assessment{
						{Type: models.AssessmentExam, Weight: 100, Window: examWindow()},
					},
				},
				{
					Code: "LAW2021", Title: "Trusts Law", Credits: 20,
					Delivery: "Michaelmas+Epiphany",
					Assessments: []models.Assessment{
						{Type: models.AssessmentCoursework, Weight: 20, Due: "2026-02-16"},
						{Type: models.AssessmentExam, Weight: 80, Window: examWindow()},
					},
				},
				{
					Code: "LAW2031", Title: "Administrative Law", Credits: 20,
					Delivery: "Michaelmas",
					Assessments: []models.Assessment{
						{Type: models.AssessmentEssay, Weight: 100, Due: "2026-01-20"},
					},
				},
				{
					Code: "LAW2041", Title: "Commercial Law", Credits: 20,
					Delivery: "Epiphany",
					Assessments: []models.Assessment{
						{Type: models.AssessmentExam, Weight: 100, Window: examWindow()},
					},
				},
				{
					Code: "LAW2051", Title: "Employment Law", Credits: 20,
					Delivery: "Easter",
					Assessments: []models.Assessment{
						{Type: models.AssessmentEssay, Weight: 100, Due: "2026-06-08"},
					},
				},
			},
		},
		models.YearThree: {
			YearKey:   models.YearThree,
			Label:     "Year 3",
			TermDates: standardTermDates(),
			Modules: []models.Module{
				{
					Code: "LAW3011", Title: "Dissertation", Credits: 40,
					Delivery: "Michaelmas+Epiphany",
					Assessments: []models.Assessment{
						{Type: models.AssessmentCoursework, Weight: 100, Due: "2026-04-24"},
					},
					Notes: "Supervised independent research",
				},
				{
					Code: "LAW3021", Title: "Company Law", Credits: 20,
					Delivery: "Michaelmas+Epiphany",
					Assessments: []models.Assessment{
						{Type: models.AssessmentExam, Weight: 100, Window: examWindow()},
					},
				},
				{
					Code: "LAW3031", Title: "Jurisprudence", Credits: 20,
					Delivery: "Michaelmas",
					Assessments: []models.Assessment{
						{Type: models.AssessmentEssay, Weight: 100, Due: "2026-01-16"},
					},
				},
				{
					Code: "LAW3041", Title: "Public International Law", Credits: 20,
					Delivery: "Epiphany",
					Assessments: []models.Assessment{
						{Type: models.AssessmentCoursework, Weight: 40, Due: "2026-03-13"},
						{Type: models.AssessmentExam, Weight: 60, Window: examWindow()},
					},
				},
				{
					Code: "LAW3051", Title: "Evidence", Credits: 20,
					Delivery: "Easter",
					Assessments: []models.Assessment{
						{Type: models.AssessmentExam, Weight: 100, Window: examWindow()},
					},
				},
			},
		},
	}
}
