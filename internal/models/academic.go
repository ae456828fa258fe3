package models

// TermName identifies one of the three Durham teaching terms.
type TermName string

const (
	TermMichaelmas TermName = "Michaelmas"
	TermEpiphany   TermName = "Epiphany"
	TermEaster     TermName = "Easter"
)

// WeekCount returns the number of teaching weeks in the term.
func (t TermName) WeekCount() int {
	if t == TermEaster {
		return 8
	}
	return 10
}

// TermWeek is the resolved position of a date within the teaching year.
type TermWeek struct {
	Term TermName `json:"term"`
	Week int      `json:"week"`
}

// YearKey identifies a year of study in the LLB programme.
type YearKey string

const (
	YearFoundation YearKey = "foundation"
	YearOne        YearKey = "year1"
	YearTwo        YearKey = "year2"
	YearThree      YearKey = "year3"
)

// YearKeys lists the years of study in programme order.
var YearKeys = []YearKey{YearFoundation, YearOne, YearTwo, YearThree}

// Index returns the programme position of the year, Foundation being 0.
// Unknown keys return -1.
func (y YearKey) Index() int {
	for i, key := range YearKeys {
		if key == y {
			return i
		}
	}
	return -1
}
