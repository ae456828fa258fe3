// Package curriculum holds the static LLB programme catalog. Plans are
// built once at startup and treated as immutable; every derivation over
// them produces fresh view-models.
package curriculum

import (
	"fmt"
	"time"

	"github.com/mohan0265/mydurhamlaw-api/internal/models"
)

// Catalog is the in-memory module catalog for all four years of study.
type Catalog struct {
	plans map[models.YearKey]models.AcademicYearPlan
	order []models.YearKey
}

// Load constructs the catalog for the current academic year.
func Load() *Catalog {
	plans := buildPlans()
	return &Catalog{plans: plans, order: models.YearKeys}
}

// Plan returns the plan for a year of study.
func (c *Catalog) Plan(key models.YearKey) (models.AcademicYearPlan, bool) {
	plan, ok := c.plans[key]
	return plan, ok
}

// Plans returns every plan in programme order.
func (c *Catalog) Plans() []models.AcademicYearPlan {
	out := make([]models.AcademicYearPlan, 0, len(c.order))
	for _, key := range c.order {
		out = append(out, c.plans[key])
	}
	return out
}

// Validate checks the term-date invariants: per plan, all three terms are
// present, internally consistent, and chronologically ordered without
// overlap (Michaelmas < Epiphany < Easter).
func (c *Catalog) Validate() error {
	terms := []models.TermName{models.TermMichaelmas, models.TermEpiphany, models.TermEaster}
	for _, key := range c.order {
		plan := c.plans[key]
		var prevEnd string
		for _, term := range terms {
			span, ok := plan.TermDates[term]
			if !ok {
				return fmt.Errorf("plan %s: missing term %s", key, term)
			}
			if span.Start >= span.End {
				return fmt.Errorf("plan %s: term %s starts after it ends", key, term)
			}
			if prevEnd != "" && span.Start <= prevEnd {
				return fmt.Errorf("plan %s: term %s overlaps the previous term", key, term)
			}
			if len(span.Weeks) != term.WeekCount() {
				return fmt.Errorf("plan %s: term %s has %d week dates, want %d", key, term, len(span.Weeks), term.WeekCount())
			}
			prevEnd = span.End
		}
	}
	return nil
}

// termSpan builds a TermSpan with the Monday of each teaching week filled in.
func termSpan(start, end string, weeks int) models.TermSpan {
	first, err := time.Parse("2006-01-02", start)
	if err != nil {
		panic(fmt.Sprintf("curriculum: bad term start %q: %v", start, err))
	}
	dates := make([]string, 0, weeks)
	for i := 0; i < weeks; i++ {
		dates = append(dates, first.AddDate(0, 0, i*7).Format("2006-01-02"))
	}
	return models.TermSpan{Start: start, End: end, Weeks: dates}
}
