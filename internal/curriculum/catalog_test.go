package curriculum

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mohan0265/mydurhamlaw-api/internal/models"
)

func TestCatalogValidates(t *testing.T) {
	catalog := Load()
	require.NoError(t, catalog.Validate())
}

func TestCatalogCoversAllYears(t *testing.T) {
	catalog := Load()
	plans := catalog.Plans()
	require.Len(t, plans, 4)
	for i, key := range models.YearKeys {
		assert.Equal(t, key, plans[i].YearKey)
		assert.NotEmpty(t, plans[i].Modules, "plan %s has no modules", key)
	}
}

func TestTermWeekDatesAreWeekly(t *testing.T) {
	catalog := Load()
	plan, ok := catalog.Plan(models.YearOne)
	require.True(t, ok)

	mich := plan.TermDates[models.TermMichaelmas]
	require.Len(t, mich.Weeks, 10)
	assert.Equal(t, "2025-10-06", mich.Weeks[0])
	assert.Equal(t, "2025-10-13", mich.Weeks[1])
	assert.Equal(t, "2025-12-08", mich.Weeks[9])

	easter := plan.TermDates[models.TermEaster]
	require.Len(t, easter.Weeks, 8)
	assert.Equal(t, "2026-04-27", easter.Weeks[0])
}

func TestModuleDeliveriesNameKnownTerms(t *testing.T) {
	catalog := Load()
	known := map[string]bool{
		"Michaelmas": true, "Epiphany": true, "Easter": true,
		"Michaelmas+Epiphany": true, "Epiphany+Easter": true,
	}
	for _, plan := range catalog.Plans() {
		for _, module := range plan.Modules {
			assert.True(t, known[module.Delivery], "module %s has delivery %q", module.Code, module.Delivery)
		}
	}
}
