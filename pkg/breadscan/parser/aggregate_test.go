package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"breadscan/pkg/breadscan/grid"
	"breadscan/pkg/breadscan/models"
)

// tableSheet builds one table rooted at (2,1): driver cell at (1,1),
// store header at (1,3), subheaders at row 2, bread names in column 1,
// quantities in columns 3 and 4.
func tableSheet(driver string, brought, returned []float64) *grid.MemSheet {
	s := grid.NewMemSheet().
		Set(2, 1, "Вид Хлеба").
		Set(2, 2, "К-во Хлеба").
		Set(1, 3, "Store A").
		Set(2, 3, "П-ка").Set(2, 4, "В-ат").Set(2, 5, "Ост")
	if driver != "" {
		s.Set(1, 1, driver)
	}
	for i := range brought {
		r := 3 + i
		s.Set(r, 1, "Хлеб")
		s.Set(r, 3, brought[i])
		s.Set(r, 4, returned[i])
	}
	return s
}

func TestAccumulateStoreTotals(t *testing.T) {
	s := tableSheet("", []float64{2, 3, 0}, []float64{1, 0, 0})
	stores := models.TotalsMap{}
	drivers := models.TotalsMap{}

	Accumulate(s, Anchor{Row: 2, Col: 1}, 320, 25, DefaultLabels(), stores, drivers)

	require.Contains(t, stores, "Store A")
	assert.Equal(t, models.Totals{Brought: 5, Returned: 1}, *stores["Store A"])
	assert.Equal(t, 20.0, models.Rate(stores["Store A"].Returned, stores["Store A"].Brought))
	assert.Empty(t, drivers, "a table without a driver name counts only toward stores")
}

func TestAccumulateDriverAttribution(t *testing.T) {
	s := tableSheet("Ivanov", []float64{2, 3, 0}, []float64{1, 0, 0})
	stores := models.TotalsMap{}
	drivers := models.TotalsMap{}

	Accumulate(s, Anchor{Row: 2, Col: 1}, 320, 25, DefaultLabels(), stores, drivers)

	require.Contains(t, drivers, "Ivanov")
	assert.Equal(t, *stores["Store A"], *drivers["Ivanov"],
		"driver totals mirror the table's store contribution without reducing it")
}

func TestAccumulateMergedDriverCell(t *testing.T) {
	// Driver names are often merged across several columns above the
	// anchor; the read must resolve to the top-left value.
	s := tableSheet("", []float64{4}, []float64{1})
	s.Set(1, 1, "Петров").Merge(1, 1, 1, 2)

	stores := models.TotalsMap{}
	drivers := models.TotalsMap{}
	Accumulate(s, Anchor{Row: 2, Col: 1}, 320, 25, DefaultLabels(), stores, drivers)

	require.Contains(t, drivers, "Петров")
	assert.Equal(t, models.Totals{Brought: 4, Returned: 1}, *drivers["Петров"])
}

func TestAccumulateTwoAnchorsDisjointStores(t *testing.T) {
	s := tableSheet("", []float64{2}, []float64{1})
	// Second independent table at (8,1) with its own store.
	s.Set(8, 1, "Вид Хлеба").
		Set(7, 3, "Store B").
		Set(8, 3, "П-ка").Set(8, 4, "В-ат").Set(8, 5, "Ост").
		Set(9, 1, "Хлеб").Set(9, 3, 7.0).Set(9, 4, 2.0)

	stores := models.TotalsMap{}
	drivers := models.TotalsMap{}
	for _, a := range FindAnchors(s, 320, 25, DefaultLabels().Anchor) {
		Accumulate(s, a, 320, 25, DefaultLabels(), stores, drivers)
	}

	assert.Equal(t, models.Totals{Brought: 2, Returned: 1}, *stores["Store A"])
	assert.Equal(t, models.Totals{Brought: 7, Returned: 2}, *stores["Store B"])
	assert.Len(t, stores, 2, "tables must not cross-contaminate store keys")
}

func TestAccumulateSkipsTableWithoutStorePairs(t *testing.T) {
	s := grid.NewMemSheet().
		Set(2, 1, "Вид Хлеба").
		Set(3, 1, "Хлеб").Set(3, 3, 9.0)

	stores := models.TotalsMap{}
	drivers := models.TotalsMap{}
	Accumulate(s, Anchor{Row: 2, Col: 1}, 320, 25, DefaultLabels(), stores, drivers)

	assert.Empty(t, stores)
	assert.Empty(t, drivers)
}

func TestAccumulateSkipsTableWithoutDataRows(t *testing.T) {
	s := grid.NewMemSheet().
		Set(2, 1, "Вид Хлеба").
		Set(1, 3, "Store A").
		Set(2, 3, "П-ка").Set(2, 4, "В-ат")

	stores := models.TotalsMap{}
	Accumulate(s, Anchor{Row: 2, Col: 1}, 320, 25, DefaultLabels(), stores, models.TotalsMap{})

	assert.Empty(t, stores)
}

func TestAccumulateDirtyCells(t *testing.T) {
	// Text quantities coerce through ToNumber; garbage counts as zero.
	s := tableSheet("", []float64{0}, []float64{0})
	s.Set(3, 3, "2,5 шт").Set(3, 4, "n/a")

	stores := models.TotalsMap{}
	Accumulate(s, Anchor{Row: 2, Col: 1}, 320, 25, DefaultLabels(), stores, models.TotalsMap{})

	assert.Equal(t, models.Totals{Brought: 2.5, Returned: 0}, *stores["Store A"])
}
