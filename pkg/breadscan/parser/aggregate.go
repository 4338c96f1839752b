package parser

import (
	"breadscan/pkg/breadscan/grid"
	"breadscan/pkg/breadscan/models"
)

// Accumulate detects the table rooted at the anchor and folds its rows
// into the store totals. When the cell directly above the anchor names a
// driver, the same sums are additionally credited to that driver; store
// totals are never reduced by driver attribution. Tables with no store
// columns or no data rows contribute nothing and are skipped silently.
func Accumulate(s grid.Sheet, a Anchor, lastRow, lastCol int, labels Labels, stores, drivers models.TotalsMap) {
	driverRaw := grid.Read(s, a.Row-1, a.Col)
	driver := DisplayText(driverRaw)
	hasDriver := NormalizeText(driverRaw) != ""

	headerRow := a.Row - 1 // store names sit above the subheaders
	subRow := a.Row
	dataStart := a.Row + 1
	firstStoreCol := a.Col + 2 // skip the bread-count column

	cols := DetectStoreColumns(s, headerRow, subRow, firstStoreCol, lastCol, labels)
	if len(cols) == 0 {
		return
	}

	dataEnd := FindDataEnd(s, a.Col, dataStart, lastRow)
	if dataEnd < dataStart {
		return
	}

	for r := dataStart; r <= dataEnd; r++ {
		for _, st := range cols {
			brought := ToNumber(grid.Read(s, r, st.BroughtCol))
			returned := ToNumber(grid.Read(s, r, st.ReturnedCol))

			stores.Add(st.Name, brought, returned)
			if hasDriver {
				drivers.Add(driver, brought, returned)
			}
		}
	}
}
