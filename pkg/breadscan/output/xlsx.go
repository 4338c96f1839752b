package output

import (
	"math"

	"github.com/xuri/excelize/v2"

	"breadscan/pkg/breadscan/models"
)

const reportColWidth = 22

// ExportXLSX writes the scan result to a report workbook with a Stores
// sheet and a Drivers sheet. Quantities stay native floats; the rate is
// rounded to two decimals. (The CSV report rounds quantities to three
// decimals instead; the asymmetry is part of the observed contract.)
func ExportXLSX(res *models.ScanResult, path string) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", "Stores"); err != nil {
		return &ExportError{Path: path, Err: err}
	}
	if _, err := f.NewSheet("Drivers"); err != nil {
		return &ExportError{Path: path, Err: err}
	}

	if err := writeTotalsSheet(f, "Stores", "Store", res.Stores); err != nil {
		return &ExportError{Path: path, Err: err}
	}
	if err := writeTotalsSheet(f, "Drivers", "Driver", res.Drivers); err != nil {
		return &ExportError{Path: path, Err: err}
	}

	if err := f.SaveAs(path); err != nil {
		return &ExportError{Path: path, Err: err}
	}
	return nil
}

func writeTotalsSheet(f *excelize.File, sheet, entity string, m models.TotalsMap) error {
	header := []any{entity, "Brought (П-ка)", "Returned (В-ат)", "Return rate %"}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return err
	}

	row := 2
	for _, name := range m.Names() {
		t := m[name]
		rate := math.Round(t.Rate()*100) / 100
		cell, err := excelize.CoordinatesToCellName(1, row)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &[]any{name, t.Brought, t.Returned, rate}); err != nil {
			return err
		}
		row++
	}

	panes := &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	}
	if err := f.SetPanes(sheet, panes); err != nil {
		return err
	}
	return f.SetColWidth(sheet, "A", "D", reportColWidth)
}
