package models

import (
	"time"

	"github.com/google/uuid"
)

// DateLayout is the sheet-name and report date format (DD.MM.YYYY).
const DateLayout = "02.01.2006"

// ScanMeta records the parameters and extent of one workbook scan.
type ScanMeta struct {
	// ScanID uniquely identifies the scan run.
	ScanID uuid.UUID `json:"scan_id"`
	// BookName is the workbook file name (no path).
	BookName string `json:"book_name,omitempty"`
	// From is the inclusive start of the sheet date range.
	From time.Time `json:"from"`
	// To is the inclusive end of the sheet date range.
	To time.Time `json:"to"`
	// MaxRows is the row bound applied to every sheet window.
	MaxRows int `json:"max_rows"`
	// MaxCols is the column bound applied to every sheet window.
	MaxCols int `json:"max_cols"`
	// SheetsScanned is the number of sheets that matched the date range.
	SheetsScanned int `json:"sheets_scanned"`
}

// RangeSuffix renders the date range as "DD.MM.YYYY_DD.MM.YYYY" for use
// in export file names.
func (m ScanMeta) RangeSuffix() string {
	return m.From.Format(DateLayout) + "_" + m.To.Format(DateLayout)
}
