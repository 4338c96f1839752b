package breadscan

import (
	"fmt"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"breadscan/pkg/breadscan/grid"
	"breadscan/pkg/breadscan/models"
	"breadscan/pkg/breadscan/parser"
)

// Scan opens the workbook at path and aggregates brought and returned
// quantities per store and per driver across every date sheet within the
// range in opts. An open failure is fatal for the whole scan and yields
// no partial result.
func Scan(path string, opts Options) (*models.ScanResult, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrWorkbookOpen, path, err)
	}
	defer f.Close()

	res, err := ScanWorkbook(grid.NewXLSXWorkbook(f), opts)
	if err != nil {
		return nil, err
	}
	res.Meta.BookName = filepath.Base(path)
	return res, nil
}

// ScanWorkbook runs the scan against an already-open workbook. The totals
// maps start empty and grow additively table by table; the returned
// result is owned by the caller and not mutated afterwards.
func ScanWorkbook(wb grid.Workbook, opts Options) (*models.ScanResult, error) {
	opts = opts.normalized()

	res := models.NewScanResult(models.ScanMeta{
		ScanID:  uuid.New(),
		From:    opts.From,
		To:      opts.To,
		MaxRows: opts.MaxRows,
		MaxCols: opts.MaxCols,
	})

	sheets := parser.SelectSheets(wb.SheetNames(), opts.From, opts.To)
	total := len(sheets)
	res.Meta.SheetsScanned = total
	opts.logf("scanning %d sheet(s) between %s and %s",
		total, opts.From.Format(models.DateLayout), opts.To.Format(models.DateLayout))

	for done, name := range sheets {
		sheet, err := wb.Sheet(name)
		if err != nil {
			opts.logf("[%s] skipped: %v", name, err)
			opts.progress(done+1, total)
			continue
		}

		rows, cols := sheet.Dims()
		lastRow := window(rows, opts.MaxRows)
		lastCol := window(cols, opts.MaxCols)

		anchors := parser.FindAnchors(sheet, lastRow, lastCol, opts.Labels.Anchor)
		opts.logf("[%s] found %d table(s) in a %dx%d window", name, len(anchors), lastRow, lastCol)

		for _, a := range anchors {
			parser.Accumulate(sheet, a, lastRow, lastCol, opts.Labels, res.Stores, res.Drivers)
		}

		opts.progress(done+1, total)
	}

	return res, nil
}

// window caps a sheet extent at the configured bound; an unknown (zero)
// extent falls back to the bound.
func window(extent, bound int) int {
	if extent <= 0 || extent > bound {
		return bound
	}
	return extent
}
