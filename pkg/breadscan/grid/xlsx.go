package grid

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// XLSXWorkbook adapts an open excelize file to the Workbook interface.
// The caller keeps ownership of the file handle.
type XLSXWorkbook struct {
	f *excelize.File
}

// NewXLSXWorkbook wraps an open excelize file.
func NewXLSXWorkbook(f *excelize.File) *XLSXWorkbook {
	return &XLSXWorkbook{f: f}
}

// SheetNames returns the sheet names in workbook order.
func (w *XLSXWorkbook) SheetNames() []string {
	return w.f.GetSheetList()
}

// Sheet materializes the named sheet: cell values plus merged regions.
func (w *XLSXWorkbook) Sheet(name string) (Sheet, error) {
	rows, err := w.f.GetRows(name)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", name, err)
	}

	cols := 0
	vals := make([][]any, len(rows))
	for i, row := range rows {
		if len(row) > cols {
			cols = len(row)
		}
		vals[i] = make([]any, len(row))
		for j, cell := range row {
			vals[i][j] = parseCell(cell)
		}
	}

	regions, err := w.mergedRegions(name)
	if err != nil {
		return nil, err
	}

	return &xlsxSheet{vals: vals, rows: len(rows), cols: cols, regions: regions}, nil
}

func (w *XLSXWorkbook) mergedRegions(name string) ([]Region, error) {
	merges, err := w.f.GetMergeCells(name)
	if err != nil {
		return nil, fmt.Errorf("read merges of sheet %q: %w", name, err)
	}
	regions := make([]Region, 0, len(merges))
	for _, mc := range merges {
		c1, r1, err := excelize.CellNameToCoordinates(mc.GetStartAxis())
		if err != nil {
			continue
		}
		c2, r2, err := excelize.CellNameToCoordinates(mc.GetEndAxis())
		if err != nil {
			continue
		}
		regions = append(regions, Region{MinRow: r1, MinCol: c1, MaxRow: r2, MaxCol: c2})
	}
	return regions, nil
}

type xlsxSheet struct {
	vals    [][]any
	rows    int
	cols    int
	regions []Region
}

func (s *xlsxSheet) Dims() (int, int) { return s.rows, s.cols }

func (s *xlsxSheet) Value(row, col int) any {
	if row < 1 || row > len(s.vals) {
		return nil
	}
	r := s.vals[row-1]
	if col < 1 || col > len(r) {
		return nil
	}
	return r[col-1]
}

func (s *xlsxSheet) Regions() []Region { return s.regions }

// parseCell turns excelize's string cell into nil, float64, or string.
func parseCell(s string) any {
	if s == "" {
		return nil
	}
	if f, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err == nil {
		return f
	}
	return s
}
