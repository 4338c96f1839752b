package grid

import "fmt"

// MemSheet is an in-memory Sheet for tests and synthetic workbooks.
type MemSheet struct {
	cells  map[[2]int]any
	rows   int
	cols   int
	merges []Region
}

// NewMemSheet returns an empty in-memory sheet.
func NewMemSheet() *MemSheet {
	return &MemSheet{cells: make(map[[2]int]any)}
}

// Set stores a value at the 1-based coordinate, growing the sheet extent
// as needed. It returns the sheet for chaining.
func (s *MemSheet) Set(row, col int, v any) *MemSheet {
	s.cells[[2]int{row, col}] = v
	if row > s.rows {
		s.rows = row
	}
	if col > s.cols {
		s.cols = col
	}
	return s
}

// Merge declares a merged region. Only the top-left cell should carry a
// value, matching how spreadsheets store merges.
func (s *MemSheet) Merge(minRow, minCol, maxRow, maxCol int) *MemSheet {
	s.merges = append(s.merges, Region{MinRow: minRow, MinCol: minCol, MaxRow: maxRow, MaxCol: maxCol})
	if maxRow > s.rows {
		s.rows = maxRow
	}
	if maxCol > s.cols {
		s.cols = maxCol
	}
	return s
}

// Dims returns the populated extent of the sheet.
func (s *MemSheet) Dims() (int, int) { return s.rows, s.cols }

// Value returns the stored value, or nil outside the populated cells.
func (s *MemSheet) Value(row, col int) any {
	return s.cells[[2]int{row, col}]
}

// Regions returns the declared merged regions.
func (s *MemSheet) Regions() []Region { return s.merges }

// MemWorkbook is an ordered in-memory Workbook.
type MemWorkbook struct {
	order  []string
	sheets map[string]*MemSheet
}

// NewMemWorkbook returns an empty in-memory workbook.
func NewMemWorkbook() *MemWorkbook {
	return &MemWorkbook{sheets: make(map[string]*MemSheet)}
}

// AddSheet appends a named sheet, preserving insertion order.
func (w *MemWorkbook) AddSheet(name string, s *MemSheet) *MemWorkbook {
	if _, ok := w.sheets[name]; !ok {
		w.order = append(w.order, name)
	}
	w.sheets[name] = s
	return w
}

// SheetNames returns the sheet names in insertion order.
func (w *MemWorkbook) SheetNames() []string { return w.order }

// Sheet returns the named sheet.
func (w *MemWorkbook) Sheet(name string) (Sheet, error) {
	s, ok := w.sheets[name]
	if !ok {
		return nil, fmt.Errorf("no such sheet %q", name)
	}
	return s, nil
}
