// Package grid abstracts a workbook as read-only cell grids so the layout
// heuristics can run against any backing store, file-based or in-memory.
package grid

// Region is a merged rectangle of cells, 1-based and inclusive. The
// displayed value lives only at the top-left cell; the rest of the
// rectangle reads as empty in the backing store.
type Region struct {
	// MinRow is the top row of the region.
	MinRow int `json:"min_row"`
	// MinCol is the left column of the region.
	MinCol int `json:"min_col"`
	// MaxRow is the bottom row of the region.
	MaxRow int `json:"max_row"`
	// MaxCol is the right column of the region.
	MaxCol int `json:"max_col"`
}

// Contains reports whether the coordinate lies inside the region.
func (g Region) Contains(row, col int) bool {
	return g.MinRow <= row && row <= g.MaxRow && g.MinCol <= col && col <= g.MaxCol
}

// Sheet is a read-only 2-D grid of cell values addressed by 1-based
// (row, column) coordinates.
type Sheet interface {
	// Dims returns the populated extent of the sheet. Either value may be
	// zero for an empty sheet.
	Dims() (rows, cols int)
	// Value returns the raw value at (row, col): nil when absent, float64
	// for numeric cells, string otherwise. Coordinates outside the sheet
	// read as nil.
	Value(row, col int) any
	// Regions returns the merged regions declared on the sheet.
	Regions() []Region
}

// Workbook is an ordered collection of named sheets.
type Workbook interface {
	// SheetNames returns the sheet names in workbook order.
	SheetNames() []string
	// Sheet returns the named sheet.
	Sheet(name string) (Sheet, error)
}
