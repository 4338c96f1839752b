package grid

// Resolve maps a coordinate to the top-left of its containing merged
// region, or to itself when unmerged. Idempotent: a top-left coordinate
// resolves to itself.
func Resolve(s Sheet, row, col int) (int, int) {
	for _, reg := range s.Regions() {
		if reg.Contains(row, col) {
			return reg.MinRow, reg.MinCol
		}
	}
	return row, col
}

// Read returns the cell value at (row, col) with merged regions resolved
// to their top-left value. Every cell read in the scanner goes through
// here so merge handling stays consistent.
func Read(s Sheet, row, col int) any {
	r, c := Resolve(s, row, col)
	return s.Value(r, c)
}
