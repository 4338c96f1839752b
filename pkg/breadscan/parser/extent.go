package parser

import "breadscan/pkg/breadscan/grid"

// FindDataEnd walks down the anchor column from startRow and returns the
// last row holding data. Two consecutive blank rows terminate the walk;
// so does the window edge. The result is less than startRow when the
// table has no data rows at all, which callers treat as "skip this
// table".
func FindDataEnd(s grid.Sheet, anchorCol, startRow, lastRow int) int {
	end := startRow - 1
	blanks := 0
	for r := startRow; r <= lastRow; r++ {
		if NormalizeText(grid.Read(s, r, anchorCol)) == "" {
			blanks++
			if blanks >= 2 {
				break
			}
		} else {
			blanks = 0
			end = r
		}
	}
	return end
}
