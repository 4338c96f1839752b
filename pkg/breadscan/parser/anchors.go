package parser

import "breadscan/pkg/breadscan/grid"

// Anchor is a candidate table origin: a cell whose text equals the anchor
// label.
type Anchor struct {
	// Row is the 1-based anchor row.
	Row int
	// Col is the 1-based anchor column.
	Col int
}

// FindAnchors scans the bounded window row-major (top to bottom, left to
// right within a row) for cells whose merge-resolved normalized text
// equals the anchor label. Every match is an independent table candidate;
// overlapping extents are not checked.
func FindAnchors(s grid.Sheet, lastRow, lastCol int, anchor string) []Anchor {
	var anchors []Anchor
	for r := 1; r <= lastRow; r++ {
		for c := 1; c <= lastCol; c++ {
			if NormalizeText(grid.Read(s, r, c)) == anchor {
				anchors = append(anchors, Anchor{Row: r, Col: c})
			}
		}
	}
	return anchors
}
