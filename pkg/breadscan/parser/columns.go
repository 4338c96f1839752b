package parser

import "breadscan/pkg/breadscan/grid"

// UnnamedStore is the display name used when a store column block has an
// empty header cell.
const UnnamedStore = "(unnamed)"

// StoreColumns locates one store's column pair within a table.
type StoreColumns struct {
	// Name is the store display name from the header row.
	Name string
	// BroughtCol is the delivered-quantity column.
	BroughtCol int
	// ReturnedCol is the returned-quantity column.
	ReturnedCol int
}

// DetectStoreColumns finds repeating [brought, returned, stock] column
// blocks on the subheader row, reading store names from the header row
// above (merge-resolved). On a match the scan strides three columns,
// skipping the stock column; otherwise it advances one. Malformed blocks
// yield no pair rather than an error. The scan stops when fewer than two
// columns remain in the window.
func DetectStoreColumns(s grid.Sheet, headerRow, subRow, startCol, lastCol int, labels Labels) []StoreColumns {
	var stores []StoreColumns
	c := startCol
	for c <= lastCol-1 {
		brought := NormalizeText(grid.Read(s, subRow, c))
		returned := NormalizeText(grid.Read(s, subRow, c+1))
		if brought == labels.Brought && returned == labels.Returned {
			name := DisplayText(grid.Read(s, headerRow, c))
			if name == "" {
				name = UnnamedStore
			}
			stores = append(stores, StoreColumns{Name: name, BroughtCol: c, ReturnedCol: c + 1})
			c += 3
		} else {
			c++
		}
	}
	return stores
}
