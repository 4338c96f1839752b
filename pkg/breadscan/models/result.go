package models

// ScanResult is the product of one workbook scan. The maps start empty,
// grow additively while the scan runs, and are handed to the caller
// unchanged afterwards; a new scan starts from a fresh result.
type ScanResult struct {
	// Stores accumulates totals per store.
	Stores TotalsMap `json:"stores"`
	// Drivers accumulates totals per delivery driver.
	Drivers TotalsMap `json:"drivers"`
	// Meta records the scan parameters.
	Meta ScanMeta `json:"meta"`
}

// NewScanResult returns an empty result carrying the given metadata.
func NewScanResult(meta ScanMeta) *ScanResult {
	return &ScanResult{
		Stores:  TotalsMap{},
		Drivers: TotalsMap{},
		Meta:    meta,
	}
}
