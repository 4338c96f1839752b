// Package output renders scan results as CSV, XLSX, and JSON reports.
package output

import (
	"fmt"
	"math"
	"strconv"
)

// FormatQuantity renders a quantity without a decimal point when integral
// and with three decimals otherwise. This is the flat-file contract; the
// XLSX report keeps native floats instead.
func FormatQuantity(x float64) string {
	if x == math.Trunc(x) && !math.IsInf(x, 0) {
		return strconv.FormatInt(int64(x), 10)
	}
	return fmt.Sprintf("%.3f", x)
}

// FormatRate renders a return rate with two decimals.
func FormatRate(x float64) string {
	return fmt.Sprintf("%.2f", x)
}
