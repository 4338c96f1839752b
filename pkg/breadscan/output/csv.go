package output

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"breadscan/pkg/breadscan/models"
)

// utf8BOM prefixes the exported files so Excel detects UTF-8.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// ExportError wraps a failure while writing a report file. The scan
// result itself stays valid and can be exported again.
type ExportError struct {
	Path string
	Err  error
}

func (e *ExportError) Error() string {
	return fmt.Sprintf("export to %s failed: %v", e.Path, e.Err)
}

func (e *ExportError) Unwrap() error {
	return e.Err
}

// ExportCSV writes stores_summary_<range>.csv and
// drivers_summary_<range>.csv into dir and returns their paths.
func ExportCSV(res *models.ScanResult, dir string) (storesPath, driversPath string, err error) {
	suffix := res.Meta.RangeSuffix()
	storesPath = filepath.Join(dir, fmt.Sprintf("stores_summary_%s.csv", suffix))
	driversPath = filepath.Join(dir, fmt.Sprintf("drivers_summary_%s.csv", suffix))

	if err := writeTotalsCSV(storesPath, "Store", res.Stores); err != nil {
		return "", "", err
	}
	if err := writeTotalsCSV(driversPath, "Driver", res.Drivers); err != nil {
		return "", "", err
	}
	return storesPath, driversPath, nil
}

func writeTotalsCSV(path, entity string, m models.TotalsMap) error {
	f, err := os.Create(path)
	if err != nil {
		return &ExportError{Path: path, Err: err}
	}
	defer f.Close()

	if _, err := f.Write(utf8BOM); err != nil {
		return &ExportError{Path: path, Err: err}
	}

	w := csv.NewWriter(f)
	header := []string{entity, "Brought (П-ка)", "Returned (В-ат)", "Return rate %"}
	if err := w.Write(header); err != nil {
		return &ExportError{Path: path, Err: err}
	}
	for _, name := range m.Names() {
		t := m[name]
		rec := []string{name, FormatQuantity(t.Brought), FormatQuantity(t.Returned), FormatRate(t.Rate())}
		if err := w.Write(rec); err != nil {
			return &ExportError{Path: path, Err: err}
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return &ExportError{Path: path, Err: err}
	}
	return nil
}
