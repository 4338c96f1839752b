package output

import (
	"encoding/json"

	"breadscan/pkg/breadscan/models"
)

// Report is the JSON shape of a finished scan: the raw result plus
// per-map summary statistics.
type Report struct {
	Result  *models.ScanResult `json:"result"`
	Stores  models.Summary     `json:"stores_summary"`
	Drivers models.Summary     `json:"drivers_summary"`
}

// ToJSON marshals the scan result, with summaries, to JSON.
func ToJSON(res *models.ScanResult, pretty bool) ([]byte, error) {
	rep := Report{
		Result:  res,
		Stores:  models.Summarize(res.Stores),
		Drivers: models.Summarize(res.Drivers),
	}
	if pretty {
		return json.MarshalIndent(rep, "", "  ")
	}
	return json.Marshal(rep)
}
