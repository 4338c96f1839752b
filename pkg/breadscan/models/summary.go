package models

import "github.com/montanaflynn/stats"

// Summary describes a totals map in aggregate.
type Summary struct {
	// Entities is the number of distinct names in the map.
	Entities int `json:"entities"`
	// Brought is the sum of brought quantities across all entities.
	Brought float64 `json:"brought"`
	// Returned is the sum of returned quantities across all entities.
	Returned float64 `json:"returned"`
	// MeanRate is the mean per-entity return rate in percent.
	MeanRate float64 `json:"mean_rate"`
	// MedianRate is the median per-entity return rate in percent.
	MedianRate float64 `json:"median_rate"`
}

// Summarize computes aggregate statistics over a totals map. An empty map
// yields a zero summary.
func Summarize(m TotalsMap) Summary {
	s := Summary{Entities: len(m)}
	rates := make([]float64, 0, len(m))
	for _, t := range m {
		s.Brought += t.Brought
		s.Returned += t.Returned
		rates = append(rates, t.Rate())
	}
	if len(rates) > 0 {
		s.MeanRate, _ = stats.Mean(rates)
		s.MedianRate, _ = stats.Median(rates)
	}
	return s
}
