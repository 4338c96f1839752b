// Package models defines data structures for workbook scan results.
package models

import "sort"

// Totals accumulates brought and returned quantities for one entity.
type Totals struct {
	// Brought is the total quantity delivered to the entity.
	Brought float64 `json:"brought"`
	// Returned is the total quantity returned by the entity.
	Returned float64 `json:"returned"`
}

// Rate returns the return rate as a percentage of the brought quantity.
func (t Totals) Rate() float64 {
	return Rate(t.Returned, t.Brought)
}

// Rate computes returned/brought as a percentage. Defined as 0 when
// brought is not positive, never an error.
func Rate(returned, brought float64) float64 {
	if brought > 0 {
		return returned / brought * 100.0
	}
	return 0.0
}

// TotalsMap maps an entity display name to its accumulated totals.
// Names keep the casing of their first occurrence.
type TotalsMap map[string]*Totals

// Add accumulates brought and returned quantities for the named entity.
func (m TotalsMap) Add(name string, brought, returned float64) {
	t, ok := m[name]
	if !ok {
		t = &Totals{}
		m[name] = t
	}
	t.Brought += brought
	t.Returned += returned
}

// Names returns the entity names sorted alphabetically.
func (m TotalsMap) Names() []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
