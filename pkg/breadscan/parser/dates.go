package parser

import (
	"regexp"
	"time"

	"breadscan/pkg/breadscan/models"
)

var sheetDateRe = regexp.MustCompile(`^\d{2}\.\d{2}\.\d{4}$`)

// ParseSheetDate parses a DD.MM.YYYY sheet name. Names with the right
// shape but an impossible calendar date (e.g. "31.02.2024") do not
// parse.
func ParseSheetDate(name string) (time.Time, bool) {
	if !sheetDateRe.MatchString(name) {
		return time.Time{}, false
	}
	t, err := time.Parse(models.DateLayout, name)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// SelectSheets filters names to date sheets falling within [from, to]
// inclusive, preserving workbook order.
func SelectSheets(names []string, from, to time.Time) []string {
	var selected []string
	for _, name := range names {
		d, ok := ParseSheetDate(name)
		if !ok {
			continue
		}
		if d.Before(from) || d.After(to) {
			continue
		}
		selected = append(selected, name)
	}
	return selected
}
