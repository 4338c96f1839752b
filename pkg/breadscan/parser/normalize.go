// Package parser implements the layout heuristics that locate and
// aggregate delivery tables inside loosely structured worksheets.
package parser

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/text/unicode/norm"
)

var (
	whitespaceRe = regexp.MustCompile(`\s+`)
	numberRe     = regexp.MustCompile(`-?\d+(\.\d+)?`)

	// Non-breaking hyphen, en dash, and em dash all appear in
	// hand-authored headers and must compare equal to a plain hyphen.
	dashReplacer = strings.NewReplacer("‑", "-", "–", "-", "—", "-")
)

// NormalizeText canonicalizes cell text for comparison: NFKC
// normalization, unified hyphens, collapsed whitespace runs, trimmed,
// lowercased. Nil reads as "". Every textual comparison in the scanner
// goes through here.
func NormalizeText(v any) string {
	if v == nil {
		return ""
	}
	s := norm.NFKC.String(stringify(v))
	s = dashReplacer.Replace(s)
	s = whitespaceRe.ReplaceAllString(s, " ")
	return strings.ToLower(strings.TrimSpace(s))
}

// ToNumber coerces a cell value to a float. Strings may use a decimal
// comma; the first numeric substring wins. Anything unparseable is 0,
// never an error.
func ToNumber(v any) float64 {
	switch n := v.(type) {
	case nil:
		return 0
	case float64:
		return n
	case int:
		return float64(n)
	case int64:
		return float64(n)
	}
	s := strings.ReplaceAll(strings.TrimSpace(stringify(v)), ",", ".")
	if m := numberRe.FindString(s); m != "" {
		f, _ := strconv.ParseFloat(m, 64)
		return f
	}
	return 0
}

// DisplayText is the case-preserving trimmed form of a cell value, used
// for store and driver display names.
func DisplayText(v any) string {
	if v == nil {
		return ""
	}
	return strings.TrimSpace(stringify(v))
}

func stringify(v any) string {
	switch s := v.(type) {
	case string:
		return s
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64)
	default:
		return fmt.Sprint(v)
	}
}
