// Package breadscan aggregates brought and returned bread quantities from
// semi-regular delivery worksheets into per-store and per-driver totals.
package breadscan

import (
	"fmt"
	"time"

	"breadscan/pkg/breadscan/parser"
)

// Default scan window bounds: rows 1..320 of columns A..Y.
const (
	DefaultMaxRows = 320
	DefaultMaxCols = 25
)

// Options configures a workbook scan.
type Options struct {
	// From is the inclusive start of the sheet date range.
	From time.Time
	// To is the inclusive end of the sheet date range. The caller
	// guarantees To is not before From.
	To time.Time
	// MaxRows bounds the scan window height; DefaultMaxRows when zero.
	MaxRows int
	// MaxCols bounds the scan window width; DefaultMaxCols when zero.
	MaxCols int
	// Labels overrides the header texts driving detection. Zero value
	// means DefaultLabels.
	Labels parser.Labels
	// OnProgress, when set, is called after each sheet with the number of
	// sheets finished and the total selected. It must return promptly and
	// must not touch scan state.
	OnProgress func(done, total int)
	// OnLog, when set, receives human-readable progress messages.
	OnLog func(msg string)
}

// DefaultOptions returns options scanning the default window with the
// default labels. From and To must still be set by the caller.
func DefaultOptions() Options {
	return Options{
		MaxRows: DefaultMaxRows,
		MaxCols: DefaultMaxCols,
		Labels:  parser.DefaultLabels(),
	}
}

// normalized fills zero fields with defaults and canonicalizes the label
// text once, so detection compares normalized against normalized.
func (o Options) normalized() Options {
	if o.MaxRows <= 0 {
		o.MaxRows = DefaultMaxRows
	}
	if o.MaxCols <= 0 {
		o.MaxCols = DefaultMaxCols
	}
	if (o.Labels == parser.Labels{}) {
		o.Labels = parser.DefaultLabels()
	}
	o.Labels = o.Labels.Normalized()
	return o
}

func (o Options) progress(done, total int) {
	if o.OnProgress != nil {
		o.OnProgress(done, total)
	}
}

func (o Options) logf(format string, args ...any) {
	if o.OnLog != nil {
		o.OnLog(fmt.Sprintf(format, args...))
	}
}
