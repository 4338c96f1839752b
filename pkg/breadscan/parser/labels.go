package parser

// Labels holds the header texts that drive table detection. The values
// are compared against normalized cell text, so callers should pass them
// through Normalized before scanning.
type Labels struct {
	// Anchor marks the top-left corner of a table.
	Anchor string `json:"anchor"`
	// Brought is the subheader of a delivered-quantity column.
	Brought string `json:"brought"`
	// Returned is the subheader of a returned-quantity column.
	Returned string `json:"returned"`
}

// DefaultLabels returns the labels used by the bakery's workbooks.
func DefaultLabels() Labels {
	return Labels{
		Anchor:   "вид хлеба",
		Brought:  "п-ка",
		Returned: "в-ат",
	}
}

// Normalized returns the labels with each value canonicalized the same
// way cell text is.
func (l Labels) Normalized() Labels {
	return Labels{
		Anchor:   NormalizeText(l.Anchor),
		Brought:  NormalizeText(l.Brought),
		Returned: NormalizeText(l.Returned),
	}
}
