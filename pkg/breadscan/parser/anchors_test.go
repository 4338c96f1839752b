package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"breadscan/pkg/breadscan/grid"
)

func TestFindAnchorsRowMajorOrder(t *testing.T) {
	s := grid.NewMemSheet().
		Set(5, 1, "Вид Хлеба").
		Set(2, 10, "вид хлеба").
		Set(2, 1, "ВИД  ХЛЕБА")

	got := FindAnchors(s, 20, 20, DefaultLabels().Anchor)
	assert.Equal(t, []Anchor{{Row: 2, Col: 1}, {Row: 2, Col: 10}, {Row: 5, Col: 1}}, got)
}

func TestFindAnchorsWindowBounds(t *testing.T) {
	s := grid.NewMemSheet().
		Set(2, 2, "Вид Хлеба").
		Set(30, 2, "Вид Хлеба"). // below the window
		Set(2, 30, "Вид Хлеба") // right of the window

	got := FindAnchors(s, 20, 20, DefaultLabels().Anchor)
	assert.Equal(t, []Anchor{{Row: 2, Col: 2}}, got)
}

func TestFindAnchorsResolvesMerges(t *testing.T) {
	// The anchor text lives at the top-left of a merged cell; any
	// coordinate inside the region reads the same value.
	s := grid.NewMemSheet().
		Set(3, 1, "Вид Хлеба").
		Merge(3, 1, 4, 1)

	got := FindAnchors(s, 10, 10, DefaultLabels().Anchor)
	assert.Equal(t, []Anchor{{Row: 3, Col: 1}, {Row: 4, Col: 1}}, got,
		"each cell of a merged anchor matches; downstream tables without data rows are skipped")
}

func TestFindAnchorsNone(t *testing.T) {
	s := grid.NewMemSheet().Set(1, 1, "что-то другое")
	assert.Empty(t, FindAnchors(s, 10, 10, DefaultLabels().Anchor))
}
