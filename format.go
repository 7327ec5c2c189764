package webshot

import (
	"fmt"
	"strings"
)

// FormatAuto requests height auto-measurement: the page height becomes
// the document's rendered scroll height and the width is fixed at
// AutoFormatWidthPx CSS pixels.
const FormatAuto = "auto"

// AutoFormatWidthPx is the fixed paper width, in CSS pixels, used with
// the auto format.
const AutoFormatWidthPx = 1366

// paperSize holds paper dimensions in inches, portrait orientation.
type paperSize struct {
	Width  float64
	Height float64
}

// paperFormats maps lower-cased format names to their dimensions.
// Values follow the CDP printToPDF paper formats.
var paperFormats = map[string]paperSize{
	"letter":  {8.5, 11},
	"legal":   {8.5, 14},
	"tabloid": {11, 17},
	"ledger":  {17, 11},
	"a0":      {33.1, 46.8},
	"a1":      {23.4, 33.1},
	"a2":      {16.54, 23.4},
	"a3":      {11.7, 16.54},
	"a4":      {8.27, 11.7},
	"a5":      {5.83, 8.27},
	"a6":      {4.13, 5.83},
}

// lookupFormat resolves a paper format name to dimensions in inches,
// swapping width and height for landscape orientation. Format names are
// case-insensitive. The auto sentinel is not a valid input here; the
// render pipeline resolves it before calling.
func lookupFormat(name string, landscape bool) (width, height float64, err error) {
	size, ok := paperFormats[strings.ToLower(name)]
	if !ok {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidFormat, name)
	}
	if landscape {
		return size.Height, size.Width, nil
	}
	return size.Width, size.Height, nil
}
