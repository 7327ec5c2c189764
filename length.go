package webshot

import (
	"fmt"
	"strconv"
	"strings"
)

// Conversion factors to inches for supported CSS length units.
// CSS defines 96 reference pixels per inch.
const (
	pixelsPerInch = 96.0
	cmPerInch     = 2.54
	mmPerInch     = 25.4
	pointsPerInch = 72.0
)

// ParseLength converts a CSS length string ("6.25mm", "0.5in", "32px",
// "12pt", "1cm") to inches for CDP print parameters. A bare number is
// treated as pixels, matching Chrome's print margin handling.
func ParseLength(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("%w: empty length", ErrInvalidMargin)
	}

	unit := ""
	number := s
	for _, u := range []string{"px", "in", "cm", "mm", "pt"} {
		if strings.HasSuffix(s, u) {
			unit = u
			number = strings.TrimSpace(strings.TrimSuffix(s, u))
			break
		}
	}

	value, err := strconv.ParseFloat(number, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidMargin, s)
	}
	if value < 0 {
		return 0, fmt.Errorf("%w: %q is negative", ErrInvalidMargin, s)
	}

	switch unit {
	case "in":
		return value, nil
	case "cm":
		return value / cmPerInch, nil
	case "mm":
		return value / mmPerInch, nil
	case "pt":
		return value / pointsPerInch, nil
	default: // "px" or bare number
		return value / pixelsPerInch, nil
	}
}

// Margins holds the four page margins as CSS length strings.
type Margins struct {
	Top    string
	Right  string
	Bottom string
	Left   string
}

// DefaultMargins mirrors Chrome's default print margins.
func DefaultMargins() Margins {
	return Margins{
		Top:    "6.25mm",
		Right:  "6.25mm",
		Bottom: "14.11mm",
		Left:   "6.25mm",
	}
}

// inches parses all four margins to inches.
func (m Margins) inches() (top, right, bottom, left float64, err error) {
	if top, err = ParseLength(m.Top); err != nil {
		return 0, 0, 0, 0, fmt.Errorf("margin-top: %w", err)
	}
	if right, err = ParseLength(m.Right); err != nil {
		return 0, 0, 0, 0, fmt.Errorf("margin-right: %w", err)
	}
	if bottom, err = ParseLength(m.Bottom); err != nil {
		return 0, 0, 0, 0, fmt.Errorf("margin-bottom: %w", err)
	}
	if left, err = ParseLength(m.Left); err != nil {
		return 0, 0, 0, 0, fmt.Errorf("margin-left: %w", err)
	}
	return top, right, bottom, left, nil
}
