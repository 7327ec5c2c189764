package webshot

import (
	"fmt"
	"regexp"
	"strconv"
)

// Viewport is an explicit browser canvas size in CSS pixels.
type Viewport struct {
	Width  int
	Height int
}

// viewportPattern matches WIDTHxHEIGHT with either separator case.
var viewportPattern = regexp.MustCompile(`^(\d+)[xX](\d+)$`)

// ParseViewport parses a WIDTHxHEIGHT spec such as "1280x720" or "800X600".
// An empty string means no override and returns (nil, nil).
func ParseViewport(spec string) (*Viewport, error) {
	if spec == "" {
		return nil, nil
	}

	matches := viewportPattern.FindStringSubmatch(spec)
	if matches == nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidViewport, spec)
	}

	width, err := strconv.Atoi(matches[1])
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidViewport, spec)
	}
	height, err := strconv.Atoi(matches[2])
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidViewport, spec)
	}

	return &Viewport{Width: width, Height: height}, nil
}
