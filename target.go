package webshot

import (
	"fmt"
	"net/url"
	"path/filepath"
	"strings"
)

// absoluteSchemes are URL schemes accepted as-is without file resolution.
var absoluteSchemes = map[string]bool{
	"http":  true,
	"https": true,
	"file":  true,
	"data":  true,
	"about": true,
}

// ResolveTarget turns a CLI target into a navigable address.
// A string with a recognized absolute scheme is returned unchanged.
// Anything else is treated as a local file path, resolved against the
// current working directory, and converted to a percent-encoded file://
// URL. No filesystem access happens beyond path normalization; a path
// that does not exist still resolves (the browser reports the miss).
func ResolveTarget(raw string) (string, error) {
	if strings.TrimSpace(raw) == "" {
		return "", ErrEmptyTarget
	}

	if u, err := url.Parse(raw); err == nil && absoluteSchemes[u.Scheme] {
		return raw, nil
	}

	abs, err := filepath.Abs(raw)
	if err != nil {
		return "", fmt.Errorf("resolving path %q: %w", raw, err)
	}

	// url.URL handles percent-encoding of characters unsafe in a URL path.
	fileURL := url.URL{Scheme: "file", Path: filepath.ToSlash(abs)}
	return fileURL.String(), nil
}
