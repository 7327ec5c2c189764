package webshot

import (
	"fmt"
	"strings"

	"github.com/go-rod/rod/lib/proto"
)

// ParseCookies converts name:value specs into CDP cookie records scoped
// to the target URL. Each spec is split at the first colon only, so the
// value may itself contain colons. A spec without a colon fails the whole
// batch; callers must not navigate after a failure.
func ParseCookies(specs []string, targetURL string) ([]*proto.NetworkCookieParam, error) {
	if len(specs) == 0 {
		return nil, nil
	}

	cookies := make([]*proto.NetworkCookieParam, 0, len(specs))
	for _, spec := range specs {
		name, value, found := strings.Cut(spec, ":")
		if !found {
			return nil, fmt.Errorf("%w: %q", ErrInvalidCookie, spec)
		}
		cookies = append(cookies, &proto.NetworkCookieParam{
			Name:  name,
			Value: value,
			URL:   targetURL,
		})
	}
	return cookies, nil
}
