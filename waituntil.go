package webshot

import (
	"fmt"

	"github.com/go-rod/rod/lib/proto"
)

// WaitCondition names the readiness criterion that ends a navigation.
// The names match the ones browsers expose for lifecycle events.
type WaitCondition string

// Supported wait conditions.
const (
	WaitLoad             WaitCondition = "load"
	WaitDOMContentLoaded WaitCondition = "domcontentloaded"
	WaitNetworkIdle      WaitCondition = "networkidle0"
	WaitNetworkIdle2     WaitCondition = "networkidle2"
)

// lifecycleEvent maps the condition to its CDP lifecycle event name.
func (w WaitCondition) lifecycleEvent() (proto.PageLifecycleEventName, error) {
	switch w {
	case WaitLoad, "":
		return proto.PageLifecycleEventNameLoad, nil
	case WaitDOMContentLoaded:
		return proto.PageLifecycleEventNameDOMContentLoaded, nil
	case WaitNetworkIdle:
		return proto.PageLifecycleEventNameNetworkIdle, nil
	case WaitNetworkIdle2:
		return proto.PageLifecycleEventNameNetworkAlmostIdle, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidWait, string(w))
	}
}

// Validate reports whether the condition is one of the supported names.
func (w WaitCondition) Validate() error {
	_, err := w.lifecycleEvent()
	return err
}
