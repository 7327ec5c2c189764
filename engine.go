package webshot

import (
	"context"
	"time"

	"github.com/go-rod/rod/lib/proto"
)

// Engine abstracts the headless browser so the render pipeline can be
// exercised with a fake implementation in tests.
type Engine interface {
	// NewSession opens a fresh page scoped to one render invocation.
	NewSession(ctx context.Context) (Session, error)
	// Close releases the browser process.
	Close() error
}

// Session is one page, exclusively owned by a single invocation.
// Calls are made strictly in sequence; the first error aborts the run.
type Session interface {
	SetCookies(cookies []*proto.NetworkCookieParam) error
	SetViewport(width, height int) error
	Navigate(target string, wait WaitCondition, timeout time.Duration) error
	Evaluate(script string) error
	EmulateMedia(media string) error
	// ScrollHeight measures the rendered document height in CSS pixels.
	ScrollHeight() (int, error)
	PDF(opts *proto.PagePrintToPDF) ([]byte, error)
	Screenshot(fullPage, omitBackground bool) ([]byte, error)
	Close() error
}
