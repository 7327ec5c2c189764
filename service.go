package webshot

import (
	"context"
	"fmt"
	"time"

	"github.com/go-rod/rod/lib/proto"
	"github.com/ysmood/gson"
)

// DefaultTimeout bounds navigation when the caller does not set one.
const DefaultTimeout = 30 * time.Second

// SessionInput holds the options shared by both render operations.
// Built once per invocation and read-only afterwards.
type SessionInput struct {
	// Target is a URL or a local file path; see ResolveTarget.
	Target string
	// Cookies are raw name:value specs, scoped to the resolved target.
	Cookies []string
	// Timeout bounds the navigation. Zero means DefaultTimeout.
	Timeout time.Duration
	// WaitUntil names the navigation readiness condition. Empty means load.
	WaitUntil WaitCondition
}

// PrintInput holds the options for PDF export.
type PrintInput struct {
	Session SessionInput

	// MediaType emulates a CSS media type ("screen", "print"). Empty
	// leaves the engine default.
	MediaType string
	// Script is evaluated in the page after navigation. Empty skips.
	Script string

	Scale               float64 // 0 means 1
	PrintBackground     bool
	Margins             Margins // zero value means DefaultMargins
	Format              string  // paper format name, or FormatAuto; empty means Letter
	Landscape           bool
	DisplayHeaderFooter bool
	HeaderTemplate      string
	FooterTemplate      string
}

// ScreenshotInput holds the options for screenshot capture.
type ScreenshotInput struct {
	Session SessionInput

	FullPage       bool
	OmitBackground bool
	// Viewport overrides the engine's default canvas size. Nil keeps it.
	Viewport *Viewport
}

// Service sequences the browser calls for both render operations.
// It holds no state besides the injected engine.
type Service struct {
	engine Engine
}

// NewService creates a Service over the given engine.
func NewService(engine Engine) *Service {
	return &Service{engine: engine}
}

// Close releases the underlying engine.
func (s *Service) Close() error {
	return s.engine.Close()
}

// Print renders the target page to PDF bytes.
func (s *Service) Print(ctx context.Context, in PrintInput) ([]byte, error) {
	sess, target, err := s.openSession(ctx, in.Session, nil)
	if err != nil {
		return nil, err
	}
	defer sess.Close()

	if err := s.navigate(sess, in.Session, target); err != nil {
		return nil, err
	}

	if in.Script != "" {
		if err := sess.Evaluate(in.Script); err != nil {
			return nil, err
		}
	}
	if in.MediaType != "" {
		if err := sess.EmulateMedia(in.MediaType); err != nil {
			return nil, err
		}
	}

	opts, err := buildPrintOptions(sess, in)
	if err != nil {
		return nil, err
	}
	return sess.PDF(opts)
}

// Capture renders the target page to PNG bytes.
func (s *Service) Capture(ctx context.Context, in ScreenshotInput) ([]byte, error) {
	sess, target, err := s.openSession(ctx, in.Session, in.Viewport)
	if err != nil {
		return nil, err
	}
	defer sess.Close()

	if err := s.navigate(sess, in.Session, target); err != nil {
		return nil, err
	}

	return sess.Screenshot(in.FullPage, in.OmitBackground)
}

// openSession validates pure inputs, opens a session, and applies the
// pre-navigation configuration. Validation failures abort before any
// browser work, so no navigation is ever attempted on bad input.
func (s *Service) openSession(ctx context.Context, in SessionInput, vp *Viewport) (Session, string, error) {
	target, err := ResolveTarget(in.Target)
	if err != nil {
		return nil, "", err
	}
	cookies, err := ParseCookies(in.Cookies, target)
	if err != nil {
		return nil, "", err
	}
	if err := in.WaitUntil.Validate(); err != nil {
		return nil, "", err
	}

	sess, err := s.engine.NewSession(ctx)
	if err != nil {
		return nil, "", err
	}

	if err := sess.SetCookies(cookies); err != nil {
		sess.Close()
		return nil, "", err
	}
	if vp != nil {
		if err := sess.SetViewport(vp.Width, vp.Height); err != nil {
			sess.Close()
			return nil, "", err
		}
	}
	return sess, target, nil
}

// navigate loads the target with the configured wait condition and timeout.
func (s *Service) navigate(sess Session, in SessionInput, target string) error {
	timeout := in.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return sess.Navigate(target, in.WaitUntil, timeout)
}

// buildPrintOptions maps PrintInput onto CDP printToPDF parameters.
// The auto format measures the document height on the live session and
// fixes the width at AutoFormatWidthPx; every other format uses the
// static paper table.
func buildPrintOptions(sess Session, in PrintInput) (*proto.PagePrintToPDF, error) {
	scale := in.Scale
	if scale == 0 {
		scale = 1
	}
	if scale < 0 {
		return nil, fmt.Errorf("%w: %v", ErrInvalidScale, in.Scale)
	}

	margins := in.Margins
	if margins == (Margins{}) {
		margins = DefaultMargins()
	}
	top, right, bottom, left, err := margins.inches()
	if err != nil {
		return nil, err
	}

	format := in.Format
	if format == "" {
		format = "Letter"
	}

	var width, height float64
	if format == FormatAuto {
		px, err := sess.ScrollHeight()
		if err != nil {
			return nil, err
		}
		width = AutoFormatWidthPx / pixelsPerInch
		height = float64(px) / pixelsPerInch
	} else {
		width, height, err = lookupFormat(format, in.Landscape)
		if err != nil {
			return nil, err
		}
	}

	opts := &proto.PagePrintToPDF{
		Landscape:           in.Landscape,
		PrintBackground:     in.PrintBackground,
		Scale:               gson.Num(scale),
		PaperWidth:          gson.Num(width),
		PaperHeight:         gson.Num(height),
		MarginTop:           gson.Num(top),
		MarginRight:         gson.Num(right),
		MarginBottom:        gson.Num(bottom),
		MarginLeft:          gson.Num(left),
		DisplayHeaderFooter: in.DisplayHeaderFooter,
	}
	if in.DisplayHeaderFooter {
		opts.HeaderTemplate = in.HeaderTemplate
		opts.FooterTemplate = in.FooterTemplate
	}
	return opts, nil
}
