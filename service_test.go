package webshot

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/go-rod/rod/lib/proto"
)

// fakeSession records every call made against it so tests can assert
// the pipeline ordering and the options that reach the engine.
type fakeSession struct {
	calls []string

	cookies    []*proto.NetworkCookieParam
	viewportW  int
	viewportH  int
	navTarget  string
	navWait    WaitCondition
	navTimeout time.Duration
	scripts    []string
	media      string
	pdfOpts    *proto.PagePrintToPDF
	shotFull   bool
	shotOmit   bool
	closed     bool

	scrollHeight int
	navErr       error
	evalErr      error
	pdfErr       error
	shotErr      error
}

func (s *fakeSession) SetCookies(cookies []*proto.NetworkCookieParam) error {
	s.calls = append(s.calls, "SetCookies")
	s.cookies = cookies
	return nil
}

func (s *fakeSession) SetViewport(width, height int) error {
	s.calls = append(s.calls, "SetViewport")
	s.viewportW, s.viewportH = width, height
	return nil
}

func (s *fakeSession) Navigate(target string, wait WaitCondition, timeout time.Duration) error {
	s.calls = append(s.calls, "Navigate")
	s.navTarget, s.navWait, s.navTimeout = target, wait, timeout
	return s.navErr
}

func (s *fakeSession) Evaluate(script string) error {
	s.calls = append(s.calls, "Evaluate")
	s.scripts = append(s.scripts, script)
	return s.evalErr
}

func (s *fakeSession) EmulateMedia(media string) error {
	s.calls = append(s.calls, "EmulateMedia")
	s.media = media
	return nil
}

func (s *fakeSession) ScrollHeight() (int, error) {
	s.calls = append(s.calls, "ScrollHeight")
	return s.scrollHeight, nil
}

func (s *fakeSession) PDF(opts *proto.PagePrintToPDF) ([]byte, error) {
	s.calls = append(s.calls, "PDF")
	s.pdfOpts = opts
	if s.pdfErr != nil {
		return nil, s.pdfErr
	}
	return []byte("%PDF-1.4 fake"), nil
}

func (s *fakeSession) Screenshot(fullPage, omitBackground bool) ([]byte, error) {
	s.calls = append(s.calls, "Screenshot")
	s.shotFull, s.shotOmit = fullPage, omitBackground
	if s.shotErr != nil {
		return nil, s.shotErr
	}
	return []byte("\x89PNG fake"), nil
}

func (s *fakeSession) Close() error {
	s.closed = true
	return nil
}

type fakeEngine struct {
	sess     *fakeSession
	sessions int
	newErr   error
	closed   bool
}

func (e *fakeEngine) NewSession(_ context.Context) (Session, error) {
	e.sessions++
	if e.newErr != nil {
		return nil, e.newErr
	}
	return e.sess, nil
}

func (e *fakeEngine) Close() error {
	e.closed = true
	return nil
}

func newFakeService(sess *fakeSession) (*Service, *fakeEngine) {
	engine := &fakeEngine{sess: sess}
	return NewService(engine), engine
}

func TestServicePrint(t *testing.T) {
	t.Parallel()

	t.Run("renders with defaults", func(t *testing.T) {
		t.Parallel()

		sess := &fakeSession{}
		svc, _ := newFakeService(sess)

		data, err := svc.Print(context.Background(), PrintInput{
			Session: SessionInput{Target: "https://example.com"},
		})
		if err != nil {
			t.Fatalf("Print() error = %v", err)
		}
		if len(data) == 0 {
			t.Error("Print() returned no data")
		}
		if sess.navTarget != "https://example.com" {
			t.Errorf("navigated to %q, want https://example.com", sess.navTarget)
		}
		if sess.navTimeout != DefaultTimeout {
			t.Errorf("navigation timeout = %v, want %v", sess.navTimeout, DefaultTimeout)
		}
		if !sess.closed {
			t.Error("session was not closed")
		}

		opts := sess.pdfOpts
		if opts == nil {
			t.Fatal("no PDF options recorded")
		}
		if *opts.Scale != 1 {
			t.Errorf("Scale = %v, want 1", *opts.Scale)
		}
		if *opts.PaperWidth != 8.5 || *opts.PaperHeight != 11 {
			t.Errorf("paper = %vx%v, want 8.5x11 (Letter default)",
				*opts.PaperWidth, *opts.PaperHeight)
		}
	})

	t.Run("pipeline order", func(t *testing.T) {
		t.Parallel()

		sess := &fakeSession{}
		svc, _ := newFakeService(sess)

		_, err := svc.Print(context.Background(), PrintInput{
			Session: SessionInput{
				Target:  "https://example.com",
				Cookies: []string{"session:abc"},
			},
			Script:    "document.title = 'x'",
			MediaType: "print",
		})
		if err != nil {
			t.Fatalf("Print() error = %v", err)
		}

		want := []string{"SetCookies", "Navigate", "Evaluate", "EmulateMedia", "PDF"}
		if len(sess.calls) != len(want) {
			t.Fatalf("calls = %v, want %v", sess.calls, want)
		}
		for i := range want {
			if sess.calls[i] != want[i] {
				t.Fatalf("calls = %v, want %v", sess.calls, want)
			}
		}
	})

	t.Run("script and media skipped when empty", func(t *testing.T) {
		t.Parallel()

		sess := &fakeSession{}
		svc, _ := newFakeService(sess)

		if _, err := svc.Print(context.Background(), PrintInput{
			Session: SessionInput{Target: "https://example.com"},
		}); err != nil {
			t.Fatalf("Print() error = %v", err)
		}
		for _, call := range sess.calls {
			if call == "Evaluate" || call == "EmulateMedia" {
				t.Errorf("unexpected %s call with empty options", call)
			}
		}
	})

	t.Run("invalid cookie aborts before any browser work", func(t *testing.T) {
		t.Parallel()

		sess := &fakeSession{}
		svc, engine := newFakeService(sess)

		_, err := svc.Print(context.Background(), PrintInput{
			Session: SessionInput{
				Target:  "https://example.com",
				Cookies: []string{"missing-delimiter"},
			},
		})
		if !errors.Is(err, ErrInvalidCookie) {
			t.Fatalf("Print() error = %v, want ErrInvalidCookie", err)
		}
		if engine.sessions != 0 {
			t.Error("session was created despite invalid cookie")
		}
		if len(sess.calls) != 0 {
			t.Errorf("browser calls made despite invalid cookie: %v", sess.calls)
		}
	})

	t.Run("invalid wait condition aborts before any browser work", func(t *testing.T) {
		t.Parallel()

		sess := &fakeSession{}
		svc, engine := newFakeService(sess)

		_, err := svc.Print(context.Background(), PrintInput{
			Session: SessionInput{
				Target:    "https://example.com",
				WaitUntil: "eventually",
			},
		})
		if !errors.Is(err, ErrInvalidWait) {
			t.Fatalf("Print() error = %v, want ErrInvalidWait", err)
		}
		if engine.sessions != 0 {
			t.Error("session was created despite invalid wait condition")
		}
	})

	t.Run("empty target aborts before any browser work", func(t *testing.T) {
		t.Parallel()

		sess := &fakeSession{}
		svc, engine := newFakeService(sess)

		_, err := svc.Print(context.Background(), PrintInput{})
		if !errors.Is(err, ErrEmptyTarget) {
			t.Fatalf("Print() error = %v, want ErrEmptyTarget", err)
		}
		if engine.sessions != 0 {
			t.Error("session was created despite empty target")
		}
	})

	t.Run("auto format measures the document", func(t *testing.T) {
		t.Parallel()

		sess := &fakeSession{scrollHeight: 2880}
		svc, _ := newFakeService(sess)

		_, err := svc.Print(context.Background(), PrintInput{
			Session: SessionInput{Target: "https://example.com"},
			Format:  FormatAuto,
		})
		if err != nil {
			t.Fatalf("Print() error = %v", err)
		}

		measured := false
		for _, call := range sess.calls {
			if call == "ScrollHeight" {
				measured = true
			}
		}
		if !measured {
			t.Fatal("auto format did not measure the document height")
		}

		opts := sess.pdfOpts
		if math.Abs(*opts.PaperWidth-float64(AutoFormatWidthPx)/96) > 1e-9 {
			t.Errorf("PaperWidth = %v, want %v", *opts.PaperWidth, float64(AutoFormatWidthPx)/96)
		}
		if math.Abs(*opts.PaperHeight-2880.0/96) > 1e-9 {
			t.Errorf("PaperHeight = %v, want %v", *opts.PaperHeight, 2880.0/96)
		}
	})

	t.Run("named format does not measure", func(t *testing.T) {
		t.Parallel()

		sess := &fakeSession{}
		svc, _ := newFakeService(sess)

		if _, err := svc.Print(context.Background(), PrintInput{
			Session: SessionInput{Target: "https://example.com"},
			Format:  "A4",
		}); err != nil {
			t.Fatalf("Print() error = %v", err)
		}
		for _, call := range sess.calls {
			if call == "ScrollHeight" {
				t.Error("named format measured the document")
			}
		}
	})

	t.Run("landscape swaps paper dimensions", func(t *testing.T) {
		t.Parallel()

		sess := &fakeSession{}
		svc, _ := newFakeService(sess)

		if _, err := svc.Print(context.Background(), PrintInput{
			Session:   SessionInput{Target: "https://example.com"},
			Format:    "Letter",
			Landscape: true,
		}); err != nil {
			t.Fatalf("Print() error = %v", err)
		}
		opts := sess.pdfOpts
		if !opts.Landscape {
			t.Error("Landscape flag not set")
		}
		if *opts.PaperWidth != 11 || *opts.PaperHeight != 8.5 {
			t.Errorf("paper = %vx%v, want 11x8.5", *opts.PaperWidth, *opts.PaperHeight)
		}
	})

	t.Run("header templates only when displayed", func(t *testing.T) {
		t.Parallel()

		sess := &fakeSession{}
		svc, _ := newFakeService(sess)

		if _, err := svc.Print(context.Background(), PrintInput{
			Session:        SessionInput{Target: "https://example.com"},
			HeaderTemplate: "<span>ignored</span>",
			FooterTemplate: "<span>ignored</span>",
		}); err != nil {
			t.Fatalf("Print() error = %v", err)
		}
		if sess.pdfOpts.HeaderTemplate != "" || sess.pdfOpts.FooterTemplate != "" {
			t.Error("templates set without DisplayHeaderFooter")
		}

		sess2 := &fakeSession{}
		svc2, _ := newFakeService(sess2)
		if _, err := svc2.Print(context.Background(), PrintInput{
			Session:             SessionInput{Target: "https://example.com"},
			DisplayHeaderFooter: true,
			HeaderTemplate:      "<span>h</span>",
			FooterTemplate:      "<span>f</span>",
		}); err != nil {
			t.Fatalf("Print() error = %v", err)
		}
		if sess2.pdfOpts.HeaderTemplate != "<span>h</span>" {
			t.Errorf("HeaderTemplate = %q", sess2.pdfOpts.HeaderTemplate)
		}
		if sess2.pdfOpts.FooterTemplate != "<span>f</span>" {
			t.Errorf("FooterTemplate = %q", sess2.pdfOpts.FooterTemplate)
		}
	})

	t.Run("negative scale rejected", func(t *testing.T) {
		t.Parallel()

		sess := &fakeSession{}
		svc, _ := newFakeService(sess)

		_, err := svc.Print(context.Background(), PrintInput{
			Session: SessionInput{Target: "https://example.com"},
			Scale:   -0.5,
		})
		if !errors.Is(err, ErrInvalidScale) {
			t.Fatalf("Print() error = %v, want ErrInvalidScale", err)
		}
	})

	t.Run("bad margin rejected after navigation but before PDF", func(t *testing.T) {
		t.Parallel()

		sess := &fakeSession{}
		svc, _ := newFakeService(sess)

		_, err := svc.Print(context.Background(), PrintInput{
			Session: SessionInput{Target: "https://example.com"},
			Margins: Margins{Top: "bogus", Right: "1mm", Bottom: "1mm", Left: "1mm"},
		})
		if !errors.Is(err, ErrInvalidMargin) {
			t.Fatalf("Print() error = %v, want ErrInvalidMargin", err)
		}
		for _, call := range sess.calls {
			if call == "PDF" {
				t.Error("PDF generated despite invalid margin")
			}
		}
		if !sess.closed {
			t.Error("session leaked after margin error")
		}
	})

	t.Run("navigation error propagates", func(t *testing.T) {
		t.Parallel()

		navErr := errors.New("net::ERR_NAME_NOT_RESOLVED")
		sess := &fakeSession{navErr: navErr}
		svc, _ := newFakeService(sess)

		_, err := svc.Print(context.Background(), PrintInput{
			Session: SessionInput{Target: "https://no.such.host"},
		})
		if !errors.Is(err, navErr) {
			t.Fatalf("Print() error = %v, want %v", err, navErr)
		}
		if !sess.closed {
			t.Error("session leaked after navigation error")
		}
	})

	t.Run("engine failure propagates", func(t *testing.T) {
		t.Parallel()

		engine := &fakeEngine{newErr: ErrBrowserConnect}
		svc := NewService(engine)

		_, err := svc.Print(context.Background(), PrintInput{
			Session: SessionInput{Target: "https://example.com"},
		})
		if !errors.Is(err, ErrBrowserConnect) {
			t.Fatalf("Print() error = %v, want ErrBrowserConnect", err)
		}
	})

	t.Run("custom timeout reaches navigation", func(t *testing.T) {
		t.Parallel()

		sess := &fakeSession{}
		svc, _ := newFakeService(sess)

		if _, err := svc.Print(context.Background(), PrintInput{
			Session: SessionInput{
				Target:  "https://example.com",
				Timeout: 5 * time.Second,
			},
		}); err != nil {
			t.Fatalf("Print() error = %v", err)
		}
		if sess.navTimeout != 5*time.Second {
			t.Errorf("navigation timeout = %v, want 5s", sess.navTimeout)
		}
	})
}

func TestServiceCapture(t *testing.T) {
	t.Parallel()

	t.Run("captures with defaults", func(t *testing.T) {
		t.Parallel()

		sess := &fakeSession{}
		svc, _ := newFakeService(sess)

		data, err := svc.Capture(context.Background(), ScreenshotInput{
			Session:  SessionInput{Target: "https://example.com"},
			FullPage: true,
		})
		if err != nil {
			t.Fatalf("Capture() error = %v", err)
		}
		if len(data) == 0 {
			t.Error("Capture() returned no data")
		}
		if !sess.shotFull {
			t.Error("full-page capture not requested")
		}
		if sess.shotOmit {
			t.Error("omit-background requested unexpectedly")
		}
		if !sess.closed {
			t.Error("session was not closed")
		}
	})

	t.Run("viewport applied before navigation", func(t *testing.T) {
		t.Parallel()

		sess := &fakeSession{}
		svc, _ := newFakeService(sess)

		if _, err := svc.Capture(context.Background(), ScreenshotInput{
			Session:  SessionInput{Target: "https://example.com"},
			Viewport: &Viewport{Width: 1280, Height: 720},
		}); err != nil {
			t.Fatalf("Capture() error = %v", err)
		}
		if sess.viewportW != 1280 || sess.viewportH != 720 {
			t.Errorf("viewport = %dx%d, want 1280x720", sess.viewportW, sess.viewportH)
		}

		var vpIdx, navIdx int
		for i, call := range sess.calls {
			switch call {
			case "SetViewport":
				vpIdx = i
			case "Navigate":
				navIdx = i
			}
		}
		if vpIdx >= navIdx {
			t.Errorf("SetViewport at %d after Navigate at %d: %v", vpIdx, navIdx, sess.calls)
		}
	})

	t.Run("nil viewport leaves the default canvas", func(t *testing.T) {
		t.Parallel()

		sess := &fakeSession{}
		svc, _ := newFakeService(sess)

		if _, err := svc.Capture(context.Background(), ScreenshotInput{
			Session: SessionInput{Target: "https://example.com"},
		}); err != nil {
			t.Fatalf("Capture() error = %v", err)
		}
		for _, call := range sess.calls {
			if call == "SetViewport" {
				t.Error("SetViewport called without a viewport override")
			}
		}
	})

	t.Run("omit background forwarded", func(t *testing.T) {
		t.Parallel()

		sess := &fakeSession{}
		svc, _ := newFakeService(sess)

		if _, err := svc.Capture(context.Background(), ScreenshotInput{
			Session:        SessionInput{Target: "https://example.com"},
			OmitBackground: true,
		}); err != nil {
			t.Fatalf("Capture() error = %v", err)
		}
		if !sess.shotOmit {
			t.Error("omit-background not forwarded")
		}
	})

	t.Run("invalid cookie aborts before any browser work", func(t *testing.T) {
		t.Parallel()

		sess := &fakeSession{}
		svc, engine := newFakeService(sess)

		_, err := svc.Capture(context.Background(), ScreenshotInput{
			Session: SessionInput{
				Target:  "https://example.com",
				Cookies: []string{"bad"},
			},
		})
		if !errors.Is(err, ErrInvalidCookie) {
			t.Fatalf("Capture() error = %v, want ErrInvalidCookie", err)
		}
		if engine.sessions != 0 {
			t.Error("session was created despite invalid cookie")
		}
	})

	t.Run("screenshot error propagates", func(t *testing.T) {
		t.Parallel()

		sess := &fakeSession{shotErr: ErrScreenshot}
		svc, _ := newFakeService(sess)

		_, err := svc.Capture(context.Background(), ScreenshotInput{
			Session: SessionInput{Target: "https://example.com"},
		})
		if !errors.Is(err, ErrScreenshot) {
			t.Fatalf("Capture() error = %v, want ErrScreenshot", err)
		}
		if !sess.closed {
			t.Error("session leaked after screenshot error")
		}
	})
}

func TestServiceClose(t *testing.T) {
	t.Parallel()

	svc, engine := newFakeService(&fakeSession{})
	if err := svc.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if !engine.closed {
		t.Error("engine was not closed")
	}
}

func TestLocalFileTargetResolvesToFileURL(t *testing.T) {
	t.Parallel()

	sess := &fakeSession{}
	svc, _ := newFakeService(sess)

	if _, err := svc.Print(context.Background(), PrintInput{
		Session: SessionInput{Target: "testdata/page.html"},
	}); err != nil {
		t.Fatalf("Print() error = %v", err)
	}
	if got := sess.navTarget; len(got) < 7 || got[:7] != "file://" {
		t.Errorf("navigated to %q, want a file:// URL", sess.navTarget)
	}
}
