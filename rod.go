package webshot

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
	"github.com/ysmood/gson"
)

// EngineOptions configures the production browser engine.
type EngineOptions struct {
	// Sandbox controls Chrome's OS-level process sandbox. Disabling it is
	// required in some containerized environments.
	Sandbox bool
}

// rodEngine implements Engine using go-rod.
// Rod automatically downloads Chromium on first run if not found.
type rodEngine struct {
	opts    EngineOptions
	browser *rod.Browser
}

// NewRodEngine creates the production engine. The browser is launched
// lazily on the first session.
func NewRodEngine(opts EngineOptions) Engine {
	return &rodEngine{opts: opts}
}

// ensureBrowser lazily launches and connects to the browser.
func (e *rodEngine) ensureBrowser() error {
	if e.browser != nil {
		return nil
	}

	l := launcher.New()

	// Use pre-installed browser if specified (Docker/containerized environments)
	if bin := os.Getenv("ROD_BROWSER_BIN"); bin != "" {
		l = l.Bin(bin)
	}

	if !e.opts.Sandbox || os.Getenv("CI") == "true" {
		l = l.NoSandbox(true)
	}

	u, err := l.Launch()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBrowserConnect, err)
	}

	e.browser = rod.New().ControlURL(u)
	if err := e.browser.Connect(); err != nil {
		e.browser = nil
		return fmt.Errorf("%w: %v", ErrBrowserConnect, err)
	}
	return nil
}

// NewSession opens a blank page for a single render invocation.
func (e *rodEngine) NewSession(ctx context.Context) (Session, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := e.ensureBrowser(); err != nil {
		return nil, err
	}

	page, err := e.browser.Page(proto.TargetCreateTarget{URL: "about:blank"})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPageCreate, err)
	}
	return &rodSession{page: page.Context(ctx)}, nil
}

// Close releases browser resources.
func (e *rodEngine) Close() error {
	if e.browser != nil {
		err := e.browser.Close()
		e.browser = nil
		return err
	}
	return nil
}

// rodSession implements Session over a single rod page.
type rodSession struct {
	page *rod.Page
}

func (s *rodSession) SetCookies(cookies []*proto.NetworkCookieParam) error {
	if len(cookies) == 0 {
		return nil
	}
	return s.page.SetCookies(cookies)
}

func (s *rodSession) SetViewport(width, height int) error {
	return s.page.SetViewport(&proto.EmulationSetDeviceMetricsOverride{
		Width:             width,
		Height:            height,
		DeviceScaleFactor: 1,
		Mobile:            false,
	})
}

// Navigate loads the target and blocks until the wait condition fires or
// the timeout elapses. The timeout is handed to the page context; the
// engine aborts the navigation when it is exceeded.
func (s *rodSession) Navigate(target string, wait WaitCondition, timeout time.Duration) error {
	event, err := wait.lifecycleEvent()
	if err != nil {
		return err
	}

	p := s.page.Timeout(timeout)
	defer p.CancelTimeout()

	waitNav := p.WaitNavigation(event)
	if err := p.Navigate(target); err != nil {
		return fmt.Errorf("%w: %v", ErrNavigate, err)
	}
	waitNav()

	if err := p.GetContext().Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrNavigate, err)
	}
	return nil
}

func (s *rodSession) Evaluate(script string) error {
	if _, err := s.page.Eval(script); err != nil {
		return fmt.Errorf("%w: %v", ErrEvaluate, err)
	}
	return nil
}

func (s *rodSession) EmulateMedia(media string) error {
	err := proto.EmulationSetEmulatedMedia{Media: media}.Call(s.page)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrEmulateMedia, err)
	}
	return nil
}

// documentHeightJS measures the tallest of the document height metrics,
// the same measurement browsers use for full-page rendering.
const documentHeightJS = `() => Math.max(
	document.body.scrollHeight, document.body.offsetHeight,
	document.documentElement.clientHeight,
	document.documentElement.scrollHeight,
	document.documentElement.offsetHeight)`

func (s *rodSession) ScrollHeight() (int, error) {
	res, err := s.page.Eval(documentHeightJS)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrEvaluate, err)
	}
	return res.Value.Int(), nil
}

func (s *rodSession) PDF(opts *proto.PagePrintToPDF) ([]byte, error) {
	reader, err := s.page.PDF(opts)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPDFGeneration, err)
	}

	buf, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("%w: reading PDF stream: %v", ErrPDFGeneration, err)
	}
	return buf, nil
}

func (s *rodSession) Screenshot(fullPage, omitBackground bool) ([]byte, error) {
	if omitBackground {
		err := proto.EmulationSetDefaultBackgroundColorOverride{
			Color: &proto.DOMRGBA{R: 0, G: 0, B: 0, A: gson.Num(0)},
		}.Call(s.page)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrScreenshot, err)
		}
	}

	buf, err := s.page.Screenshot(fullPage, &proto.PageCaptureScreenshot{
		Format: proto.PageCaptureScreenshotFormatPng,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrScreenshot, err)
	}
	return buf, nil
}

func (s *rodSession) Close() error {
	return s.page.Close()
}
