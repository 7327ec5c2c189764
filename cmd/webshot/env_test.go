package main

import (
	"bytes"
	"context"
	"time"

	"github.com/go-rod/rod/lib/proto"

	webshot "github.com/alnah/go-webshot"
)

// stubSession is a minimal browser session for command tests.
type stubSession struct {
	navigations []string
	navErr      error
	pdfData     []byte
	pngData     []byte
}

func (s *stubSession) SetCookies([]*proto.NetworkCookieParam) error { return nil }
func (s *stubSession) SetViewport(int, int) error                   { return nil }

func (s *stubSession) Navigate(target string, _ webshot.WaitCondition, _ time.Duration) error {
	s.navigations = append(s.navigations, target)
	return s.navErr
}

func (s *stubSession) Evaluate(string) error      { return nil }
func (s *stubSession) EmulateMedia(string) error  { return nil }
func (s *stubSession) ScrollHeight() (int, error) { return 1080, nil }
func (s *stubSession) Close() error               { return nil }

func (s *stubSession) PDF(*proto.PagePrintToPDF) ([]byte, error) {
	if s.pdfData == nil {
		return []byte("%PDF-1.4 stub"), nil
	}
	return s.pdfData, nil
}

func (s *stubSession) Screenshot(bool, bool) ([]byte, error) {
	if s.pngData == nil {
		return []byte("\x89PNG stub"), nil
	}
	return s.pngData, nil
}

// stubEngine hands out a single stub session and records usage.
type stubEngine struct {
	sess     *stubSession
	sessions int
	opts     webshot.EngineOptions
}

func (e *stubEngine) NewSession(context.Context) (webshot.Session, error) {
	e.sessions++
	return e.sess, nil
}

func (e *stubEngine) Close() error { return nil }

// testEnv builds an Environment wired to in-memory streams and the stub
// engine, so command tests never touch a real browser.
func testEnv(engine *stubEngine) (*Environment, *bytes.Buffer, *bytes.Buffer) {
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	env := &Environment{
		Now:    func() time.Time { return time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC) },
		Stdout: stdout,
		Stderr: stderr,
		NewEngine: func(opts webshot.EngineOptions) webshot.Engine {
			engine.opts = opts
			return engine
		},
	}
	return env, stdout, stderr
}
