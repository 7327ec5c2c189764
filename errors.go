package webshot

import "errors"

// Sentinel errors for library operations.
var (
	ErrEmptyTarget    = errors.New("target cannot be empty")
	ErrBrowserConnect = errors.New("failed to connect to browser")
	ErrPageCreate     = errors.New("failed to create browser page")
	ErrNavigate       = errors.New("failed to navigate to target")
	ErrEvaluate       = errors.New("script evaluation failed")
	ErrEmulateMedia   = errors.New("media emulation failed")
	ErrPDFGeneration  = errors.New("PDF generation failed")
	ErrScreenshot     = errors.New("screenshot capture failed")

	// Input validation errors.
	ErrInvalidCookie   = errors.New("invalid cookie, expected name:value")
	ErrInvalidViewport = errors.New("invalid viewport, expected WIDTHxHEIGHT")
	ErrInvalidWait     = errors.New("invalid wait condition")
	ErrInvalidFormat   = errors.New("invalid paper format")
	ErrInvalidMargin   = errors.New("invalid margin length")
	ErrInvalidScale    = errors.New("invalid scale factor")
)
