package main

import (
	"errors"
	"os"

	webshot "github.com/alnah/go-webshot"
	"github.com/alnah/go-webshot/internal/config"
)

// Exit codes for the webshot CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Successful render
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, or validation
	ExitIO      = 3 // File not found, permission denied, write failure
	ExitBrowser = 4 // Browser/Chrome errors
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Browser errors (exit 4)
	if errors.Is(err, webshot.ErrBrowserConnect) ||
		errors.Is(err, webshot.ErrPageCreate) ||
		errors.Is(err, webshot.ErrNavigate) ||
		errors.Is(err, webshot.ErrEvaluate) ||
		errors.Is(err, webshot.ErrEmulateMedia) ||
		errors.Is(err, webshot.ErrPDFGeneration) ||
		errors.Is(err, webshot.ErrScreenshot) {
		return ExitBrowser
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, ErrWriteOutput) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, webshot.ErrEmptyTarget) ||
		errors.Is(err, webshot.ErrInvalidCookie) ||
		errors.Is(err, webshot.ErrInvalidViewport) ||
		errors.Is(err, webshot.ErrInvalidWait) ||
		errors.Is(err, webshot.ErrInvalidFormat) ||
		errors.Is(err, webshot.ErrInvalidMargin) ||
		errors.Is(err, webshot.ErrInvalidScale) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrConfigInvalid) ||
		errors.Is(err, config.ErrEmptyConfigName) {
		return ExitUsage
	}

	return ExitGeneral
}
