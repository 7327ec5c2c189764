// Package config loads YAML defaults for the webshot CLI. A config file
// supplies default flag values; explicitly set CLI flags always win.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-webshot/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrConfigInvalid   = errors.New("invalid config value")
)

// Field length limits, matching browser-side constraints.
const (
	MaxTemplateLength = 4096 // Header/footer HTML templates
	MaxScriptLength   = 1 << 16
	MaxMarginLength   = 20 // "14.11mm"
	MaxFormatLength   = 10 // "letter", "a4", "auto"
)

// Config holds default values for the render commands.
type Config struct {
	Browser    BrowserConfig    `yaml:"browser"`
	Print      PrintConfig      `yaml:"print"`
	Screenshot ScreenshotConfig `yaml:"screenshot"`
}

// BrowserConfig defines options shared by both commands.
type BrowserConfig struct {
	Sandbox   *bool  `yaml:"sandbox"`   // nil = enabled
	TimeoutMS int    `yaml:"timeoutMs"` // navigation bound (default 30000)
	WaitUntil string `yaml:"waitUntil"` // load, domcontentloaded, networkidle0, networkidle2
}

// PrintConfig defines PDF export defaults.
type PrintConfig struct {
	Format              string        `yaml:"format"` // paper name or "auto"
	Landscape           bool          `yaml:"landscape"`
	Scale               float64       `yaml:"scale"`
	Background          *bool         `yaml:"background"` // nil = print backgrounds
	Margins             MarginsConfig `yaml:"margins"`
	EmulateMedia        string        `yaml:"emulateMedia"`
	InjectJS            string        `yaml:"injectJs"`
	DisplayHeaderFooter bool          `yaml:"displayHeaderFooter"`
	HeaderTemplate      string        `yaml:"headerTemplate"`
	FooterTemplate      string        `yaml:"footerTemplate"`
}

// MarginsConfig holds the four margins as CSS length strings.
type MarginsConfig struct {
	Top    string `yaml:"top"`
	Right  string `yaml:"right"`
	Bottom string `yaml:"bottom"`
	Left   string `yaml:"left"`
}

// ScreenshotConfig defines screenshot defaults.
type ScreenshotConfig struct {
	FullPage       *bool  `yaml:"fullPage"` // nil = capture full page
	OmitBackground bool   `yaml:"omitBackground"`
	Viewport       string `yaml:"viewport"` // WIDTHxHEIGHT
}

// Validate checks value shapes that would otherwise fail deep inside the
// render pipeline. Called automatically by LoadConfig.
func (c *Config) Validate() error {
	if c.Browser.TimeoutMS < 0 {
		return fmt.Errorf("%w: browser.timeoutMs must be >= 0, got %d", ErrConfigInvalid, c.Browser.TimeoutMS)
	}
	if c.Browser.WaitUntil != "" {
		switch c.Browser.WaitUntil {
		case "load", "domcontentloaded", "networkidle0", "networkidle2":
		default:
			return fmt.Errorf("%w: browser.waitUntil %q", ErrConfigInvalid, c.Browser.WaitUntil)
		}
	}
	if c.Print.Scale < 0 {
		return fmt.Errorf("%w: print.scale must be >= 0, got %v", ErrConfigInvalid, c.Print.Scale)
	}
	if err := validateFieldLength("print.format", c.Print.Format, MaxFormatLength); err != nil {
		return err
	}
	for field, v := range map[string]string{
		"print.margins.top":    c.Print.Margins.Top,
		"print.margins.right":  c.Print.Margins.Right,
		"print.margins.bottom": c.Print.Margins.Bottom,
		"print.margins.left":   c.Print.Margins.Left,
	} {
		if err := validateFieldLength(field, v, MaxMarginLength); err != nil {
			return err
		}
	}
	if err := validateFieldLength("print.headerTemplate", c.Print.HeaderTemplate, MaxTemplateLength); err != nil {
		return err
	}
	if err := validateFieldLength("print.footerTemplate", c.Print.FooterTemplate, MaxTemplateLength); err != nil {
		return err
	}
	if err := validateFieldLength("print.injectJs", c.Print.InjectJS, MaxScriptLength); err != nil {
		return err
	}
	return nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrConfigInvalid, fieldName, len(value), maxLength)
	}
	return nil
}

// DefaultConfig returns a neutral configuration; all defaults come from
// the flag definitions, not from here.
func DefaultConfig() *Config {
	return &Config{}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if isFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yamlutil.UnmarshalStrict(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// isFilePath returns true if the string looks like a file path.
func isFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\")
}

// resolveConfigPath searches for a config file by name in standard locations.
// Tries extensions in order: .yaml, .yml
// Tries locations in order: current directory, ~/.config/webshot/
func resolveConfigPath(name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	triedPaths := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		localPath := name + ext
		if fileExists(localPath) {
			return localPath, nil
		}
		triedPaths = append(triedPaths, localPath)
	}

	userConfigDir, err := os.UserConfigDir()
	if err == nil {
		for _, ext := range extensions {
			userPath := filepath.Join(userConfigDir, "webshot", name+ext)
			if fileExists(userPath) {
				return userPath, nil
			}
			triedPaths = append(triedPaths, userPath)
		}
	}

	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(triedPaths, ", "))
}

// fileExists returns true if the path exists and is a regular file.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}
