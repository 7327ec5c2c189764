package main

import (
	"os"

	flag "github.com/spf13/pflag"
)

// Default flag values shared with the config merge.
const (
	defaultTimeoutMS = 30000
	defaultWaitUntil = "load"
	defaultFormat    = "Letter"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// sessionFlags holds browser session flags shared by print and screenshot.
type sessionFlags struct {
	sandbox   bool
	timeoutMS int
	waitUntil string
	cookies   []string
}

// printFlags holds all flags for the print command.
type printFlags struct {
	common  commonFlags
	session sessionFlags

	emulateMedia        string
	injectJS            string
	scale               float64
	background          bool
	marginTop           string
	marginRight         string
	marginBottom        string
	marginLeft          string
	format              string
	landscape           bool
	displayHeaderFooter bool
	headerTemplate      string
	footerTemplate      string
}

// screenshotFlags holds all flags for the screenshot command.
type screenshotFlags struct {
	common  commonFlags
	session sessionFlags

	fullPage       bool
	omitBackground bool
	viewport       string
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show progress details")
}

// addSessionFlags adds browser session flags to a FlagSet.
func addSessionFlags(fs *flag.FlagSet, f *sessionFlags) {
	fs.BoolVar(&f.sandbox, "sandbox", true, "enable the Chrome process sandbox")
	fs.IntVarP(&f.timeoutMS, "timeout", "t", defaultTimeoutMS, "navigation timeout in milliseconds")
	fs.StringVar(&f.waitUntil, "wait-until", defaultWaitUntil, "navigation wait condition: load, domcontentloaded, networkidle0, networkidle2")
	fs.StringArrayVar(&f.cookies, "cookie", nil, "cookie as name:value (repeatable)")
}

// parsePrintFlags parses print command flags and returns positional args.
// The FlagSet is returned so the config merge can check which flags were
// explicitly set.
func parsePrintFlags(args []string) (*printFlags, []string, *flag.FlagSet, error) {
	fs := flag.NewFlagSet("print", flag.ContinueOnError)
	f := &printFlags{}

	addCommonFlags(fs, &f.common)
	addSessionFlags(fs, &f.session)

	fs.StringVar(&f.emulateMedia, "emulate-media", "", "emulate a CSS media type (screen, print)")
	fs.StringVar(&f.injectJS, "inject-js", "", "JavaScript evaluated in the page after navigation")
	fs.Float64Var(&f.scale, "scale", 1, "page rendering scale factor")
	fs.BoolVar(&f.background, "background", true, "print background colors and images")
	fs.StringVar(&f.marginTop, "margin-top", "6.25mm", "top margin (CSS length)")
	fs.StringVar(&f.marginRight, "margin-right", "6.25mm", "right margin (CSS length)")
	fs.StringVar(&f.marginBottom, "margin-bottom", "14.11mm", "bottom margin (CSS length)")
	fs.StringVar(&f.marginLeft, "margin-left", "6.25mm", "left margin (CSS length)")
	fs.StringVar(&f.format, "format", defaultFormat, "paper format, or auto to fit document height")
	fs.BoolVar(&f.landscape, "landscape", false, "landscape orientation")
	fs.BoolVar(&f.displayHeaderFooter, "display-header-footer", false, "render header and footer templates")
	fs.StringVar(&f.headerTemplate, "header-template", "", "HTML template for the print header")
	fs.StringVar(&f.footerTemplate, "footer-template", "", "HTML template for the print footer")

	fs.Usage = func() { printPrintUsage(os.Stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, nil, err
	}
	return f, fs.Args(), fs, nil
}

// parseScreenshotFlags parses screenshot command flags and returns positional args.
func parseScreenshotFlags(args []string) (*screenshotFlags, []string, *flag.FlagSet, error) {
	fs := flag.NewFlagSet("screenshot", flag.ContinueOnError)
	f := &screenshotFlags{}

	addCommonFlags(fs, &f.common)
	addSessionFlags(fs, &f.session)

	fs.BoolVar(&f.fullPage, "full-page", true, "capture the full scrollable page")
	fs.BoolVar(&f.omitBackground, "omit-background", false, "capture with a transparent background")
	fs.StringVar(&f.viewport, "viewport", "", "viewport size as WIDTHxHEIGHT (e.g. 1280x720)")

	fs.Usage = func() { printScreenshotUsage(os.Stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, nil, err
	}
	return f, fs.Args(), fs, nil
}
