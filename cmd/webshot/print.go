package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	flag "github.com/spf13/pflag"

	webshot "github.com/alnah/go-webshot"
	"github.com/alnah/go-webshot/internal/config"
)

// ErrTooManyArgs reports extra positional arguments.
var ErrTooManyArgs = errors.New("too many arguments")

// errorPrefix labels every failure on the diagnostic stream.
const errorPrefix = "webshot:"

// runPrint executes the print command and returns an exit code.
func runPrint(ctx context.Context, args []string, env *Environment) int {
	flags, positional, fs, err := parsePrintFlags(args)
	if err != nil {
		fmt.Fprintln(env.Stderr, errorPrefix, err)
		return ExitUsage
	}

	cfg, err := loadConfig(flags.common.config)
	if err != nil {
		fmt.Fprintln(env.Stderr, errorPrefix, err)
		return exitCodeFor(err)
	}
	applySessionConfig(&flags.session, fs, &cfg.Browser)
	applyPrintConfig(flags, fs, &cfg.Print)

	target, output, err := splitPositionals(positional)
	if err != nil {
		fmt.Fprintln(env.Stderr, errorPrefix, err)
		printPrintUsage(env.Stderr)
		return ExitUsage
	}

	in := webshot.PrintInput{
		Session:             buildSessionInput(target, &flags.session),
		MediaType:           flags.emulateMedia,
		Script:              flags.injectJS,
		Scale:               flags.scale,
		PrintBackground:     flags.background,
		Margins:             webshot.Margins{Top: flags.marginTop, Right: flags.marginRight, Bottom: flags.marginBottom, Left: flags.marginLeft},
		Format:              flags.format,
		Landscape:           flags.landscape,
		DisplayHeaderFooter: flags.displayHeaderFooter,
		HeaderTemplate:      flags.headerTemplate,
		FooterTemplate:      flags.footerTemplate,
	}

	svc := webshot.NewService(env.NewEngine(webshot.EngineOptions{Sandbox: flags.session.sandbox}))
	defer svc.Close()

	if flags.common.verbose {
		fmt.Fprintf(env.Stderr, "Printing %s\n", target)
	}

	start := env.Now()
	data, err := svc.Print(ctx, in)
	if err != nil {
		fmt.Fprintln(env.Stderr, errorPrefix, err)
		return exitCodeFor(err)
	}

	if err := writeArtifact(env, output, data); err != nil {
		fmt.Fprintln(env.Stderr, errorPrefix, err)
		return exitCodeFor(err)
	}

	reportSuccess(env, &flags.common, output, env.Now().Sub(start))
	return ExitSuccess
}

// loadConfig resolves the config flag into a Config, defaulting when unset.
func loadConfig(nameOrPath string) (*config.Config, error) {
	if nameOrPath == "" {
		return config.DefaultConfig(), nil
	}
	cfg, err := config.LoadConfig(nameOrPath)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

// splitPositionals maps positional args onto the target and optional
// output path. An absent output path routes the artifact to stdout.
func splitPositionals(positional []string) (target, output string, err error) {
	switch len(positional) {
	case 0:
		return "", "", errors.New("missing required <url> argument")
	case 1:
		return positional[0], "", nil
	case 2:
		return positional[0], positional[1], nil
	default:
		return "", "", fmt.Errorf("%w: %v", ErrTooManyArgs, positional[2:])
	}
}

// buildSessionInput converts session flags into library input.
func buildSessionInput(target string, f *sessionFlags) webshot.SessionInput {
	return webshot.SessionInput{
		Target:    target,
		Cookies:   f.cookies,
		Timeout:   time.Duration(f.timeoutMS) * time.Millisecond,
		WaitUntil: webshot.WaitCondition(f.waitUntil),
	}
}

// applySessionConfig fills session flags from config for flags the user
// did not set explicitly. CLI values always win.
func applySessionConfig(f *sessionFlags, fs *flag.FlagSet, cfg *config.BrowserConfig) {
	if !fs.Changed("sandbox") && cfg.Sandbox != nil {
		f.sandbox = *cfg.Sandbox
	}
	if !fs.Changed("timeout") && cfg.TimeoutMS > 0 {
		f.timeoutMS = cfg.TimeoutMS
	}
	if !fs.Changed("wait-until") && cfg.WaitUntil != "" {
		f.waitUntil = cfg.WaitUntil
	}
}

// applyPrintConfig fills print flags from config for flags the user did
// not set explicitly.
func applyPrintConfig(f *printFlags, fs *flag.FlagSet, cfg *config.PrintConfig) {
	if !fs.Changed("format") && cfg.Format != "" {
		f.format = cfg.Format
	}
	if !fs.Changed("landscape") && cfg.Landscape {
		f.landscape = true
	}
	if !fs.Changed("scale") && cfg.Scale > 0 {
		f.scale = cfg.Scale
	}
	if !fs.Changed("background") && cfg.Background != nil {
		f.background = *cfg.Background
	}
	if !fs.Changed("margin-top") && cfg.Margins.Top != "" {
		f.marginTop = cfg.Margins.Top
	}
	if !fs.Changed("margin-right") && cfg.Margins.Right != "" {
		f.marginRight = cfg.Margins.Right
	}
	if !fs.Changed("margin-bottom") && cfg.Margins.Bottom != "" {
		f.marginBottom = cfg.Margins.Bottom
	}
	if !fs.Changed("margin-left") && cfg.Margins.Left != "" {
		f.marginLeft = cfg.Margins.Left
	}
	if !fs.Changed("emulate-media") && cfg.EmulateMedia != "" {
		f.emulateMedia = cfg.EmulateMedia
	}
	if !fs.Changed("inject-js") && cfg.InjectJS != "" {
		f.injectJS = cfg.InjectJS
	}
	if !fs.Changed("display-header-footer") && cfg.DisplayHeaderFooter {
		f.displayHeaderFooter = true
	}
	if !fs.Changed("header-template") && cfg.HeaderTemplate != "" {
		f.headerTemplate = cfg.HeaderTemplate
	}
	if !fs.Changed("footer-template") && cfg.FooterTemplate != "" {
		f.footerTemplate = cfg.FooterTemplate
	}
}

// reportSuccess prints the completion diagnostic. It goes to stderr
// because stdout may carry the artifact itself.
func reportSuccess(env *Environment, common *commonFlags, output string, elapsed time.Duration) {
	if common.quiet || output == "" {
		return
	}
	if common.verbose {
		fmt.Fprintf(env.Stderr, "Created %s (%v)\n", output, elapsed.Round(time.Millisecond))
		return
	}
	fmt.Fprintf(env.Stderr, "Created %s\n", output)
}
