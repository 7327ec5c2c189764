package main

import (
	"context"
	"fmt"

	flag "github.com/spf13/pflag"

	webshot "github.com/alnah/go-webshot"
	"github.com/alnah/go-webshot/internal/config"
)

// runScreenshot executes the screenshot command and returns an exit code.
func runScreenshot(ctx context.Context, args []string, env *Environment) int {
	flags, positional, fs, err := parseScreenshotFlags(args)
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
	applyScreenshotConfig(flags, fs, &cfg.Screenshot)

	target, output, err := splitPositionals(positional)
	if err != nil {
		fmt.Fprintln(env.Stderr, errorPrefix, err)
		printScreenshotUsage(env.Stderr)
		return ExitUsage
	}

	// Viewport validation is a usage error; it must fail before any
	// browser work happens.
	viewport, err := webshot.ParseViewport(flags.viewport)
	if err != nil {
		fmt.Fprintln(env.Stderr, errorPrefix, err)
		return ExitUsage
	}

	in := webshot.ScreenshotInput{
		Session:        buildSessionInput(target, &flags.session),
		FullPage:       flags.fullPage,
		OmitBackground: flags.omitBackground,
		Viewport:       viewport,
	}

	svc := webshot.NewService(env.NewEngine(webshot.EngineOptions{Sandbox: flags.session.sandbox}))
	defer svc.Close()

	if flags.common.verbose {
		fmt.Fprintf(env.Stderr, "Capturing %s\n", target)
	}

	start := env.Now()
	data, err := svc.Capture(ctx, in)
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

// applyScreenshotConfig fills screenshot flags from config for flags the
// user did not set explicitly.
func applyScreenshotConfig(f *screenshotFlags, fs *flag.FlagSet, cfg *config.ScreenshotConfig) {
	if !fs.Changed("full-page") && cfg.FullPage != nil {
		f.fullPage = *cfg.FullPage
	}
	if !fs.Changed("omit-background") && cfg.OmitBackground {
		f.omitBackground = true
	}
	if !fs.Changed("viewport") && cfg.Viewport != "" {
		f.viewport = cfg.Viewport
	}
}
