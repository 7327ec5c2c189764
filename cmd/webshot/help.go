package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: webshot <command> [flags] <url> [output]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  print        Render a web page to PDF")
	fmt.Fprintln(w, "  screenshot   Capture a web page as PNG")
	fmt.Fprintln(w, "  doctor       Check the browser environment")
	fmt.Fprintln(w, "  version      Show version information")
	fmt.Fprintln(w, "  help         Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'webshot help <command>' for details on a specific command.")
}

// printPrintUsage prints usage for the print command.
func printPrintUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: webshot print [flags] <url> [output]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Render a web page (URL or local file) to a PDF document.")
	fmt.Fprintln(w, "Without an output path the PDF bytes go to stdout.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Browser:")
	fmt.Fprintln(w, "      --sandbox                 Chrome process sandbox (default true)")
	fmt.Fprintln(w, "  -t, --timeout <ms>            Navigation timeout in ms (default 30000)")
	fmt.Fprintln(w, "      --wait-until <s>          load, domcontentloaded, networkidle0, networkidle2")
	fmt.Fprintln(w, "      --cookie <name:value>     Cookie for the target (repeatable)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Page:")
	fmt.Fprintln(w, "      --emulate-media <s>       Emulate a CSS media type (screen, print)")
	fmt.Fprintln(w, "      --inject-js <s>           JavaScript evaluated after navigation")
	fmt.Fprintln(w, "      --scale <f>               Rendering scale factor (default 1)")
	fmt.Fprintln(w, "      --background              Print backgrounds (default true)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Paper:")
	fmt.Fprintln(w, "      --format <s>              Letter, Legal, Tabloid, Ledger, A0-A6,")
	fmt.Fprintln(w, "                                or auto to fit the document height")
	fmt.Fprintln(w, "      --landscape               Landscape orientation")
	fmt.Fprintln(w, "      --margin-top <len>        Top margin (default 6.25mm)")
	fmt.Fprintln(w, "      --margin-right <len>      Right margin (default 6.25mm)")
	fmt.Fprintln(w, "      --margin-bottom <len>     Bottom margin (default 14.11mm)")
	fmt.Fprintln(w, "      --margin-left <len>       Left margin (default 6.25mm)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Header/Footer:")
	fmt.Fprintln(w, "      --display-header-footer   Render header and footer templates")
	fmt.Fprintln(w, "      --header-template <html>  Print header template")
	fmt.Fprintln(w, "      --footer-template <html>  Print footer template")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -c, --config <name>           Config file name or path")
	fmt.Fprintln(w, "  -q, --quiet                   Only show errors")
	fmt.Fprintln(w, "  -v, --verbose                 Show progress details")
}

// printScreenshotUsage prints usage for the screenshot command.
func printScreenshotUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: webshot screenshot [flags] <url> [output]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Capture a web page (URL or local file) as a PNG screenshot.")
	fmt.Fprintln(w, "Without an output path the PNG bytes go to stdout.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Browser:")
	fmt.Fprintln(w, "      --sandbox                 Chrome process sandbox (default true)")
	fmt.Fprintln(w, "  -t, --timeout <ms>            Navigation timeout in ms (default 30000)")
	fmt.Fprintln(w, "      --wait-until <s>          load, domcontentloaded, networkidle0, networkidle2")
	fmt.Fprintln(w, "      --cookie <name:value>     Cookie for the target (repeatable)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Capture:")
	fmt.Fprintln(w, "      --full-page               Capture the full scrollable page (default true)")
	fmt.Fprintln(w, "      --omit-background         Transparent background")
	fmt.Fprintln(w, "      --viewport <WxH>          Viewport size, e.g. 1280x720")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -c, --config <name>           Config file name or path")
	fmt.Fprintln(w, "  -q, --quiet                   Only show errors")
	fmt.Fprintln(w, "  -v, --verbose                 Show progress details")
}

// runHelp prints help for a specific command.
func runHelp(args []string, env *Environment) {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return
	}

	switch args[0] {
	case "print":
		printPrintUsage(env.Stdout)
	case "screenshot":
		printScreenshotUsage(env.Stdout)
	case "doctor":
		fmt.Fprintln(env.Stdout, "Usage: webshot doctor [--json]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Check that a Chrome/Chromium browser is available.")
	case "version":
		fmt.Fprintln(env.Stdout, "Usage: webshot version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case "help":
		fmt.Fprintln(env.Stdout, "Usage: webshot help [command]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show help for a command.")
	default:
		fmt.Fprintf(env.Stderr, "Unknown command: %s\n", args[0])
		printUsage(env.Stderr)
	}
}
