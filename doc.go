// Package webshot renders web pages to PDF documents or PNG screenshots
// using headless Chrome.
//
// # Quick Start
//
// Create a service, render a page, and close when done:
//
//	svc := webshot.NewService(webshot.NewRodEngine(webshot.EngineOptions{Sandbox: true}))
//	defer svc.Close()
//
//	pdf, err := svc.Print(ctx, webshot.PrintInput{
//	    Session: webshot.SessionInput{Target: "https://example.com"},
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("page.pdf", pdf, 0644)
//
// # Pipeline
//
// Each render is a single linear sequence of browser calls:
//
//  1. Target resolution (URL pass-through, or file path to file:// URL)
//  2. Cookie parsing and installation
//  3. Optional viewport override (screenshots)
//  4. Navigation, bounded by a wait condition and timeout
//  5. Optional script injection and media-type emulation
//  6. PDF export or screenshot capture
//
// The browser engine is injected via the Engine interface, so the pipeline
// can be tested without launching Chrome. The production engine uses go-rod,
// which downloads a compatible Chromium on first run if none is found.
package webshot
