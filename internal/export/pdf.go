package export

import (
	"context"
	"net/url"
	"os"
	"os/exec"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

// DefaultPDFTimeout bounds a single print run. Report pages are static
// so rendering is fast; the margin covers browser startup.
const DefaultPDFTimeout = 30 * time.Second

// chromeCandidates are the binaries probed by HasRenderTool, in order.
var chromeCandidates = []string{
	"google-chrome",
	"google-chrome-stable",
	"chromium",
	"chromium-browser",
}

// HasRenderTool reports whether a Chrome or Chromium binary is on PATH.
// Callers use it to decide whether to offer PDF export at all.
func HasRenderTool() bool {
	for _, name := range chromeCandidates {
		if _, err := exec.LookPath(name); err == nil {
			return true
		}
	}
	return false
}

// WritePDF renders the report HTML in a headless browser and writes the
// printed PDF to outPath. Requires Chrome/Chromium on the system.
func WritePDF(ctx context.Context, html string, outPath string) error {
	allocCtx, cancel := chromedp.NewExecAllocator(ctx,
		append(chromedp.DefaultExecAllocatorOptions[:],
			chromedp.Flag("headless", true),
			chromedp.Flag("disable-gpu", true),
			chromedp.Flag("no-sandbox", true),
			chromedp.Flag("disable-dev-shm-usage", true),
		)...,
	)
	defer cancel()

	browserCtx, cancel := chromedp.NewContext(allocCtx)
	defer cancel()

	browserCtx, cancel = context.WithTimeout(browserCtx, DefaultPDFTimeout)
	defer cancel()

	var pdf []byte
	err := chromedp.Run(browserCtx,
		chromedp.Navigate("data:text/html,"+url.PathEscape(html)),
		chromedp.WaitReady("body"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			pdf, _, err = page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(8.27).
				WithPaperHeight(11.69).
				Do(ctx)
			return err
		}),
	)
	if err != nil {
		return &PDFError{Message: "headless browser print failed", Cause: err}
	}

	if err := os.WriteFile(outPath, pdf, 0o644); err != nil {
		return &PDFError{Message: "failed to write pdf file", Cause: err}
	}
	return nil
}
