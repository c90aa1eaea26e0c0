// Package pdf renders an assembled CV display context into a printable PDF.
package pdf

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"time"

	"go-cv-backend/internal/domain"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

// Renderer is the narrow contract consumed by the CV usecase.
type Renderer interface {
	Render(ctx context.Context, dc *domain.DisplayContext) ([]byte, error)
}

// ChromeRenderer prints the rendered CV page to PDF with a headless
// Chrome/Chromium instance. Requires Chrome to be installed on the system.
type ChromeRenderer struct {
	timeout time.Duration
}

func NewChromeRenderer(timeout time.Duration) *ChromeRenderer {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &ChromeRenderer{timeout: timeout}
}

// Render is a pure function of the display context: no data fetching, no
// persistence side effects.
func (r *ChromeRenderer) Render(ctx context.Context, dc *domain.DisplayContext) ([]byte, error) {
	html, err := RenderHTML(dc)
	if err != nil {
		return nil, err
	}

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

	browserCtx, cancel = context.WithTimeout(browserCtx, r.timeout)
	defer cancel()

	var pdf []byte
	err = chromedp.Run(browserCtx,
		chromedp.Navigate("data:text/html,"+url.PathEscape(html)),
		chromedp.WaitReady("body"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			pdf, _, err = page.PrintToPDF().
				WithPrintBackground(true).
				Do(ctx)
			return err
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("pdf rendering failed: %w", err)
	}
	return pdf, nil
}

// RenderHTML executes the CV template against the display context.
func RenderHTML(dc *domain.DisplayContext) (string, error) {
	var buf bytes.Buffer
	if err := cvTmpl.Execute(&buf, dc); err != nil {
		return "", fmt.Errorf("failed to render CV template: %w", err)
	}
	return buf.String(), nil
}

// Filename derives the suggested download filename from the candidate name.
func Filename(firstName, lastName string) string {
	return fmt.Sprintf("%s_%s_CV.pdf", firstName, lastName)
}
