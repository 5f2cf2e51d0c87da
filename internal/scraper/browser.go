package scraper

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/chromedp/chromedp"
)

// ErrBrowserStart marks the one fatal pipeline condition: the shared
// headless browser could not even be launched. Page-level failures are
// recoverable and never wrap this.
var ErrBrowserStart = errors.New("browser automation could not be started")

const (
	browserWaitTimeout = 20 * time.Second
	tabSettleDelay     = 2 * time.Second
)

// Session owns one headless browser for a whole pipeline run. The
// browser-driven extractors all share it and must run sequentially: the
// session holds exactly one current page at a time.
type Session struct {
	ctx         context.Context
	cancelCtx   context.CancelFunc
	cancelAlloc context.CancelFunc
}

// NewSession launches the browser and warms it up so that a broken Chrome
// install fails here, as ErrBrowserStart, instead of inside an extractor.
// Sandboxing is disabled for container compatibility.
func NewSession() (*Session, error) {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.NoSandbox,
		chromedp.UserAgent(userAgent),
	)
	allocCtx, cancelAlloc := chromedp.NewExecAllocator(context.Background(), opts...)
	ctx, cancelCtx := chromedp.NewContext(allocCtx)

	if err := chromedp.Run(ctx); err != nil {
		cancelCtx()
		cancelAlloc()
		return nil, fmt.Errorf("%w: %v", ErrBrowserStart, err)
	}
	return &Session{ctx: ctx, cancelCtx: cancelCtx, cancelAlloc: cancelAlloc}, nil
}

// Close tears the browser down. Safe on a zero Session.
func (s *Session) Close() {
	if s.cancelCtx != nil {
		s.cancelCtx()
	}
	if s.cancelAlloc != nil {
		s.cancelAlloc()
	}
}

// Navigate loads url and waits for sel to become visible, the marker that
// the page's JavaScript has produced the content of interest. A timeout is
// recoverable and distinguishable via isTimeout.
func (s *Session) Navigate(url, sel string) error {
	ctx, cancel := context.WithTimeout(s.ctx, browserWaitTimeout)
	defer cancel()
	return chromedp.Run(ctx,
		chromedp.Navigate(url),
		chromedp.WaitVisible(sel, chromedp.ByQuery),
	)
}

// Click reveals tab-gated content, then sleeps a fixed settle delay so the
// tab's asynchronous rendering can finish before the page is read.
func (s *Session) Click(sel string) error {
	ctx, cancel := context.WithTimeout(s.ctx, browserWaitTimeout)
	defer cancel()
	if err := chromedp.Run(ctx,
		chromedp.WaitVisible(sel, chromedp.ByQuery),
		chromedp.Click(sel, chromedp.ByQuery),
	); err != nil {
		return err
	}
	time.Sleep(tabSettleDelay)
	return nil
}

// HTML returns the rendered markup of the current page.
func (s *Session) HTML() (string, error) {
	ctx, cancel := context.WithTimeout(s.ctx, browserWaitTimeout)
	defer cancel()
	var html string
	if err := chromedp.Run(ctx, chromedp.OuterHTML("html", &html, chromedp.ByQuery)); err != nil {
		return "", err
	}
	return html, nil
}

// isTimeout separates an exceeded render wait from a generic transport
// error; the two degrade to different sentinels.
func isTimeout(err error) bool {
	return errors.Is(err, context.DeadlineExceeded)
}
