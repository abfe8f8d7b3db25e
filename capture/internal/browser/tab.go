package browser

import (
	"context"
	"fmt"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/proto"
	"github.com/go-rod/stealth"
)

// Viewport describes the emulated device for a tab.
type Viewport struct {
	Width  int
	Height int
	Mobile bool
}

// Tab wraps a Rod page with capture-specific setup: stealth, viewport
// emulation, navigation with load wait.
type Tab struct {
	Page    *rod.Page
	PageURL string
}

// OpenTab creates a stealth tab, applies the viewport, navigates to the URL
// and waits for the load event plus an optional settle delay.
func OpenTab(ctx context.Context, mgr *Manager, pageURL string, vp Viewport, waitFor time.Duration) (*Tab, error) {
	b := mgr.Browser()
	if b == nil {
		return nil, fmt.Errorf("browser: no active browser")
	}

	page, err := stealth.Page(b)
	if err != nil {
		return nil, fmt.Errorf("browser: create tab: %w", err)
	}

	scale := 1.0
	if vp.Mobile {
		scale = 2.0
	}
	if err := page.SetViewport(&proto.EmulationSetDeviceMetricsOverride{
		Width:             vp.Width,
		Height:            vp.Height,
		DeviceScaleFactor: scale,
		Mobile:            vp.Mobile,
	}); err != nil {
		page.Close()
		return nil, fmt.Errorf("browser: set viewport: %w", err)
	}

	navCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	if err := page.Context(navCtx).Navigate(pageURL); err != nil {
		page.Close()
		return nil, fmt.Errorf("browser: navigate %s: %w", pageURL, err)
	}
	// A slow page is still capturable.
	if err := page.Context(navCtx).WaitLoad(); err != nil {
		mgr.cfg.Logger.Warn("browser: wait load timeout", "url", pageURL, "error", err)
	}
	if waitFor > 0 {
		select {
		case <-time.After(waitFor):
		case <-ctx.Done():
			page.Close()
			return nil, ctx.Err()
		}
	}

	return &Tab{Page: page, PageURL: pageURL}, nil
}

// Screenshot captures the tab as PNG, full page or viewport only.
func (t *Tab) Screenshot(ctx context.Context, fullPage bool) ([]byte, error) {
	data, err := t.Page.Context(ctx).Screenshot(fullPage, &proto.PageCaptureScreenshot{
		Format: proto.PageCaptureScreenshotFormatPng,
	})
	if err != nil {
		return nil, fmt.Errorf("browser: screenshot %s: %w", t.PageURL, err)
	}
	return data, nil
}

// HTML serialises the rendered DOM as outer HTML.
func (t *Tab) HTML(ctx context.Context) ([]byte, error) {
	res, err := t.Page.Context(ctx).Eval(`() => document.documentElement.outerHTML`)
	if err != nil {
		return nil, fmt.Errorf("browser: get DOM: %w", err)
	}
	return []byte(res.Value.Str()), nil
}

// Close closes the tab.
func (t *Tab) Close() error {
	if t.Page != nil {
		return t.Page.Close()
	}
	return nil
}
