// CLAUDE:SUMMARY In-page device measurements: viewport meta, font/touch-target minima, overflow, alt ratio, popup count.
package capture

import (
	"context"
	"time"

	"github.com/hazyhaar/shopscan/capture/internal/browser"
	"github.com/hazyhaar/shopscan/score"
)

// measureJS runs inside the rendered page and reports the visual/mobile
// measurements the mobile-usability and visuals scorers consume. Sampling
// is capped so pathological pages cannot stall the audit.
const measureJS = `() => {
	const vw = window.innerWidth;
	const vh = window.innerHeight;

	let minFont = Infinity;
	let minTarget = Infinity;
	let popups = 0;

	const els = document.querySelectorAll('body *');
	const limit = Math.min(els.length, 3000);
	for (let i = 0; i < limit; i++) {
		const el = els[i];
		const cs = getComputedStyle(el);
		if (cs.display === 'none' || cs.visibility === 'hidden') continue;

		if (el.childNodes.length && [...el.childNodes].some(
				n => n.nodeType === 3 && n.textContent.trim().length > 0)) {
			const fs = parseFloat(cs.fontSize);
			if (fs > 0 && fs < minFont) minFont = fs;
		}

		if (el.matches('a, button, input, select, textarea, [role="button"], [onclick]')) {
			const r = el.getBoundingClientRect();
			if (r.width > 0 && r.height > 0) {
				const d = Math.min(r.width, r.height);
				if (d < minTarget) minTarget = d;
			}
		}

		if (cs.position === 'fixed' || el.matches('[role="dialog"], dialog[open]')) {
			const r = el.getBoundingClientRect();
			if (r.width * r.height > vw * vh * 0.2) popups++;
		}
	}

	const imgs = document.querySelectorAll('img');
	let withAlt = 0;
	imgs.forEach(img => { if (img.getAttribute('alt')) withAlt++; });

	return {
		hasViewport: !!document.querySelector('meta[name="viewport"]'),
		minFontSize: minFont === Infinity ? 16 : minFont,
		minTouchTarget: minTarget === Infinity ? 48 : minTarget,
		hasOverflow: document.documentElement.scrollWidth > vw + 1,
		altRatio: imgs.length === 0 ? 1 : withAlt / imgs.length,
		popupCount: popups
	};
}`

// Measure loads the URL in the given viewport and evaluates the device
// measurements in the rendered page.
func (s *Service) Measure(ctx context.Context, url string, vp Viewport) (*score.CVMetrics, error) {
	if s.mgr.Browser() == nil {
		return nil, ErrBrowserUnavailable
	}

	tab, err := browser.OpenTab(ctx, s.mgr, url, browser.Viewport(vp), 2*time.Second)
	if err != nil {
		return nil, err
	}
	defer tab.Close()

	res, err := tab.Page.Context(ctx).Eval(measureJS)
	if err != nil {
		return nil, err
	}

	v := res.Value
	return &score.CVMetrics{
		HasViewport:    v.Get("hasViewport").Bool(),
		MinFontSize:    v.Get("minFontSize").Num(),
		MinTouchTarget: v.Get("minTouchTarget").Num(),
		HasOverflow:    v.Get("hasOverflow").Bool(),
		AltRatio:       v.Get("altRatio").Num(),
		PopupCount:     v.Get("popupCount").Int(),
	}, nil
}

// RenderedHTML loads the URL and returns the rendered DOM. Used when the
// static fetch was blocked or returned a shell page.
func (s *Service) RenderedHTML(ctx context.Context, url string, vp Viewport) ([]byte, error) {
	if s.mgr.Browser() == nil {
		return nil, ErrBrowserUnavailable
	}
	tab, err := browser.OpenTab(ctx, s.mgr, url, browser.Viewport(vp), 2*time.Second)
	if err != nil {
		return nil, err
	}
	defer tab.Close()
	return tab.HTML(ctx)
}
