// CLAUDE:SUMMARY Deterministic 0-10 rule scorers: speed (canonical + display variant), mobile usability, SEO/analytics.
package score

// absentRecordDefault is the score substituted when a rule scorer's whole
// measurement record is absent: the midpoint of the 0-10 scale. Distinct
// from the direct-AI default of 0 in composite.go.
const absentRecordDefault = 5

// SpeedScore is the canonical 0-10 page-speed score and the only speed
// formula the composite path uses. It inspects LCP, CLS and TBT only.
// A nil record scores the documented default of 5.
func SpeedScore(m *LighthouseMetrics) int {
	if m == nil {
		return absentRecordDefault
	}
	s := 10
	switch {
	case m.LCP > 4.0:
		s -= 3
	case m.LCP > 2.5:
		s -= 1
	}
	if m.CLS > 0.1 {
		s -= 2
	}
	if m.TBT > 300 {
		s -= 2
	}
	if s < 0 {
		s = 0
	}
	return s
}

// DisplaySpeedScore is the quick-display variant of SpeedScore. On top of
// the canonical deductions it penalizes a slow first paint and any console
// errors. It exists for presentation only and must never feed the
// composite score; the two formulas diverge on edge inputs.
func DisplaySpeedScore(m *LighthouseMetrics) int {
	if m == nil {
		return absentRecordDefault
	}
	s := SpeedScore(m)
	if m.FCP != nil && *m.FCP > 3.0 {
		s--
	}
	if m.Errors != nil && *m.Errors > 0 {
		s--
	}
	if s < 0 {
		s = 0
	}
	return s
}

// MobileScore is the 0-10 mobile-usability score. Additive: viewport meta,
// readable font sizes, touch target sizes, and no horizontal overflow.
// A nil record scores 5.
func MobileScore(cv *CVMetrics) int {
	if cv == nil {
		return absentRecordDefault
	}
	s := 0
	if cv.HasViewport {
		s += 2
	}
	switch {
	case cv.MinFontSize >= 14:
		s += 3
	case cv.MinFontSize >= 12:
		s++
	}
	switch {
	case cv.MinTouchTarget >= 44:
		s += 3
	case cv.MinTouchTarget >= 36:
		s++
	}
	if !cv.HasOverflow {
		s += 2
	}
	return s
}

// SEOScore is the 0-10 SEO/analytics score. A single H1 is the only
// rewarded heading state; zero or several score nothing. A nil record
// scores 5.
func SEOScore(h *HTMLMetrics) int {
	if h == nil {
		return absentRecordDefault
	}
	s := 0
	if h.Title != "" {
		s++
	}
	if h.MetaDescription != "" {
		s++
	}
	if h.OGTags >= 3 {
		s += 2
	}
	if h.H1Count == 1 {
		s++
	}
	switch {
	case h.AltRatio >= 0.8:
		s += 2
	case h.AltRatio >= 0.5:
		s++
	}
	if h.HasAnalytics {
		s += 3
	}
	return s
}
