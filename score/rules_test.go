package score

import "testing"

func fptr(v float64) *float64 { return &v }
func iptr(v int) *int         { return &v }

func TestSpeedScore_FastPageIsPerfect(t *testing.T) {
	// WHAT: LCP<=2.5, CLS<=0.1, TBT<=300 scores the full 10.
	// WHY: Scenario A — no threshold is crossed, no deduction applies.
	m := &LighthouseMetrics{LCP: 2.0, CLS: 0.05, TBT: 200}
	if got := SpeedScore(m); got != 10 {
		t.Errorf("SpeedScore = %d, want 10", got)
	}
}

func TestSpeedScore_Deductions(t *testing.T) {
	// WHAT: Each metric past its threshold deducts its documented amount.
	// WHY: Scenarios B, C, D pin the exact deduction table.
	cases := []struct {
		name string
		m    LighthouseMetrics
		want int
	}{
		{"slow LCP", LighthouseMetrics{LCP: 5.0, CLS: 0.05, TBT: 200}, 7},
		{"moderate LCP", LighthouseMetrics{LCP: 3.0, CLS: 0.05, TBT: 200}, 9},
		{"bad CLS", LighthouseMetrics{LCP: 2.0, CLS: 0.2, TBT: 200}, 8},
		{"bad TBT", LighthouseMetrics{LCP: 2.0, CLS: 0.05, TBT: 500}, 8},
		{"everything bad", LighthouseMetrics{LCP: 6.0, CLS: 0.3, TBT: 600}, 3},
	}
	for _, tc := range cases {
		if got := SpeedScore(&tc.m); got != tc.want {
			t.Errorf("%s: SpeedScore = %d, want %d", tc.name, got, tc.want)
		}
	}
}

func TestSpeedScore_Monotonicity(t *testing.T) {
	// WHAT: Worsening any single metric never raises the score.
	// WHY: The formula is pure deduction; a worse page cannot score better.
	base := LighthouseMetrics{LCP: 2.0, CLS: 0.05, TBT: 200}
	prev := SpeedScore(&base)
	for _, lcp := range []float64{2.6, 4.1, 9.0} {
		m := base
		m.LCP = lcp
		if got := SpeedScore(&m); got > prev {
			t.Errorf("LCP %v: score rose from %d to %d", lcp, prev, got)
		} else {
			prev = got
		}
	}
}

func TestSpeedScore_AbsentRecordDefaultsToFive(t *testing.T) {
	// WHAT: A nil metrics record scores 5.
	// WHY: Midpoint default keeps a partial audit usable instead of
	// blocking the pipeline.
	if got := SpeedScore(nil); got != 5 {
		t.Errorf("SpeedScore(nil) = %d, want 5", got)
	}
}

func TestDisplaySpeedScore_ExtraDeductions(t *testing.T) {
	// WHAT: The display variant also deducts for slow FCP and console errors.
	// WHY: The two formulas deliberately diverge; only SpeedScore feeds
	// the composite path.
	m := &LighthouseMetrics{LCP: 2.0, CLS: 0.05, TBT: 200, FCP: fptr(3.5), Errors: iptr(2)}
	if got := DisplaySpeedScore(m); got != 8 {
		t.Errorf("DisplaySpeedScore = %d, want 8", got)
	}
	if got := SpeedScore(m); got != 10 {
		t.Errorf("SpeedScore = %d, want 10 (canonical formula ignores FCP and errors)", got)
	}
}

func TestDisplaySpeedScore_ClampsAtZero(t *testing.T) {
	// WHAT: The display variant never goes negative.
	// WHY: 10-3-2-2-1-1 = 1, still >=0; push further with nothing left
	// to deduct stays clamped.
	m := &LighthouseMetrics{LCP: 9, CLS: 0.9, TBT: 9000, FCP: fptr(9), Errors: iptr(9)}
	if got := DisplaySpeedScore(m); got < 0 {
		t.Errorf("DisplaySpeedScore = %d, want >= 0", got)
	}
}

func TestMobileScore_Additive(t *testing.T) {
	// WHAT: Mobile score accumulates viewport, font, touch and overflow points.
	// WHY: Maximum attainable is exactly 10.
	cases := []struct {
		name string
		cv   CVMetrics
		want int
	}{
		{"perfect", CVMetrics{HasViewport: true, MinFontSize: 14, MinTouchTarget: 44, HasOverflow: false}, 10},
		{"mid font and touch", CVMetrics{HasViewport: true, MinFontSize: 12, MinTouchTarget: 36, HasOverflow: false}, 6},
		{"overflowing no viewport", CVMetrics{MinFontSize: 10, MinTouchTarget: 20, HasOverflow: true}, 0},
	}
	for _, tc := range cases {
		if got := MobileScore(&tc.cv); got != tc.want {
			t.Errorf("%s: MobileScore = %d, want %d", tc.name, got, tc.want)
		}
	}
	if got := MobileScore(nil); got != 5 {
		t.Errorf("MobileScore(nil) = %d, want 5", got)
	}
}

func TestSEOScore_SingleH1Only(t *testing.T) {
	// WHAT: Exactly one H1 earns the point; zero or several earn nothing.
	// WHY: A single canonical H1 is the only rewarded heading state.
	base := HTMLMetrics{Title: "t", MetaDescription: "d", OGTags: 3, AltRatio: 0.9, HasAnalytics: true}
	for h1, want := range map[int]int{0: 9, 1: 10, 2: 9, 5: 9} {
		h := base
		h.H1Count = h1
		if got := SEOScore(&h); got != want {
			t.Errorf("h1Count=%d: SEOScore = %d, want %d", h1, got, want)
		}
	}
}

func TestSEOScore_AltRatioBands(t *testing.T) {
	// WHAT: alt coverage >=0.8 earns 2, >=0.5 earns 1, below earns 0.
	// WHY: Banded rather than proportional scoring.
	for ratio, want := range map[float64]int{0.9: 2, 0.8: 2, 0.6: 1, 0.4: 0} {
		h := HTMLMetrics{AltRatio: ratio}
		if got := SEOScore(&h); got != want {
			t.Errorf("altRatio=%v: SEOScore = %d, want %d", ratio, got, want)
		}
	}
	if got := SEOScore(nil); got != 5 {
		t.Errorf("SEOScore(nil) = %d, want 5", got)
	}
}

func TestRuleScores_StayWithinScale(t *testing.T) {
	// WHAT: Mobile and SEO scores are always within [0, 10].
	// WHY: They feed equal-weighted buckets of the 30-point rule tier.
	extremes := []CVMetrics{
		{HasViewport: true, MinFontSize: 99, MinTouchTarget: 99},
		{HasOverflow: true},
	}
	for _, cv := range extremes {
		if got := MobileScore(&cv); got < 0 || got > 10 {
			t.Errorf("MobileScore = %d, out of [0,10]", got)
		}
	}
	h := HTMLMetrics{Title: "t", MetaDescription: "d", OGTags: 99, H1Count: 1, AltRatio: 1, HasAnalytics: true}
	if got := SEOScore(&h); got != 10 {
		t.Errorf("SEOScore maximum = %d, want 10", got)
	}
}
