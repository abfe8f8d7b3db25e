// CLAUDE:SUMMARY Core record types for the scoring engine: metric records, grader output, fixed-width score result with provenance.
// Package score turns heterogeneous, partially-missing measurement and
// AI-grader outputs into a single diagnostic score with per-category
// provenance. Every function in this package is pure: no I/O, no shared
// state, safe to call concurrently for independent audits.
package score

// LighthouseMetrics is the normalized page-speed record produced by
// ExtractMetrics from a raw Lighthouse report. Timing fields are seconds
// except TBT which stays in milliseconds (the thresholds are defined on
// those units). Pointer fields distinguish "unmeasured" from "measured
// as zero".
type LighthouseMetrics struct {
	LCP float64 `json:"lcp"` // largest contentful paint, seconds
	CLS float64 `json:"cls"` // cumulative layout shift, unitless
	TBT float64 `json:"tbt"` // total blocking time, milliseconds

	FCP *float64 `json:"fcp,omitempty"` // first contentful paint, seconds
	SI  *float64 `json:"si,omitempty"`  // speed index, seconds
	TTI *float64 `json:"tti,omitempty"` // time to interactive, seconds

	Requests  *int `json:"requests,omitempty"`
	Redirects *int `json:"redirects,omitempty"`
	Errors    *int `json:"errors,omitempty"`
}

// CVMetrics is the visual/mobile measurement record produced by evaluating
// the rendered page in a mobile viewport.
type CVMetrics struct {
	HasViewport    bool    `json:"hasViewport"`
	MinFontSize    float64 `json:"minFontSize"`    // px
	MinTouchTarget float64 `json:"minTouchTarget"` // px
	HasOverflow    bool    `json:"hasOverflow"`
	AltRatio       float64 `json:"altRatio"` // 0-1 fraction of images with alt text
	PopupCount     int     `json:"popupCount"`
}

// HTMLMetrics is the markup/SEO record produced by static HTML analysis.
// Title and MetaDescription are absent when empty.
type HTMLMetrics struct {
	Title           string  `json:"title,omitempty"`
	MetaDescription string  `json:"metaDescription,omitempty"`
	OGTags          int     `json:"ogTags"`
	H1Count         int     `json:"h1Count"`
	AltRatio        float64 `json:"altRatio"`
	HasAnalytics    bool    `json:"hasAnalytics"`
	MenuCount       int     `json:"menuCount"`
	HasSearch       bool    `json:"hasSearch"`
	MinFontSize     float64 `json:"minFontSize"` // px, declared in markup
}

// Measured bundles the optional measurement records for one audit. Any of
// the three may be nil; the scorers substitute documented defaults.
type Measured struct {
	Lighthouse *LighthouseMetrics
	CV         *CVMetrics
	HTML       *HTMLMetrics
}

// Graded category names. The grader may omit any of them.
const (
	CategorySpeed        = "speed"
	CategoryMobile       = "mobile"
	CategorySEOAnalytics = "seoAnalytics"
	CategoryBI           = "bi"
	CategoryUSPPromo     = "uspPromo"
	CategoryTrust        = "trust"
	CategoryPurchaseFlow = "purchaseFlow"
	CategoryFirstView    = "firstView"
	CategoryNavigation   = "navigation"
	CategoryVisuals      = "visuals"
)

// GraderCategory is one category's verdict from the AI grading service.
type GraderCategory struct {
	Score    float64  `json:"score"`
	Insights []string `json:"insights"`
}

// GraderOutput maps category name to the grader's verdict. A nil map is a
// valid "grading unavailable" value.
type GraderOutput map[string]GraderCategory

// Source records which mechanism produced a category score.
type Source string

const (
	SourceRule   Source = "rule"
	SourceAI     Source = "ai"
	SourceHybrid Source = "hybrid"
)

// CategoryScores holds all ten category scores as a fixed-width record, so
// "exactly these categories" is a structural guarantee rather than a map
// invariant checked at runtime.
type CategoryScores struct {
	Speed        float64 `json:"speed"`
	Mobile       float64 `json:"mobile"`
	SEOAnalytics float64 `json:"seoAnalytics"`
	BI           float64 `json:"bi"`
	USPPromo     float64 `json:"uspPromo"`
	Trust        float64 `json:"trust"`
	PurchaseFlow float64 `json:"purchaseFlow"`
	FirstView    float64 `json:"firstView"`
	Navigation   float64 `json:"navigation"`
	Visuals      float64 `json:"visuals"`
}

func (c CategoryScores) sum() float64 {
	return c.Speed + c.Mobile + c.SEOAnalytics +
		c.BI + c.USPPromo + c.Trust + c.PurchaseFlow +
		c.FirstView + c.Navigation + c.Visuals
}

// ScoreSources is the per-category provenance record. The assignment is
// fixed by construction: three rule categories, four direct-AI categories,
// three hybrid categories.
type ScoreSources struct {
	Speed        Source `json:"speed"`
	Mobile       Source `json:"mobile"`
	SEOAnalytics Source `json:"seoAnalytics"`
	BI           Source `json:"bi"`
	USPPromo     Source `json:"uspPromo"`
	Trust        Source `json:"trust"`
	PurchaseFlow Source `json:"purchaseFlow"`
	FirstView    Source `json:"firstView"`
	Navigation   Source `json:"navigation"`
	Visuals      Source `json:"visuals"`
}

// FixedSources returns the provenance assignment shared by every result.
func FixedSources() ScoreSources {
	return ScoreSources{
		Speed:        SourceRule,
		Mobile:       SourceRule,
		SEOAnalytics: SourceRule,
		BI:           SourceAI,
		USPPromo:     SourceAI,
		Trust:        SourceAI,
		PurchaseFlow: SourceAI,
		FirstView:    SourceHybrid,
		Navigation:   SourceHybrid,
		Visuals:      SourceHybrid,
	}
}

// ScoreResult is the output of CalculateScores. TotalScore is the rounded
// sum of the category scores and is deliberately not clamped to 100.
type ScoreResult struct {
	TotalScore     int            `json:"totalScore"`
	CategoryScores CategoryScores `json:"categoryScores"`
	ScoreSources   ScoreSources   `json:"scoreSources"`
}
