// CLAUDE:SUMMARY Composite aggregator: assembles rule, direct-AI and hybrid category scores into a ScoreResult.
package score

import "math"

// directScore takes the grader's value verbatim for a direct-AI category.
// Absent categories contribute 0 here, not the hybrid default of 5: an
// unavailable grader should not invent credit for the AI-only tiers.
func directScore(out GraderOutput, category string) float64 {
	if c, ok := out[category]; ok {
		return c.Score
	}
	return 0
}

// CalculateScores assembles the ten category scores into a ScoreResult.
// It never fails: any subset of grader output and measurement records may
// be absent, each category falling back to its documented default.
// TotalScore is the rounded sum of the category scores, unclamped.
func CalculateScores(out GraderOutput, measured Measured) ScoreResult {
	cs := CategoryScores{
		Speed:        float64(SpeedScore(measured.Lighthouse)),
		Mobile:       float64(MobileScore(measured.CV)),
		SEOAnalytics: float64(SEOScore(measured.HTML)),
		BI:           directScore(out, CategoryBI),
		USPPromo:     directScore(out, CategoryUSPPromo),
		Trust:        directScore(out, CategoryTrust),
		PurchaseFlow: directScore(out, CategoryPurchaseFlow),
		FirstView:    float64(FirstViewScore(out, measured.HTML)),
		Navigation:   float64(NavigationScore(out, measured.HTML)),
		Visuals:      float64(VisualsScore(out, measured.CV)),
	}
	return ScoreResult{
		TotalScore:     int(math.Round(cs.sum())),
		CategoryScores: cs,
		ScoreSources:   FixedSources(),
	}
}
