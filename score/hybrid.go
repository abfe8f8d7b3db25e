// CLAUDE:SUMMARY Hybrid category scorers blending an AI sub-score with rule-derived bonuses under fixed weights.
package score

import "math"

// absentGraderDefault is the sub-score substituted into a blend when the
// grader omitted the category: the midpoint of the 0-10 scale the weighted
// terms expect.
const absentGraderDefault = 5

func graderScore(out GraderOutput, category string) float64 {
	if c, ok := out[category]; ok {
		return c.Score
	}
	return absentGraderDefault
}

// FirstViewScore blends the grader's first-view verdict (weight 0.7) with
// a markup bonus for a comfortable base font size.
func FirstViewScore(out GraderOutput, h *HTMLMetrics) int {
	bonus := 0.0
	if h != nil && h.MinFontSize >= 16 {
		bonus = 3
	}
	return int(math.Round(graderScore(out, CategoryFirstView)*0.7 + bonus))
}

// NavigationScore rewards a menu of sane size and a search control, plus
// the grader's navigation verdict at weight 0.3.
func NavigationScore(out GraderOutput, h *HTMLMetrics) int {
	rule := 0.0
	if h != nil {
		if h.MenuCount >= 3 && h.MenuCount <= 8 {
			rule += 4
		}
		if h.HasSearch {
			rule += 3
		}
	}
	return int(math.Round(rule + graderScore(out, CategoryNavigation)*0.3))
}

// VisualsScore rewards alt-text coverage and restraint with popups, plus
// the grader's visuals verdict at weight 0.5.
func VisualsScore(out GraderOutput, cv *CVMetrics) int {
	rule := 0.0
	if cv != nil {
		if cv.AltRatio >= 0.8 {
			rule += 2
		}
		if cv.PopupCount <= 1 {
			rule += 3
		}
	}
	return int(math.Round(rule + graderScore(out, CategoryVisuals)*0.5))
}
