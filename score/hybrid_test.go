package score

import "testing"

func TestFirstViewScore_BlendAndBonus(t *testing.T) {
	// WHAT: firstView = round(ai*0.7 + 3 if minFontSize>=16).
	// WHY: The markup bonus is all-or-nothing at the 16px threshold.
	out := GraderOutput{CategoryFirstView: {Score: 8}}
	if got := FirstViewScore(out, &HTMLMetrics{MinFontSize: 16}); got != 9 {
		t.Errorf("FirstViewScore = %d, want 9 (round(5.6+3))", got)
	}
	if got := FirstViewScore(out, &HTMLMetrics{MinFontSize: 14}); got != 6 {
		t.Errorf("FirstViewScore = %d, want 6 (round(5.6))", got)
	}
}

func TestFirstViewScore_AbsentGraderDefaultsToFive(t *testing.T) {
	// WHAT: A missing grader category contributes the 0-10 midpoint of 5.
	// WHY: Scenario E — round(5*0.7+0) = 4 with all measurements absent.
	if got := FirstViewScore(nil, nil); got != 4 {
		t.Errorf("FirstViewScore = %d, want 4", got)
	}
}

func TestNavigationScore_MenuBandAndSearch(t *testing.T) {
	// WHAT: 4 points for 3..8 menu entries, 3 for a search control, plus ai*0.3.
	// WHY: Too few or too many menu entries both score nothing.
	out := GraderOutput{CategoryNavigation: {Score: 10}}
	cases := []struct {
		name string
		h    HTMLMetrics
		want int
	}{
		{"sane menu with search", HTMLMetrics{MenuCount: 5, HasSearch: true}, 10},
		{"sane menu no search", HTMLMetrics{MenuCount: 5}, 7},
		{"menu too small", HTMLMetrics{MenuCount: 2, HasSearch: true}, 6},
		{"menu too large", HTMLMetrics{MenuCount: 12}, 3},
	}
	for _, tc := range cases {
		if got := NavigationScore(out, &tc.h); got != tc.want {
			t.Errorf("%s: NavigationScore = %d, want %d", tc.name, got, tc.want)
		}
	}
	if got := NavigationScore(nil, nil); got != 2 {
		t.Errorf("NavigationScore(absent, absent) = %d, want 2 (round(5*0.3))", got)
	}
}

func TestVisualsScore_RuleBonusNeedsMeasurements(t *testing.T) {
	// WHAT: alt and popup bonuses only apply when CV measurements exist.
	// WHY: An absent record must not be treated as "zero popups".
	out := GraderOutput{CategoryVisuals: {Score: 6}}
	if got := VisualsScore(out, &CVMetrics{AltRatio: 0.9, PopupCount: 0}); got != 8 {
		t.Errorf("VisualsScore = %d, want 8 (2+3+3)", got)
	}
	if got := VisualsScore(out, &CVMetrics{AltRatio: 0.5, PopupCount: 4}); got != 3 {
		t.Errorf("VisualsScore = %d, want 3 (weighted ai only)", got)
	}
	if got := VisualsScore(nil, nil); got != 3 {
		t.Errorf("VisualsScore(absent, absent) = %d, want 3 (round(5*0.5))", got)
	}
}
