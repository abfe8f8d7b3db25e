package grader

import (
	"strings"
	"testing"

	"github.com/hazyhaar/shopscan/score"
)

func TestMock_Deterministic(t *testing.T) {
	// WHAT: The mock returns identical verdicts for identical URLs and
	// covers all seven graded categories.
	// WHY: Credential-less runs must be reproducible.
	m := &Mock{}
	in := Input{URL: "https://acme.test"}
	a, err := m.Grade(t.Context(), in)
	if err != nil {
		t.Fatalf("Grade: %v", err)
	}
	b, _ := m.Grade(t.Context(), in)

	if len(a) != len(gradedCategories) {
		t.Fatalf("got %d categories, want %d", len(a), len(gradedCategories))
	}
	for _, cat := range gradedCategories {
		if a[cat].Score != b[cat].Score {
			t.Errorf("%s: scores differ across runs: %v vs %v", cat, a[cat].Score, b[cat].Score)
		}
		if a[cat].Score < 0 || a[cat].Score > 10 {
			t.Errorf("%s: score %v outside 0-10", cat, a[cat].Score)
		}
		if len(a[cat].Insights) == 0 {
			t.Errorf("%s: no insights", cat)
		}
	}
}

func TestParseOutput_ToleratesCodeFences(t *testing.T) {
	// WHAT: Fenced JSON parses; unknown categories are dropped; scores
	// are clamped.
	// WHY: Models wrap JSON in fences despite instructions, and sometimes
	// invent categories or out-of-range values.
	text := "```json\n" + `{
		"trust": {"score": 8, "insights": ["reviews visible"]},
		"visuals": {"score": 200, "insights": []},
		"madeUp": {"score": 5, "insights": []}
	}` + "\n```"
	out, err := parseOutput(text)
	if err != nil {
		t.Fatalf("parseOutput: %v", err)
	}
	if out[score.CategoryTrust].Score != 8 {
		t.Errorf("trust = %v, want 8", out[score.CategoryTrust].Score)
	}
	if out[score.CategoryVisuals].Score != 100 {
		t.Errorf("visuals = %v, want clamped 100", out[score.CategoryVisuals].Score)
	}
	if _, ok := out["madeUp"]; ok {
		t.Error("unknown category survived parsing")
	}
}

func TestParseOutput_GarbageIsGradingFailed(t *testing.T) {
	// WHAT: A non-JSON response fails with ErrGradingFailed.
	if _, err := parseOutput("I think the page is nice."); err == nil {
		t.Fatal("expected error")
	}
}

func TestBuildPrompt_EmbedsContext(t *testing.T) {
	// WHAT: The prompt carries URL, platform, the category contract and
	// the sanitized page content.
	in := Input{
		URL:      "https://acme.test",
		Platform: "shopify",
		HTML:     []byte(`<h1>Acme</h1><script>evil()</script>`),
	}
	p := buildPrompt(in)
	for _, want := range []string{"https://acme.test", "shopify", "purchaseFlow", "Acme"} {
		if !strings.Contains(p, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
	if strings.Contains(p, "evil()") {
		t.Error("script content survived sanitization into the prompt")
	}
}

func TestBuildPrompt_TruncatesLongContent(t *testing.T) {
	// WHAT: Page content is capped at the prompt budget.
	in := Input{URL: "u", HTML: []byte("<p>" + strings.Repeat("word ", 20_000) + "</p>")}
	if p := buildPrompt(in); len(p) > promptContentBudget+2_000 {
		t.Errorf("prompt length %d exceeds budget margin", len(p))
	}
}
