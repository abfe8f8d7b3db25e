// CLAUDE:SUMMARY Prompt construction: sanitize HTML, convert to markdown, fixed JSON response contract.
package grader

import (
	"fmt"
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/microcosm-cc/bluemonday"
)

// promptContentBudget caps the markdown page content embedded in the
// prompt. Storefront first pages routinely exceed model context otherwise.
const promptContentBudget = 20_000

var sanitizer = bluemonday.UGCPolicy()

func newMarkdownConverter() *converter.Converter {
	return converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(),
		),
	)
}

// pageMarkdown sanitizes the raw HTML and converts it to markdown for the
// prompt. Script/style noise is stripped by the sanitizer before
// conversion.
func pageMarkdown(html []byte) string {
	clean := sanitizer.SanitizeBytes(html)
	md, err := newMarkdownConverter().ConvertString(string(clean))
	if err != nil {
		// Fall back to the sanitized text; a grading prompt with raw-ish
		// content is better than no grading at all.
		md = string(clean)
	}
	md = strings.TrimSpace(md)
	if len(md) > promptContentBudget {
		md = md[:promptContentBudget]
	}
	return md
}

// buildPrompt renders the grading instruction for one page.
func buildPrompt(in Input) string {
	platform := in.Platform
	if platform == "" {
		platform = "unknown"
	}

	var b strings.Builder
	fmt.Fprintf(&b, `You are auditing the first page of an online storefront.

URL: %s
Platform: %s

Judge the page on these seven categories, each scored 0-10:
- bi: brand identity — is it clear what the store sells and for whom
- uspPromo: unique selling points and promotions visible above the fold
- trust: trust signals (reviews, guarantees, contact, payment badges)
- purchaseFlow: how directly a visitor can reach a product and buy it
- firstView: first-view impression in the initial viewport
- navigation: menu clarity and findability
- visuals: image quality, layout consistency, visual hierarchy

Respond with JSON only, no prose and no code fences, in exactly this shape:
{"bi": {"score": 0, "insights": ["..."]}, "uspPromo": {...}, "trust": {...},
 "purchaseFlow": {...}, "firstView": {...}, "navigation": {...}, "visuals": {...}}

Each insights list holds one to three short, concrete observations.

Page content (markdown):
---
%s
---
`, in.URL, platform, pageMarkdown(in.HTML))

	return b.String()
}
