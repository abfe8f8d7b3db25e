// CLAUDE:SUMMARY Static markup analysis: SEO record (title, meta, og, h1, alt ratio, analytics, menu, search, font sizes).
// Package markup produces the HTMLMetrics record from a storefront's raw
// HTML, and detects the storefront platform for the AI grader's context.
package markup

import (
	"bytes"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/hazyhaar/shopscan/score"
)

// analyticsPattern matches the common analytics and tag-manager loaders in
// script sources or inline script bodies.
var analyticsPattern = regexp.MustCompile(`(?i)googletagmanager|google-analytics|gtag\(|ga\(|_gaq|matomo|piwik|plausible\.io|fbq\(|segment\.com|analytics\.js`)

// Analyze parses the HTML and fills the markup/SEO record.
func Analyze(html []byte) (*score.HTMLMetrics, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(html))
	if err != nil {
		return nil, err
	}

	m := &score.HTMLMetrics{
		Title:       strings.TrimSpace(doc.Find("head title").First().Text()),
		H1Count:     doc.Find("h1").Length(),
		MenuCount:   menuCount(doc),
		HasSearch:   hasSearch(doc),
		MinFontSize: minDeclaredFontSize(html),
	}

	if desc, ok := doc.Find(`head meta[name="description"]`).First().Attr("content"); ok {
		m.MetaDescription = strings.TrimSpace(desc)
	}

	doc.Find("head meta").Each(func(_ int, s *goquery.Selection) {
		if prop, ok := s.Attr("property"); ok && strings.HasPrefix(strings.ToLower(prop), "og:") {
			m.OGTags++
		}
	})

	imgs := doc.Find("img")
	if imgs.Length() == 0 {
		// No images means nothing lacks alt text.
		m.AltRatio = 1
	} else {
		withAlt := 0
		imgs.Each(func(_ int, s *goquery.Selection) {
			if alt, ok := s.Attr("alt"); ok && strings.TrimSpace(alt) != "" {
				withAlt++
			}
		})
		m.AltRatio = float64(withAlt) / float64(imgs.Length())
	}

	doc.Find("script").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		if src, ok := s.Attr("src"); ok && analyticsPattern.MatchString(src) {
			m.HasAnalytics = true
			return false
		}
		if analyticsPattern.MatchString(s.Text()) {
			m.HasAnalytics = true
			return false
		}
		return true
	})

	return m, nil
}

// menuCount counts the entries of the page's primary menu: the links of the
// first nav element, falling back to links inside the header.
func menuCount(doc *goquery.Document) int {
	nav := doc.Find("nav").First()
	if nav.Length() > 0 {
		return nav.Find("a").Length()
	}
	return doc.Find("header a").Length()
}

func hasSearch(doc *goquery.Document) bool {
	if doc.Find(`input[type="search"], form[role="search"], [role="search"]`).Length() > 0 {
		return true
	}
	found := false
	doc.Find("input").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		name, _ := s.Attr("name")
		ph, _ := s.Attr("placeholder")
		if strings.Contains(strings.ToLower(name), "search") ||
			strings.Contains(strings.ToLower(ph), "search") {
			found = true
			return false
		}
		return true
	})
	return found
}
