// CLAUDE:SUMMARY Storefront platform detection from markup fingerprints (generator meta, asset hosts, body classes).
package markup

import (
	"regexp"
	"strings"
)

// platformFingerprints maps a platform name to markup fragments that
// identify it. Order matters: the first match wins.
var platformFingerprints = []struct {
	name     string
	patterns []*regexp.Regexp
}{
	{"shopify", []*regexp.Regexp{
		regexp.MustCompile(`cdn\.shopify\.com`),
		regexp.MustCompile(`Shopify\.theme`),
		regexp.MustCompile(`(?i)<meta[^>]+name="shopify`),
	}},
	{"woocommerce", []*regexp.Regexp{
		regexp.MustCompile(`(?i)woocommerce`),
		regexp.MustCompile(`wp-content/plugins/woocommerce`),
	}},
	{"magento", []*regexp.Regexp{
		regexp.MustCompile(`(?i)magento`),
		regexp.MustCompile(`mage/requirejs`),
	}},
	{"bigcommerce", []*regexp.Regexp{
		regexp.MustCompile(`cdn\d*\.bigcommerce\.com`),
		regexp.MustCompile(`(?i)bigcommerce`),
	}},
	{"wix", []*regexp.Regexp{
		regexp.MustCompile(`static\.wixstatic\.com`),
		regexp.MustCompile(`(?i)content="Wix\.com`),
	}},
	{"squarespace", []*regexp.Regexp{
		regexp.MustCompile(`(?i)squarespace`),
	}},
}

// DetectPlatform identifies the storefront platform from markup
// fingerprints. Returns "" when nothing matches; the grader treats that as
// a generic storefront.
func DetectPlatform(html []byte) string {
	s := string(html)
	if len(s) > 512*1024 {
		s = s[:512*1024]
	}
	for _, fp := range platformFingerprints {
		for _, p := range fp.patterns {
			if p.MatchString(s) {
				return fp.name
			}
		}
	}
	// Generator meta as a weaker fallback.
	if m := regexp.MustCompile(`(?i)<meta[^>]+name="generator"[^>]+content="([^"]+)"`).FindStringSubmatch(s); m != nil {
		gen := strings.ToLower(m[1])
		for _, fp := range platformFingerprints {
			if strings.Contains(gen, fp.name) {
				return fp.name
			}
		}
	}
	return ""
}
