package markup

import "testing"

const storefrontHTML = `<!DOCTYPE html>
<html>
<head>
<title>Acme Outdoor Gear</title>
<meta name="description" content="Tents, packs and boots.">
<meta property="og:title" content="Acme">
<meta property="og:image" content="https://acme.test/hero.jpg">
<meta property="og:url" content="https://acme.test/">
<style>.small { font-size: 11px; } body { font-size: 15px; }</style>
<script src="https://www.googletagmanager.com/gtag/js?id=G-1"></script>
</head>
<body>
<h1>Acme Outdoor Gear</h1>
<nav>
  <a href="/tents">Tents</a><a href="/packs">Packs</a><a href="/boots">Boots</a>
  <a href="/sale">Sale</a><a href="/about">About</a>
</nav>
<form role="search"><input type="search" name="q"></form>
<img src="/a.jpg" alt="tent"><img src="/b.jpg" alt="pack"><img src="/c.jpg">
<p style="font-size: 9px">fine print</p>
</body>
</html>`

func TestAnalyze_FullStorefront(t *testing.T) {
	// WHAT: The full record is filled from a representative first page.
	m, err := Analyze([]byte(storefrontHTML))
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if m.Title != "Acme Outdoor Gear" {
		t.Errorf("Title = %q", m.Title)
	}
	if m.MetaDescription != "Tents, packs and boots." {
		t.Errorf("MetaDescription = %q", m.MetaDescription)
	}
	if m.OGTags != 3 {
		t.Errorf("OGTags = %d, want 3", m.OGTags)
	}
	if m.H1Count != 1 {
		t.Errorf("H1Count = %d, want 1", m.H1Count)
	}
	if m.MenuCount != 5 {
		t.Errorf("MenuCount = %d, want 5", m.MenuCount)
	}
	if !m.HasSearch {
		t.Error("HasSearch = false, want true")
	}
	if !m.HasAnalytics {
		t.Error("HasAnalytics = false, want true")
	}
	if m.AltRatio < 0.66 || m.AltRatio > 0.67 {
		t.Errorf("AltRatio = %v, want 2/3", m.AltRatio)
	}
	if m.MinFontSize != 9 {
		t.Errorf("MinFontSize = %v, want 9 (smallest declared anywhere)", m.MinFontSize)
	}
}

func TestAnalyze_EmptyPageIsNotAnError(t *testing.T) {
	// WHAT: A bare page yields zero counts, absent title, alt ratio 1.
	// WHY: With no images, nothing lacks alt text; the scorer should not
	// punish alt coverage.
	m, err := Analyze([]byte(`<html><body><p>hi</p></body></html>`))
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if m.Title != "" || m.H1Count != 0 || m.OGTags != 0 {
		t.Errorf("unexpected record: %+v", m)
	}
	if m.AltRatio != 1 {
		t.Errorf("AltRatio = %v, want 1 for an imageless page", m.AltRatio)
	}
	if m.MinFontSize != defaultFontSize {
		t.Errorf("MinFontSize = %v, want browser default %v", m.MinFontSize, defaultFontSize)
	}
}

func TestMenuCount_HeaderFallback(t *testing.T) {
	// WHAT: Without a nav element, header links are counted instead.
	m, err := Analyze([]byte(`<html><body><header><a href="/a">a</a><a href="/b">b</a></header></body></html>`))
	if err != nil {
		t.Fatal(err)
	}
	if m.MenuCount != 2 {
		t.Errorf("MenuCount = %d, want 2", m.MenuCount)
	}
}

func TestDetectPlatform(t *testing.T) {
	// WHAT: Platform fingerprints resolve to the platform name; unknown
	// markup resolves to "".
	cases := []struct {
		html string
		want string
	}{
		{`<script src="https://cdn.shopify.com/s/x.js"></script>`, "shopify"},
		{`<link href="/wp-content/plugins/woocommerce/style.css">`, "woocommerce"},
		{`<img src="https://static.wixstatic.com/x.png">`, "wix"},
		{`<meta name="generator" content="Magento 2.4">`, "magento"},
		{`<html><body>plain store</body></html>`, ""},
	}
	for _, tc := range cases {
		if got := DetectPlatform([]byte(tc.html)); got != tc.want {
			t.Errorf("DetectPlatform(%q) = %q, want %q", tc.html, got, tc.want)
		}
	}
}
