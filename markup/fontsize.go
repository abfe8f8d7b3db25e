package markup

import (
	"bytes"
	"regexp"
	"strconv"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// fontSizePattern extracts px font-size declarations from style attributes
// and style element bodies. Relative units are skipped: without a render
// pass there is no base to resolve them against.
var fontSizePattern = regexp.MustCompile(`(?i)font-size\s*:\s*([0-9]+(?:\.[0-9]+)?)px`)

// defaultFontSize is the browser default assumed when the markup declares
// no pixel font size at all.
const defaultFontSize = 16.0

// minDeclaredFontSize tokenizes the document and returns the smallest pixel
// font size declared in inline styles or style blocks.
func minDeclaredFontSize(raw []byte) float64 {
	min := 0.0
	consider := func(s string) {
		for _, m := range fontSizePattern.FindAllStringSubmatch(s, -1) {
			v, err := strconv.ParseFloat(m[1], 64)
			if err != nil || v <= 0 {
				continue
			}
			if min == 0 || v < min {
				min = v
			}
		}
	}

	z := html.NewTokenizer(bytes.NewReader(raw))
	inStyle := false
	for {
		switch z.Next() {
		case html.ErrorToken:
			if min == 0 {
				return defaultFontSize
			}
			return min
		case html.StartTagToken:
			tok := z.Token()
			if tok.DataAtom == atom.Style {
				inStyle = true
			}
			for _, a := range tok.Attr {
				if a.Key == "style" {
					consider(a.Val)
				}
			}
		case html.EndTagToken:
			if z.Token().DataAtom == atom.Style {
				inStyle = false
			}
		case html.TextToken:
			if inStyle {
				consider(string(z.Text()))
			}
		}
	}
}
