// Package extract converts raw HTML into readable body text and contact
// signals. Extraction is best-effort throughout: parse failures fall back to
// cruder strategies and are never surfaced to callers.
package extract

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	readability "github.com/go-shiori/go-readability"
)

var spaceRe = regexp.MustCompile(`\s+`)

// collapseSpace flattens all whitespace runs to single spaces.
func collapseSpace(s string) string {
	return strings.TrimSpace(spaceRe.ReplaceAllString(s, " "))
}

// MainText isolates the primary readable content of a page, discarding
// navigation and chrome. If readability extraction fails or yields nothing,
// it falls back to all visible text from the full document. The result may
// be empty but the call never fails.
func MainText(html, pageURL string) string {
	parsed, err := url.Parse(pageURL)
	if err != nil {
		parsed = &url.URL{}
	}

	article, err := readability.FromReader(strings.NewReader(html), parsed)
	if err == nil {
		if text := collapseSpace(article.TextContent); text != "" {
			return text
		}
	}

	return FullText(html)
}

// FullText extracts all visible text from the document, with scripts,
// styles, and embedded noise removed.
func FullText(html string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return ""
	}
	doc.Find("script, style, noscript, template, iframe").Remove()
	return collapseSpace(doc.Text())
}
