package extract

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// KeywordLinks scans the homepage's anchors in document order and maps each
// keyword to the first anchor whose visible text contains it, with the href
// resolved against baseURL. Keywords with no matching anchor are absent from
// the result — never an error.
func KeywordLinks(html, baseURL string, keywords []string) map[string]string {
	links := make(map[string]string)

	base, err := url.Parse(baseURL)
	if err != nil {
		return links
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return links
	}

	doc.Find("a[href]").Each(func(_ int, a *goquery.Selection) {
		href, _ := a.Attr("href")
		href = strings.TrimSpace(href)
		if href == "" || strings.HasPrefix(href, "#") ||
			strings.HasPrefix(href, "javascript:") ||
			strings.HasPrefix(href, "mailto:") ||
			strings.HasPrefix(href, "tel:") {
			return
		}

		text := strings.ToLower(strings.TrimSpace(a.Text()))
		if text == "" {
			return
		}

		for _, kw := range keywords {
			if _, taken := links[kw]; taken {
				continue
			}
			if !strings.Contains(text, kw) {
				continue
			}
			ref, err := url.Parse(href)
			if err != nil {
				continue
			}
			links[kw] = base.ResolveReference(ref).String()
		}
	})

	return links
}
