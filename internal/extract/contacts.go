package extract

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/wood-couture/market-scout/internal/model"
)

// emailRe matches local-part@domain.tld anywhere in raw markup.
var emailRe = regexp.MustCompile(`[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}`)

// phoneRe matches digit runs with common phone punctuation, optional leading
// +, spanning at least 9 raw characters. Deliberately loose: upstream content
// is uncontrolled, and a missed real phone is worse than an occasional date
// slipping through.
var phoneRe = regexp.MustCompile(`\+?\d[\d\s\-().]{7,}\d`)

// phoneNoiseRe strips spaces, hyphens, parentheses, and dots for the
// significant-digit count.
var phoneNoiseRe = regexp.MustCompile(`[\s\-().+]+`)

// minSignificantDigits rejects numeric runs too short to be phone numbers.
const minSignificantDigits = 7

// Contacts extracts email and phone sets from raw HTML. Structural hints
// (mailto: and tel: anchors) are collected first so they win the ordered
// set's "primary" slot; regex matches over the full markup are unioned after.
// Inputs with no contact markup yield two empty sets, never an error.
func Contacts(html string) (emails, phones *model.StringSet) {
	emails = model.NewStringSet()
	phones = model.NewStringSet()

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err == nil {
		doc.Find("a[href]").Each(func(_ int, a *goquery.Selection) {
			href, _ := a.Attr("href")
			switch {
			case strings.HasPrefix(href, "mailto:"):
				addr := strings.TrimPrefix(href, "mailto:")
				if q := strings.Index(addr, "?"); q >= 0 {
					addr = addr[:q]
				}
				emails.Add(strings.TrimSpace(addr))
			case strings.HasPrefix(href, "tel:"):
				num := strings.TrimSpace(strings.TrimPrefix(href, "tel:"))
				if plausiblePhone(num) {
					phones.Add(num)
				}
			}
		})
	}

	for _, m := range emailRe.FindAllString(html, -1) {
		emails.Add(m)
	}
	for _, m := range phoneRe.FindAllString(html, -1) {
		m = strings.TrimSpace(m)
		if plausiblePhone(m) {
			phones.Add(m)
		}
	}

	return emails, phones
}

// plausiblePhone requires at least minSignificantDigits digits once
// formatting noise is stripped.
func plausiblePhone(raw string) bool {
	stripped := phoneNoiseRe.ReplaceAllString(raw, "")
	if len(stripped) < minSignificantDigits {
		return false
	}
	for _, r := range stripped {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// Address returns the first <address> element's text, if any. Postal-address
// markup is rare but unambiguous when present.
func Address(html string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return ""
	}
	return collapseSpace(doc.Find("address").First().Text())
}
