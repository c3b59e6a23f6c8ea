package resolve

import (
	"context"
	"regexp"
	"strings"

	"github.com/wood-couture/market-scout/internal/extract"
)

// Intentionally loose heuristics over an uncontrolled profile page: a
// missed real phone is worse than an occasional false positive.
var (
	profilePhoneRe    = regexp.MustCompile(`\+?\d[\d\s\-]{7,}\d`)
	profileLocationRe = regexp.MustCompile(`Location\s*[:\-]?\s*([A-Za-z0-9,\s\-]+)`)
)

// LinkedInDetails scrapes a LinkedIn company profile for a phone number and
// a location line. Either may come back empty; an unreachable profile
// yields both empty.
func (r *Resolver) LinkedInDetails(ctx context.Context, profileURL string) (phone, location string) {
	html := r.fetcher.Fetch(ctx, profileURL)
	if html == "" {
		return "", ""
	}

	text := extract.FullText(html)

	if m := profilePhoneRe.FindString(text); m != "" {
		phone = strings.TrimSpace(m)
	}
	if m := profileLocationRe.FindStringSubmatch(text); len(m) > 1 {
		location = strings.TrimSpace(m[1])
	}
	return phone, location
}
