// Package filter gates search hits before any scraping work is spent:
// cheap substring rejection of aggregator pages and marketplace domains,
// plus first-seen-wins name deduplication.
package filter

import (
	"os"
	"strings"

	"github.com/rotisserie/eris"
	"gopkg.in/yaml.v3"
)

// Lists holds the rejection word lists. Substring matching is deliberately
// permissive: "yellowpages" catches every subdomain and TLD variant without
// a full domain parse.
type Lists struct {
	BlacklistDomains []string `yaml:"blacklist_domains"`
	AggregatorWords  []string `yaml:"aggregator_words"`
}

// DefaultLists returns the built-in marketplace blocklist and listicle words.
func DefaultLists() Lists {
	return Lists{
		BlacklistDomains: []string{
			"alibaba.com",
			"thomasnet.com",
			"yellowpages",
			"quora.com",
			"made-in-china.com",
			"reddit.com",
			"facebook.com",
			"globalsources.com",
			"homedepot.com",
		},
		AggregatorWords: []string{"top", "best", "guide", "list", "review"},
	}
}

// LoadLists reads rejection lists from a YAML file. Entries missing from the
// file fall back to the defaults, so a file may override just one list.
func LoadLists(path string) (Lists, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Lists{}, eris.Wrap(err, "filter: read lists file")
	}

	lists := Lists{}
	if err := yaml.Unmarshal(data, &lists); err != nil {
		return Lists{}, eris.Wrap(err, "filter: parse lists file")
	}

	defaults := DefaultLists()
	if len(lists.BlacklistDomains) == 0 {
		lists.BlacklistDomains = defaults.BlacklistDomains
	}
	if len(lists.AggregatorWords) == 0 {
		lists.AggregatorWords = defaults.AggregatorWords
	}
	return lists, nil
}

// IsBlacklistedDomain reports whether the URL contains any blocked domain
// substring, case-insensitive.
func (l Lists) IsBlacklistedDomain(rawURL string) bool {
	lower := strings.ToLower(rawURL)
	for _, domain := range l.BlacklistDomains {
		if strings.Contains(lower, strings.ToLower(domain)) {
			return true
		}
	}
	return false
}

// IsAggregatorTitle reports whether the title looks like a listicle or
// directory page ("10 Best Wood Manufacturers") rather than a company's own
// site.
func (l Lists) IsAggregatorTitle(title string) bool {
	lower := strings.ToLower(title)
	for _, word := range l.AggregatorWords {
		if strings.Contains(lower, strings.ToLower(word)) {
			return true
		}
	}
	return false
}

// nameSeparators are the title suffixes search engines append after the
// company name ("Acme Woodworks - Official Site", "Acme | Home").
var nameSeparators = []string{" | ", " - ", " – ", " — "}

// CleanCompanyName strips trailing search-title suffixes and whitespace,
// yielding the canonical name used for deduplication.
func CleanCompanyName(title string) string {
	name := strings.TrimSpace(title)
	for _, sep := range nameSeparators {
		if idx := strings.Index(name, sep); idx > 0 {
			name = name[:idx]
		}
	}
	return strings.TrimSpace(name)
}
