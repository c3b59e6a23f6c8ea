// Package scrape aggregates a company site into one PageBundle: homepage
// plus the keyword-discovered secondary pages, merged in a deterministic
// order so primary-contact selection stays stable.
package scrape

import (
	"context"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/wood-couture/market-scout/internal/extract"
	"github.com/wood-couture/market-scout/internal/fetch"
	"github.com/wood-couture/market-scout/internal/model"
)

// DefaultKeywords guides secondary-page discovery on a homepage.
var DefaultKeywords = []string{
	"about",
	"products",
	"contact",
	"contact us",
	"services",
	"portfolio",
	"get in touch",
}

// Options configures a Scraper.
type Options struct {
	Keywords    []string
	MaxParallel int
}

// Scraper walks one site per call: homepage first, then the pages behind
// keyword-matching links.
type Scraper struct {
	fetcher  *fetch.Fetcher
	keywords []string
	parallel int
	caser    cases.Caser
}

// New creates a Scraper on top of the given Fetcher.
func New(fetcher *fetch.Fetcher, opts Options) *Scraper {
	keywords := opts.Keywords
	if len(keywords) == 0 {
		keywords = DefaultKeywords
	}
	parallel := opts.MaxParallel
	if parallel <= 0 {
		parallel = 4
	}
	return &Scraper{
		fetcher:  fetcher,
		keywords: keywords,
		parallel: parallel,
		caser:    cases.Title(language.English),
	}
}

// Site scrapes siteURL and its discovered secondary pages into a PageBundle.
// An unreachable homepage yields an empty bundle immediately — the site
// contributes nothing and the caller drops the candidate. Secondary-page
// failures are independent: each failed page is skipped, the rest merge.
//
// Secondary pages are fetched with bounded parallelism, but the fold runs in
// fixed keyword order with the homepage first. That order decides which
// email/phone becomes primary, so it must not vary between runs.
func (s *Scraper) Site(ctx context.Context, siteURL string) *model.PageBundle {
	log := zap.L().With(zap.String("site", siteURL))
	bundle := model.NewPageBundle()

	homepage := s.fetcher.Fetch(ctx, siteURL)
	if homepage == "" {
		log.Debug("scrape: homepage unreachable")
		return bundle
	}

	bundle.AddSection("Homepage", extract.MainText(homepage, siteURL))
	homeEmails, homePhones := extract.Contacts(homepage)
	bundle.Emails.AddAll(homeEmails)
	bundle.Phones.AddAll(homePhones)
	bundle.Address = extract.Address(homepage)

	if homeEmails.Len() > 0 {
		bundle.AddSection("Contact Details", "Emails: "+strings.Join(homeEmails.Values(), ", "))
	}

	links := extract.KeywordLinks(homepage, siteURL, s.keywords)

	// Build the fetch list in keyword order, skipping URLs already claimed
	// so no page is fetched twice.
	type page struct {
		keyword string
		url     string
		html    string
	}
	var pages []page
	seen := map[string]bool{siteURL: true}
	for _, kw := range s.keywords {
		link, ok := links[kw]
		if !ok || seen[link] {
			continue
		}
		seen[link] = true
		pages = append(pages, page{keyword: kw, url: link})
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.parallel)
	for i := range pages {
		g.Go(func() error {
			pages[i].html = s.fetcher.Fetch(gctx, pages[i].url)
			return nil
		})
	}
	_ = g.Wait()

	for _, p := range pages {
		if p.html == "" {
			log.Debug("scrape: secondary page unreachable", zap.String("page", p.url))
			continue
		}
		bundle.AddSection(s.caser.String(p.keyword), extract.MainText(p.html, p.url))
		emails, phones := extract.Contacts(p.html)
		bundle.Emails.AddAll(emails)
		bundle.Phones.AddAll(phones)
		if bundle.Address == "" {
			bundle.Address = extract.Address(p.html)
		}
	}

	log.Debug("scrape: site complete",
		zap.Int("sections", len(bundle.Sections)),
		zap.Int("emails", bundle.Emails.Len()),
		zap.Int("phones", bundle.Phones.Len()),
	)
	return bundle
}
