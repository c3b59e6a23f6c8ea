// Package pipeline drives the discovery-and-extraction flows: multi-term
// company discovery and single-company lookup. Candidate processing is
// strictly sequential — result order and primary-contact tie-breaks depend
// on deterministic discovery order.
package pipeline

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/wood-couture/market-scout/internal/filter"
	"github.com/wood-couture/market-scout/internal/model"
	"github.com/wood-couture/market-scout/internal/resolve"
	"github.com/wood-couture/market-scout/internal/scrape"
	"github.com/wood-couture/market-scout/internal/summary"
	"github.com/wood-couture/market-scout/pkg/serper"
)

// ErrNotFound reports that a single-company lookup resolved no website or
// scraped no content.
var ErrNotFound = eris.New("pipeline: company not found")

// defaultMaxResults bounds a discovery run when the caller gives no cap.
const defaultMaxResults = 5

// Progress receives stage notifications ("search", "analyze", "scrape",
// "summarize") with a human-readable detail. May be nil.
type Progress func(stage, detail string)

// Pipeline composes search, resolution, scraping, and summarization.
type Pipeline struct {
	search    serper.Client
	resolver  *resolve.Resolver
	scraper   *scrape.Scraper
	summaries *summary.Generator
	lists     filter.Lists
	progress  Progress
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithProgress installs a progress callback.
func WithProgress(fn Progress) Option {
	return func(p *Pipeline) {
		p.progress = fn
	}
}

// New creates a Pipeline.
func New(search serper.Client, resolver *resolve.Resolver, scraper *scrape.Scraper, summaries *summary.Generator, lists filter.Lists, opts ...Option) *Pipeline {
	p := &Pipeline{
		search:    search,
		resolver:  resolver,
		scraper:   scraper,
		summaries: summaries,
		lists:     lists,
	}
	for _, o := range opts {
		o(p)
	}
	return p
}

func (p *Pipeline) report(stage, detail string) {
	if p.progress != nil {
		p.progress(stage, detail)
	}
}

// DiscoverParams configures one multi-term discovery run.
type DiscoverParams struct {
	Terms        []string
	Requirements string
	Country      string
	MaxResults   int
	Offset       int
	// Exclude holds names emitted by prior runs ("load more" pages).
	// First-seen wins across both scopes.
	Exclude filter.NameSet
}

// candidate is a validated search hit awaiting scraping.
type candidate struct {
	name        string
	website     string
	linkedInURL string
}

// buildQuery combines a search term, the free-text requirements, and a
// target country into one query string.
func buildQuery(term, requirements, country string) string {
	q := term
	if requirements != "" {
		q += " " + requirements
	}
	if country != "" {
		q += " in " + country
	}
	return strings.TrimSpace(q)
}

// Discover runs the multi-term flow: validate hits, resolve each surviving
// candidate's web presence, scrape, summarize, emit. It stops once the
// result cap is reached or all terms are exhausted. A failed query or an
// unreachable site drops only the affected candidates.
func (p *Pipeline) Discover(ctx context.Context, params DiscoverParams) ([]model.CompanyRecord, error) {
	if params.MaxResults <= 0 {
		params.MaxResults = defaultMaxResults
	}

	runID := uuid.NewString()
	log := zap.L().With(zap.String("run_id", runID))
	log.Info("discover: starting run",
		zap.Strings("terms", params.Terms),
		zap.String("country", params.Country),
		zap.Int("max_results", params.MaxResults),
		zap.Int("offset", params.Offset),
	)

	seen := filter.NewNameSet()
	var candidates []candidate

terms:
	for _, term := range params.Terms {
		if err := ctx.Err(); err != nil {
			return nil, eris.Wrap(err, "discover: cancelled")
		}

		query := buildQuery(term, params.Requirements, params.Country)
		p.report("search", query)

		resp, err := p.search.Search(ctx, query, serper.WithOffset(params.Offset))
		if err != nil {
			log.Warn("discover: search query failed", zap.String("query", query), zap.Error(err))
			continue
		}

		for _, hit := range resp.Organic {
			if p.lists.IsAggregatorTitle(hit.Title) {
				continue
			}
			if hit.Link == "" || p.lists.IsBlacklistedDomain(hit.Link) {
				continue
			}

			name := filter.CleanCompanyName(hit.Title)
			if name == "" || seen.Has(name) || params.Exclude.Has(name) {
				continue
			}

			p.report("analyze", name)
			website, linkedInURL := p.resolver.Resolve(ctx, name)
			if website == "" {
				continue
			}

			seen.Add(name)
			candidates = append(candidates, candidate{
				name:        name,
				website:     website,
				linkedInURL: linkedInURL,
			})
			if len(candidates) >= params.MaxResults {
				break terms
			}
		}
	}

	log.Info("discover: candidates validated", zap.Int("count", len(candidates)))

	var records []model.CompanyRecord
	for _, c := range candidates {
		if err := ctx.Err(); err != nil {
			return records, eris.Wrap(err, "discover: cancelled")
		}

		rec, ok := p.processCandidate(ctx, c)
		if !ok {
			log.Debug("discover: candidate dropped, no content", zap.String("company", c.name))
			continue
		}
		records = append(records, rec)
	}

	log.Info("discover: run complete", zap.Int("records", len(records)))
	return records, nil
}

// Lookup runs the single-company flow: resolve the name's web presence
// directly, scrape, summarize, emit one record. Returns ErrNotFound when no
// website resolves or no page content could be retrieved.
func (p *Pipeline) Lookup(ctx context.Context, companyName string) (*model.CompanyRecord, error) {
	companyName = strings.TrimSpace(companyName)
	if companyName == "" {
		return nil, eris.New("pipeline: company name is required")
	}

	log := zap.L().With(zap.String("company", companyName))
	p.report("analyze", companyName)

	website, linkedInURL := p.resolver.Resolve(ctx, companyName)
	if website == "" {
		log.Info("lookup: no website resolved")
		return nil, ErrNotFound
	}

	rec, ok := p.processCandidate(ctx, candidate{
		name:        companyName,
		website:     website,
		linkedInURL: linkedInURL,
	})
	if !ok {
		log.Info("lookup: no content scraped", zap.String("website", website))
		return nil, ErrNotFound
	}
	return &rec, nil
}

// processCandidate scrapes, summarizes, and folds one candidate into a
// CompanyRecord. Returns ok=false when the site yielded no content.
func (p *Pipeline) processCandidate(ctx context.Context, c candidate) (model.CompanyRecord, bool) {
	p.report("scrape", fmt.Sprintf("%s (%s)", c.name, c.website))

	bundle := p.scraper.Site(ctx, c.website)
	if bundle.Empty() {
		return model.CompanyRecord{}, false
	}

	p.report("summarize", c.name)
	summaryText := p.summaries.Summarize(ctx, c.name, bundle.CombinedText())

	var profilePhone, profileLocation string
	if c.linkedInURL != "" {
		profilePhone, profileLocation = p.resolver.LinkedInDetails(ctx, c.linkedInURL)
	}

	// Site phone wins; the profile phone is only a fallback. Location
	// prefers the profile, then any postal address found on the site.
	primaryPhone := bundle.Phones.First()
	if primaryPhone == "" {
		primaryPhone = profilePhone
	}
	location := profileLocation
	if location == "" {
		location = bundle.Address
	}

	return model.CompanyRecord{
		Name:         c.name,
		Website:      c.website,
		LinkedInURL:  c.linkedInURL,
		PrimaryEmail: bundle.Emails.First(),
		PrimaryPhone: primaryPhone,
		Location:     location,
		AllEmails:    bundle.Emails.Values(),
		AllPhones:    bundle.Phones.Values(),
		Summary:      summaryText,
	}, true
}
