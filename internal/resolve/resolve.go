// Package resolve locates a company's public web presence: its official
// site and its LinkedIn company profile.
package resolve

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/wood-couture/market-scout/internal/fetch"
	"github.com/wood-couture/market-scout/internal/filter"
	"github.com/wood-couture/market-scout/pkg/serper"
)

// linkedInProfilePath marks a LinkedIn company profile URL.
const linkedInProfilePath = "linkedin.com/company"

// Resolver issues discovery queries and picks the first result surviving
// the aggregator and blacklist filters.
type Resolver struct {
	search  serper.Client
	fetcher *fetch.Fetcher
	lists   filter.Lists
}

// New creates a Resolver.
func New(search serper.Client, fetcher *fetch.Fetcher, lists filter.Lists) *Resolver {
	return &Resolver{search: search, fetcher: fetcher, lists: lists}
}

// Resolve finds the official website and LinkedIn profile for a company
// name. The two queries are independent; either may legitimately come back
// empty. A search provider error is tolerated as an empty result set — an
// absent website disqualifies the candidate downstream, an absent profile
// merely leaves profile-derived fields unset.
func (r *Resolver) Resolve(ctx context.Context, companyName string) (website, linkedInURL string) {
	log := zap.L().With(zap.String("company", companyName))

	website = r.resolveWebsite(ctx, companyName)
	if website == "" {
		log.Debug("resolve: no official website found")
	}

	linkedInURL = r.resolveLinkedIn(ctx, companyName)
	if linkedInURL == "" {
		log.Debug("resolve: no linkedin profile found")
	}

	return website, linkedInURL
}

// resolveWebsite scans "<name> official website" results in rank order and
// accepts the first that is neither an aggregator page nor a blacklisted
// domain.
func (r *Resolver) resolveWebsite(ctx context.Context, companyName string) string {
	resp, err := r.search.Search(ctx, fmt.Sprintf("%s official website", companyName))
	if err != nil {
		zap.L().Warn("resolve: website query failed", zap.String("company", companyName), zap.Error(err))
		return ""
	}

	for _, result := range resp.Organic {
		if r.lists.IsAggregatorTitle(result.Title) {
			continue
		}
		if result.Link == "" || r.lists.IsBlacklistedDomain(result.Link) {
			continue
		}
		return result.Link
	}
	return ""
}

// resolveLinkedIn scans "<name> LinkedIn" results in rank order and accepts
// the first company-profile link.
func (r *Resolver) resolveLinkedIn(ctx context.Context, companyName string) string {
	resp, err := r.search.Search(ctx, fmt.Sprintf("%s LinkedIn", companyName))
	if err != nil {
		zap.L().Warn("resolve: linkedin query failed", zap.String("company", companyName), zap.Error(err))
		return ""
	}

	for _, result := range resp.Organic {
		if strings.Contains(strings.ToLower(result.Link), linkedInProfilePath) {
			return result.Link
		}
	}
	return ""
}
