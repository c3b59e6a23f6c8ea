package pipeline

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/wood-couture/market-scout/internal/fetch"
	"github.com/wood-couture/market-scout/internal/filter"
	"github.com/wood-couture/market-scout/internal/resolve"
	"github.com/wood-couture/market-scout/internal/scrape"
	"github.com/wood-couture/market-scout/internal/summary"
	"github.com/wood-couture/market-scout/pkg/anthropic"
	"github.com/wood-couture/market-scout/pkg/serper"
)

// fakeSearch returns canned responses keyed by exact query string.
type fakeSearch struct {
	responses map[string]*serper.SearchResponse
	queries   []string
}

func (f *fakeSearch) Search(_ context.Context, query string, _ ...serper.SearchOption) (*serper.SearchResponse, error) {
	f.queries = append(f.queries, query)
	if resp, ok := f.responses[query]; ok {
		return resp, nil
	}
	return &serper.SearchResponse{}, nil
}

// fakeSummarizer is an anthropic.Client returning a fixed summary.
type fakeSummarizer struct {
	text string
}

func (f *fakeSummarizer) CreateMessage(_ context.Context, _ anthropic.MessageRequest) (*anthropic.MessageResponse, error) {
	return &anthropic.MessageResponse{
		Content: []anthropic.ContentBlock{{Type: "text", Text: f.text}},
	}, nil
}

// newSiteServer serves fixed pages.
func newSiteServer(t *testing.T, pages map[string]string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, ok := pages[r.URL.Path]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

// newTestPipeline wires a Pipeline from a fake search provider and an
// optional fake summarization client (nil exercises the fallback).
func newTestPipeline(search serper.Client, ai anthropic.Client, opts ...Option) *Pipeline {
	lists := filter.DefaultLists()
	fetcher := fetch.New(fetch.Options{MaxAttempts: 1, RequestsPerSecond: 1000})
	resolver := resolve.New(search, fetcher, lists)
	scraper := scrape.New(fetcher, scrape.Options{})
	gen := summary.NewGenerator(ai, "claude-haiku-4-5-20251001", 750)
	return New(search, resolver, scraper, gen, lists, opts...)
}
