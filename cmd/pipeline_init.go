package main

import (
	"time"

	"go.uber.org/zap"

	"github.com/wood-couture/market-scout/internal/fetch"
	"github.com/wood-couture/market-scout/internal/filter"
	"github.com/wood-couture/market-scout/internal/pipeline"
	"github.com/wood-couture/market-scout/internal/resolve"
	"github.com/wood-couture/market-scout/internal/scrape"
	"github.com/wood-couture/market-scout/internal/summary"
	anthropicpkg "github.com/wood-couture/market-scout/pkg/anthropic"
	"github.com/wood-couture/market-scout/pkg/serper"
)

// initPipeline builds all API clients and the Pipeline from the loaded
// config. The Anthropic key is optional; without it summaries degrade to a
// placeholder.
func initPipeline(mode string, opts ...pipeline.Option) (*pipeline.Pipeline, error) {
	if err := cfg.Validate(mode); err != nil {
		return nil, err
	}

	lists := filter.DefaultLists()
	if cfg.Filter.ListsPath != "" {
		loaded, err := filter.LoadLists(cfg.Filter.ListsPath)
		if err != nil {
			return nil, err
		}
		lists = loaded
	}

	serperOpts := []serper.Option{
		serper.WithLocale(cfg.Serper.Locale),
		serper.WithPageSize(cfg.Serper.PageSize),
	}
	if cfg.Serper.BaseURL != "" {
		serperOpts = append(serperOpts, serper.WithBaseURL(cfg.Serper.BaseURL))
	}
	if cfg.Serper.RequestsPerSecond > 0 {
		serperOpts = append(serperOpts, serper.WithRateLimit(cfg.Serper.RequestsPerSecond))
	}
	search := serper.NewClient(cfg.Serper.Key, serperOpts...)

	var aiClient anthropicpkg.Client
	if cfg.Anthropic.Key != "" {
		aiClient = anthropicpkg.NewClient(cfg.Anthropic.Key)
	} else {
		zap.L().Warn("SCOUT_ANTHROPIC_KEY not set, summaries will be placeholders")
	}

	fetcher := fetch.New(fetch.Options{
		UserAgent:         cfg.Fetch.UserAgent,
		Timeout:           time.Duration(cfg.Fetch.TimeoutSecs) * time.Second,
		MaxAttempts:       cfg.Fetch.MaxAttempts,
		RequestsPerSecond: cfg.Fetch.RequestsPerSecond,
	})

	resolver := resolve.New(search, fetcher, lists)
	scraper := scrape.New(fetcher, scrape.Options{
		Keywords:    cfg.Scrape.Keywords,
		MaxParallel: cfg.Scrape.MaxParallel,
	})
	summaries := summary.NewGenerator(aiClient, cfg.Anthropic.Model, cfg.Anthropic.MaxTokens)

	return pipeline.New(search, resolver, scraper, summaries, lists, opts...), nil
}
